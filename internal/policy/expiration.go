// Package policy holds the expiration rules for vehicle documents: when a
// document counts as expired, how many days it has left, and how the
// "expired" filter translates into a query condition.
package policy

import "time"

// truncate drops the time-of-day component; expiration is date-granular.
func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsExpired reports whether a document with the given expiration date is
// expired as of today. A document with no expiration date never expires.
func IsExpired(expiration *time.Time, today time.Time) bool {
	if expiration == nil {
		return false
	}
	return truncate(*expiration).Before(truncate(today))
}

// DaysToExpire returns the signed number of whole days between today and the
// expiration date. Negative for already-expired documents, zero when no
// expiration date is set.
func DaysToExpire(expiration *time.Time, today time.Time) int {
	if expiration == nil {
		return 0
	}
	return int(truncate(*expiration).Sub(truncate(today)).Hours() / 24)
}

// ExpiredCondition translates an "is expired" filter into a SQL condition
// over expiration_date. Supported forms:
//
//	("=", true)               -> expiration_date < today
//	("=" or "!=", false)      -> expiration_date >= today
//
// Note the asymmetry, inherited from the stored-filter semantics: comparing
// against false excludes documents with no expiration date. Any other
// operator yields ok=false, meaning the filter cannot constrain the query;
// callers decide whether to treat that as "match everything" or reject it.
func ExpiredCondition(operator string, value bool, today time.Time) (cond string, arg time.Time, ok bool) {
	day := truncate(today)
	if operator == "=" && value {
		return "expiration_date < ?", day, true
	}
	if (operator == "=" || operator == "!=") && !value {
		return "expiration_date >= ?", day, true
	}
	return "", time.Time{}, false
}
