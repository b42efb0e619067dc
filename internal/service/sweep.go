package service

import (
	"context"
	"fmt"
	"time"

	logrus "github.com/sirupsen/logrus"

	"fleet_docs/internal/models"
	"fleet_docs/internal/policy"
	"fleet_docs/internal/repository"
)

// ExpirationHorizonDays is how far ahead the sweep looks for documents that
// are about to expire.
const ExpirationHorizonDays = 30

// SweepService scans for documents nearing or past expiration and notifies
// the responsible parties.
type SweepService struct {
	docs       repository.DocumentStore
	feed       repository.FeedStore
	activities repository.ActivityStore
}

func NewSweepService(docs repository.DocumentStore, feed repository.FeedStore, activities repository.ActivityStore) *SweepService {
	return &SweepService{docs: docs, feed: feed, activities: activities}
}

// Run processes every document whose expiration date falls on or before
// today plus the horizon, already-expired documents included. Each gets a
// post on its vehicle's feed; when a responsible user resolves (the
// vehicle's manager, else the driver's user account), a to-do due on the
// expiration date is scheduled for them as well. Documents still inside the
// window are notified again on every run; dedup is left to the cadence.
// The first store error aborts the run.
func (s *SweepService) Run(ctx context.Context, today time.Time) error {
	limit := today.AddDate(0, 0, ExpirationHorizonDays)

	docs, err := s.docs.ExpiringOnOrBefore(ctx, limit)
	if err != nil {
		return fmt.Errorf("select expiring documents: %w", err)
	}

	for i := range docs {
		doc := &docs[i]

		var message string
		if policy.IsExpired(doc.ExpirationDate, today) {
			message = fmt.Sprintf("ATTENTION! The document '%s' for vehicle '%s' expired on %s.",
				doc.Name, doc.Vehicle.Name, doc.ExpirationDate.Format("02/01/2006"))
		} else {
			message = fmt.Sprintf("The document '%s' for vehicle '%s' expires on %s (in %d days).",
				doc.Name, doc.Vehicle.Name, doc.ExpirationDate.Format("02/01/2006"),
				policy.DaysToExpire(doc.ExpirationDate, today))
		}

		// The feed post happens whether or not anyone is responsible.
		if err := s.feed.Post(ctx, doc.VehicleID, message); err != nil {
			return fmt.Errorf("post to vehicle %d feed: %w", doc.VehicleID, err)
		}

		userID := responsibleUser(&doc.Vehicle)
		if userID == 0 {
			// No manager and no driver account: don't fall back to whoever
			// runs the sweep, the feed post is the only notification.
			logrus.WithField("document_id", doc.ID).Debug("no responsible user for document, feed post only")
			continue
		}

		activity := &models.Activity{
			UserID:     userID,
			DocumentID: doc.ID,
			VehicleID:  doc.VehicleID,
			Summary:    message,
			DueDate:    *doc.ExpirationDate,
		}
		if err := s.activities.Schedule(ctx, activity); err != nil {
			return fmt.Errorf("schedule activity for document %d: %w", doc.ID, err)
		}
	}

	logrus.WithField("documents", len(docs)).Info("expiration sweep completed")
	return nil
}

// responsibleUser prefers the vehicle's manager, then the driver's linked
// user account. Zero means nobody to assign.
func responsibleUser(v *models.Vehicle) uint {
	if v.ManagerID != 0 {
		return v.ManagerID
	}
	if v.Driver != nil {
		return v.Driver.UserID
	}
	return 0
}
