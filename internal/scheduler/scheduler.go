// Package scheduler drives the periodic expiration sweep. There is one job,
// one interval, no persistence: cadence is a deployment concern.
package scheduler

import (
	"context"
	"time"

	logrus "github.com/sirupsen/logrus"
)

// Job is one sweep run, handed the current date in the scheduler's timezone.
type Job func(ctx context.Context, today time.Time) error

type Scheduler struct {
	job      Job
	interval time.Duration
	loc      *time.Location
}

func New(job Job, interval time.Duration, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{job: job, interval: interval, loc: loc}
}

// Start runs the job once immediately and then on every tick. It blocks
// until ctx is cancelled. Job errors are logged, never fatal: the next tick
// runs regardless.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	today := time.Now().In(s.loc)
	if err := s.job(ctx, today); err != nil {
		logrus.WithError(err).Error("scheduled expiration check failed")
	}
}
