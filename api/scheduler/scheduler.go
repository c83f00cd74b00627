package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/fortimeet/fortimeet-api/databases"
	"github.com/fortimeet/fortimeet-api/models"
)

// Retention is how long an expired meeting is kept before the reaper
// removes it. Recently expired invites keep answering "expired" rather
// than "not found" inside this window.
const Retention = 24 * time.Hour

// Scheduler handles periodic background cleanup of expired meetings
type Scheduler struct {
	cron *cron.Cron
	MDB  databases.MeetingDatabase
}

// NewScheduler creates a new scheduler instance
func NewScheduler(mdb databases.MeetingDatabase) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		MDB:  mdb,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc("@hourly", s.reapExpiredMeetings)
	if err != nil {
		zap.S().Errorw("failed to register expired meeting reaper", "error", err)
	}

	s.cron.Start()
	zap.S().Info("expired meeting reaper started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("expired meeting reaper stopped")
}

func (s *Scheduler) reapExpiredMeetings() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.ReapExpired(ctx, time.Now().UTC()); err != nil {
		zap.S().Errorw("failed to reap expired meetings", "error", err)
	}
}

// ReapExpired deletes meetings whose invite expired more than the retention
// window before now. Failures are left for the next tick.
func (s *Scheduler) ReapExpired(ctx context.Context, now time.Time) error {
	cutoff := now.Add(-Retention)

	deleted, err := s.MDB.DeleteMany(ctx, bson.M{
		"status":    models.MeetingStatusActive,
		"expiresAt": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return err
	}
	if deleted > 0 {
		zap.S().Infow("reaped expired meetings",
			"deleted", deleted,
			"cutoff", cutoff,
		)
	}
	return nil
}
