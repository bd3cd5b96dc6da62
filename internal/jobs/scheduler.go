package jobs

import (
	"time"

	"likebike_backend/internal/demo"
	"likebike_backend/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the demo store's periodic resets: the daily bike counter
// and quiz flags at midnight, and the weekly course counter on Monday
// midnight. Both run on Asia/Seoul time, the service's home timezone.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(store *demo.Store) (*Scheduler, error) {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		loc = time.Local
	}

	c := cron.New(cron.WithLocation(loc))

	if _, err := c.AddFunc("0 0 * * *", func() {
		store.ResetDaily()
		logger.Log.Info("daily counters reset")
	}); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc("0 0 * * 1", func() {
		store.ResetWeekly()
		logger.Log.Info("weekly course counter reset")
	}); err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling; already-running jobs finish on their own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
