package scheduler

import (
	"context"
	"time"

	"piecework_tracker/pkg/logger"

	"github.com/go-co-op/gocron"
)

// StaleOrderChecker is satisfied by the notification usecase.
type StaleOrderChecker interface {
	CheckStaleOrders(ctx context.Context) (int, error)
}

// Scheduler runs background jobs in the operator's time zone.
type Scheduler struct {
	cron *gocron.Scheduler
	log  *logger.Logger
}

func New(loc *time.Location, log *logger.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Default()
	}
	return &Scheduler{cron: gocron.NewScheduler(loc), log: log.WithComponent("scheduler")}
}

// ScheduleStaleOrderCheck runs checker every interval. Runs never overlap.
func (s *Scheduler) ScheduleStaleOrderCheck(checker StaleOrderChecker, every time.Duration) error {
	_, err := s.cron.Every(every).SingletonMode().Do(func() {
		RunStaleOrderCheck(context.Background(), checker, s.log)
	})
	return err
}

func (s *Scheduler) Start() {
	s.cron.StartAsync()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunStaleOrderCheck performs one check and logs the outcome.
func RunStaleOrderCheck(ctx context.Context, checker StaleOrderChecker, log *logger.Logger) {
	ctx = logger.WithLogger(ctx, log)
	created, err := checker.CheckStaleOrders(ctx)
	if err != nil {
		log.Errorw("[notification][scheduler] stale order check failed", "err", err)
		return
	}
	if created > 0 {
		log.Infow("[notification][scheduler] stale order check", "created", created)
	}
}
