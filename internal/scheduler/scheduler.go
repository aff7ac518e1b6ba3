package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler repeats the pipeline on a cron spec. An empty spec is not
// handled here; the caller runs the pipeline once instead.
type Scheduler struct {
	ctx        context.Context
	cron       *cron.Cron
	spec       string
	runTimeout time.Duration
	job        func(ctx context.Context)
	log        *slog.Logger
}

func New(
	ctx context.Context,
	spec string,
	runTimeout time.Duration,
	job func(ctx context.Context),
	log *slog.Logger,
) *Scheduler {
	return &Scheduler{
		ctx:        ctx,
		cron:       cron.New(cron.WithLocation(time.UTC)),
		spec:       spec,
		runTimeout: runTimeout,
		job:        job,
		log:        log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runJob); err != nil {
		return err
	}

	s.cron.Start()

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runJob() {
	ctx, cancel := context.WithTimeout(s.ctx, s.runTimeout)
	defer cancel()

	if s.ctx.Err() != nil {
		s.log.InfoContext(ctx, "Scheduler context is done",
			"error", s.ctx.Err())

		return
	}

	s.job(ctx)
}
