// Package scheduler runs the BFF's periodic jobs on a cron.
package scheduler

import (
	"context"
	"time"

	"assistec/internal/infrastructure/logger"

	"github.com/robfig/cron/v3"
)

// Job is one periodic task. It receives a context cancelled on Stop.
type Job func(ctx context.Context)

type Scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger{}),
			cron.SkipIfStillRunning(cronLogger{}),
		)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Add registers job under name with a standard or "@every" spec.
func (s *Scheduler) Add(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		start := time.Now()
		job(s.ctx)
		logger.For("scheduler").Debug().
			Str("job", name).
			Dur("elapsed", time.Since(start)).
			Msg("job finished")
	})
	if err != nil {
		return err
	}
	logger.For("scheduler").Info().Str("job", name).Str("spec", spec).Msg("job scheduled")
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs and waits for them, up to ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.For("scheduler").Debug().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.For("scheduler").Error().Err(err).Fields(keysAndValues).Msg(msg)
}
