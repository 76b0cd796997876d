package service

import (
	"context"
	"errors"
	"time"

	"heating_controller/internal/heating"
	"heating_controller/internal/logger"
)

const (
	// scheduleTimeLayout matches the zero-padded "HH:MM" strings schedules use.
	scheduleTimeLayout = "15:04"
	defaultTick        = 30 * time.Second
)

type scheduleApplier interface {
	ApplySchedule(ctx context.Context, at string) (bool, error)
}

// SchedulerService periodically applies the schedule entry matching the
// current wall-clock time.
type SchedulerService struct {
	applier scheduleApplier
	log     *logger.Logger
}

func NewSchedulerService(applier scheduleApplier, log *logger.Logger) *SchedulerService {
	return &SchedulerService{applier: applier, log: log}
}

// Run ticks at the given interval until ctx is canceled. A non-positive tick
// means 30s.
func (s *SchedulerService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = defaultTick
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.Tick(ctx, now)
		}
	}
}

// Tick applies the schedule for the local time of now.
func (s *SchedulerService) Tick(ctx context.Context, now time.Time) {
	at := now.Format(scheduleTimeLayout)
	applied, err := s.applier.ApplySchedule(ctx, at)
	if s.log == nil {
		return
	}
	switch {
	case errors.Is(err, heating.ErrTemperatureOutOfRange):
		s.log.Warnw("schedule_rejected", "at", at, "err", err)
	case err != nil:
		s.log.Errorw("schedule_apply_failed", "at", at, "err", err)
	case applied:
		s.log.Infow("schedule_applied", "at", at)
	}
}
