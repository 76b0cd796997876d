package service

import (
	"context"
	"time"

	"heating_controller/internal/heating"
	"heating_controller/internal/logger"
	"heating_controller/internal/models"
	"heating_controller/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Controller exposes every state-changing controller operation.
type Controller interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	TurnOn(ctx context.Context) error
	TurnOff(ctx context.Context) error
	TurnOnBoostMode(ctx context.Context) error
	TurnOffBoostMode(ctx context.Context) error
	SetTemperature(ctx context.Context, t int) error
	SetHolidayMode(ctx context.Context, p HolidayParams) error
	TurnOffHolidayMode(ctx context.Context) error
	ConfigureSchedule(ctx context.Context, p ScheduleParams) error
	ClearSchedules(ctx context.Context) error
	ScheduledTemperature(ctx context.Context, at string) (int, error)
	ConfigureWelcomeMessage(ctx context.Context, msg string) error
	InjectFault(ctx context.Context, f Fault) error
}

// Monitoring exposes read-only state.
type Monitoring interface {
	GetState(ctx context.Context) (models.HeatingState, error)
	History(ctx context.Context, limit int) ([]models.HeatingState, error)
}

// EventLog exposes the operation journal.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.HeatingEvent, error)
}

// Scheduler applies configured schedules in the background until ctx is
// canceled.
type Scheduler interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Controller
	Monitoring
	EventLog
	Scheduler
	Authorization
}

// Options carries the settings services read from configuration.
type Options struct {
	SigningKey string
	TokenTTL   time.Duration
}

// NewService wires one heating.System into the controller, and the
// repositories into the remaining services.
func NewService(repos *repository.Repository, sys *heating.System, opts Options, log *logger.Logger) *Service {
	ctrl := NewControllerService(sys, repos.EventRepo, repos.SnapshotRepo, log)
	return &Service{
		Controller:    ctrl,
		Monitoring:    NewMonitoringService(ctrl, repos.SnapshotRepo),
		EventLog:      NewEventLogService(repos.EventRepo),
		Scheduler:     NewSchedulerService(ctrl, log),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
	}
}
