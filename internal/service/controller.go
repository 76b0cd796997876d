package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"heating_controller/internal/heating"
	"heating_controller/internal/logger"
	"heating_controller/internal/models"
	"heating_controller/internal/repository"

	"github.com/google/uuid"
)

var ErrUnknownFault = errors.New("unknown fault: must be rt-disconnect, sensor-failure or lan-disconnect")

// ControllerService owns the live heating.System. Every call is serialized,
// and every mutation is journaled and snapshotted. Journal failures are
// logged and never fail the call.
type ControllerService struct {
	mu        sync.Mutex
	sys       *heating.System
	updatedAt time.Time

	eventRepo    repository.EventRepo
	snapshotRepo repository.SnapshotRepo
	log          *logger.Logger
	now          func() time.Time
}

func NewControllerService(sys *heating.System, eventRepo repository.EventRepo, snapshotRepo repository.SnapshotRepo, log *logger.Logger) *ControllerService {
	return &ControllerService{
		sys:          sys,
		updatedAt:    time.Now().UTC(),
		eventRepo:    eventRepo,
		snapshotRepo: snapshotRepo,
		log:          log,
		now:          time.Now,
	}
}

// Connect logs and journals a connection. State is unchanged.
func (s *ControllerService) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sys.Connect()
	s.appendEvent(ctx, s.now().UTC(), models.EventConnect, "System connected", nil)
	return nil
}

// Disconnect logs and journals a disconnection. State is unchanged.
func (s *ControllerService) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sys.Disconnect()
	s.appendEvent(ctx, s.now().UTC(), models.EventDisconnect, "System disconnected", nil)
	return nil
}

func (s *ControllerService) TurnOn(ctx context.Context) error {
	return s.mutate(ctx, func(sys *heating.System) (models.HeatingEvent, error) {
		sys.TurnOn()
		return models.HeatingEvent{Type: models.EventPowerOn, Description: "System turned on"}, nil
	})
}

func (s *ControllerService) TurnOff(ctx context.Context) error {
	return s.mutate(ctx, func(sys *heating.System) (models.HeatingEvent, error) {
		sys.TurnOff()
		return models.HeatingEvent{Type: models.EventPowerOff, Description: "System turned off"}, nil
	})
}

func (s *ControllerService) TurnOnBoostMode(ctx context.Context) error {
	return s.mutate(ctx, func(sys *heating.System) (models.HeatingEvent, error) {
		sys.TurnOnBoostMode()
		w, _ := sys.PowerConsumptionWarning()
		return models.HeatingEvent{
			Type:        models.EventBoostOn,
			Description: "Boost mode turned on",
			Metadata:    map[string]any{"warning": w},
		}, nil
	})
}

func (s *ControllerService) TurnOffBoostMode(ctx context.Context) error {
	return s.mutate(ctx, func(sys *heating.System) (models.HeatingEvent, error) {
		sys.TurnOffBoostMode()
		return models.HeatingEvent{Type: models.EventBoostOff, Description: "Boost mode turned off"}, nil
	})
}

// SetTemperature returns an error matching heating.ErrTemperatureOutOfRange
// for values outside [14, 30]; nothing is journaled in that case.
func (s *ControllerService) SetTemperature(ctx context.Context, t int) error {
	return s.mutate(ctx, func(sys *heating.System) (models.HeatingEvent, error) {
		prev := sys.Temperature()
		if err := sys.SetTemperature(t); err != nil {
			return models.HeatingEvent{}, err
		}
		return models.HeatingEvent{
			Type:        models.EventTemperatureSet,
			Description: fmt.Sprintf("Temperature set to %d", t),
			Metadata:    map[string]any{"from": prev, "to": t},
		}, nil
	})
}

func (s *ControllerService) SetHolidayMode(ctx context.Context, p HolidayParams) error {
	return s.mutate(ctx, func(sys *heating.System) (models.HeatingEvent, error) {
		if err := sys.SetHolidayMode(p.Temperature, p.Start, p.End); err != nil {
			return models.HeatingEvent{}, err
		}
		return models.HeatingEvent{
			Type:        models.EventHolidayOn,
			Description: fmt.Sprintf("Holiday mode set with temperature %d from %s to %s", p.Temperature, p.Start, p.End),
			Metadata:    map[string]any{"temperature": p.Temperature, "start": p.Start, "end": p.End},
		}, nil
	})
}

func (s *ControllerService) TurnOffHolidayMode(ctx context.Context) error {
	return s.mutate(ctx, func(sys *heating.System) (models.HeatingEvent, error) {
		sys.TurnOffHolidayMode()
		return models.HeatingEvent{
			Type:        models.EventHolidayOff,
			Description: "Holiday mode turned off",
			Metadata:    map[string]any{"temperature": sys.Temperature()},
		}, nil
	})
}

// ConfigureSchedule stores p as given; temperatures are not range-checked.
func (s *ControllerService) ConfigureSchedule(ctx context.Context, p ScheduleParams) error {
	return s.mutate(ctx, func(sys *heating.System) (models.HeatingEvent, error) {
		sys.ConfigureScheduleUsage(p.Start, p.End, p.Temperature)
		return models.HeatingEvent{
			Type:        models.EventScheduleSet,
			Description: fmt.Sprintf("Scheduled temperature from %s to %s: %d", p.Start, p.End, p.Temperature),
			Metadata:    map[string]any{"start": p.Start, "end": p.End, "temperature": p.Temperature},
		}, nil
	})
}

func (s *ControllerService) ClearSchedules(ctx context.Context) error {
	return s.mutate(ctx, func(sys *heating.System) (models.HeatingEvent, error) {
		sys.TurnOffScheduleUsage()
		return models.HeatingEvent{Type: models.EventScheduleCleared, Description: "Schedule usage turned off"}, nil
	})
}

// ScheduledTemperature is a pure lookup.
func (s *ControllerService) ScheduledTemperature(_ context.Context, at string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sys.ScheduledTemperature(at), nil
}

func (s *ControllerService) ConfigureWelcomeMessage(ctx context.Context, msg string) error {
	return s.mutate(ctx, func(sys *heating.System) (models.HeatingEvent, error) {
		sys.ConfigureWelcomeMessage(msg)
		return models.HeatingEvent{Type: models.EventWelcomeSet, Description: "Welcome message set to: " + msg}, nil
	})
}

// InjectFault records one of the known faults as the current error message.
func (s *ControllerService) InjectFault(ctx context.Context, f Fault) error {
	var inject func(*heating.System)
	switch f {
	case FaultRTDisconnect:
		inject = (*heating.System).DisconnectRT
	case FaultSensorFailure:
		inject = (*heating.System).SimulateSensorFailure
	case FaultLANDisconnect:
		inject = (*heating.System).DisconnectLAN
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFault, f)
	}
	return s.mutate(ctx, func(sys *heating.System) (models.HeatingEvent, error) {
		inject(sys)
		msg, _ := sys.ErrorMessage()
		return models.HeatingEvent{
			Type:        models.EventFault,
			Description: msg,
			Metadata:    map[string]any{"fault": string(f)},
		}, nil
	})
}

// ApplySchedule sets the temperature of the schedule entry matching at, when
// the unit is on, holiday mode is off and the entry differs from the current
// setpoint. It reports whether the setpoint changed. An out-of-range entry is
// journaled as rejected and leaves the setpoint alone.
func (s *ControllerService) ApplySchedule(ctx context.Context, at string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sys.IsOn() || s.sys.IsHolidayModeOn() {
		return false, nil
	}
	entry, ok := s.sys.MatchSchedule(at)
	if !ok || entry.Temperature == s.sys.Temperature() {
		return false, nil
	}

	now := s.now().UTC()
	meta := map[string]any{"at": at, "start": entry.Start, "end": entry.End, "temperature": entry.Temperature}
	if err := s.sys.SetTemperature(entry.Temperature); err != nil {
		s.appendEvent(ctx, now, models.EventScheduleRejected,
			fmt.Sprintf("Scheduled temperature %d rejected", entry.Temperature), meta)
		return false, err
	}
	s.updatedAt = now
	s.appendEvent(ctx, now, models.EventScheduleApplied,
		fmt.Sprintf("Scheduled temperature %d applied", entry.Temperature), meta)
	s.saveSnapshot(ctx, now)
	return true, nil
}

// Snapshot returns the live state.
func (s *ControllerService) Snapshot() models.HeatingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.sys.Snapshot()
	st.UpdatedAt = s.updatedAt
	return st
}

// mutate runs fn under the lock. When fn succeeds, the returned event is
// journaled and a snapshot is saved.
func (s *ControllerService) mutate(ctx context.Context, fn func(*heating.System) (models.HeatingEvent, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, err := fn(s.sys)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	s.updatedAt = now
	s.appendEvent(ctx, now, ev.Type, ev.Description, ev.Metadata)
	s.saveSnapshot(ctx, now)
	return nil
}

func (s *ControllerService) appendEvent(ctx context.Context, at time.Time, typ, desc string, meta any) {
	err := s.eventRepo.Append(ctx, models.HeatingEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  at,
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	})
	if err != nil && s.log != nil {
		s.log.Errorw("heating_event_append_failed", "err", err, "type", typ)
	}
}

func (s *ControllerService) saveSnapshot(ctx context.Context, at time.Time) {
	st := s.sys.Snapshot()
	st.UpdatedAt = at
	if err := s.snapshotRepo.Save(ctx, st); err != nil && s.log != nil {
		s.log.Errorw("heating_snapshot_save_failed", "err", err)
	}
}
