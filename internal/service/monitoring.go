package service

import (
	"context"

	"heating_controller/internal/models"
	"heating_controller/internal/repository"
)

const defaultHistoryLimit = 50

// StateSource yields the live controller state.
type StateSource interface {
	Snapshot() models.HeatingState
}

type MonitoringService struct {
	source       StateSource
	snapshotRepo repository.SnapshotRepo
}

func NewMonitoringService(source StateSource, snapshotRepo repository.SnapshotRepo) *MonitoringService {
	return &MonitoringService{source: source, snapshotRepo: snapshotRepo}
}

// GetState returns the live controller state, never a stored one.
func (s *MonitoringService) GetState(_ context.Context) (models.HeatingState, error) {
	st := s.source.Snapshot()
	st.UpdatedAt = toUTC(st.UpdatedAt)
	return st, nil
}

// History returns recorded snapshots, newest first. A non-positive limit
// falls back to 50.
func (s *MonitoringService) History(ctx context.Context, limit int) ([]models.HeatingState, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.snapshotRepo.Latest(ctx, limit)
}
