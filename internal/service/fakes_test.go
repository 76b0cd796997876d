package service

import (
	"context"
	"time"

	"heating_controller/internal/models"
)

// memEventRepo records appended events and filters them like the SQL repo.
type memEventRepo struct {
	events    []models.HeatingEvent
	appendErr error
	listErr   error

	gotFrom time.Time
	gotTo   time.Time
	gotType string
}

func (f *memEventRepo) Append(_ context.Context, e models.HeatingEvent) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events = append(f.events, e)
	return nil
}

func (f *memEventRepo) List(_ context.Context, from, to time.Time, typ string) ([]models.HeatingEvent, error) {
	f.gotFrom, f.gotTo, f.gotType = from, to, typ
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.HeatingEvent
	for _, e := range f.events {
		if !from.IsZero() && e.OccurredAt.Before(from) {
			continue
		}
		if !to.IsZero() && e.OccurredAt.After(to) {
			continue
		}
		if typ != "" && e.Type != typ {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *memEventRepo) types() []string {
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.Type
	}
	return out
}

// memSnapshotRepo keeps saved snapshots in order.
type memSnapshotRepo struct {
	saved     []models.HeatingState
	saveErr   error
	latestErr error
	gotLimit  int
}

func (f *memSnapshotRepo) Save(_ context.Context, s models.HeatingState) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, s)
	return nil
}

func (f *memSnapshotRepo) Latest(_ context.Context, limit int) ([]models.HeatingState, error) {
	f.gotLimit = limit
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	out := make([]models.HeatingState, 0, limit)
	for i := len(f.saved) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.saved[i])
	}
	return out, nil
}
