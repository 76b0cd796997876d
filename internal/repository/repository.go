package repository

import (
	"context"
	"database/sql"
	"time"

	"heating_controller/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// SnapshotRepo keeps a history of controller snapshots. It is never used to
// restore the controller.
type SnapshotRepo interface {
	Save(ctx context.Context, s models.HeatingState) error
	Latest(ctx context.Context, limit int) ([]models.HeatingState, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.HeatingEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.HeatingEvent, error)
}

type Repository struct {
	SnapshotRepo SnapshotRepo
	EventRepo    EventRepo
	Auth         Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		SnapshotRepo: NewSnapshotSQLite(db),
		EventRepo:    NewEventSQLite(db),
		Auth:         NewUserRepository(db),
	}
}
