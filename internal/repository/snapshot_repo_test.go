package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"heating_controller/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

type argFunc func(v driver.Value) bool

func (f argFunc) Match(v driver.Value) bool { return f(v) }

func TestSnapshotSave_StoresJSONAndUTCTime(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewSnapshotSQLite(db)

	takenAt := time.Date(2024, 8, 1, 12, 0, 0, 0, time.FixedZone("EST", -5*3600))
	state := models.HeatingState{
		ID:          99, // ignored, the table assigns ids
		PowerOn:     true,
		Temperature: 22,
		Mode:        "Normal",
		UpdatedAt:   takenAt,
	}

	isStateJSON := argFunc(func(v driver.Value) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		var got models.HeatingState
		if err := json.Unmarshal([]byte(s), &got); err != nil {
			return false
		}
		return got.ID == 0 && got.PowerOn && got.Temperature == 22 && got.UpdatedAt.Equal(takenAt)
	})

	mock.ExpectExec(regexp.QuoteMeta(insertSnapshotSQL)).
		WithArgs(isStateJSON, "2024-08-01 17:00:00.000000").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(ctx(t), state); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSnapshotSave_ZeroTimeUsesNow(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewSnapshotSQLite(db)

	before := time.Now().UTC().Add(-time.Second)
	isRecent := argFunc(func(v driver.Value) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		ts, err := time.Parse(sqliteTimeLayout, s)
		return err == nil && !ts.Before(before) && ts.Before(time.Now().UTC().Add(time.Second))
	})

	mock.ExpectExec("INSERT INTO heating_snapshots").
		WithArgs(sqlmock.AnyArg(), isRecent).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(ctx(t), models.HeatingState{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSnapshotSave_ExecErrorIsPropagated(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewSnapshotSQLite(db)

	mock.ExpectExec("INSERT INTO heating_snapshots").WillReturnError(errors.New("db down"))

	if err := repo.Save(ctx(t), models.HeatingState{}); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestSnapshotLatest_DecodesRowsNewestFirst(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewSnapshotSQLite(db)

	t1 := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "state", "taken_at"}).
		AddRow(int64(2), `{"temperature":25,"mode":"Holiday Mode","holiday_mode":true}`, t1.Add(time.Minute)).
		AddRow(int64(1), `{"temperature":20,"mode":"Normal"}`, t1)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, state, taken_at")).
		WithArgs(2).
		WillReturnRows(rows)

	got, err := repo.Latest(ctx(t), 2)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 snapshots, got %d", len(got))
	}
	if got[0].ID != 2 || got[0].Temperature != 25 || !got[0].HolidayMode || !got[0].UpdatedAt.Equal(t1.Add(time.Minute)) {
		t.Fatalf("unexpected first snapshot: %+v", got[0])
	}
	if got[1].ID != 1 || got[1].Mode != "Normal" {
		t.Fatalf("unexpected second snapshot: %+v", got[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSnapshotLatest_LimitHandling(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewSnapshotSQLite(db)

	if _, err := repo.Latest(ctx(t), 0); !errors.Is(err, errInvalidLimit) {
		t.Fatalf("expected errInvalidLimit, got %v", err)
	}

	mock.ExpectQuery("SELECT id, state, taken_at").
		WithArgs(maxSnapshotLimit).
		WillReturnRows(sqlmock.NewRows([]string{"id", "state", "taken_at"}))

	got, err := repo.Latest(ctx(t), 10_000)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %d", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSnapshotLatest_CorruptRow(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	repo := NewSnapshotSQLite(db)

	mock.ExpectQuery("SELECT id, state, taken_at").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "state", "taken_at"}).AddRow(int64(5), "not json", time.Now()))

	if _, err := repo.Latest(ctx(t), 1); err == nil {
		t.Fatalf("expected decode error, got nil")
	}
}
