package schedule

import (
	"context"

	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
)

// Repository - interface for the schedule table
type Repository interface {
	// CreateBatch inserts entries, skipping (login, week) pairs that
	// already exist. Returns how many rows were actually created.
	CreateBatch(ctx context.Context, entries []Entry) (int, error)

	GetByID(ctx context.Context, id int64) (Entry, error)
	GetByLoginWeek(ctx context.Context, login string, week int) (Entry, error)
	// GetByLoginWeekForUpdate locks the row for the duration of the
	// surrounding transaction so a cell guard cannot race a writer.
	GetByLoginWeekForUpdate(ctx context.Context, login string, week int) (Entry, error)

	ListByWeek(ctx context.Context, week int) ([]Entry, error)
	ListAll(ctx context.Context) ([]Entry, error)
	ListWeeks(ctx context.Context) ([]int, error)
	ListLogins(ctx context.Context) ([]string, error)

	UpdateCell(ctx context.Context, login string, week int, day calendar.Day, value CellStatus) error

	DeleteByLoginWeek(ctx context.Context, login string, week int) (int64, error)
	DeleteByWeek(ctx context.Context, week int) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
}
