package leave

import (
	"context"

	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
)

// Repository - interface for the leaves table
type Repository interface {
	Create(ctx context.Context, record Record) (Record, error)

	// DeleteByCell removes every record for one (login, week, day) cell
	// and returns how many were removed.
	DeleteByCell(ctx context.Context, login string, week int, day calendar.Day) (int64, error)
	// DeleteByLoginWeek removes every record owned by one schedule entry,
	// used when the entry itself is deleted.
	DeleteByLoginWeek(ctx context.Context, login string, week int) (int64, error)
	DeleteByWeek(ctx context.Context, week int) (int64, error)

	ListByWeekDay(ctx context.Context, week int, day calendar.Day) ([]Record, error)
	ListByLogin(ctx context.Context, login string) ([]Record, error)
}
