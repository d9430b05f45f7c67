package report

import (
	"context"

	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
)

// Repository - aggregate count queries over the schedule table
type Repository interface {
	// DayCounts returns how many entries of the week are scheduled
	// (cell != OFF) and on leave (cell holds a leave code) for one day.
	DayCounts(ctx context.Context, week int, day calendar.Day) (scheduled, leaves int, err error)
	// WeekCounts sums the same ratio across all seven day columns.
	WeekCounts(ctx context.Context, week int) (scheduled, leaves int, err error)
}
