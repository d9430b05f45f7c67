package schedule

import (
	"context"
	"io"
)

// Service manages the schedule table: batch creation, workbook import,
// week views and the bulk deletes that keep the leave ledger in step.
type Service interface {
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (CreateScheduleResponse, error)
	ImportSchedule(ctx context.Context, r io.Reader) (ImportScheduleResponse, error)

	GetWeekSchedule(ctx context.Context, week, year int) (WeekScheduleResponse, error)
	ListWeeks(ctx context.Context) ([]int, error)
	ListLogins(ctx context.Context) ([]string, error)

	DeleteEntries(ctx context.Context, req DeleteEntriesRequest) (BulkDeleteResponse, error)
	DeleteWeeks(ctx context.Context, req DeleteWeeksRequest) (BulkDeleteResponse, error)
	DeleteByIDs(ctx context.Context, req DeleteByIDsRequest) (BulkDeleteResponse, error)
}
