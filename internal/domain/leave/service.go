package leave

import "context"

// Service drives the leave-coding state machine and the bulk status
// overrides built on the same transition rules.
type Service interface {
	CodeLeave(ctx context.Context, req CodeLeaveRequest) (CodeLeaveResponse, error)
	DeleteLeave(ctx context.Context, req DeleteLeaveRequest) error
	UpdateEntryDay(ctx context.Context, req UpdateEntryDayRequest) error
	BulkSetStatus(ctx context.Context, req BulkSetStatusRequest) (BulkSetStatusResponse, error)
	Summary(ctx context.Context, login string, year int) (SummaryResponse, error)
}
