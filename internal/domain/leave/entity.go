package leave

import (
	"time"

	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
)

// Record is one coded absence event, tied to a single (login, week, day)
// schedule cell. Records are append-only: they are created when a leave
// is coded and deleted when the leave is removed or the cell is reset,
// never mutated.
type Record struct {
	ID         int64
	Login      string
	Week       int
	Day        calendar.Day
	LeaveType  string
	Annotation string

	CreatedAt time.Time
}
