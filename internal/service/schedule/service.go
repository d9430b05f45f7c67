package schedule

import (
	"context"
	"io"
	"time"

	"github.com/csaops/shrinkage-backend-go/internal/domain/leave"
	"github.com/csaops/shrinkage-backend-go/internal/domain/schedule"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/database"
	"github.com/csaops/shrinkage-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ScheduleServiceImpl struct {
	db           *database.DB
	scheduleRepo schedule.Repository
	leaveRepo    leave.Repository
}

func NewScheduleService(db *database.DB, scheduleRepo schedule.Repository, leaveRepo leave.Repository) schedule.Service {
	return &ScheduleServiceImpl{
		db:           db,
		scheduleRepo: scheduleRepo,
		leaveRepo:    leaveRepo,
	}
}

// CreateSchedule implements schedule.Service. The full cartesian product
// of logins and weeks is attempted; pairs that already have a row are
// skipped rather than failing the batch, so replays are safe.
func (s *ScheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.CreateScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.CreateScheduleResponse{}, err
	}

	weekoffs := req.WeekoffDays()

	entries := make([]schedule.Entry, 0, len(req.Logins)*len(req.Weeks))
	for _, login := range req.Logins {
		for _, week := range req.Weeks {
			entries = append(entries, schedule.NewEntry(login, week, req.Shift, weekoffs))
		}
	}

	created, err := s.scheduleRepo.CreateBatch(ctx, entries)
	if err != nil {
		return schedule.CreateScheduleResponse{}, err
	}

	resp := schedule.CreateScheduleResponse{
		Created:   created,
		Skipped:   len(entries) - created,
		WeekDates: make(map[int]schedule.WeekDatesDTO, len(req.Weeks)),
	}
	for _, week := range req.Weeks {
		resp.WeekDates[week] = schedule.NewWeekDatesDTO(week, req.Year)
	}
	return resp, nil
}

// ImportSchedule implements schedule.Service.
func (s *ScheduleServiceImpl) ImportSchedule(ctx context.Context, r io.Reader) (schedule.ImportScheduleResponse, error) {
	req, batchID, err := parseScheduleWorkbook(r)
	if err != nil {
		return schedule.ImportScheduleResponse{}, err
	}

	var created, skipped int
	for _, row := range req {
		resp, err := s.CreateSchedule(ctx, row)
		if err != nil {
			return schedule.ImportScheduleResponse{}, err
		}
		created += resp.Created
		skipped += resp.Skipped
	}

	return schedule.ImportScheduleResponse{
		BatchID: batchID,
		Created: created,
		Skipped: skipped,
	}, nil
}

// GetWeekSchedule implements schedule.Service.
func (s *ScheduleServiceImpl) GetWeekSchedule(ctx context.Context, week, year int) (schedule.WeekScheduleResponse, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	entries, err := s.scheduleRepo.ListByWeek(ctx, week)
	if err != nil {
		return schedule.WeekScheduleResponse{}, err
	}

	resp := schedule.WeekScheduleResponse{
		Week:  week,
		Dates: schedule.NewWeekDatesDTO(week, year),
	}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, schedule.NewEntryResponse(entry))
	}
	return resp, nil
}

// ListWeeks implements schedule.Service.
func (s *ScheduleServiceImpl) ListWeeks(ctx context.Context) ([]int, error) {
	return s.scheduleRepo.ListWeeks(ctx)
}

// ListLogins implements schedule.Service.
func (s *ScheduleServiceImpl) ListLogins(ctx context.Context) ([]string, error) {
	return s.scheduleRepo.ListLogins(ctx)
}

// DeleteEntries implements schedule.Service. Entries and their leave
// records go together in one transaction so the ledger never outlives
// the schedule rows it annotates.
func (s *ScheduleServiceImpl) DeleteEntries(ctx context.Context, req schedule.DeleteEntriesRequest) (schedule.BulkDeleteResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.BulkDeleteResponse{}, err
	}

	var resp schedule.BulkDeleteResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, login := range req.Logins {
			for _, week := range req.Weeks {
				entries, err := s.scheduleRepo.DeleteByLoginWeek(txCtx, login, week)
				if err != nil {
					return err
				}
				leaves, err := s.leaveRepo.DeleteByLoginWeek(txCtx, login, week)
				if err != nil {
					return err
				}
				resp.EntriesDeleted += entries
				resp.LeavesDeleted += leaves
			}
		}
		return nil
	})
	if err != nil {
		return schedule.BulkDeleteResponse{}, err
	}
	return resp, nil
}

// DeleteWeeks implements schedule.Service.
func (s *ScheduleServiceImpl) DeleteWeeks(ctx context.Context, req schedule.DeleteWeeksRequest) (schedule.BulkDeleteResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.BulkDeleteResponse{}, err
	}

	var resp schedule.BulkDeleteResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, week := range req.Weeks {
			entries, err := s.scheduleRepo.DeleteByWeek(txCtx, week)
			if err != nil {
				return err
			}
			leaves, err := s.leaveRepo.DeleteByWeek(txCtx, week)
			if err != nil {
				return err
			}
			resp.EntriesDeleted += entries
			resp.LeavesDeleted += leaves
		}
		return nil
	})
	if err != nil {
		return schedule.BulkDeleteResponse{}, err
	}
	return resp, nil
}

// DeleteByIDs implements schedule.Service. Each id is resolved to its
// (login, week) pair first so the matching leave records can be cleared
// in the same transaction.
func (s *ScheduleServiceImpl) DeleteByIDs(ctx context.Context, req schedule.DeleteByIDsRequest) (schedule.BulkDeleteResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.BulkDeleteResponse{}, err
	}

	var resp schedule.BulkDeleteResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, id := range req.IDs {
			entry, err := s.scheduleRepo.GetByID(txCtx, id)
			if err != nil {
				return err
			}
			if err := s.scheduleRepo.DeleteByID(txCtx, id); err != nil {
				return err
			}
			leaves, err := s.leaveRepo.DeleteByLoginWeek(txCtx, entry.Login, entry.Week)
			if err != nil {
				return err
			}
			resp.EntriesDeleted++
			resp.LeavesDeleted += leaves
		}
		return nil
	})
	if err != nil {
		return schedule.BulkDeleteResponse{}, err
	}
	return resp, nil
}
