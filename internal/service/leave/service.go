package leave

import (
	"context"
	"time"

	"github.com/csaops/shrinkage-backend-go/internal/domain/leave"
	"github.com/csaops/shrinkage-backend-go/internal/domain/schedule"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/database"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/validator"
	"github.com/csaops/shrinkage-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	db           *database.DB
	scheduleRepo schedule.Repository
	leaveRepo    leave.Repository
}

func NewLeaveService(db *database.DB, scheduleRepo schedule.Repository, leaveRepo leave.Repository) leave.Service {
	return &LeaveServiceImpl{
		db:           db,
		scheduleRepo: scheduleRepo,
		leaveRepo:    leaveRepo,
	}
}

// codeLeaveCell runs the guarded W -> CODED transition for one cell and
// its ledger insert as one atomic unit. The entry row is locked first so
// two concurrent coders cannot both observe W.
func (s *LeaveServiceImpl) codeLeaveCell(ctx context.Context, login string, week int, day calendar.Day, code schedule.CellStatus, annotation string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		entry, err := s.scheduleRepo.GetByLoginWeekForUpdate(txCtx, login, week)
		if err != nil {
			return err
		}

		next, err := schedule.CodeLeave(entry.Cell(day), code)
		if err != nil {
			return err
		}

		if err := s.scheduleRepo.UpdateCell(txCtx, login, week, day, next); err != nil {
			return err
		}

		_, err = s.leaveRepo.Create(txCtx, leave.Record{
			Login:      login,
			Week:       week,
			Day:        day,
			LeaveType:  string(code),
			Annotation: annotation,
		})
		return err
	})
}

// deleteLeaveCell reverts a coded cell to W and clears its ledger rows.
func (s *LeaveServiceImpl) deleteLeaveCell(ctx context.Context, login string, week int, day calendar.Day) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		entry, err := s.scheduleRepo.GetByLoginWeekForUpdate(txCtx, login, week)
		if err != nil {
			return err
		}

		next, err := schedule.DeleteLeave(entry.Cell(day))
		if err != nil {
			return err
		}

		if err := s.scheduleRepo.UpdateCell(txCtx, login, week, day, next); err != nil {
			return err
		}

		_, err = s.leaveRepo.DeleteByCell(txCtx, login, week, day)
		return err
	})
}

// setStatusCell applies the administrative override for one cell.
// Setting W is unconditional and clears the ledger; setting a leave code
// shares the coding guard and writes a ledger row, keeping cells and
// records consistent either way.
func (s *LeaveServiceImpl) setStatusCell(ctx context.Context, login string, week int, day calendar.Day, value schedule.CellStatus) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		entry, err := s.scheduleRepo.GetByLoginWeekForUpdate(txCtx, login, week)
		if err != nil {
			return err
		}

		next, err := schedule.ApplyStatus(entry.Cell(day), value)
		if err != nil {
			return err
		}

		if err := s.scheduleRepo.UpdateCell(txCtx, login, week, day, next); err != nil {
			return err
		}

		if next == schedule.StatusWork {
			_, err = s.leaveRepo.DeleteByCell(txCtx, login, week, day)
			return err
		}

		_, err = s.leaveRepo.Create(txCtx, leave.Record{
			Login:     login,
			Week:      week,
			Day:       day,
			LeaveType: string(next),
		})
		return err
	})
}

// CodeLeave implements leave.Service. Each selected day is its own
// transition: one failing day does not roll back the others, and its
// outcome is reported per day.
func (s *LeaveServiceImpl) CodeLeave(ctx context.Context, req leave.CodeLeaveRequest) (leave.CodeLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.CodeLeaveResponse{}, err
	}

	code, _ := schedule.ParseLeaveCode(req.LeaveType)
	year := req.Year
	if year == 0 {
		year = time.Now().Year()
	}
	dates := calendar.WeekDates(req.Week, year)

	resp := leave.CodeLeaveResponse{Login: req.Login, Week: req.Week}
	for _, token := range req.Days {
		day, _ := calendar.ParseDay(token)
		result := leave.DayResult{
			Day:  day.String(),
			Date: dates[day].Format("2006-01-02"),
		}
		if err := s.codeLeaveCell(ctx, req.Login, req.Week, day, code, req.Annotation); err != nil {
			result.Status = "failed"
			result.Error = err.Error()
		} else {
			result.Status = "coded"
		}
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}

// DeleteLeave implements leave.Service.
func (s *LeaveServiceImpl) DeleteLeave(ctx context.Context, req leave.DeleteLeaveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	day, _ := calendar.ParseDay(req.Day)
	return s.deleteLeaveCell(ctx, req.Login, req.Week, day)
}

// UpdateEntryDay implements leave.Service.
func (s *LeaveServiceImpl) UpdateEntryDay(ctx context.Context, req leave.UpdateEntryDayRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entry, err := s.scheduleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	day, _ := calendar.ParseDay(req.Day)
	return s.setStatusCell(ctx, entry.Login, entry.Week, day, schedule.CellStatus(req.Value))
}

// BulkSetStatus implements leave.Service. Full cartesian product over
// (logins x weeks x days); triples without a matching entry or failing
// the guard are skipped, never aborting the rest.
func (s *LeaveServiceImpl) BulkSetStatus(ctx context.Context, req leave.BulkSetStatusRequest) (leave.BulkSetStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.BulkSetStatusResponse{}, err
	}

	value := schedule.CellStatus(req.Value)
	var resp leave.BulkSetStatusResponse
	for _, login := range req.Logins {
		for _, week := range req.Weeks {
			for _, token := range req.Days {
				day, _ := calendar.ParseDay(token)
				if err := s.setStatusCell(ctx, login, week, day, value); err != nil {
					resp.Skipped++
					continue
				}
				resp.Applied++
			}
		}
	}
	return resp, nil
}

// Summary implements leave.Service.
func (s *LeaveServiceImpl) Summary(ctx context.Context, login string, year int) (leave.SummaryResponse, error) {
	if validator.IsEmpty(login) {
		return leave.SummaryResponse{}, validator.ValidationErrors{{
			Field:   "login",
			Message: "login is required",
		}}
	}
	if year == 0 {
		year = time.Now().Year()
	}

	records, err := s.leaveRepo.ListByLogin(ctx, login)
	if err != nil {
		return leave.SummaryResponse{}, err
	}

	resp := leave.SummaryResponse{Login: login, TotalLeaves: len(records)}
	for _, record := range records {
		dates := calendar.WeekDates(record.Week, year)
		resp.Records = append(resp.Records, leave.RecordResponse{
			ID:         record.ID,
			Login:      record.Login,
			Week:       record.Week,
			Day:        record.Day.String(),
			Date:       dates[record.Day].Format("2006-01-02"),
			LeaveType:  record.LeaveType,
			Annotation: record.Annotation,
		})
	}
	return resp, nil
}
