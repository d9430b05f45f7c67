package postgresql

import (
	"context"
	"fmt"

	"github.com/csaops/shrinkage-backend-go/internal/domain/leave"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepositoryImpl{db: db}
}

// Create implements leave.Repository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, record leave.Record) (leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (login, week, day, leave_type, annotation, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.Login, record.Week, record.Day.String(), record.LeaveType, record.Annotation,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return leave.Record{}, fmt.Errorf("failed to insert leave record: %w", err)
	}
	return record, nil
}

// DeleteByCell implements leave.Repository.
func (r *leaveRepositoryImpl) DeleteByCell(ctx context.Context, login string, week int, day calendar.Day) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		"DELETE FROM leaves WHERE login = $1 AND week = $2 AND day = $3",
		login, week, day.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete leave records: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByLoginWeek implements leave.Repository.
func (r *leaveRepositoryImpl) DeleteByLoginWeek(ctx context.Context, login string, week int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM leaves WHERE login = $1 AND week = $2", login, week)
	if err != nil {
		return 0, fmt.Errorf("failed to delete leave records: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByWeek implements leave.Repository.
func (r *leaveRepositoryImpl) DeleteByWeek(ctx context.Context, week int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM leaves WHERE week = $1", week)
	if err != nil {
		return 0, fmt.Errorf("failed to delete leave records: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *leaveRepositoryImpl) listRecords(ctx context.Context, query string, args ...interface{}) ([]leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave records: %w", err)
	}
	defer rows.Close()

	var records []leave.Record
	for rows.Next() {
		record, err := scanLeaveRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave rows: %w", err)
	}
	return records, nil
}

func scanLeaveRecord(rows pgx.Rows) (leave.Record, error) {
	var record leave.Record
	var dayToken string
	err := rows.Scan(&record.ID, &record.Login, &record.Week, &dayToken,
		&record.LeaveType, &record.Annotation, &record.CreatedAt)
	if err != nil {
		return leave.Record{}, fmt.Errorf("failed to scan leave record: %w", err)
	}
	day, err := calendar.ParseDay(dayToken)
	if err != nil {
		return leave.Record{}, fmt.Errorf("corrupt day token in leaves table: %w", err)
	}
	record.Day = day
	return record, nil
}

// ListByWeekDay implements leave.Repository.
func (r *leaveRepositoryImpl) ListByWeekDay(ctx context.Context, week int, day calendar.Day) ([]leave.Record, error) {
	return r.listRecords(ctx,
		"SELECT id, login, week, day, leave_type, annotation, created_at FROM leaves WHERE week = $1 AND day = $2 ORDER BY id",
		week, day.String(),
	)
}

// ListByLogin implements leave.Repository.
func (r *leaveRepositoryImpl) ListByLogin(ctx context.Context, login string) ([]leave.Record, error) {
	return r.listRecords(ctx,
		"SELECT id, login, week, day, leave_type, annotation, created_at FROM leaves WHERE login = $1 ORDER BY week, id",
		login,
	)
}
