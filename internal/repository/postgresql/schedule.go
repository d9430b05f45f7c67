package postgresql

import (
	"context"
	"fmt"

	"github.com/csaops/shrinkage-backend-go/internal/domain/schedule"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepositoryImpl{db: db}
}

const scheduleColumns = "id, login, week, shift, sun, mon, tue, wed, thu, fri, sat, created_at, updated_at"

func scanEntry(row pgx.Row) (schedule.Entry, error) {
	var e schedule.Entry
	err := row.Scan(
		&e.ID, &e.Login, &e.Week, &e.Shift,
		&e.Cells[calendar.Sun], &e.Cells[calendar.Mon], &e.Cells[calendar.Tue],
		&e.Cells[calendar.Wed], &e.Cells[calendar.Thu], &e.Cells[calendar.Fri],
		&e.Cells[calendar.Sat],
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// CreateBatch implements schedule.Repository. Existing (login, week)
// pairs are left untouched so repeated setup calls cannot duplicate rows.
func (r *scheduleRepositoryImpl) CreateBatch(ctx context.Context, entries []schedule.Entry) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule (login, week, shift, sun, mon, tue, wed, thu, fri, sat, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (login, week) DO NOTHING
	`

	created := 0
	for _, e := range entries {
		tag, err := q.Exec(ctx, query,
			e.Login, e.Week, e.Shift,
			e.Cells[calendar.Sun], e.Cells[calendar.Mon], e.Cells[calendar.Tue],
			e.Cells[calendar.Wed], e.Cells[calendar.Thu], e.Cells[calendar.Fri],
			e.Cells[calendar.Sat],
		)
		if err != nil {
			return created, fmt.Errorf("failed to insert schedule entry: %w", err)
		}
		created += int(tag.RowsAffected())
	}
	return created, nil
}

// GetByID implements schedule.Repository.
func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id int64) (schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + scheduleColumns + " FROM schedule WHERE id = $1"
	e, err := scanEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Entry{}, schedule.ErrScheduleNotFound
		}
		return schedule.Entry{}, fmt.Errorf("failed to get schedule entry: %w", err)
	}
	return e, nil
}

// GetByLoginWeek implements schedule.Repository.
func (r *scheduleRepositoryImpl) GetByLoginWeek(ctx context.Context, login string, week int) (schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + scheduleColumns + " FROM schedule WHERE login = $1 AND week = $2"
	e, err := scanEntry(q.QueryRow(ctx, query, login, week))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Entry{}, schedule.ErrScheduleNotFound
		}
		return schedule.Entry{}, fmt.Errorf("failed to get schedule entry: %w", err)
	}
	return e, nil
}

// GetByLoginWeekForUpdate implements schedule.Repository. Must run
// inside a transaction; the row lock is what makes guard-then-mutate
// atomic per cell.
func (r *scheduleRepositoryImpl) GetByLoginWeekForUpdate(ctx context.Context, login string, week int) (schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + scheduleColumns + " FROM schedule WHERE login = $1 AND week = $2 FOR UPDATE"
	e, err := scanEntry(q.QueryRow(ctx, query, login, week))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Entry{}, schedule.ErrScheduleNotFound
		}
		return schedule.Entry{}, fmt.Errorf("failed to lock schedule entry: %w", err)
	}
	return e, nil
}

func (r *scheduleRepositoryImpl) listEntries(ctx context.Context, query string, args ...interface{}) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []schedule.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule rows: %w", err)
	}
	return entries, nil
}

// ListByWeek implements schedule.Repository.
func (r *scheduleRepositoryImpl) ListByWeek(ctx context.Context, week int) ([]schedule.Entry, error) {
	return r.listEntries(ctx, "SELECT "+scheduleColumns+" FROM schedule WHERE week = $1 ORDER BY login", week)
}

// ListAll implements schedule.Repository.
func (r *scheduleRepositoryImpl) ListAll(ctx context.Context) ([]schedule.Entry, error) {
	return r.listEntries(ctx, "SELECT "+scheduleColumns+" FROM schedule ORDER BY week, login")
}

// ListWeeks implements schedule.Repository.
func (r *scheduleRepositoryImpl) ListWeeks(ctx context.Context) ([]int, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, "SELECT DISTINCT week FROM schedule ORDER BY week")
	if err != nil {
		return nil, fmt.Errorf("failed to query weeks: %w", err)
	}
	defer rows.Close()

	var weeks []int
	for rows.Next() {
		var week int
		if err := rows.Scan(&week); err != nil {
			return nil, fmt.Errorf("failed to scan week: %w", err)
		}
		weeks = append(weeks, week)
	}
	return weeks, rows.Err()
}

// ListLogins implements schedule.Repository.
func (r *scheduleRepositoryImpl) ListLogins(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, "SELECT DISTINCT login FROM schedule ORDER BY login")
	if err != nil {
		return nil, fmt.Errorf("failed to query logins: %w", err)
	}
	defer rows.Close()

	var logins []string
	for rows.Next() {
		var login string
		if err := rows.Scan(&login); err != nil {
			return nil, fmt.Errorf("failed to scan login: %w", err)
		}
		logins = append(logins, login)
	}
	return logins, rows.Err()
}

// UpdateCell implements schedule.Repository. The day column is resolved
// from the Day enum, never from caller input, so the statement shape is
// fixed per day.
func (r *scheduleRepositoryImpl) UpdateCell(ctx context.Context, login string, week int, day calendar.Day, value schedule.CellStatus) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf("UPDATE schedule SET %s = $1, updated_at = NOW() WHERE login = $2 AND week = $3", day.Column())
	tag, err := q.Exec(ctx, query, value, login, week)
	if err != nil {
		return fmt.Errorf("failed to update schedule cell: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}

// DeleteByLoginWeek implements schedule.Repository.
func (r *scheduleRepositoryImpl) DeleteByLoginWeek(ctx context.Context, login string, week int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM schedule WHERE login = $1 AND week = $2", login, week)
	if err != nil {
		return 0, fmt.Errorf("failed to delete schedule entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByWeek implements schedule.Repository.
func (r *scheduleRepositoryImpl) DeleteByWeek(ctx context.Context, week int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM schedule WHERE week = $1", week)
	if err != nil {
		return 0, fmt.Errorf("failed to delete week: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByID implements schedule.Repository.
func (r *scheduleRepositoryImpl) DeleteByID(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM schedule WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}
