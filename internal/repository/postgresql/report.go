package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/csaops/shrinkage-backend-go/internal/domain/report"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepositoryImpl{db: db}
}

// DayCounts implements report.Repository.
func (r *reportRepositoryImpl) DayCounts(ctx context.Context, week int, day calendar.Day) (int, int, error) {
	q := GetQuerier(ctx, r.db)

	col := day.Column()
	query := fmt.Sprintf(`
		SELECT
			COUNT(*) FILTER (WHERE %[1]s != 'OFF'),
			COUNT(*) FILTER (WHERE %[1]s IN ('AL','SL','CL','L'))
		FROM schedule
		WHERE week = $1
	`, col)

	var scheduled, leaves int
	if err := q.QueryRow(ctx, query, week).Scan(&scheduled, &leaves); err != nil {
		return 0, 0, fmt.Errorf("failed to count day shrinkage: %w", err)
	}
	return scheduled, leaves, nil
}

// WeekCounts implements report.Repository.
func (r *reportRepositoryImpl) WeekCounts(ctx context.Context, week int) (int, int, error) {
	q := GetQuerier(ctx, r.db)

	var scheduledParts, leaveParts []string
	for _, d := range calendar.Days {
		col := d.Column()
		scheduledParts = append(scheduledParts, fmt.Sprintf("COUNT(*) FILTER (WHERE %s != 'OFF')", col))
		leaveParts = append(leaveParts, fmt.Sprintf("COUNT(*) FILTER (WHERE %s IN ('AL','SL','CL','L'))", col))
	}
	query := fmt.Sprintf(
		"SELECT %s, %s FROM schedule WHERE week = $1",
		strings.Join(scheduledParts, " + "),
		strings.Join(leaveParts, " + "),
	)

	var scheduled, leaves int
	if err := q.QueryRow(ctx, query, week).Scan(&scheduled, &leaves); err != nil {
		return 0, 0, fmt.Errorf("failed to count week shrinkage: %w", err)
	}
	return scheduled, leaves, nil
}
