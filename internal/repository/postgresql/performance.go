package postgresql

import (
	"context"
	"fmt"

	"github.com/csaops/shrinkage-backend-go/internal/domain/performance"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/database"
)

type performanceRepositoryImpl struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.Repository {
	return &performanceRepositoryImpl{db: db}
}

// CreateBatch implements performance.Repository.
func (r *performanceRepositoryImpl) CreateBatch(ctx context.Context, metrics []performance.Metric) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance (username, week, metric1, metric2, recorded_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	created := 0
	for _, m := range metrics {
		if _, err := q.Exec(ctx, query, m.Username, m.Week, m.Metric1, m.Metric2); err != nil {
			return created, fmt.Errorf("failed to insert performance row: %w", err)
		}
		created++
	}
	return created, nil
}

// ListByUsername implements performance.Repository.
func (r *performanceRepositoryImpl) ListByUsername(ctx context.Context, username string) ([]performance.Metric, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		"SELECT id, username, week, metric1, metric2, recorded_at FROM performance WHERE username = $1 ORDER BY week, id",
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance rows: %w", err)
	}
	defer rows.Close()

	var metrics []performance.Metric
	for rows.Next() {
		var m performance.Metric
		if err := rows.Scan(&m.ID, &m.Username, &m.Week, &m.Metric1, &m.Metric2, &m.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan performance row: %w", err)
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

// ListUsernames implements performance.Repository.
func (r *performanceRepositoryImpl) ListUsernames(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, "SELECT DISTINCT username FROM performance ORDER BY username")
	if err != nil {
		return nil, fmt.Errorf("failed to query usernames: %w", err)
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("failed to scan username: %w", err)
		}
		usernames = append(usernames, u)
	}
	return usernames, rows.Err()
}
