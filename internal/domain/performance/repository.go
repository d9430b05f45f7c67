package performance

import "context"

// Repository - interface for the performance table
type Repository interface {
	CreateBatch(ctx context.Context, metrics []Metric) (int, error)
	ListByUsername(ctx context.Context, username string) ([]Metric, error)
	ListUsernames(ctx context.Context) ([]string, error)
}
