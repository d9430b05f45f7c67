package performance

import (
	"context"
	"io"
)

// Service ingests performance workbooks and serves trend views over
// the imported metrics.
type Service interface {
	Import(ctx context.Context, r io.Reader) (ImportResponse, error)
	Trend(ctx context.Context, username string) (TrendResponse, error)
	ListUsernames(ctx context.Context) ([]string, error)
	ExportCSV(ctx context.Context, username string) ([]byte, error)
	EmailReport(ctx context.Context, req EmailReportRequest) error
}
