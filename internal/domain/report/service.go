package report

import (
	"context"

	"github.com/csaops/shrinkage-backend-go/internal/pkg/calendar"
)

// Service computes shrinkage ratios over the schedule table and the
// goal analysis built on them.
type Service interface {
	DayShrinkage(ctx context.Context, week int, day calendar.Day, year int) (DayShrinkage, error)
	WeekShrinkage(ctx context.Context, week int) (WeekShrinkage, error)
	WeeklyOverview(ctx context.Context) ([]OverviewRow, error)
	MonthlyReport(ctx context.Context, month, year int, goalPct float64) (MonthlyReport, error)
	AnnualReport(ctx context.Context, year int, goalPct float64) (AnnualReport, error)
	AnalyzeGoalForWeek(ctx context.Context, week int, goalPct float64) (GoalAnalysis, error)
}
