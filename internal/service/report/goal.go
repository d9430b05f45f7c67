package report

import (
	"github.com/csaops/shrinkage-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

const (
	GoalActionCancel  = "cancel"
	GoalActionApprove = "approve"
	GoalActionMet     = "met"
)

// AnalyzeGoal works out how many leaves stand between the current
// shrinkage and a target percentage. Allowed leaves is
// scheduled * goal / 100; the gap is rounded against the caller:
// cancellations round up, approvals round down.
func AnalyzeGoal(totalScheduled, currentLeaves int, goalPct float64) report.GoalAnalysis {
	allowed := decimal.NewFromInt(int64(totalScheduled)).
		Mul(decimal.NewFromFloat(goalPct)).
		Div(decimal.NewFromInt(100))
	current := decimal.NewFromInt(int64(currentLeaves))

	analysis := report.GoalAnalysis{
		TotalScheduled: totalScheduled,
		CurrentLeaves:  currentLeaves,
		AllowedLeaves:  allowed.Round(2).InexactFloat64(),
	}

	switch {
	case current.GreaterThan(allowed):
		analysis.CancelLeaves = int(current.Sub(allowed).Ceil().IntPart())
		analysis.Action = GoalActionCancel
	case current.LessThan(allowed):
		analysis.ApprovableLeaves = int(allowed.Sub(current).Floor().IntPart())
		analysis.Action = GoalActionApprove
	default:
		analysis.Action = GoalActionMet
	}
	return analysis
}
