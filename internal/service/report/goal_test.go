package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeGoal(t *testing.T) {
	tests := []struct {
		name       string
		scheduled  int
		leaves     int
		goalPct    float64
		allowed    float64
		cancel     int
		approvable int
		action     string
	}{
		{
			name:      "over goal cancels the overshoot",
			scheduled: 100, leaves: 8, goalPct: 5,
			allowed: 5, cancel: 3, action: GoalActionCancel,
		},
		{
			name:      "under goal approves the headroom",
			scheduled: 100, leaves: 2, goalPct: 5,
			allowed: 5, approvable: 3, action: GoalActionApprove,
		},
		{
			name:      "exactly on goal",
			scheduled: 100, leaves: 5, goalPct: 5,
			allowed: 5, action: GoalActionMet,
		},
		{
			name:      "fractional allowance rounds cancel up",
			scheduled: 70, leaves: 6, goalPct: 5,
			allowed: 3.5, cancel: 3, action: GoalActionCancel,
		},
		{
			name:      "fractional allowance rounds approval down",
			scheduled: 70, leaves: 1, goalPct: 5,
			allowed: 3.5, approvable: 2, action: GoalActionApprove,
		},
		{
			name:      "zero scheduled with leaves still cancels",
			scheduled: 0, leaves: 2, goalPct: 5,
			allowed: 0, cancel: 2, action: GoalActionCancel,
		},
		{
			name:      "nothing scheduled nothing taken",
			scheduled: 0, leaves: 0, goalPct: 5,
			allowed: 0, action: GoalActionMet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeGoal(tt.scheduled, tt.leaves, tt.goalPct)

			assert.Equal(t, tt.scheduled, got.TotalScheduled)
			assert.Equal(t, tt.leaves, got.CurrentLeaves)
			assert.Equal(t, tt.allowed, got.AllowedLeaves)
			assert.Equal(t, tt.cancel, got.CancelLeaves)
			assert.Equal(t, tt.approvable, got.ApprovableLeaves)
			assert.Equal(t, tt.action, got.Action)
		})
	}
}

func TestShrinkagePct(t *testing.T) {
	assert.Equal(t, 0.0, shrinkagePct(0, 0))
	assert.Equal(t, 0.0, shrinkagePct(0, 3))
	assert.Equal(t, 0.0, shrinkagePct(10, 0))
	assert.Equal(t, 50.0, shrinkagePct(10, 5))
	assert.Equal(t, 33.33, shrinkagePct(3, 1))
	assert.Equal(t, 66.67, shrinkagePct(3, 2))
	assert.Equal(t, 100.0, shrinkagePct(7, 7))
}
