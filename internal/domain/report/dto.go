package report

// LeaveDetail is one drill-down row of a day shrinkage report.
type LeaveDetail struct {
	Login      string `json:"login"`
	LeaveType  string `json:"leave_type"`
	Annotation string `json:"annotation,omitempty"`
}

// DayShrinkage is the scheduled/leave ratio for one day of one week.
// Pct is leaves/scheduled in percent, rounded to two decimals, and 0
// when nobody is scheduled.
type DayShrinkage struct {
	Week      int           `json:"week"`
	Day       string        `json:"day"`
	Date      string        `json:"date,omitempty"`
	Scheduled int           `json:"scheduled"`
	Leaves    int           `json:"leaves"`
	Pct       float64       `json:"shrinkage_pct"`
	Details   []LeaveDetail `json:"details,omitempty"`
}

// WeekShrinkage aggregates one week across all seven day columns.
type WeekShrinkage struct {
	Week      int            `json:"week"`
	Scheduled int            `json:"scheduled"`
	Leaves    int            `json:"leaves"`
	Pct       float64        `json:"shrinkage_pct"`
	Days      []DayShrinkage `json:"days,omitempty"`
}

// OverviewRow is one line of the weekly shrinkage overview, ordered by
// week ascending.
type OverviewRow struct {
	Week      int     `json:"week"`
	Scheduled int     `json:"scheduled"`
	Leaves    int     `json:"leaves"`
	Pct       float64 `json:"shrinkage_pct"`
}

// MonthDetail is one counted leave cell of a monthly report.
type MonthDetail struct {
	Week   int    `json:"week"`
	Day    string `json:"day"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// MonthlyReport counts cells by the calendar date they map to, so a
// week straddling a month boundary contributes to both months.
type MonthlyReport struct {
	Month     int           `json:"month"`
	Year      int           `json:"year"`
	Scheduled int           `json:"scheduled"`
	Leaves    int           `json:"leaves"`
	Pct       float64       `json:"shrinkage_pct"`
	GoalMet   *bool         `json:"goal_met,omitempty"`
	Details   []MonthDetail `json:"details,omitempty"`
}

// AnnualReport rolls up the twelve monthly reports of one year.
type AnnualReport struct {
	Year      int             `json:"year"`
	Scheduled int             `json:"scheduled"`
	Leaves    int             `json:"leaves"`
	Pct       float64         `json:"shrinkage_pct"`
	Months    []MonthlyReport `json:"months"`
}

// GoalAnalysis recommends how many leaves to cancel or approve to land
// on a target shrinkage percentage.
type GoalAnalysis struct {
	TotalScheduled   int     `json:"total_scheduled"`
	CurrentLeaves    int     `json:"current_leaves"`
	AllowedLeaves    float64 `json:"allowed_leaves"`
	CancelLeaves     int     `json:"cancel_leaves"`
	ApprovableLeaves int     `json:"approvable_leaves"`
	Action           string  `json:"action"`
}
