package performance

import "time"

// Metric is one imported performance row for an employee and week.
type Metric struct {
	ID       int64
	Username string
	Week     int
	Metric1  float64
	Metric2  float64

	RecordedAt time.Time
}
