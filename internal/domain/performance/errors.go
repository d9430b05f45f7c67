package performance

import "errors"

var (
	ErrNoData = errors.New("No performance data found for the requested login")
)
