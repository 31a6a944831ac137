package domain

import "time"

// BalanceRequest carries the inputs for one work-balance computation.
// Credentials pass through by value and are never stored.
type BalanceRequest struct {
	APIKey             string
	WorkspaceID        string
	StartDate          time.Time // calendar date; time-of-day is ignored
	EndDate            time.Time // calendar date; time-of-day is ignored
	WorkdayLength      float64   // expected hours per weekday
	OvertimeHourlyRate float64   // pay per hour of positive overtime
}

// BalanceResult is the outcome of a balance computation.
// OvertimePay is set only when DiffHours is positive.
type BalanceResult struct {
	WorkedHours   float64  `json:"workedHours"`
	ExpectedHours float64  `json:"expectedHours"`
	DiffHours     float64  `json:"diffHours"`
	OvertimePay   *float64 `json:"overtimePay,omitempty"`
}

// TimeSummary is the aggregate the provider reports for a date range.
type TimeSummary struct {
	TotalSeconds int64
}
