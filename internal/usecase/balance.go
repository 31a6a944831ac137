package usecase

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"clockify-balance/internal/domain"
	"clockify-balance/internal/ports"
	"clockify-balance/internal/workday"
)

// secondsPerHour converts the provider's totalTime (seconds) to hours.
const secondsPerHour = 3600

// BalanceUseCase computes a work-time balance from a provider summary.
type BalanceUseCase struct {
	Log      *slog.Logger
	Provider ports.SummaryClient
}

// Compute validates req, fetches the tracked total for the range and
// derives the balance metrics. An inverted range (end before start) is
// treated as empty: zero expected and worked hours, no provider call.
func (uc *BalanceUseCase) Compute(ctx context.Context, req domain.BalanceRequest) (domain.BalanceResult, error) {
	if uc.Provider == nil {
		return domain.BalanceResult{}, errors.New("usecase not initialized: missing provider")
	}
	if err := validate(req); err != nil {
		return domain.BalanceResult{}, err
	}

	from := workday.StartOfDay(req.StartDate)
	to := workday.EndOfDay(req.EndDate)
	if to.Before(from) {
		uc.Log.Debug("empty date range, skipping provider call")
		return domain.BalanceResult{}, nil
	}

	summary, err := uc.Provider.FetchSummary(ctx, req.APIKey, req.WorkspaceID, from, to)
	if err != nil {
		return domain.BalanceResult{}, err
	}

	worked := float64(summary.TotalSeconds) / secondsPerHour
	expected := float64(workday.CountWeekdays(req.StartDate, req.EndDate)) * req.WorkdayLength
	diff := worked - expected

	res := domain.BalanceResult{
		WorkedHours:   worked,
		ExpectedHours: expected,
		DiffHours:     diff,
	}
	if diff > 0 {
		pay := diff * req.OvertimeHourlyRate
		res.OvertimePay = &pay
	}

	uc.Log.Info("balance computed",
		slog.Float64("worked_hours", worked),
		slog.Float64("expected_hours", expected),
		slog.Float64("diff_hours", diff),
	)
	return res, nil
}

func validate(req domain.BalanceRequest) error {
	if req.APIKey == "" {
		return &domain.ValidationError{Field: "apiKey", Reason: "must not be empty"}
	}
	if req.WorkspaceID == "" {
		return &domain.ValidationError{Field: "workspaceId", Reason: "must not be empty"}
	}
	if req.StartDate.IsZero() {
		return &domain.ValidationError{Field: "startDate", Reason: "required"}
	}
	if req.EndDate.IsZero() {
		return &domain.ValidationError{Field: "endDate", Reason: "required"}
	}
	if !isFinite(req.WorkdayLength) || req.WorkdayLength <= 0 {
		return &domain.ValidationError{Field: "workdayLength", Reason: "must be a positive number"}
	}
	if !isFinite(req.OvertimeHourlyRate) || req.OvertimeHourlyRate < 0 {
		return &domain.ValidationError{Field: "overtimeHourlyRate", Reason: "must be a non-negative number"}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
