package ports

import (
	"context"
	"time"

	"clockify-balance/internal/domain"
)

// SummaryClient fetches an aggregate time summary from the time-tracking
// provider for the given workspace and range.
type SummaryClient interface {
	FetchSummary(ctx context.Context, apiKey, workspaceID string, from, to time.Time) (domain.TimeSummary, error)
}

// ProfileStore persists per-user request defaults. The balance engine
// treats it as read-only; writes come from the profile endpoints.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)
	UpsertProfile(ctx context.Context, p domain.Profile) error
}
