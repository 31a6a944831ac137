package clockify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"clockify-balance/internal/domain"
)

// DefaultBaseURL is the Clockify reports API root.
const DefaultBaseURL = "https://reports.api.clockify.me/v1"

// Client implements ports.SummaryClient against the Clockify reports API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL string, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// FetchSummary requests a user-grouped summary report for [from, to].
// Clockify: POST /workspaces/{workspaceId}/reports/summary
func (c *Client) FetchSummary(ctx context.Context, apiKey, workspaceID string, from, to time.Time) (domain.TimeSummary, error) {
	if apiKey == "" {
		return domain.TimeSummary{}, errors.New("missing api key")
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return domain.TimeSummary{}, err
	}
	u = u.JoinPath("workspaces", workspaceID, "reports", "summary")

	body, err := json.Marshal(summaryRequest{
		DateRangeStart: from.Format(time.RFC3339),
		DateRangeEnd:   to.Format(time.RFC3339),
		SummaryFilter:  summaryFilter{Groups: []string{"USER"}},
		ExportType:     "JSON",
	})
	if err != nil {
		return domain.TimeSummary{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return domain.TimeSummary{}, err
	}
	req.Header.Set("X-Api-Key", apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.TimeSummary{}, &domain.ProviderError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("clockify summary request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(detail)),
		)
		return domain.TimeSummary{}, &domain.ProviderError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("clockify: unexpected status %d", resp.StatusCode),
		}
	}

	var raw rawSummaryReport
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.log.Warn("clockify summary response unparseable", slog.String("error", err.Error()))
		return domain.TimeSummary{}, &domain.ProviderError{Err: fmt.Errorf("clockify: decoding response: %w", err)}
	}

	// An empty totals array means nothing was tracked in the range.
	var total int64
	if len(raw.Totals) > 0 {
		total = raw.Totals[0].TotalTime
	}
	return domain.TimeSummary{TotalSeconds: total}, nil
}

type summaryRequest struct {
	DateRangeStart string        `json:"dateRangeStart"`
	DateRangeEnd   string        `json:"dateRangeEnd"`
	SummaryFilter  summaryFilter `json:"summaryFilter"`
	ExportType     string        `json:"exportType"`
}

type summaryFilter struct {
	Groups []string `json:"groups"`
}

// rawSummaryReport mirrors the part of the Clockify summary response we
// consume. TotalTime is reported in seconds.
type rawSummaryReport struct {
	Totals []rawTotal `json:"totals"`
}

type rawTotal struct {
	TotalTime         int64 `json:"totalTime"`
	TotalBillableTime int64 `json:"totalBillableTime"`
	EntriesCount      int64 `json:"entriesCount"`
}
