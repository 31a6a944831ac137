package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"clockify-balance/internal/domain"
)

const defaultRequestTimeout = 30 * time.Second

// HTTPServer returns a configured http.Server exposing the balance and
// profile endpoints. Call ListenAndServe on the returned server in a
// goroutine and Shutdown it on exit.
func (a *App) HTTPServer(addr string) *http.Server {
	srv := &http.Server{Addr: addr, Handler: a.Handler()}
	a.log.Info("http server configured", slog.String("addr", addr))
	return srv
}

// Handler builds the route table. Split from HTTPServer for tests.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("POST /api/balance", a.handleBalance)
	mux.HandleFunc("GET /api/profiles/{userID}", a.handleGetProfile)
	mux.HandleFunc("PUT /api/profiles/{userID}", a.handlePutProfile)

	return requestIDMiddleware(loggingMiddleware(a.log, mux))
}

// balancePayload is the inbound request shape. The numeric fields arrive
// as decimal strings, matching what the form UI submits.
type balancePayload struct {
	APIKey             string `json:"apiKey"`
	WorkspaceID        string `json:"workspaceId"`
	StartDate          string `json:"startDate"` // YYYY-MM-DD
	EndDate            string `json:"endDate"`   // YYYY-MM-DD
	WorkdayLength      string `json:"workdayLength"`
	OvertimeHourlyRate string `json:"overtimeHourlyRate"`
}

// balanceEnvelope is the outbound response shape.
type balanceEnvelope struct {
	Success      bool                  `json:"success"`
	DiffResponse *domain.BalanceResult `json:"diffResponse,omitempty"`
	Error        string                `json:"error,omitempty"`
}

func (a *App) handleBalance(w http.ResponseWriter, r *http.Request) {
	var payload balancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, balanceEnvelope{Success: false, Error: "malformed request body"})
		return
	}

	req, err := payload.toRequest()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, balanceEnvelope{Success: false, Error: err.Error()})
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	res, err := a.ComputeBalance(ctx, req)
	if err != nil {
		status := http.StatusInternalServerError
		msg := "an error occurred while processing your request"
		var ve *domain.ValidationError
		var pe *domain.ProviderError
		switch {
		case errors.As(err, &ve):
			status = http.StatusBadRequest
			msg = ve.Error()
		case errors.As(err, &pe):
			status = http.StatusBadGateway
			msg = pe.Error()
		default:
			a.log.Error("balance computation failed", slog.String("error", err.Error()))
		}
		writeJSON(w, status, balanceEnvelope{Success: false, Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, balanceEnvelope{Success: true, DiffResponse: &res})
}

func (p balancePayload) toRequest() (domain.BalanceRequest, error) {
	req := domain.BalanceRequest{
		APIKey:      p.APIKey,
		WorkspaceID: p.WorkspaceID,
	}

	var err error
	if p.StartDate != "" {
		if req.StartDate, err = time.Parse("2006-01-02", p.StartDate); err != nil {
			return req, &domain.ValidationError{Field: "startDate", Reason: "expected YYYY-MM-DD"}
		}
	}
	if p.EndDate != "" {
		if req.EndDate, err = time.Parse("2006-01-02", p.EndDate); err != nil {
			return req, &domain.ValidationError{Field: "endDate", Reason: "expected YYYY-MM-DD"}
		}
	}

	req.WorkdayLength = 7.5
	if p.WorkdayLength != "" {
		if req.WorkdayLength, err = strconv.ParseFloat(p.WorkdayLength, 64); err != nil {
			return req, &domain.ValidationError{Field: "workdayLength", Reason: "expected a decimal number"}
		}
	}
	if p.OvertimeHourlyRate != "" {
		if req.OvertimeHourlyRate, err = strconv.ParseFloat(p.OvertimeHourlyRate, 64); err != nil {
			return req, &domain.ValidationError{Field: "overtimeHourlyRate", Reason: "expected a decimal number"}
		}
	}
	return req, nil
}

// profilePayload mirrors the stored profile row over the wire.
type profilePayload struct {
	UserID             string  `json:"userId"`
	WorkspaceID        string  `json:"workspaceId"`
	APIKey             string  `json:"apiKey"`
	OvertimeHourlyRate float64 `json:"overtimeHourlyRate"`
}

func (a *App) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if a.profiles == nil {
		http.Error(w, "profile store not configured", http.StatusServiceUnavailable)
		return
	}
	userID := r.PathValue("userID")

	ctx, cancel := requestContext(r)
	defer cancel()

	p, err := a.profiles.GetProfile(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		a.log.Error("profile lookup failed", slog.String("error", err.Error()))
		http.Error(w, "profile lookup failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, profilePayload{
		UserID:             p.UserID,
		WorkspaceID:        p.WorkspaceID,
		APIKey:             p.APIKey,
		OvertimeHourlyRate: p.OvertimeHourlyRate,
	})
}

func (a *App) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	if a.profiles == nil {
		http.Error(w, "profile store not configured", http.StatusServiceUnavailable)
		return
	}
	userID := r.PathValue("userID")

	var payload profilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	if payload.OvertimeHourlyRate < 0 {
		http.Error(w, "overtimeHourlyRate must be non-negative", http.StatusBadRequest)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	err := a.profiles.UpsertProfile(ctx, domain.Profile{
		UserID:             userID,
		WorkspaceID:        payload.WorkspaceID,
		APIKey:             payload.APIKey,
		OvertimeHourlyRate: payload.OvertimeHourlyRate,
	})
	if err != nil {
		a.log.Error("profile upsert failed", slog.String("error", err.Error()))
		http.Error(w, "profile upsert failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// requestContext bounds the handler with the default timeout, which an
// optional ?timeout=10s query parameter can override.
func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := defaultRequestTimeout
	if tStr := r.URL.Query().Get("timeout"); tStr != "" {
		if d, err := time.ParseDuration(tStr); err == nil && d > 0 {
			timeout = d
		}
	}
	return context.WithTimeout(r.Context(), timeout)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
