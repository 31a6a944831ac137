package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds environment-driven configuration.
type Config struct {
	Clockify struct {
		BaseURL string // default: https://reports.api.clockify.me/v1
		// Credentials used by one-shot mode; server mode takes them per request.
		APIKey      string
		WorkspaceID string
	}
	Defaults struct {
		WorkdayLength      float64 // hours per weekday, default 7.5
		OvertimeHourlyRate float64
	}
	MySQL struct {
		DSN string // optional; profile endpoints are disabled when empty
	}
	HTTP struct {
		Addr string // default :8080
	}
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config

	cfg.Clockify.BaseURL = os.Getenv("CLOCKIFY_BASE_URL")
	if cfg.Clockify.BaseURL == "" {
		cfg.Clockify.BaseURL = "https://reports.api.clockify.me/v1"
	}
	cfg.Clockify.APIKey = os.Getenv("CLOCKIFY_API_KEY")
	cfg.Clockify.WorkspaceID = os.Getenv("CLOCKIFY_WORKSPACE_ID")

	cfg.Defaults.WorkdayLength = 7.5
	if s := os.Getenv("WORKDAY_LENGTH"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return cfg, fmt.Errorf("WORKDAY_LENGTH must be a positive number")
		}
		cfg.Defaults.WorkdayLength = v
	}
	if s := os.Getenv("OVERTIME_HOURLY_RATE"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return cfg, fmt.Errorf("OVERTIME_HOURLY_RATE must be a non-negative number")
		}
		cfg.Defaults.OvertimeHourlyRate = v
	}

	cfg.MySQL.DSN = os.Getenv("MYSQL_DSN")

	cfg.HTTP.Addr = os.Getenv("HTTP_ADDR")
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}

	return cfg, nil
}
