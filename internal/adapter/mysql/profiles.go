package mysql

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"clockify-balance/internal/domain"
)

// Client implements ports.ProfileStore on a MySQL table.
type Client struct {
	db  *sql.DB
	log *slog.Logger
}

// NewClient opens a MySQL connection using the provided DSN.
// Example DSN: user:pass@tcp(host:3306)/dbname?parseTime=true&multiStatements=true
func NewClient(ctx context.Context, dsn string, log *slog.Logger) (*Client, error) {
	if dsn == "" {
		return nil, errors.New("mysql: DSN is required")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(c); err != nil {
		db.Close()
		return nil, err
	}
	return &Client{db: db, log: log}, nil
}

// GetProfile loads the stored defaults for a user.
func (c *Client) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	const q = `SELECT user_id, workspace_id, api_key, overtime_hourly_rate FROM profiles WHERE user_id = ?`
	var p domain.Profile
	err := c.db.QueryRowContext(ctx, q, userID).Scan(&p.UserID, &p.WorkspaceID, &p.APIKey, &p.OvertimeHourlyRate)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	if err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

// UpsertProfile inserts or replaces a user's stored defaults.
func (c *Client) UpsertProfile(ctx context.Context, p domain.Profile) error {
	const q = `
INSERT INTO profiles
  (user_id, workspace_id, api_key, overtime_hourly_rate)
VALUES
  (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  workspace_id=VALUES(workspace_id),
  api_key=VALUES(api_key),
  overtime_hourly_rate=VALUES(overtime_hourly_rate);
`
	if _, err := c.db.ExecContext(ctx, q, p.UserID, p.WorkspaceID, p.APIKey, p.OvertimeHourlyRate); err != nil {
		return err
	}
	c.log.Info("profile upserted", slog.String("user_id", p.UserID))
	return nil
}

// Close closes the underlying DB. Not wired via interface to keep ports minimal.
func (c *Client) Close() error { return c.db.Close() }
