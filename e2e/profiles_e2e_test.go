//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	msql "clockify-balance/internal/adapter/mysql"
	"clockify-balance/internal/domain"
	"clockify-balance/internal/migrate"
)

func TestProfileStoreRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8.0",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_DATABASE":      "testdb",
			"MYSQL_ROOT_PASSWORD": "secret",
			"MYSQL_USER":          "test",
			"MYSQL_PASSWORD":      "pass",
		},
		WaitingFor: wait.ForListeningPort("3306/tcp").WithStartupTimeout(90 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start mysql container: %v", err)
	}
	t.Cleanup(func() { _ = mysqlC.Terminate(context.Background()) })

	host, err := mysqlC.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := mysqlC.MappedPort(ctx, "3306/tcp")
	if err != nil {
		t.Fatalf("mapped port: %v", err)
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true", "test", "pass", host, port.Port(), "testdb")

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if err := migrate.Run(ctx, dsn, logger); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	store, err := msql.NewClient(ctx, dsn, logger)
	if err != nil {
		t.Fatalf("mysql client: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if _, err := store.GetProfile(ctx, "user-1"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	p := domain.Profile{
		UserID:             "user-1",
		WorkspaceID:        "ws-1",
		APIKey:             "key-1",
		OvertimeHourlyRate: 150,
	}
	if err := store.UpsertProfile(ctx, p); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := store.GetProfile(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != p {
		t.Fatalf("profile = %+v, want %+v", got, p)
	}

	// Overwrite and assert the upsert path replaces values
	p.OvertimeHourlyRate = 200
	p.WorkspaceID = "ws-2"
	if err := store.UpsertProfile(ctx, p); err != nil {
		t.Fatalf("upsert 2: %v", err)
	}
	got, err = store.GetProfile(ctx, "user-1")
	if err != nil {
		t.Fatalf("get 2: %v", err)
	}
	if got != p {
		t.Fatalf("profile after update = %+v, want %+v", got, p)
	}
}
