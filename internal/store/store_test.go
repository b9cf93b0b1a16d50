package store

import (
	"context"
	"net"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func TestStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("userdir"),
		postgres.WithUsername("userdir"),
		postgres.WithPassword("userdir_pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections"),
		),
	)
	if err != nil {
		t.Fatalf("failed to start container: %s", err)
	}
	defer pgContainer.Terminate(ctx)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %s", err)
	}
	cfg := configFromURL(t, connStr)

	st, err := New(ctx, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to connect: %s", err)
	}
	defer st.Close()

	_, err = st.pool.Exec(ctx, `
		CREATE TABLE users (
			id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			username TEXT UNIQUE,
			email TEXT UNIQUE,
			full_name TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	if err != nil {
		t.Fatalf("failed to create schema: %s", err)
	}

	t.Run("EmptyTable", func(t *testing.T) {
		users, err := st.ListUsers(ctx)
		if err != nil {
			t.Fatalf("failed to list users: %s", err)
		}
		if users == nil {
			t.Fatal("expected non-nil empty slice")
		}
		if len(users) != 0 {
			t.Errorf("expected 0 users, got %d", len(users))
		}
	})

	_, err = st.pool.Exec(ctx, `
		INSERT INTO users (username, email, full_name) VALUES
			('john_doe', 'john@example.com', 'John Doe'),
			('jane_doe', 'jane@example.com', 'Jane Doe');
	`)
	if err != nil {
		t.Fatalf("failed to seed users: %s", err)
	}

	t.Run("ListInIDOrder", func(t *testing.T) {
		users, err := st.ListUsers(ctx)
		if err != nil {
			t.Fatalf("failed to list users: %s", err)
		}
		if len(users) != 2 {
			t.Fatalf("expected 2 users, got %d", len(users))
		}
		if users[0].ID != 1 || users[0].Username != "john_doe" {
			t.Errorf("unexpected first user: %+v", users[0])
		}
		if users[1].ID != 2 || users[1].Email != "jane@example.com" {
			t.Errorf("unexpected second user: %+v", users[1])
		}
	})

	t.Run("TimestampsNeverPopulated", func(t *testing.T) {
		// Schema fills created_at/updated_at, the read path must not.
		users, err := st.ListUsers(ctx)
		if err != nil {
			t.Fatalf("failed to list users: %s", err)
		}
		for _, u := range users {
			if u.CreatedAt != nil || u.UpdatedAt != nil {
				t.Errorf("expected nil timestamps, got %+v", u)
			}
		}
	})

	_, err = st.pool.Exec(ctx, `INSERT INTO users (username, email, full_name) VALUES ('ghost', 'ghost@example.com', NULL);`)
	if err != nil {
		t.Fatalf("failed to insert null row: %s", err)
	}

	t.Run("LenientNullDefaults", func(t *testing.T) {
		users, err := st.ListUsers(ctx)
		if err != nil {
			t.Fatalf("failed to list users: %s", err)
		}
		if len(users) != 3 {
			t.Fatalf("expected 3 users, got %d", len(users))
		}
		if users[2].FullName != "" {
			t.Errorf("expected empty full_name, got %q", users[2].FullName)
		}
	})

	t.Run("StrictNullFails", func(t *testing.T) {
		strict := NewWithPool(st.pool, true, zap.NewNop())
		_, err := strict.ListUsers(ctx)
		if err == nil {
			t.Fatal("expected error for NULL column in strict mode")
		}
		if !strings.Contains(err.Error(), "full_name") {
			t.Errorf("expected error to name the column, got: %s", err)
		}
	})

	t.Run("MissingTableFails", func(t *testing.T) {
		if _, err := st.pool.Exec(ctx, `ALTER TABLE users RENAME TO users_gone;`); err != nil {
			t.Fatalf("failed to rename table: %s", err)
		}
		defer st.pool.Exec(ctx, `ALTER TABLE users_gone RENAME TO users;`)

		if _, err := st.ListUsers(ctx); err == nil {
			t.Fatal("expected error when table is missing")
		}
	})
}

// configFromURL splits a postgres:// connection string back into the
// discrete parameters Config takes, so tests exercise DSN assembly too.
func configFromURL(t *testing.T, connStr string) Config {
	t.Helper()
	u, err := url.Parse(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %s", err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("failed to split host port: %s", err)
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		t.Fatalf("failed to parse port: %s", err)
	}
	pass, _ := u.User.Password()
	return Config{
		Host:           host,
		Port:           uint16(port),
		Name:           strings.TrimPrefix(u.Path, "/"),
		User:           u.User.Username(),
		Password:       pass,
		SSLMode:        "disable",
		MaxConns:       4,
		ConnectTimeout: 10 * time.Second,
		StrictColumns:  false,
	}
}
