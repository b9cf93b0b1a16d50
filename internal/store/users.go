package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/mvail/userdir/internal/core"
	"github.com/mvail/userdir/internal/observability"
)

// Timestamp columns are deliberately not selected; CreatedAt/UpdatedAt stay
// nil and serialize as null.
const listUsersSQL = `SELECT id, username, email, full_name FROM users ORDER BY id`

// ListUsers returns every row of the users table in id order. In lenient
// mode (the default) a NULL column is replaced with its zero value and
// counted; in strict mode it fails the whole request.
func (s *Store) ListUsers(ctx context.Context) ([]core.User, error) {
	start := time.Now()
	rows, err := s.pool.Query(ctx, listUsersSQL)
	if err != nil {
		observability.DBQueriesTotal.WithLabelValues("list_users", "error").Inc()
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := []core.User{}
	for rows.Next() {
		var (
			id                        pgtype.Int4
			username, email, fullName pgtype.Text
		)
		if err := rows.Scan(&id, &username, &email, &fullName); err != nil {
			observability.DBQueriesTotal.WithLabelValues("list_users", "error").Inc()
			return nil, fmt.Errorf("scan users row: %w", err)
		}

		var u core.User
		if u.ID, err = s.int4Column("id", id); err != nil {
			return nil, err
		}
		if u.Username, err = s.textColumn("username", username); err != nil {
			return nil, err
		}
		if u.Email, err = s.textColumn("email", email); err != nil {
			return nil, err
		}
		if u.FullName, err = s.textColumn("full_name", fullName); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		observability.DBQueriesTotal.WithLabelValues("list_users", "error").Inc()
		return nil, fmt.Errorf("read users rows: %w", err)
	}

	observability.DBQueriesTotal.WithLabelValues("list_users", "ok").Inc()
	observability.DBQueryDuration.WithLabelValues("list_users").Observe(time.Since(start).Seconds())
	s.log.Info("users listed", zap.Int("rows", len(users)))
	return users, nil
}

func (s *Store) int4Column(column string, v pgtype.Int4) (int32, error) {
	if v.Valid {
		return v.Int32, nil
	}
	if s.strict {
		return 0, fmt.Errorf("column %s: null value", column)
	}
	observability.ColumnDefaultsTotal.WithLabelValues(column).Inc()
	return 0, nil
}

func (s *Store) textColumn(column string, v pgtype.Text) (string, error) {
	if v.Valid {
		return v.String, nil
	}
	if s.strict {
		return "", fmt.Errorf("column %s: null value", column)
	}
	observability.ColumnDefaultsTotal.WithLabelValues(column).Inc()
	return "", nil
}
