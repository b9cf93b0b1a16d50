package store

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Config carries the discrete connection parameters for the users database.
// SSLMode is passed through to the driver verbatim; relaxed modes must be an
// explicit operator choice, the default verifies the server certificate.
type Config struct {
	Host           string
	Port           uint16
	Name           string
	User           string
	Password       string
	SSLMode        string
	MaxConns       int32
	ConnectTimeout time.Duration
	StrictColumns  bool
}

// Store wraps a bounded connection pool over the users database. Each
// request checks a connection out of the pool for the duration of its
// query; nothing is shared across requests outside the pool.
type Store struct {
	pool   *pgxpool.Pool
	strict bool
	log    *zap.Logger
}

func New(ctx context.Context, cfg Config, log *zap.Logger) (*Store, error) {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(int(cfg.Port))),
		Path:     "/" + cfg.Name,
		RawQuery: "sslmode=" + url.QueryEscape(cfg.SSLMode),
	}

	pc, err := pgxpool.ParseConfig(u.String())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pc.MaxConns = cfg.MaxConns
	pc.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	log.Info("connecting to database",
		zap.String("host", cfg.Host),
		zap.Uint16("port", cfg.Port),
		zap.String("database", cfg.Name),
		zap.String("sslmode", cfg.SSLMode),
	)

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	log.Info("database connection established")
	return &Store{pool: pool, strict: cfg.StrictColumns, log: log}, nil
}

// NewWithPool wraps an existing pool. Used by tests that provision their
// own database.
func NewWithPool(pool *pgxpool.Pool, strict bool, log *zap.Logger) *Store {
	return &Store{pool: pool, strict: strict, log: log}
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
