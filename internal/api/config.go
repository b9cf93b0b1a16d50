package api

import "time"

type Config struct {
	HTTPAddr        string        `envconfig:"USERDIR_HTTP_ADDR" default:"127.0.0.1:8080"`
	MetricsAddr     string        `envconfig:"USERDIR_METRICS_ADDR" default:"127.0.0.1:9090"`
	LogLevel        string        `envconfig:"USERDIR_LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"USERDIR_SHUTDOWN_TIMEOUT" default:"30s"`
	RequestTimeout  time.Duration `envconfig:"USERDIR_REQUEST_TIMEOUT" default:"15s"`

	DBHost           string        `envconfig:"USERDIR_DB_HOST" required:"true"`
	DBPort           uint16        `envconfig:"USERDIR_DB_PORT" required:"true"`
	DBName           string        `envconfig:"USERDIR_DB_NAME" required:"true"`
	DBUser           string        `envconfig:"USERDIR_DB_USER" required:"true"`
	DBPassword       string        `envconfig:"USERDIR_DB_PASSWORD" required:"true"`
	DBSSLMode        string        `envconfig:"USERDIR_DB_SSLMODE" default:"verify-full"`
	DBMaxConns       int32         `envconfig:"USERDIR_DB_MAX_CONNS" default:"8"`
	DBConnectTimeout time.Duration `envconfig:"USERDIR_DB_CONNECT_TIMEOUT" default:"10s"`

	// StrictColumns fails /users on NULL columns instead of substituting
	// zero values.
	StrictColumns bool `envconfig:"USERDIR_STRICT_COLUMNS" default:"false"`
}
