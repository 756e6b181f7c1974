package xact

import (
	"log/slog"

	"github.com/helixml/xact/domain/timespan"
	"github.com/helixml/xact/internal/database"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbURL   string
	sqlite  string
	dbIsSet bool
	layout  string
	logger  *slog.Logger
}

func newClientConfig() *clientConfig {
	return &clientConfig{layout: timespan.LayoutConstant}
}

func (c *clientConfig) databaseURL() (string, error) {
	switch {
	case !c.dbIsSet:
		return "", ErrNoDatabase
	case c.sqlite != "":
		return database.SQLiteURL(c.sqlite)
	default:
		return c.dbURL, nil
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite stores data in the SQLite file at path, creating its directory.
// ":memory:" keeps everything in memory.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbIsSet = true
		c.sqlite = path
		c.dbURL = ""
	}
}

// WithPostgres stores data in the PostgreSQL database at dsn.
func WithPostgres(dsn string) Option {
	return WithDatabaseURL(dsn)
}

// WithDatabaseURL uses a sqlite:/// or postgres:// URL as is.
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.dbIsSet = true
		c.sqlite = ""
		c.dbURL = url
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = l }
}

// WithLayout sets the default layout used by reports.
func WithLayout(layout string) Option {
	return func(c *clientConfig) {
		if layout != "" {
			c.layout = layout
		}
	}
}
