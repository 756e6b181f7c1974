package main

import (
	"log/slog"
	"strings"

	"github.com/helixml/xact"
	"github.com/helixml/xact/internal/config"
)

// clientOptions returns the xact.Option slice derived from AppConfig.
func clientOptions(cfg config.AppConfig, logger *slog.Logger) []xact.Option {
	return []xact.Option{
		storageOption(cfg),
		xact.WithLayout(cfg.Layout()),
		xact.WithLogger(logger),
	}
}

// storageOption picks the database backend from the configured URL. SQLite
// paths go through WithSQLite so their directory is created.
func storageOption(cfg config.AppConfig) xact.Option {
	dbURL := cfg.DBURL()
	if dbURL == "" {
		dbURL = config.DefaultDBURL(cfg.DataDir())
	}
	if !isSQLite(dbURL) {
		return xact.WithDatabaseURL(dbURL)
	}

	path := strings.TrimPrefix(dbURL, "sqlite:///")
	if path == dbURL {
		path = strings.TrimPrefix(dbURL, "sqlite:")
	}
	return xact.WithSQLite(path)
}

func isSQLite(url string) bool {
	return strings.HasPrefix(url, "sqlite:")
}

// openClient loads configuration and opens a Client. Callers must Close it.
func openClient(flags *globalFlags) (*xact.Client, config.AppConfig, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, config.AppConfig{}, err
	}
	client, err := xact.New(clientOptions(cfg, slog.Default())...)
	if err != nil {
		return nil, config.AppConfig{}, err
	}
	return client, cfg, nil
}
