// Package xact provides exact timespan arithmetic, line-aware text building
// and a small store of labelled laps built on top of them.
//
// Basic usage:
//
//	client, err := xact.New(xact.WithSQLite(".xact/xact.db"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	lap, err := client.Laps.Record(ctx, "warmup", "00:05:00")
//	report, err := client.Laps.Report(ctx, "")
package xact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/helixml/xact/application/service"
	"github.com/helixml/xact/infrastructure/persistence"
	"github.com/helixml/xact/internal/database"
)

var (
	// ErrNoDatabase is returned by New when no database option was given.
	ErrNoDatabase = errors.New("xact: no database configured")

	// ErrClientClosed indicates the client has been closed.
	ErrClientClosed = errors.New("xact: client is closed")
)

// Client is the main entry point for the xact library.
type Client struct {
	Laps *service.Laps

	db     database.Database
	logger *slog.Logger
	layout string
	closed atomic.Bool
}

// New opens the configured database, migrates it and wires the services.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	url, err := cfg.databaseURL()
	if err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	db, err := database.NewDatabaseWithLogger(context.Background(), url, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	return &Client{
		Laps:   service.NewLaps(persistence.NewLapStore(db), cfg.layout, logger),
		db:     db,
		logger: logger,
		layout: cfg.layout,
	}, nil
}

// Close releases the database. Closing twice returns ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	c.logger.Debug("xact client closed")
	return nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Layout returns the default timespan layout.
func (c *Client) Layout() string {
	return c.layout
}
