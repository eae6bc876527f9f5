// Package postgres opens the shared database/sql pool over lib/pq. The
// platform keeps its SQL in the stores that own each table; this client
// only handles connection lifecycle and pool sizing.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/1Percent-hub/ScholarHub/pkg/config"
	_ "github.com/lib/pq"
)

const connectTimeout = 5 * time.Second

// Client wraps the pool. DB is exported: stores run their own queries.
type Client struct {
	DB *sql.DB
}

// New opens and verifies a connection pool. A database that does not
// answer within the connect timeout fails construction, so services can
// decide at startup whether to run degraded.
func New(cfg config.PostgresConfig) (*Client, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return &Client{DB: db}, nil
}

// Ping verifies the database still answers. Health checks call this.
func (c *Client) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Close releases the pool.
func (c *Client) Close() error {
	return c.DB.Close()
}
