// Package pgtest starts a throwaway PostgreSQL container with the production
// schema for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"time"

	adapter "marketplace/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tables lists every application table in truncation order.
var Tables = []string{"deliveries", "order_lines", "orders", "products", "suppliers", "users"}

// Database is a migrated PostgreSQL instance running in a container.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine, applies the embedded migrations and opens a
// gorm connection.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("could not start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = adapter.Migrate(dsn); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := adapter.Open(dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db, DSN: dsn}, nil
}

// Truncate empties every table and restarts the id sequences.
func (d *Database) Truncate() error {
	stmt := "TRUNCATE TABLE "
	for i, table := range Tables {
		if i > 0 {
			stmt += ", "
		}
		stmt += table
	}
	return d.DB.Exec(stmt + " RESTART IDENTITY CASCADE").Error
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
