// Package db provides PostgreSQL persistence for generation history records.
// Persistence is optional: a nil *DB is safe to call and records nothing, so
// a missing DATABASE_URL never blocks CV generation.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db != nil && db.pool != nil {
		db.pool.Close()
	}
}

// Generation statuses recorded for history rows.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// CreateGeneration inserts a history row for a new request and returns its id.
func (db *DB) CreateGeneration(ctx context.Context, candidateName, templateID, format string, anonymized bool) (uuid.UUID, error) {
	if db == nil {
		return uuid.Nil, nil
	}
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO generations (candidate_name, template_id, output_format, anonymized, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		candidateName, templateID, format, anonymized, StatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create generation record: %w", err)
	}
	return id, nil
}

// CompleteGeneration marks a history row completed and records where the
// artifact was stored and when its retrieval handle expires.
func (db *DB) CompleteGeneration(ctx context.Context, id uuid.UUID, objectName string, urlExpiresAt time.Time) error {
	if db == nil || id == uuid.Nil {
		return nil
	}
	_, err := db.pool.Exec(ctx,
		`UPDATE generations
		 SET status = $1, object_name = $2, url_expires_at = $3, completed_at = NOW()
		 WHERE id = $4`,
		StatusCompleted, objectName, urlExpiresAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete generation record: %w", err)
	}
	return nil
}

// FailGeneration marks a history row failed with the failure reason.
func (db *DB) FailGeneration(ctx context.Context, id uuid.UUID, reason string) error {
	if db == nil || id == uuid.Nil {
		return nil
	}
	_, err := db.pool.Exec(ctx,
		`UPDATE generations SET status = $1, failure_reason = $2, completed_at = NOW() WHERE id = $3`,
		StatusFailed, reason, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark generation record failed: %w", err)
	}
	return nil
}
