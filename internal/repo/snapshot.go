package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/travel-tracker/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgSnapshotRepo is the Postgres implementation of DocumentRepo. Every save
// appends a snapshot row; Load returns the newest one.
type pgSnapshotRepo struct {
	db        db
	retention int
}

// NewSnapshotRepo constructs a DocumentRepo backed by the travel_snapshots table.
// Saves keep the newest retention snapshots; retention <= 0 keeps all of them.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewSnapshotRepo(db db, retention int) DocumentRepo {
	return &pgSnapshotRepo{db: db, retention: retention}
}

// Load returns the body of the most recent snapshot.
func (r *pgSnapshotRepo) Load(ctx context.Context) ([]byte, error) {
	const q = `
		SELECT body
		FROM travel_snapshots
		ORDER BY saved_at DESC, seq DESC
		LIMIT 1`

	var body []byte
	if err := r.db.QueryRow(ctx, q).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repo.SnapshotRepo.Load: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.SnapshotRepo.Load: %w", err)
	}
	return body, nil
}

// Save inserts doc as a new snapshot, then prunes snapshots beyond retention.
func (r *pgSnapshotRepo) Save(ctx context.Context, doc domain.TravelData) error {
	body, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("repo.SnapshotRepo.Save: %w", err)
	}

	const insert = `
		INSERT INTO travel_snapshots (id, schema_version, body)
		VALUES (@id, @schema_version, @body)`

	args := pgx.NamedArgs{
		"id":             uuid.New(),
		"schema_version": doc.Version,
		"body":           string(body),
	}
	if _, err := r.db.Exec(ctx, insert, args); err != nil {
		return fmt.Errorf("repo.SnapshotRepo.Save: insert: %w", err)
	}

	if r.retention <= 0 {
		return nil
	}

	const prune = `
		DELETE FROM travel_snapshots
		WHERE id NOT IN (
			SELECT id FROM travel_snapshots
			ORDER BY saved_at DESC, seq DESC
			LIMIT @keep
		)`

	if _, err := r.db.Exec(ctx, prune, pgx.NamedArgs{"keep": r.retention}); err != nil {
		return fmt.Errorf("repo.SnapshotRepo.Save: prune: %w", err)
	}
	return nil
}

// CountSnapshots reports how many snapshots are stored.
func CountSnapshots(ctx context.Context, db db) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM travel_snapshots`).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.CountSnapshots: %w", err)
	}
	return n, nil
}
