package changelog

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Repository writes change entries to Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository constructs a change log repository.
func NewRepository(db *sql.DB) *Repository {
	if db == nil {
		return nil
	}
	return &Repository{db: db}
}

// Append writes one change entry.
func (r *Repository) Append(ctx context.Context, entry Entry) error {
	if r == nil || r.db == nil {
		return errors.New("changelog repo: nil db")
	}
	if entry.ID == "" {
		entry.ID = NewID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if entry.PayloadDigest == "" {
		entry.PayloadDigest = DigestJSON(entry.Details)
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO change_log (
	id, change_type, appliance_id, appliance_name, details, payload_digest, actor, created_at
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8
)`, entry.ID, entry.ChangeType, entry.ApplianceID, entry.ApplianceName,
		entry.Details, entry.PayloadDigest, entry.Actor, entry.CreatedAt)
	return err
}

// List returns the most recent entries, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]Entry, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("changelog repo: nil db")
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, change_type, appliance_id, appliance_name, details, payload_digest, actor, created_at
FROM change_log
ORDER BY created_at DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.ID, &entry.ChangeType, &entry.ApplianceID, &entry.ApplianceName,
			&entry.Details, &entry.PayloadDigest, &entry.Actor, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
