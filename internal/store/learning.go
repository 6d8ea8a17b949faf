package store

import (
	"fmt"
	"time"

	"github.com/triagekit/triagetree/internal/learning"
)

// LearningRepo persists adaptive learning records. Implements
// learning.Persistence.
type LearningRepo struct {
	store *Store
}

// LearningRepo returns the learning record repository.
func (s *Store) LearningRepo() *LearningRepo {
	return &LearningRepo{store: s}
}

// Load reads all learning records.
func (r *LearningRepo) Load() (map[string]learning.Record, error) {
	rows, err := r.store.db.Query(
		`SELECT pattern, successes, failures, multiplier FROM learning_records`)
	if err != nil {
		return nil, fmt.Errorf("query learning records: %w", err)
	}
	defer rows.Close()

	out := make(map[string]learning.Record)
	for rows.Next() {
		var rec learning.Record
		if err := rows.Scan(&rec.Pattern, &rec.Successes, &rec.Failures, &rec.Multiplier); err != nil {
			return nil, fmt.Errorf("scan learning record: %w", err)
		}
		out[rec.Pattern] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate learning records: %w", err)
	}
	return out, nil
}

// Save upserts every record in one transaction.
func (r *LearningRepo) Save(records map[string]learning.Record) error {
	tx, err := r.store.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO learning_records (pattern, successes, failures, multiplier, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(pattern) DO UPDATE SET
			successes = excluded.successes,
			failures = excluded.failures,
			multiplier = excluded.multiplier,
			updated_at = excluded.updated_at`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, rec := range records {
		if _, err := stmt.Exec(rec.Pattern, rec.Successes, rec.Failures, rec.Multiplier, now); err != nil {
			return fmt.Errorf("upsert %q: %w", rec.Pattern, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
