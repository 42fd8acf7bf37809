// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/kosha/internal/ports/secondary"
)

// DhatuRepository implements secondary.DhatuRepository with SQLite.
type DhatuRepository struct {
	db *sql.DB
}

// NewDhatuRepository creates a new SQLite dhatu repository.
func NewDhatuRepository(db *sql.DB) *DhatuRepository {
	return &DhatuRepository{db: db}
}

// Add persists one form to dhatu code pair. Re-adding an existing pair is
// a no-op.
func (r *DhatuRepository) Add(ctx context.Context, form, code string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO dhatu_forms (form, code) VALUES (?, ?)",
		form, code,
	)
	if err != nil {
		return fmt.Errorf("failed to add dhatu form: %w", err)
	}

	return nil
}

// Codes retrieves the dhatu codes recorded for a form, in insertion order.
// An unknown form yields an empty slice, not an error.
func (r *DhatuRepository) Codes(ctx context.Context, form string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT code FROM dhatu_forms WHERE form = ? ORDER BY id ASC",
		form,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to look up form: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan dhatu code: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dhatu codes: %w", err)
	}

	return codes, nil
}

// HasCode reports whether any form maps to the given dhatu code.
func (r *DhatuRepository) HasCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM dhatu_forms WHERE code = ?)",
		code,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check dhatu code: %w", err)
	}

	return exists, nil
}

// Count returns the number of form to code pairs in the index.
func (r *DhatuRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM dhatu_forms",
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count dhatu forms: %w", err)
	}

	return n, nil
}

// Ensure DhatuRepository implements the interface.
var _ secondary.DhatuRepository = (*DhatuRepository)(nil)
