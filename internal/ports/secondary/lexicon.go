package secondary

import (
	"context"

	"github.com/example/kosha/internal/core/generate"
)

// CanonicalWriter defines the secondary port for appending glossary blocks
// to the generated tree.
type CanonicalWriter interface {
	// Append writes one artha block with its synonyms to the file for the
	// given khanda and varga.
	Append(khanda, varga int, artha string, synonyms []string) error
}

// QuarantineWriter defines the secondary port for recording entries the
// generator cannot place.
type QuarantineWriter interface {
	// Add records one quarantined entry.
	Add(q generate.Quarantined) error
}

// DhatuRepository defines the secondary port for the dhatu form index.
type DhatuRepository interface {
	// Add persists one form to dhatu code pair. Adding the same pair twice
	// is a no-op.
	Add(ctx context.Context, form, code string) error

	// Codes retrieves the dhatu codes recorded for a form, in insertion order.
	Codes(ctx context.Context, form string) ([]string, error)

	// HasCode reports whether any form maps to the given dhatu code.
	HasCode(ctx context.Context, code string) (bool, error)

	// Count returns the number of form to code pairs in the index.
	Count(ctx context.Context) (int, error)
}
