// Package backport contains the pure decision logic of the backport stage:
// eligibility guards, candidate classification and the addressing maps that
// translate section names into canonical file numbers.
package backport

import (
	"fmt"

	"github.com/example/kosha/internal/core/entry"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// EligibilityContext provides context for backport eligibility guards.
type EligibilityContext struct {
	Form       string
	Resolved   bool
	DhatuValue string // the edited dhatu_id / dhatu_ids value
}

// CanBackport evaluates whether a review record may touch canonical storage.
// Rules:
// - The reviewer must have marked the record resolved
// - The dhatu value must be a concrete edit, not the exported sentinel
func CanBackport(ctx EligibilityContext) GuardResult {
	if !ctx.Resolved {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("record %s is not marked resolved", ctx.Form),
		}
	}

	if entry.IsPristine(ctx.DhatuValue) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("record %s still carries the unedited value %q", ctx.Form, ctx.DhatuValue),
		}
	}

	return GuardResult{Allowed: true}
}

// Outcome classifies what happened to one review record during a run.
type Outcome int

const (
	// OutcomeUpdated: a unique canonical match was found and rewritten.
	OutcomeUpdated Outcome = iota
	// OutcomeSkippedUnresolved: the reviewer has not signed the record off.
	OutcomeSkippedUnresolved
	// OutcomeSkippedPristine: the dhatu value was never actually edited.
	OutcomeSkippedPristine
	// OutcomeNotFound: no canonical entry matches the record.
	OutcomeNotFound
	// OutcomeAmbiguous: several canonical entries match; needs a human.
	OutcomeAmbiguous
)

// String names the outcome for report lines.
func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeSkippedUnresolved:
		return "skipped (unresolved)"
	case OutcomeSkippedPristine:
		return "skipped (unedited value)"
	case OutcomeNotFound:
		return "not found"
	case OutcomeAmbiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Classify maps eligibility and candidate count to a final outcome. An
// ambiguous match is surfaced as its own condition and never auto-resolved:
// picking the first of several duplicate shloka/form pairs would silently
// edit the wrong verse.
func Classify(resolved bool, dhatuValue string, candidates int) Outcome {
	if !resolved {
		return OutcomeSkippedUnresolved
	}
	if entry.IsPristine(dhatuValue) {
		return OutcomeSkippedPristine
	}
	switch {
	case candidates == 0:
		return OutcomeNotFound
	case candidates > 1:
		return OutcomeAmbiguous
	default:
		return OutcomeUpdated
	}
}
