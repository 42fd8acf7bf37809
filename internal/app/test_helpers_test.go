package app

import (
	"context"

	"github.com/example/kosha/internal/core/generate"
	"github.com/example/kosha/internal/ports/secondary"
)

// Ensure the fakes implement the interfaces
var (
	_ secondary.CanonicalWriter  = (*fakeCanonicalWriter)(nil)
	_ secondary.QuarantineWriter = (*fakeQuarantineWriter)(nil)
	_ secondary.DhatuRepository  = (*fakeDhatuRepository)(nil)
)

// fakeCanonicalWriter records appended blocks in memory.
type fakeCanonicalWriter struct {
	appends []appendedBlock
	err     error
}

type appendedBlock struct {
	khanda, varga int
	artha         string
	synonyms      []string
}

func (f *fakeCanonicalWriter) Append(khanda, varga int, artha string, synonyms []string) error {
	if f.err != nil {
		return f.err
	}
	f.appends = append(f.appends, appendedBlock{khanda, varga, artha, synonyms})
	return nil
}

// fakeQuarantineWriter records quarantined entries in memory.
type fakeQuarantineWriter struct {
	added []generate.Quarantined
}

func (f *fakeQuarantineWriter) Add(q generate.Quarantined) error {
	f.added = append(f.added, q)
	return nil
}

// fakeDhatuRepository is an in-memory dhatu index.
type fakeDhatuRepository struct {
	pairs map[string][]string // form -> codes, insertion order
}

func newFakeDhatuRepository() *fakeDhatuRepository {
	return &fakeDhatuRepository{pairs: make(map[string][]string)}
}

func (f *fakeDhatuRepository) Add(ctx context.Context, form, code string) error {
	for _, c := range f.pairs[form] {
		if c == code {
			return nil
		}
	}
	f.pairs[form] = append(f.pairs[form], code)
	return nil
}

func (f *fakeDhatuRepository) Codes(ctx context.Context, form string) ([]string, error) {
	return f.pairs[form], nil
}

func (f *fakeDhatuRepository) HasCode(ctx context.Context, code string) (bool, error) {
	for _, codes := range f.pairs {
		for _, c := range codes {
			if c == code {
				return true, nil
			}
		}
	}
	return false, nil
}

func (f *fakeDhatuRepository) Count(ctx context.Context) (int, error) {
	n := 0
	for _, codes := range f.pairs {
		n += len(codes)
	}
	return n, nil
}
