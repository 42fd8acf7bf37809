package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/example/kosha/internal/ports/secondary"
)

// DhatuService maintains the verb form index used to validate backported ids.
type DhatuService struct {
	repo secondary.DhatuRepository
}

// NewDhatuService creates a new DhatuService with injected dependencies.
func NewDhatuService(repo secondary.DhatuRepository) *DhatuService {
	return &DhatuService{repo: repo}
}

// tenseForms is the slice of the DhatuForms document the index is built
// from: the parasmaipada and atmanepada present-tense grids. Other keys of
// the document are ignored.
type tenseForms struct {
	Plat string `json:"plat"`
	Alat string `json:"alat"`
}

// DhatuImportReport summarizes one import run.
type DhatuImportReport struct {
	Codes     int // dhatu codes seen in the input
	Pairs     int // form to code pairs offered to the index
	IndexSize int // rows in the index after the import
}

// Import reads a DhatuForms JSON document (dhatu code to tense grid) and
// indexes the first form of each semicolon-separated plat/alat value. A
// first form listing several comma-separated spellings contributes one row
// per spelling. Re-importing the same document changes nothing.
func (s *DhatuService) Import(ctx context.Context, formsFile string) (*DhatuImportReport, error) {
	data, err := os.ReadFile(formsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read forms file: %w", err)
	}

	var grids map[string]tenseForms
	if err := json.Unmarshal(data, &grids); err != nil {
		return nil, fmt.Errorf("failed to parse forms file: %w", err)
	}

	codes := make([]string, 0, len(grids))
	for code := range grids {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	report := &DhatuImportReport{Codes: len(codes)}
	for _, code := range codes {
		grid := grids[code]
		for _, value := range []string{grid.Plat, grid.Alat} {
			firstForm, _, _ := strings.Cut(value, ";")
			for _, form := range strings.Split(firstForm, ",") {
				form = strings.TrimSpace(form)
				if form == "" {
					continue
				}
				if err := s.repo.Add(ctx, form, code); err != nil {
					return nil, err
				}
				report.Pairs++
			}
		}
	}

	size, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	report.IndexSize = size

	return report, nil
}

// Lookup returns the dhatu codes indexed for a form.
func (s *DhatuService) Lookup(ctx context.Context, form string) ([]string, error) {
	return s.repo.Codes(ctx, form)
}
