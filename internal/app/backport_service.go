package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/example/kosha/internal/adapters/yamlfile"
	"github.com/example/kosha/internal/core/backport"
	"github.com/example/kosha/internal/core/entry"
	"github.com/example/kosha/internal/ports/secondary"
)

// BackportService carries resolved review edits back into the canonical data
// tree. Each eligible record is matched to exactly one position; only the
// dhatu value of that position is rewritten.
type BackportService struct {
	dhatu secondary.DhatuRepository
}

// NewBackportService creates a new BackportService. The dhatu repository is
// only consulted when id checking is requested and may be nil otherwise.
func NewBackportService(dhatu secondary.DhatuRepository) *BackportService {
	return &BackportService{dhatu: dhatu}
}

// BackportReport summarizes one backport run.
type BackportReport struct {
	Processed         int
	Matched           int
	Updated           int
	SkippedUnresolved int
	SkippedPristine   int
	SkippedNanartha   int
	NotFound          int
	Ambiguous         int
	FilesModified     int
	UnknownIDs        []string // ids the dhatu index does not know (warning only)
	Notes             []string // per-record lines for conditions needing a human
}

// Backport walks every review record of the source (a part file or a folder
// of part files) and applies eligible edits to the tree rooted at dataRoot.
// With checkIDs set, new ids are validated against the dhatu index; unknown
// ids are reported but still written.
//
// Matching prefers the surrogate key; records without one fall back to the
// (form, artha, shloka text) tuple. More than one surviving candidate is an
// ambiguity, reported and never auto-resolved. Re-running a backport finds
// the values already in place and modifies nothing.
func (s *BackportService) Backport(ctx context.Context, source, dataRoot string, checkIDs bool) (*BackportReport, error) {
	parts, err := sourceParts(source)
	if err != nil {
		return nil, err
	}

	tree := yamlfile.NewDataTree(dataRoot)
	loaded := make(map[string]*yamlfile.DataFile)
	modified := make(map[string]bool)
	report := &BackportReport{}

	for _, partPath := range parts {
		part, err := yamlfile.LoadPart(partPath)
		if err != nil {
			return nil, err
		}
		items, err := part.Items()
		if err != nil {
			return nil, err
		}

		for _, item := range items {
			rec := item.Record
			value := rec.DhatuValue()
			report.Processed++

			guard := backport.CanBackport(backport.EligibilityContext{
				Form:       rec.Form,
				Resolved:   bool(rec.Resolved),
				DhatuValue: value,
			})
			if !guard.Allowed {
				if !rec.Resolved {
					report.SkippedUnresolved++
				} else {
					report.SkippedPristine++
				}
				continue
			}
			if backport.IsNanartha(rec.Varga) {
				report.SkippedNanartha++
				continue
			}

			filePath, ok, err := tree.ResolveFile(rec.Kanda, rec.Varga, rec.Adhikaar)
			if err != nil {
				return nil, err
			}
			if !ok {
				report.NotFound++
				report.Notes = append(report.Notes, fmt.Sprintf(
					"%s: no data file for %s / %s / %s",
					filepath.Base(partPath), rec.Kanda, rec.Varga, rec.Adhikaar))
				continue
			}

			file := loaded[filePath]
			if file == nil {
				file, err = tree.LoadFile(filePath)
				if err != nil {
					return nil, err
				}
				loaded[filePath] = file
			}

			matched := file.FindCandidates(rec.ShlokaText, rec.Artha, rec.Form)
			if rec.SurrogateKey != "" {
				var byKey []yamlfile.Candidate
				for _, c := range matched {
					if c.MatchesKey(rec.SurrogateKey, rec.Form, rec.Kanda, rec.Varga, rec.Adhikaar) {
						byKey = append(byKey, c)
					}
				}
				if len(byKey) > 0 {
					matched = byKey
				}
			}

			switch backport.Classify(true, value, len(matched)) {
			case backport.OutcomeNotFound:
				report.NotFound++
				report.Notes = append(report.Notes, fmt.Sprintf(
					"%s: %s not found in %s",
					filepath.Base(partPath), rec.Form, filepath.Base(filePath)))

			case backport.OutcomeAmbiguous:
				report.Ambiguous++
				report.Notes = append(report.Notes, fmt.Sprintf(
					"%s: %s matches %d shlokas in %s, leaving untouched",
					filepath.Base(partPath), rec.Form, len(matched), filepath.Base(filePath)))

			case backport.OutcomeUpdated:
				report.Matched++
				id := entry.CleanDhatuID(value)
				if checkIDs && s.dhatu != nil {
					known, err := s.dhatu.HasCode(ctx, id)
					if err != nil {
						return nil, fmt.Errorf("failed to check id %s: %w", id, err)
					}
					if !known {
						report.UnknownIDs = append(report.UnknownIDs, id)
					}
				}

				desired := []string{id}
				if gati := strings.TrimSpace(rec.Gati); gati != "" {
					desired = []string{gati, id}
				}
				target := matched[0]
				if slices.Equal(target.DhatuValue(), desired) {
					continue
				}
				target.SetDhatu(rec.Gati, id)
				report.Updated++
				modified[filePath] = true
			}
		}
	}

	for path, file := range loaded {
		if !modified[path] {
			continue
		}
		if err := file.Save(); err != nil {
			return nil, err
		}
		report.FilesModified++
	}

	return report, nil
}

// sourceParts resolves the backport source argument to a list of part files.
func sourceParts(source string) ([]string, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("failed to stat source: %w", err)
	}
	if !info.IsDir() {
		return []string{source}, nil
	}

	parts, err := yamlfile.ListParts(source)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("no part files in %s", source)
	}
	return parts, nil
}
