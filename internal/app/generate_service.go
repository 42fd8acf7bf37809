package app

import (
	"fmt"

	"github.com/example/kosha/internal/adapters/stardict"
	"github.com/example/kosha/internal/core/generate"
	"github.com/example/kosha/internal/ports/secondary"
)

// GenerateService distributes parsed dictionary entries into the generated
// tree, quarantining what cannot be placed.
type GenerateService struct {
	canonical  secondary.CanonicalWriter
	quarantine secondary.QuarantineWriter
}

// NewGenerateService creates a new GenerateService with injected dependencies.
func NewGenerateService(canonical secondary.CanonicalWriter, quarantine secondary.QuarantineWriter) *GenerateService {
	return &GenerateService{
		canonical:  canonical,
		quarantine: quarantine,
	}
}

// GenerateReport summarizes one generation run.
type GenerateReport struct {
	Total         int // entries read from the export
	Appended      int // blocks appended to the generated tree
	BadCoordinate int // quarantined: unusable text number
	BadFields     int // quarantined: blank artha or synonym
}

// Quarantined returns the total number of quarantined entries.
func (r GenerateReport) Quarantined() int {
	return r.BadCoordinate + r.BadFields
}

// Generate reads the export and appends every entry to its bucket file, in
// export order. Re-running appends the same blocks again; the generated tree
// is append-only and never deduplicated.
func (s *GenerateService) Generate(inputPath string) (*GenerateReport, error) {
	dict, err := stardict.ReadExport(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	records := make([]generate.Record, len(dict.Entries))
	for i, e := range dict.Entries {
		records[i] = generate.Record{
			Headword:   e.Headword,
			Artha:      e.Artha,
			TextNumber: e.TextNumber,
			Synonyms:   e.Synonyms,
		}
	}

	result := generate.Route(records)

	report := &GenerateReport{Total: len(records)}
	for _, p := range result.Placements {
		if err := s.canonical.Append(p.Bucket.Khanda, p.Bucket.Varga, p.Record.Artha, p.Record.Synonyms); err != nil {
			return nil, fmt.Errorf("failed to append entry %q: %w", p.Record.Headword, err)
		}
		report.Appended++
	}
	for _, q := range result.Quarantined {
		if err := s.quarantine.Add(q); err != nil {
			return nil, fmt.Errorf("failed to quarantine entry %q: %w", q.Record.Headword, err)
		}
		switch q.Reason {
		case generate.ReasonBadCoordinate:
			report.BadCoordinate++
		default:
			report.BadFields++
		}
	}

	return report, nil
}
