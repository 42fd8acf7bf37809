package app

import (
	"fmt"
	"path/filepath"

	"github.com/example/kosha/internal/adapters/yamlfile"
	"github.com/example/kosha/internal/core/split"
)

// SplitService cuts one review source file into numbered part files for
// distribution among proofreaders.
type SplitService struct{}

// NewSplitService creates a new SplitService.
func NewSplitService() *SplitService {
	return &SplitService{}
}

// SplitReport summarizes one split run.
type SplitReport struct {
	SourceEntries int
	Parts         int
	KeysAssigned  int
	Files         []string
}

// Split partitions the source into contiguous chunks, writing part_01.yaml
// through part_NN.yaml under destDir. Records keep their source order and
// everything they carried; the review bookkeeping fields and the surrogate
// key are added here. Re-running overwrites the previous parts.
func (s *SplitService) Split(sourceFile, destDir string, parts int) (*SplitReport, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("part count must be positive, got %d", parts)
	}

	source, err := yamlfile.LoadPart(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load source: %w", err)
	}
	items, err := source.Items()
	if err != nil {
		return nil, fmt.Errorf("failed to decode source: %w", err)
	}

	ranges := split.Boundaries(len(items), parts)
	report := &SplitReport{SourceEntries: len(items), Parts: len(ranges)}

	for i, r := range ranges {
		header := []string{
			fmt.Sprintf("# ENTRIES TO CORRECT: %d", r.Len()),
			fmt.Sprintf("# part %d of %d", i+1, len(ranges)),
		}

		path := filepath.Join(destDir, fmt.Sprintf("part_%02d.yaml", i+1))
		part := yamlfile.NewPart(path, header, items[r.Start:r.End])
		part.EnsureReviewFields()
		keyed, err := part.EnsureSurrogateKeys()
		if err != nil {
			return nil, fmt.Errorf("failed to key %s: %w", path, err)
		}
		report.KeysAssigned += keyed

		if err := part.Save(); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		report.Files = append(report.Files, path)
	}

	return report, nil
}
