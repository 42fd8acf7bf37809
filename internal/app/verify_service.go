package app

import (
	"fmt"

	"github.com/example/kosha/internal/adapters/yamlfile"
	"github.com/example/kosha/internal/core/verify"
)

// VerifyService checks that a folder of part files is a faithful partition
// of the file it was split from.
type VerifyService struct{}

// NewVerifyService creates a new VerifyService.
func NewVerifyService() *VerifyService {
	return &VerifyService{}
}

// VerifyReport summarizes one verification run. A failing Diff means the
// data diverged; it is reported, not treated as a process error.
type VerifyReport struct {
	SourceFile string
	Parts      int
	Diff       verify.Diff
}

// Verify recombines the part files under splitDir in name order and compares
// them against the source file.
func (s *VerifyService) Verify(sourceFile, splitDir string) (*VerifyReport, error) {
	source, err := loadPairs(sourceFile)
	if err != nil {
		return nil, err
	}

	paths, err := yamlfile.ListParts(splitDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no part files in %s", splitDir)
	}

	var combined []verify.Pair
	for _, path := range paths {
		pairs, err := loadPairs(path)
		if err != nil {
			return nil, err
		}
		combined = append(combined, pairs...)
	}

	return &VerifyReport{
		SourceFile: sourceFile,
		Parts:      len(paths),
		Diff:       verify.Compare(source, combined),
	}, nil
}

func loadPairs(path string) ([]verify.Pair, error) {
	part, err := yamlfile.LoadPart(path)
	if err != nil {
		return nil, err
	}
	items, err := part.Items()
	if err != nil {
		return nil, err
	}

	pairs := make([]verify.Pair, len(items))
	for i, item := range items {
		pairs[i] = verify.Pair{Key: item.Key, Record: item.Record}
	}
	return pairs, nil
}
