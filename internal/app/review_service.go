package app

import (
	"fmt"

	"github.com/example/kosha/internal/adapters/yamlfile"
)

// ReviewService maintains the part files while they circulate among
// proofreaders.
type ReviewService struct{}

// NewReviewService creates a new ReviewService.
func NewReviewService() *ReviewService {
	return &ReviewService{}
}

// AddFieldsReport summarizes one add-fields run.
type AddFieldsReport struct {
	Files          int
	RecordsTouched int
	KeysAssigned   int
}

// AddFields ensures every record of every part file carries the resolved and
// comment fields plus a surrogate key, preserving values already present.
// Older part files produced before these fields existed become reviewable
// without retyping anything.
func (s *ReviewService) AddFields(dir string) (*AddFieldsReport, error) {
	paths, err := yamlfile.ListParts(dir)
	if err != nil {
		return nil, err
	}

	report := &AddFieldsReport{}
	for _, path := range paths {
		part, err := yamlfile.LoadPart(path)
		if err != nil {
			return nil, err
		}

		touched := part.EnsureReviewFields()
		keyed, err := part.EnsureSurrogateKeys()
		if err != nil {
			return nil, err
		}
		if touched == 0 && keyed == 0 {
			continue
		}

		if err := part.Save(); err != nil {
			return nil, err
		}
		report.Files++
		report.RecordsTouched += touched
		report.KeysAssigned += keyed
	}

	return report, nil
}

// RemoveResolvedReport summarizes one remove-resolved run. Removed maps each
// part file to the keys that were (or would be) dropped.
type RemoveResolvedReport struct {
	DryRun    bool
	Files     int
	Removed   map[string][]string
	Remaining int
}

// TotalRemoved returns the number of dropped records across all files.
func (r RemoveResolvedReport) TotalRemoved() int {
	n := 0
	for _, keys := range r.Removed {
		n += len(keys)
	}
	return n
}

// RemoveResolved drops every record marked resolved from every part file and
// rewrites the remaining-entry count in the header. With dryRun set, nothing
// is written; the report carries what a real run would remove.
func (s *ReviewService) RemoveResolved(dir string, dryRun bool) (*RemoveResolvedReport, error) {
	paths, err := yamlfile.ListParts(dir)
	if err != nil {
		return nil, err
	}

	report := &RemoveResolvedReport{DryRun: dryRun, Removed: make(map[string][]string)}
	for _, path := range paths {
		part, err := yamlfile.LoadPart(path)
		if err != nil {
			return nil, err
		}

		removed, err := part.RemoveResolved()
		if err != nil {
			return nil, err
		}
		report.Files++
		report.Remaining += part.Len()
		if len(removed) > 0 {
			report.Removed[path] = removed
		}

		if dryRun || len(removed) == 0 {
			continue
		}
		part.SetHeaderCount(part.Len())
		if err := part.Save(); err != nil {
			return nil, fmt.Errorf("failed to rewrite %s: %w", path, err)
		}
	}

	return report, nil
}
