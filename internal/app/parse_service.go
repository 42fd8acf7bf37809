// Package app contains the services that orchestrate the core logic and the
// storage adapters, one per pipeline stage. Services return report structs;
// the cli layer decides how to print them.
package app

import (
	"fmt"

	"github.com/example/kosha/internal/adapters/stardict"
)

// ParseService turns a StarDict dictionary folder into the JSON export the
// rest of the pipeline consumes.
type ParseService struct{}

// NewParseService creates a new ParseService.
func NewParseService() *ParseService {
	return &ParseService{}
}

// ParseReport summarizes one parse run.
type ParseReport struct {
	DictionaryName string
	Version        string
	Entries        int
	OutputPath     string
}

// Parse reads the dictionary folder and writes the export file.
func (s *ParseService) Parse(dictDir, outPath string) (*ParseReport, error) {
	dict, err := stardict.ParseDir(dictDir)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dictionary: %w", err)
	}

	if err := stardict.WriteExport(outPath, dict); err != nil {
		return nil, fmt.Errorf("failed to write export: %w", err)
	}

	return &ParseReport{
		DictionaryName: dict.Name,
		Version:        dict.Version,
		Entries:        len(dict.Entries),
		OutputPath:     outPath,
	}, nil
}
