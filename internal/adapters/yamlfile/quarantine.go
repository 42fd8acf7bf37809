package yamlfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/kosha/internal/core/generate"
)

const (
	quarantineJSONName = "invalid.text_numbers.json"
	quarantineYAMLName = "invalid.text_numbers.yaml"
)

// QuarantineStore persists records whose text numbers failed to parse.
// Each record is written verbatim as one JSON line, and, when its fields
// allow it, mirrored into a YAML file using the same block format as the
// canonical files. Both files are append-only, like everything else the
// generator writes.
type QuarantineStore struct {
	dir string
}

// NewQuarantineStore creates a store writing into dir.
func NewQuarantineStore(dir string) *QuarantineStore {
	return &QuarantineStore{dir: dir}
}

// JSONPath returns the NDJSON file path.
func (s *QuarantineStore) JSONPath() string {
	return filepath.Join(s.dir, quarantineJSONName)
}

// YAMLPath returns the YAML mirror path.
func (s *QuarantineStore) YAMLPath() string {
	return filepath.Join(s.dir, quarantineYAMLName)
}

// quarantinePayload mirrors the export entry shape so the original record
// survives verbatim in the JSON line.
type quarantinePayload struct {
	Artha      string   `json:"artha"`
	TextNumber string   `json:"text_number"`
	Synonyms   []string `json:"synonyms"`
}

// Add persists one quarantined record. The JSON line is always written; the
// YAML mirror only for coordinate failures whose gloss and synonyms are
// still renderable.
func (s *QuarantineStore) Add(q generate.Quarantined) error {
	if err := s.appendJSON(q.Record); err != nil {
		return err
	}
	if q.Reason != generate.ReasonBadCoordinate {
		return nil
	}
	if !mirrorable(q.Record) {
		return nil
	}
	if err := appendBlock(s.YAMLPath(), q.Record.Artha, q.Record.Synonyms); err != nil {
		return fmt.Errorf("failed to mirror quarantine entry: %w", err)
	}
	return nil
}

func (s *QuarantineStore) appendJSON(rec generate.Record) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create quarantine directory: %w", err)
	}

	// The line keeps the export's [headword, payload] tuple shape.
	line, err := json.Marshal([]interface{}{rec.Headword, quarantinePayload{
		Artha:      rec.Artha,
		TextNumber: rec.TextNumber,
		Synonyms:   rec.Synonyms,
	}})
	if err != nil {
		return fmt.Errorf("failed to marshal quarantine entry: %w", err)
	}

	f, err := os.OpenFile(s.JSONPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open quarantine file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append quarantine entry: %w", err)
	}
	return nil
}

// readJSON reads the NDJSON file back into records, one per line.
func (s *QuarantineStore) readJSON() ([]generate.Record, error) {
	data, err := os.ReadFile(s.JSONPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read quarantine file: %w", err)
	}

	var records []generate.Record
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var raw []json.RawMessage
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			return nil, fmt.Errorf("malformed quarantine line: %w", err)
		}
		if len(raw) != 2 {
			return nil, fmt.Errorf("malformed quarantine line: expected [headword, payload]")
		}
		var rec generate.Record
		if err := json.Unmarshal(raw[0], &rec.Headword); err != nil {
			return nil, fmt.Errorf("malformed quarantine headword: %w", err)
		}
		var payload quarantinePayload
		if err := json.Unmarshal(raw[1], &payload); err != nil {
			return nil, fmt.Errorf("malformed quarantine payload: %w", err)
		}
		rec.Artha = payload.Artha
		rec.TextNumber = payload.TextNumber
		rec.Synonyms = payload.Synonyms
		records = append(records, rec)
	}
	return records, nil
}

// mirrorable matches the guard the YAML mirror has always applied: a usable
// gloss and no blank synonyms.
func mirrorable(rec generate.Record) bool {
	if strings.TrimSpace(rec.Artha) == "" {
		return false
	}
	for _, syn := range rec.Synonyms {
		if strings.TrimSpace(syn) == "" {
			return false
		}
	}
	return true
}
