package stardict

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// The parsed export is the handoff format between the parser and the
// generator: entries are [headword, payload] tuples so the headword survives
// even when two articles collide on content.

type exportDoc struct {
	DictionaryName string       `json:"dictionary_name"`
	Version        string       `json:"version"`
	Author         string       `json:"author"`
	Entries        []exportPair `json:"entries"`
}

type exportPayload struct {
	Artha      string   `json:"artha"`
	TextNumber string   `json:"text_number"`
	Synonyms   []string `json:"synonyms"`
}

type exportPair struct {
	Headword string
	Payload  exportPayload
}

func (p exportPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{p.Headword, p.Payload})
}

func (p *exportPair) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("export entry must be a [headword, payload] pair")
	}
	if err := json.Unmarshal(raw[0], &p.Headword); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &p.Payload)
}

// WriteExport serialises the dictionary to the parsed JSON export.
func WriteExport(path string, dict *Dictionary) error {
	doc := exportDoc{
		DictionaryName: dict.Name,
		Version:        dict.Version,
		Author:         dict.Author,
	}
	for _, e := range dict.Entries {
		doc.Entries = append(doc.Entries, exportPair{
			Headword: e.Headword,
			Payload: exportPayload{
				Artha:      e.Artha,
				TextNumber: e.TextNumber,
				Synonyms:   e.Synonyms,
			},
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ReadExport loads a parsed JSON export back into a Dictionary.
func ReadExport(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	var doc exportDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse export: %w", err)
	}

	dict := &Dictionary{
		Name:    doc.DictionaryName,
		Version: doc.Version,
		Author:  doc.Author,
	}
	for _, p := range doc.Entries {
		dict.Entries = append(dict.Entries, Entry{
			Headword:   p.Headword,
			Artha:      p.Payload.Artha,
			TextNumber: p.Payload.TextNumber,
			Synonyms:   p.Payload.Synonyms,
		})
	}
	return dict, nil
}
