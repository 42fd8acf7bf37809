package yamlfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/kosha/internal/core/backport"
	"github.com/example/kosha/internal/core/entry"
)

// DataTree is the canonical data folder the backporter edits: one directory
// per kanda (named "<id>_<kandaName>"), one YAML file per varga, or a varga
// directory of per-adhikaar files for sections with sub-vargas. Files map
// shloka text to glosses to verb forms, whose values are
// [gati, dhatu_id], [dhatu_id], or null.
type DataTree struct {
	root string
}

// NewDataTree opens a data tree rooted at the given directory.
func NewDataTree(root string) *DataTree {
	return &DataTree{root: root}
}

// Root returns the data tree's root directory.
func (t *DataTree) Root() string {
	return t.root
}

// ResolveFile locates the YAML file for a (kanda, varga, adhikaar) address.
// ok=false means the address does not map to an existing file; that is a
// data-level condition, not an error.
func (t *DataTree) ResolveFile(kanda, varga, adhikaar string) (string, bool, error) {
	kandaID, ok := backport.KandaID(kanda)
	if !ok {
		return "", false, nil
	}

	kandaDir := filepath.Join(t.root, kandaID+"_"+kanda)
	if _, err := os.Stat(kandaDir); os.IsNotExist(err) {
		return "", false, nil
	} else if err != nil {
		return "", false, fmt.Errorf("failed to check kanda directory: %w", err)
	}

	dirEntries, err := os.ReadDir(kandaDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to read kanda directory: %w", err)
	}

	if adhikaar != "" {
		fileNum, ok := backport.AdhikaarFile(adhikaar)
		if !ok {
			return "", false, nil
		}
		for _, de := range dirEntries {
			if !de.IsDir() || !strings.Contains(de.Name(), varga) {
				continue
			}
			path := filepath.Join(kandaDir, de.Name(), fileNum+"_"+adhikaar+".yaml")
			if _, err := os.Stat(path); err == nil {
				return path, true, nil
			}
			break
		}
		return "", false, nil
	}

	for _, de := range dirEntries {
		if de.IsDir() || !strings.Contains(de.Name(), varga) || !strings.HasSuffix(de.Name(), ".yaml") {
			continue
		}
		return filepath.Join(kandaDir, de.Name()), true, nil
	}
	return "", false, nil
}

// DataFile is one loaded data-tree document, held as a node tree so a dhatu
// edit leaves every other line of the file alone.
type DataFile struct {
	Path string

	doc     *yaml.Node
	mapping *yaml.Node
}

// LoadFile parses a data-tree YAML file.
func (t *DataTree) LoadFile(path string) (*DataFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &DataFile{Path: path, doc: &doc, mapping: documentMapping(&doc)}, nil
}

// Candidate is one position in the file that could correspond to a review
// record: the shloka key it sits under and the value node of the verb form.
type Candidate struct {
	Shloka string

	value *yaml.Node
}

// FindCandidates collects every position matching (shloka text, artha, form).
// Shloka keys match by containment in either direction: review exports carry
// the verse with or without the closing danda, so exact equality would lose
// legitimate matches.
func (f *DataFile) FindCandidates(shlokaText, artha, form string) []Candidate {
	needle := strings.TrimSpace(shlokaText)

	var candidates []Candidate
	for i := 0; i+1 < len(f.mapping.Content); i += 2 {
		shlokaKey := f.mapping.Content[i].Value
		if !strings.Contains(shlokaKey, needle) && !strings.Contains(needle, strings.TrimSpace(shlokaKey)) {
			continue
		}

		shlokaNode := f.mapping.Content[i+1]
		if shlokaNode.Kind != yaml.MappingNode {
			continue
		}
		arthaNode := mappingValue(shlokaNode, artha)
		if arthaNode == nil || arthaNode.Kind != yaml.MappingNode {
			continue
		}
		formValue := mappingValue(arthaNode, form)
		if formValue == nil {
			continue
		}
		candidates = append(candidates, Candidate{Shloka: shlokaKey, value: formValue})
	}
	return candidates
}

// MatchesKey reports whether the candidate position hashes to the given
// surrogate key for the file's address. Exported records computed their key
// from these same fields, so a key match pins the exact verse even when the
// identity tuple is duplicated.
func (c Candidate) MatchesKey(key, form, kanda, varga, adhikaar string) bool {
	e := entry.Entry{
		Form:       form,
		Kanda:      kanda,
		Varga:      varga,
		Adhikaar:   adhikaar,
		ShlokaText: c.Shloka,
	}
	return e.Key() == key
}

// SetDhatu overwrites the candidate's value with [gati, dhatuID] or
// [dhatuID], mutating only that node.
func (c Candidate) SetDhatu(gati, dhatuID string) {
	seq := []*yaml.Node{}
	if strings.TrimSpace(gati) != "" {
		seq = append(seq, quoted(gati))
	}
	seq = append(seq, quoted(dhatuID))

	c.value.Kind = yaml.SequenceNode
	c.value.Tag = "!!seq"
	c.value.Value = ""
	c.value.Style = 0
	c.value.Content = seq
}

// DhatuValue reads the candidate's current value back as its string list.
func (c Candidate) DhatuValue() []string {
	if c.value.Kind != yaml.SequenceNode {
		return nil
	}
	var out []string
	for _, item := range c.value.Content {
		out = append(out, item.Value)
	}
	return out
}

// Save rewrites the file from the node tree.
func (f *DataFile) Save() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f.mapping); err != nil {
		return fmt.Errorf("failed to encode %s: %w", f.Path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finish encoding %s: %w", f.Path, err)
	}

	if err := os.WriteFile(f.Path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	return nil
}
