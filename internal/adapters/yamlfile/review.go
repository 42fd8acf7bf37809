package yamlfile

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/kosha/internal/core/entry"
)

// entryCountRe matches the header line carrying the remaining-entry count.
var entryCountRe = regexp.MustCompile(`^#\s*ENTRIES TO CORRECT:\s*\d+\s*$`)

// PartFile is one review YAML file: an optional comment header followed by an
// ordered mapping of record keys to review entries. The underlying node tree
// is kept so edits touch only the fields they mean to.
type PartFile struct {
	Path   string
	Header []string

	mapping *yaml.Node
}

// ReviewItem is one keyed record of a part file together with its node, so
// callers can decide based on the decoded view and edit through the node.
type ReviewItem struct {
	Key    string
	Record entry.ReviewRecord

	node *yaml.Node
}

// LoadPart reads a review file, separating the comment header from the data.
func LoadPart(path string) (*PartFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &PartFile{
		Path:    path,
		Header:  readHeader(data),
		mapping: documentMapping(&doc),
	}, nil
}

// NewPart assembles a part file from existing items. The items keep their
// source nodes, so everything the source carried survives verbatim.
func NewPart(path string, header []string, items []ReviewItem) *PartFile {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, item := range items {
		node := item.node
		if node == nil {
			node = recordNode(item.Record)
		}
		appendPair(m, item.Key, node)
	}
	return &PartFile{Path: path, Header: header, mapping: m}
}

// readHeader collects leading comment lines, stopping at the first line that
// is neither a comment nor blank.
func readHeader(data []byte) []string {
	var header []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			header = append(header, strings.TrimRight(line, " \t"))
			continue
		}
		if strings.TrimSpace(line) != "" {
			break
		}
	}
	return header
}

// Len returns the number of records in the file.
func (p *PartFile) Len() int {
	return len(p.mapping.Content) / 2
}

// Items decodes every record, in file order.
func (p *PartFile) Items() ([]ReviewItem, error) {
	var items []ReviewItem
	for i := 0; i+1 < len(p.mapping.Content); i += 2 {
		key := p.mapping.Content[i].Value
		node := p.mapping.Content[i+1]

		var rec entry.ReviewRecord
		if node.Kind == yaml.MappingNode {
			if err := node.Decode(&rec); err != nil {
				return nil, fmt.Errorf("entry %q in %s: %w", key, p.Path, err)
			}
		}
		items = append(items, ReviewItem{Key: key, Record: rec, node: node})
	}
	return items, nil
}

// EnsureReviewFields adds resolved/comment fields to records missing them,
// leaving already-set values alone. Returns the number of records touched.
func (p *PartFile) EnsureReviewFields() int {
	touched := 0
	for i := 1; i < len(p.mapping.Content); i += 2 {
		node := p.mapping.Content[i]
		if node.Kind != yaml.MappingNode {
			continue
		}
		changed := false
		if !hasKey(node, "resolved") {
			appendPair(node, "resolved", quoted("false"))
			changed = true
		}
		if !hasKey(node, "comment") {
			appendPair(node, "comment", quoted(""))
			changed = true
		}
		if changed {
			touched++
		}
	}
	return touched
}

// EnsureSurrogateKeys computes and stores the surrogate key for records that
// lack one. Returns the number of records touched.
func (p *PartFile) EnsureSurrogateKeys() (int, error) {
	touched := 0
	for i := 1; i < len(p.mapping.Content); i += 2 {
		node := p.mapping.Content[i]
		if node.Kind != yaml.MappingNode || hasKey(node, "key") {
			continue
		}
		var e entry.Entry
		if err := node.Decode(&e); err != nil {
			return touched, fmt.Errorf("entry in %s: %w", p.Path, err)
		}
		appendPair(node, "key", quoted(e.Key()))
		touched++
	}
	return touched, nil
}

// RemoveResolved drops every record marked resolved and returns their keys.
func (p *PartFile) RemoveResolved() ([]string, error) {
	items, err := p.Items()
	if err != nil {
		return nil, err
	}

	var removed []string
	kept := &yaml.Node{Kind: yaml.MappingNode}
	for _, item := range items {
		if item.Record.Resolved {
			removed = append(removed, item.Key)
			continue
		}
		appendPair(kept, item.Key, item.node)
	}
	p.mapping = kept
	return removed, nil
}

// SetHeaderCount rewrites the remaining-entry count in the header, if the
// header carries one.
func (p *PartFile) SetHeaderCount(n int) {
	for i, line := range p.Header {
		if entryCountRe.MatchString(line) {
			p.Header[i] = fmt.Sprintf("# ENTRIES TO CORRECT: %d", n)
		}
	}
}

// Save writes the header and records back to the file as one atomic rewrite.
func (p *PartFile) Save() error {
	if err := os.MkdirAll(filepath.Dir(p.Path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	var buf bytes.Buffer
	for _, line := range p.Header {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if len(p.Header) > 0 {
		buf.WriteByte('\n')
	}

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p.mapping); err != nil {
		return fmt.Errorf("failed to encode %s: %w", p.Path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finish encoding %s: %w", p.Path, err)
	}

	if err := os.WriteFile(p.Path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.Path, err)
	}
	return nil
}

// recordNode renders a review record as a fresh mapping node, double-quoted
// like the exported files. Only used when no source node exists.
func recordNode(rec entry.ReviewRecord) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key, value string) {
		appendPair(m, key, quoted(value))
	}

	add("form", rec.Form)
	if rec.DhatuIDs != "" {
		add("dhatu_ids", rec.DhatuIDs)
	} else {
		add("dhatu_id", rec.DhatuID)
	}
	if rec.Gati != "" {
		add("gati", rec.Gati)
	}
	add("kanda", rec.Kanda)
	add("varga", rec.Varga)
	if rec.Adhikaar != "" {
		add("adhikaar", rec.Adhikaar)
	}
	add("artha", rec.Artha)
	if rec.ShlokaNum != "" {
		add("shloka_num", rec.ShlokaNum)
	}
	add("shloka_text", rec.ShlokaText)
	if rec.SurrogateKey != "" {
		add("key", rec.SurrogateKey)
	}
	if rec.Resolved {
		add("resolved", "true")
	} else {
		add("resolved", "false")
	}
	add("comment", rec.Comment)
	return m
}

// ListParts returns the part_NN.yaml files of a folder in name order.
func ListParts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var parts []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "part_") || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		parts = append(parts, filepath.Join(dir, name))
	}
	return parts, nil
}
