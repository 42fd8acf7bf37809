package yamlfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// CanonicalStore writes the generated per-varga files under a root directory:
// one directory per khanda, one file per varga, each an ordered list of
// gloss blocks:
//
//	artha:
//	  - synonym1:
//	  - synonym2:
//
// Files are strictly append-only. Whatever a file already contains is never
// reparsed or reordered; new blocks land after it, separated by a blank line.
type CanonicalStore struct {
	root string
}

// NewCanonicalStore creates a store rooted at the given directory.
func NewCanonicalStore(root string) *CanonicalStore {
	return &CanonicalStore{root: root}
}

// Root returns the store's root directory.
func (s *CanonicalStore) Root() string {
	return s.root
}

// FilePath returns the canonical file for a (khanda, varga) bucket.
func (s *CanonicalStore) FilePath(khanda, varga int) string {
	return filepath.Join(s.root, strconv.Itoa(khanda), strconv.Itoa(varga)+".yaml")
}

// Append renders one gloss block and appends it to the bucket's file.
func (s *CanonicalStore) Append(khanda, varga int, artha string, synonyms []string) error {
	return appendBlock(s.FilePath(khanda, varga), artha, synonyms)
}

// renderBlock produces the canonical block text. Synonym values stay empty on
// purpose: the block is a worksheet the editors later fill in.
func renderBlock(artha string, synonyms []string) string {
	var b strings.Builder
	b.WriteString(artha)
	b.WriteString(":\n")
	for _, syn := range synonyms {
		b.WriteString("  - ")
		b.WriteString(syn)
		b.WriteString(":\n")
	}
	return b.String()
}

// appendBlock appends a block to path, creating parent directories as needed
// and inserting a separating blank line when the file already has content.
func appendBlock(path, artha string, synonyms []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	separator := ""
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		separator = "\n"
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(separator + renderBlock(artha, synonyms)); err != nil {
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}
	return nil
}

// block is one gloss block read back from a canonical file.
type block struct {
	Artha    string
	Synonyms []string
}

// readBlocks parses a canonical file back into its ordered blocks. Duplicate
// glosses are legal (generation never deduplicates), which rules out decoding
// into a Go map; the node tree keeps every pair.
func readBlocks(path string) ([]block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	m := documentMapping(&doc)
	var blocks []block
	for i := 0; i+1 < len(m.Content); i += 2 {
		b := block{Artha: m.Content[i].Value}
		if seq := m.Content[i+1]; seq.Kind == yaml.SequenceNode {
			for _, item := range seq.Content {
				if item.Kind == yaml.MappingNode && len(item.Content) >= 1 {
					b.Synonyms = append(b.Synonyms, item.Content[0].Value)
				}
			}
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}
