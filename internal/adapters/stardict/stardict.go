// Package stardict reads a StarDict dictionary folder (.ifo metadata, .idx
// word index, .dict or gzipped .dict.dz payload, optional .syn synonyms) and
// produces the parsed export the generation stage consumes.
package stardict

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/example/kosha/internal/core/coordinate"
)

// Entry is one parsed dictionary article. The payload of every article is
// three lines: the gloss, the dotted text number, and a space-separated
// synonym list.
type Entry struct {
	Headword   string
	Artha      string
	TextNumber string
	Synonyms   []string
}

// Dictionary is the parsed dictionary with its .ifo metadata, entries ordered
// by text number (malformed number parts sort as zero).
type Dictionary struct {
	Name    string
	Version string
	Author  string
	Entries []Entry
}

// indexEntry is one .idx record: a headword and where its article lives in
// the payload.
type indexEntry struct {
	word   string
	offset uint32
	size   uint32
}

// ParseDir reads a StarDict folder. The .ifo, .idx and .dict(.dz) files are
// required; .syn is optional.
func ParseDir(dir string) (*Dictionary, error) {
	var ifoPath, idxPath, dictPath, synPath string

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary folder: %w", err)
	}
	for _, de := range entries {
		name := de.Name()
		switch {
		case strings.HasSuffix(name, ".ifo"):
			ifoPath = filepath.Join(dir, name)
		case strings.HasSuffix(name, ".idx"):
			idxPath = filepath.Join(dir, name)
		case strings.HasSuffix(name, ".dict") || strings.HasSuffix(name, ".dict.dz"):
			dictPath = filepath.Join(dir, name)
		case strings.HasSuffix(name, ".syn"):
			synPath = filepath.Join(dir, name)
		}
	}
	if ifoPath == "" || idxPath == "" || dictPath == "" {
		return nil, fmt.Errorf("missing required .ifo, .idx or .dict(.dz) file in %s", dir)
	}

	meta, err := readIfo(ifoPath)
	if err != nil {
		return nil, err
	}
	index, err := readIndex(idxPath)
	if err != nil {
		return nil, err
	}
	payload, err := readPayload(dictPath)
	if err != nil {
		return nil, err
	}

	dict := &Dictionary{
		Name:    metaOr(meta, "bookname", "Unknown Dictionary"),
		Version: meta["version"],
		Author:  meta["author"],
	}

	for _, ie := range index {
		dict.Entries = append(dict.Entries, articleAt(payload, ie))
	}

	if synPath != "" {
		syns, err := readIndexFile(synPath)
		if err != nil {
			return nil, err
		}
		dict.Entries = append(dict.Entries, synonymEntries(payload, index, syns)...)
	}

	sort.SliceStable(dict.Entries, func(i, j int) bool {
		return coordinate.CompareKeys(
			coordinate.SortKey(dict.Entries[i].TextNumber),
			coordinate.SortKey(dict.Entries[j].TextNumber),
		) < 0
	})

	return dict, nil
}

// readIfo parses the key=value metadata lines.
func readIfo(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	meta := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, val, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		meta[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return meta, nil
}

// readIndex reads the .idx file: null-terminated headwords, each followed by
// a big-endian uint32 offset and size pair.
func readIndex(path string) ([]indexEntry, error) {
	return readIndexFile(path)
}

func readIndexFile(path string) ([]indexEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var index []indexEntry
	for pos := 0; pos < len(data); {
		nul := bytes.IndexByte(data[pos:], 0)
		if nul < 0 {
			break
		}
		word := string(data[pos : pos+nul])
		pos += nul + 1

		if pos+8 > len(data) {
			break
		}
		index = append(index, indexEntry{
			word:   word,
			offset: binary.BigEndian.Uint32(data[pos : pos+4]),
			size:   binary.BigEndian.Uint32(data[pos+4 : pos+8]),
		})
		pos += 8
	}
	return index, nil
}

// readPayload reads the article data, transparently decompressing .dz files.
func readPayload(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".dz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// articleAt slices one article out of the payload and splits its three
// lines. Short articles produce partially-filled entries; the generation
// stage quarantines anything unusable.
func articleAt(payload []byte, ie indexEntry) Entry {
	end := int(ie.offset) + int(ie.size)
	if end > len(payload) {
		end = len(payload)
	}
	start := int(ie.offset)
	if start > len(payload) {
		start = len(payload)
	}

	e := Entry{Headword: ie.word}
	lines := strings.Split(string(payload[start:end]), "\n")
	if len(lines) > 0 {
		e.Artha = lines[0]
	}
	if len(lines) > 1 {
		e.TextNumber = lines[1]
	}
	if len(lines) > 2 && lines[2] != "" {
		e.Synonyms = strings.Split(lines[2], " ")
	}
	return e
}

// synonymEntries resolves .syn records to their main article by matching the
// (offset, size) pair and emits one entry per alternate word, each pointing
// back at its main headword.
func synonymEntries(payload []byte, index, syns []indexEntry) []Entry {
	type location struct{ offset, size uint32 }
	byLocation := make(map[location]indexEntry, len(index))
	for _, ie := range index {
		loc := location{ie.offset, ie.size}
		if _, ok := byLocation[loc]; !ok {
			byLocation[loc] = ie
		}
	}

	var out []Entry
	for _, syn := range syns {
		main, ok := byLocation[location{syn.offset, syn.size}]
		if !ok {
			continue
		}
		article := articleAt(payload, main)
		out = append(out, Entry{
			Headword:   syn.word,
			Artha:      article.Artha,
			TextNumber: article.TextNumber,
			Synonyms:   []string{main.word},
		})
	}
	return out
}

func metaOr(meta map[string]string, key, fallback string) string {
	if v, ok := meta[key]; ok && v != "" {
		return v
	}
	return fallback
}
