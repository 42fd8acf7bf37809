package yamlfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalAppendOrder(t *testing.T) {
	store := NewCanonicalStore(t.TempDir())

	require.NoError(t, store.Append(1, 1, "फले", []string{"फलति", "पक्वति"}))
	require.NoError(t, store.Append(1, 1, "सत्तायाम्", []string{"भवति"}))
	require.NoError(t, store.Append(1, 1, "गतौ", []string{"गच्छति"}))

	blocks, err := readBlocks(store.FilePath(1, 1))
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Equal(t, "फले", blocks[0].Artha)
	assert.Equal(t, []string{"फलति", "पक्वति"}, blocks[0].Synonyms)
	assert.Equal(t, "सत्तायाम्", blocks[1].Artha)
	assert.Equal(t, "गतौ", blocks[2].Artha)
}

func TestCanonicalAppendFormat(t *testing.T) {
	store := NewCanonicalStore(t.TempDir())

	require.NoError(t, store.Append(1, 1, "फले", []string{"फलति"}))
	require.NoError(t, store.Append(1, 1, "गतौ", []string{"गच्छति"}))

	data, err := os.ReadFile(store.FilePath(1, 1))
	require.NoError(t, err)

	want := "फले:\n  - फलति:\n\nगतौ:\n  - गच्छति:\n"
	assert.Equal(t, want, string(data))
}

func TestCanonicalAppendIsNotIdempotent(t *testing.T) {
	dir := t.TempDir()
	store := NewCanonicalStore(dir)

	// Pre-existing content must never be reordered or deduplicated; a rerun
	// simply appends again.
	require.NoError(t, store.Append(2, 3, "अर्थः", []string{"पर्यायः"}))
	require.NoError(t, store.Append(2, 3, "अर्थः", []string{"पर्यायः"}))

	blocks, err := readBlocks(store.FilePath(2, 3))
	require.NoError(t, err)
	assert.Len(t, blocks, 2)
	assert.Equal(t, blocks[0], blocks[1])
}

func TestCanonicalFilePath(t *testing.T) {
	store := NewCanonicalStore("/data/generated")
	assert.Equal(t, filepath.Join("/data/generated", "1", "13.yaml"), store.FilePath(1, 13))
}
