package yamlfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePart = `# Cases where a verb has 'Not Found' dhatu_id
# ENTRIES TO CORRECT: 2
# This is part 1 of 10 - Assigned for proofreading

"भवति_1":
  form: "भवति"
  dhatu_id: "Not Found"
  kanda: "प्रथमकाण्डः"
  varga: "स्वर्गवर्गः"
  artha: "सत्तायाम्"
  shloka_text: "सत्तायां विद्यते भवति ॥"
  resolved: "true"
  comment: "confirmed"
"फलति_1":
  form: "फलति"
  dhatu_id: "Not Found"
  kanda: "प्रथमकाण्डः"
  varga: "स्वर्गवर्गः"
  artha: "फले"
  shloka_text: "फलत्येव सदा वृक्षः ॥"
  resolved: "false"
  comment: ""
`

func writePart(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPart(t *testing.T) {
	path := writePart(t, t.TempDir(), "part_01.yaml", samplePart)

	part, err := LoadPart(path)
	require.NoError(t, err)

	assert.Len(t, part.Header, 3)
	assert.Equal(t, "# ENTRIES TO CORRECT: 2", part.Header[1])
	assert.Equal(t, 2, part.Len())

	items, err := part.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "भवति_1", items[0].Key)
	assert.Equal(t, "भवति", items[0].Record.Form)
	assert.True(t, bool(items[0].Record.Resolved))
	assert.Equal(t, "confirmed", items[0].Record.Comment)
	assert.False(t, bool(items[1].Record.Resolved))
}

func TestEnsureReviewFields(t *testing.T) {
	content := `"गच्छति_1":
  form: "गच्छति"
  dhatu_id: "Not Found"
"भवति_1":
  form: "भवति"
  dhatu_id: "Not Found"
  resolved: "true"
  comment: "done"
`
	path := writePart(t, t.TempDir(), "part_01.yaml", content)
	part, err := LoadPart(path)
	require.NoError(t, err)

	assert.Equal(t, 1, part.EnsureReviewFields())
	require.NoError(t, part.Save())

	reloaded, err := LoadPart(path)
	require.NoError(t, err)
	items, err := reloaded.Items()
	require.NoError(t, err)

	assert.False(t, bool(items[0].Record.Resolved))
	assert.Equal(t, "", items[0].Record.Comment)
	// Existing values survive untouched.
	assert.True(t, bool(items[1].Record.Resolved))
	assert.Equal(t, "done", items[1].Record.Comment)
}

func TestEnsureSurrogateKeys(t *testing.T) {
	path := writePart(t, t.TempDir(), "part_01.yaml", samplePart)
	part, err := LoadPart(path)
	require.NoError(t, err)

	n, err := part.EnsureSurrogateKeys()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, part.Save())

	reloaded, err := LoadPart(path)
	require.NoError(t, err)
	items, err := reloaded.Items()
	require.NoError(t, err)
	assert.Equal(t, items[0].Record.Entry.Key(), items[0].Record.SurrogateKey)

	// Second pass finds nothing to do.
	n, err = reloaded.EnsureSurrogateKeys()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRemoveResolved(t *testing.T) {
	path := writePart(t, t.TempDir(), "part_01.yaml", samplePart)
	part, err := LoadPart(path)
	require.NoError(t, err)

	removed, err := part.RemoveResolved()
	require.NoError(t, err)
	assert.Equal(t, []string{"भवति_1"}, removed)

	part.SetHeaderCount(part.Len())
	require.NoError(t, part.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# ENTRIES TO CORRECT: 1")
	assert.NotContains(t, string(data), "भवति_1")
	assert.Contains(t, string(data), "फलति_1")
}

func TestSavePreservesUnknownFields(t *testing.T) {
	content := `"भवति_1":
  form: "भवति"
  dhatu_id: "01.0001"
  custom_note: "keep me"
  resolved: "false"
  comment: ""
`
	path := writePart(t, t.TempDir(), "part_01.yaml", content)
	part, err := LoadPart(path)
	require.NoError(t, err)
	require.NoError(t, part.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "custom_note")
}

func TestNewPartFromItems(t *testing.T) {
	dir := t.TempDir()
	src, err := LoadPart(writePart(t, dir, "source.yaml", samplePart))
	require.NoError(t, err)
	items, err := src.Items()
	require.NoError(t, err)

	header := []string{"# ENTRIES TO CORRECT: 1", "# This is part 1 of 2 - Assigned for proofreading"}
	out := NewPart(filepath.Join(dir, "part_01.yaml"), header, items[:1])
	require.NoError(t, out.Save())

	reloaded, err := LoadPart(out.Path)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Len())
	assert.Equal(t, header, reloaded.Header)
}

func TestListParts(t *testing.T) {
	dir := t.TempDir()
	writePart(t, dir, "part_02.yaml", "{}\n")
	writePart(t, dir, "part_01.yaml", "{}\n")
	writePart(t, dir, "notes.txt", "ignore")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "part_03.yaml"), 0755))

	parts, err := ListParts(dir)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.True(t, strings.HasSuffix(parts[0], "part_01.yaml"))
	assert.True(t, strings.HasSuffix(parts[1], "part_02.yaml"))
}
