package yamlfile

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/kosha/internal/core/generate"
)

func TestQuarantineBadCoordinateGetsBothForms(t *testing.T) {
	store := NewQuarantineStore(t.TempDir())

	q := generate.Quarantined{
		Record: generate.Record{
			Headword:   "X",
			Artha:      "अर्थः",
			TextNumber: "1.a.3",
			Synonyms:   []string{"पर्यायः"},
		},
		Reason: generate.ReasonBadCoordinate,
	}
	require.NoError(t, store.Add(q))

	records, err := store.readJSON()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, q.Record, records[0])

	data, err := os.ReadFile(store.YAMLPath())
	require.NoError(t, err)
	assert.Equal(t, "अर्थः:\n  - पर्यायः:\n", string(data))
}

func TestQuarantineBadFieldsGetsJSONOnly(t *testing.T) {
	store := NewQuarantineStore(t.TempDir())

	q := generate.Quarantined{
		Record: generate.Record{Headword: "Y", Artha: "", TextNumber: "1.2.3"},
		Reason: generate.ReasonBadFields,
	}
	require.NoError(t, store.Add(q))

	records, err := store.readJSON()
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = os.Stat(store.YAMLPath())
	assert.True(t, os.IsNotExist(err), "bad-fields records must not reach the YAML mirror")
}

func TestQuarantineAppendsLines(t *testing.T) {
	store := NewQuarantineStore(t.TempDir())

	for _, head := range []string{"a", "b", "c"} {
		q := generate.Quarantined{
			Record: generate.Record{Headword: head, Artha: "अ", TextNumber: "bad", Synonyms: []string{"s"}},
			Reason: generate.ReasonBadCoordinate,
		}
		require.NoError(t, store.Add(q))
	}

	records, err := store.readJSON()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "a", records[0].Headword)
	assert.Equal(t, "c", records[2].Headword)
}
