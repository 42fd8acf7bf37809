package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/kosha/internal/adapters/stardict"
	"github.com/example/kosha/internal/core/generate"
)

func writeExportFixture(t *testing.T, entries []stardict.Entry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parsed_dict.generated.json")
	dict := &stardict.Dictionary{Name: "Test", Entries: entries}
	require.NoError(t, stardict.WriteExport(path, dict))
	return path
}

func TestGenerateRoutesByCoordinate(t *testing.T) {
	path := writeExportFixture(t, []stardict.Entry{
		{Headword: "भवति", Artha: "सत्तायाम्", TextNumber: "1.1.2", Synonyms: []string{"भवति"}},
		{Headword: "गच्छति", Artha: "गतौ", TextNumber: "2.4.1", Synonyms: []string{"गच्छति"}},
	})

	canonical := &fakeCanonicalWriter{}
	quarantine := &fakeQuarantineWriter{}
	svc := NewGenerateService(canonical, quarantine)

	report, err := svc.Generate(path)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Appended)
	assert.Equal(t, 0, report.Quarantined())

	require.Len(t, canonical.appends, 2)
	assert.Equal(t, 1, canonical.appends[0].khanda)
	assert.Equal(t, 1, canonical.appends[0].varga)
	assert.Equal(t, "सत्तायाम्", canonical.appends[0].artha)
	assert.Equal(t, 2, canonical.appends[1].khanda)
	assert.Equal(t, 4, canonical.appends[1].varga)
}

func TestGenerateQuarantinesBadEntries(t *testing.T) {
	path := writeExportFixture(t, []stardict.Entry{
		{Headword: "क", Artha: "अ", TextNumber: "1.1", Synonyms: []string{"क"}},
		{Headword: "ख", Artha: "", TextNumber: "1.1.2", Synonyms: []string{"ख"}},
		{Headword: "ग", Artha: "गतौ", TextNumber: "1.1.3", Synonyms: []string{"ग"}},
	})

	canonical := &fakeCanonicalWriter{}
	quarantine := &fakeQuarantineWriter{}
	svc := NewGenerateService(canonical, quarantine)

	report, err := svc.Generate(path)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Appended)
	assert.Equal(t, 1, report.BadCoordinate)
	assert.Equal(t, 1, report.BadFields)

	require.Len(t, quarantine.added, 2)
	assert.Equal(t, generate.ReasonBadCoordinate, quarantine.added[0].Reason)
	assert.Equal(t, generate.ReasonBadFields, quarantine.added[1].Reason)
}

func TestGenerateKeepsExportOrder(t *testing.T) {
	path := writeExportFixture(t, []stardict.Entry{
		{Headword: "अ", Artha: "प्रथमः", TextNumber: "1.1.2", Synonyms: []string{"अ"}},
		{Headword: "आ", Artha: "द्वितीयः", TextNumber: "1.1.1", Synonyms: []string{"आ"}},
	})

	canonical := &fakeCanonicalWriter{}
	svc := NewGenerateService(canonical, &fakeQuarantineWriter{})

	_, err := svc.Generate(path)
	require.NoError(t, err)

	// Export order wins; the generator never re-sorts.
	require.Len(t, canonical.appends, 2)
	assert.Equal(t, "प्रथमः", canonical.appends[0].artha)
	assert.Equal(t, "द्वितीयः", canonical.appends[1].artha)
}
