package verify

import (
	"testing"

	"github.com/example/kosha/internal/core/entry"
)

func pair(key, form, dhatu string) Pair {
	return Pair{Key: key, Record: entry.ReviewRecord{Entry: entry.Entry{Form: form, DhatuID: dhatu}}}
}

func TestCompareFaithfulSplit(t *testing.T) {
	source := []Pair{pair("a", "भवति", "Not Found"), pair("b", "फलति", "Not Found"), pair("c", "गच्छति", "Not Found")}
	split := []Pair{source[0], source[1], source[2]}

	// The split step decorates entries with review fields; that must not
	// count as divergence.
	split[1].Record.Resolved = true
	split[1].Record.Comment = "checked"
	split[2].Record.SurrogateKey = split[2].Record.Key()

	diff := Compare(source, split)
	if !diff.OK() {
		t.Fatalf("diff not OK: %+v", diff)
	}
	if diff.SourceCount != 3 || diff.SplitCount != 3 {
		t.Errorf("counts = %d/%d, want 3/3", diff.SourceCount, diff.SplitCount)
	}
}

func TestCompareMissingEntry(t *testing.T) {
	source := []Pair{pair("a", "भवति", ""), pair("b", "फलति", "")}
	split := []Pair{source[0]}

	diff := Compare(source, split)
	if diff.OK() {
		t.Fatal("diff should fail")
	}
	if len(diff.Missing) != 1 || diff.Missing[0] != "b" {
		t.Errorf("Missing = %v, want [b]", diff.Missing)
	}
}

func TestCompareExtraEntry(t *testing.T) {
	source := []Pair{pair("a", "भवति", "")}
	split := []Pair{source[0], pair("z", "स्मरति", "")}

	diff := Compare(source, split)
	if diff.OK() {
		t.Fatal("diff should fail")
	}
	if len(diff.Extra) != 1 || diff.Extra[0] != "z" {
		t.Errorf("Extra = %v, want [z]", diff.Extra)
	}
}

func TestCompareMismatchedData(t *testing.T) {
	source := []Pair{pair("a", "भवति", "Not Found")}
	split := []Pair{pair("a", "भवति", "01.0001")}

	diff := Compare(source, split)
	if diff.OK() {
		t.Fatal("diff should fail")
	}
	if len(diff.Mismatched) != 1 || diff.Mismatched[0] != "a" {
		t.Errorf("Mismatched = %v, want [a]", diff.Mismatched)
	}
}
