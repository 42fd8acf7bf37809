// Package verify contains the pure comparison logic that checks split review
// files against the file they were cut from.
package verify

import (
	"reflect"

	"github.com/example/kosha/internal/core/entry"
)

// Pair is one keyed review record, in file order.
type Pair struct {
	Key    string
	Record entry.ReviewRecord
}

// Diff is the outcome of comparing a source file against its recombined
// split parts.
type Diff struct {
	SourceCount int
	SplitCount  int
	Missing     []string // keys in the source but absent from the parts
	Extra       []string // keys in the parts but absent from the source
	Mismatched  []string // keys present on both sides with diverging data
}

// OK reports whether the split is a faithful partition of the source.
func (d Diff) OK() bool {
	return d.SourceCount == d.SplitCount &&
		len(d.Missing) == 0 && len(d.Extra) == 0 && len(d.Mismatched) == 0
}

// Compare checks that the recombined parts carry every source entry and
// nothing else. Review bookkeeping (resolved, comment, surrogate key) is
// ignored during the deep comparison: the split step adds those fields, so
// their presence is not a data loss.
func Compare(source, split []Pair) Diff {
	diff := Diff{SourceCount: len(source), SplitCount: len(split)}

	splitByKey := make(map[string]entry.ReviewRecord, len(split))
	for _, p := range split {
		splitByKey[p.Key] = p.Record
	}
	sourceKeys := make(map[string]bool, len(source))

	for _, p := range source {
		sourceKeys[p.Key] = true
		got, ok := splitByKey[p.Key]
		if !ok {
			diff.Missing = append(diff.Missing, p.Key)
			continue
		}
		if !reflect.DeepEqual(normalize(p.Record), normalize(got)) {
			diff.Mismatched = append(diff.Mismatched, p.Key)
		}
	}

	for _, p := range split {
		if !sourceKeys[p.Key] {
			diff.Extra = append(diff.Extra, p.Key)
		}
	}

	return diff
}

func normalize(r entry.ReviewRecord) entry.Entry {
	return r.Entry
}
