// Package generate contains the pure routing logic of the generation stage:
// deciding, per parsed dictionary record, whether it lands in a canonical
// khanda/varga bucket or in quarantine.
package generate

import (
	"strings"

	"github.com/example/kosha/internal/core/coordinate"
)

// Record is one parsed dictionary entry as it arrives from the export:
// a headword, its gloss, the raw dotted text number and the ordered synonyms.
type Record struct {
	Headword   string
	Artha      string
	TextNumber string
	Synonyms   []string
}

// Bucket is the (khanda, varga) pair a valid record is appended under.
// One bucket corresponds to one canonical file.
type Bucket struct {
	Khanda int
	Varga  int
}

// Placement pairs a record with its resolved bucket, in input order.
type Placement struct {
	Bucket Bucket
	Record Record
}

// QuarantineReason says why a record was diverted.
type QuarantineReason int

const (
	// ReasonBadCoordinate marks a text number that failed to parse. These
	// records get both the JSON line and the YAML mirror block.
	ReasonBadCoordinate QuarantineReason = iota
	// ReasonBadFields marks a record whose gloss or synonyms are unusable
	// for YAML rendering. These get the JSON line only.
	ReasonBadFields
)

// Quarantined is a diverted record kept verbatim alongside its reason.
type Quarantined struct {
	Record Record
	Reason QuarantineReason
}

// Result of routing one input sequence. Placements preserve the global input
// order; within any single bucket that order is therefore preserved too.
type Result struct {
	Placements  []Placement
	Quarantined []Quarantined
}

// Route classifies records in input order. It never deduplicates and never
// reorders: byte-identical records produce repeated placements. Malformed
// records are not fatal; routing continues past them.
func Route(records []Record) Result {
	var res Result
	for _, rec := range records {
		if !renderable(rec) {
			res.Quarantined = append(res.Quarantined, Quarantined{Record: rec, Reason: ReasonBadFields})
			continue
		}
		c, ok := coordinate.Parse(rec.TextNumber)
		if !ok {
			res.Quarantined = append(res.Quarantined, Quarantined{Record: rec, Reason: ReasonBadCoordinate})
			continue
		}
		res.Placements = append(res.Placements, Placement{
			Bucket: Bucket{Khanda: c.Khanda, Varga: c.Varga},
			Record: rec,
		})
	}
	return res
}

// renderable reports whether the record can be expressed as a canonical YAML
// block: a non-empty gloss and no blank synonyms, which would otherwise
// produce broken list items.
func renderable(rec Record) bool {
	if strings.TrimSpace(rec.Artha) == "" {
		return false
	}
	for _, syn := range rec.Synonyms {
		if strings.TrimSpace(syn) == "" {
			return false
		}
	}
	return true
}
