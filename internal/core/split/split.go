// Package split contains the pure partitioning logic for distributing review
// entries among proofreaders.
package split

// Range is a half-open [Start, End) slice of the source sequence.
type Range struct {
	Start int
	End   int
}

// Len returns the number of entries covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Boundaries cuts total entries into at most parts contiguous ranges of
// ceil(total/parts) entries each; the final range absorbs the remainder.
// Empty trailing ranges are dropped, so fewer ranges than parts may come back.
// Concatenating the ranges in order reproduces the source order exactly.
func Boundaries(total, parts int) []Range {
	if total <= 0 || parts <= 0 {
		return nil
	}

	chunk := (total + parts - 1) / parts
	var ranges []Range
	for start := 0; start < total; start += chunk {
		end := start + chunk
		if end > total {
			end = total
		}
		ranges = append(ranges, Range{Start: start, End: end})
	}
	return ranges
}
