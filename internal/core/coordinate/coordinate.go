// Package coordinate contains the pure parsing logic for dotted text numbers.
// A text number addresses one dictionary item inside the source text.
package coordinate

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate addresses an item as khanda (chapter), varga (section within the
// khanda) and item (position within the varga).
type Coordinate struct {
	Khanda int
	Varga  int
	Item   int
}

// Parse interprets a dotted text number such as "1.2.13".
// The string must have exactly three dot-separated parts, each a base-10
// non-negative integer with no extraneous characters. Any violation yields
// ok=false; Parse never fails in any other way. No range limit is applied.
func Parse(s string) (Coordinate, bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Coordinate{}, false
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, ok := parsePart(part)
		if !ok {
			return Coordinate{}, false
		}
		nums[i] = n
	}

	return Coordinate{Khanda: nums[0], Varga: nums[1], Item: nums[2]}, true
}

// parsePart accepts only unsigned decimal digit runs. strconv.Atoi alone is
// too permissive here: it admits signs, which the text-number grammar does not.
func parsePart(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// String renders the coordinate back into its dotted form.
func (c Coordinate) String() string {
	return fmt.Sprintf("%d.%d.%d", c.Khanda, c.Varga, c.Item)
}

// SortKey converts a raw text number into a comparable integer sequence.
// Unlike Parse it is forgiving: any number of parts is accepted and
// non-numeric parts compare as 0. Used for ordering dictionary exports, where
// malformed numbers must still land in a deterministic position.
func SortKey(s string) []int {
	parts := strings.Split(strings.TrimSpace(s), ".")
	key := make([]int, len(parts))
	for i, part := range parts {
		if n, ok := parsePart(part); ok {
			key[i] = n
		}
	}
	return key
}

// CompareKeys orders two sort keys lexicographically, shorter keys first on a
// shared prefix.
func CompareKeys(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
