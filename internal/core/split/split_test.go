package split

import "testing"

func TestBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		parts     int
		wantSizes []int
	}{
		{
			name:      "159 entries into 10 parts",
			total:     159,
			parts:     10,
			wantSizes: []int{16, 16, 16, 16, 16, 16, 16, 16, 16, 15},
		},
		{
			name:      "even division",
			total:     20,
			parts:     4,
			wantSizes: []int{5, 5, 5, 5},
		},
		{
			name:      "fewer entries than parts",
			total:     3,
			parts:     10,
			wantSizes: []int{1, 1, 1},
		},
		{
			name:      "single part",
			total:     7,
			parts:     1,
			wantSizes: []int{7},
		},
		{
			name:      "285 entries into 10 parts",
			total:     285,
			parts:     10,
			wantSizes: []int{29, 29, 29, 29, 29, 29, 29, 29, 29, 24},
		},
		{
			name:      "empty input",
			total:     0,
			parts:     10,
			wantSizes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges := Boundaries(tt.total, tt.parts)
			if len(ranges) != len(tt.wantSizes) {
				t.Fatalf("got %d ranges, want %d", len(ranges), len(tt.wantSizes))
			}

			sum := 0
			prev := 0
			for i, r := range ranges {
				if r.Start != prev {
					t.Errorf("range %d starts at %d, want contiguous start %d", i, r.Start, prev)
				}
				if r.Len() != tt.wantSizes[i] {
					t.Errorf("range %d size = %d, want %d", i, r.Len(), tt.wantSizes[i])
				}
				sum += r.Len()
				prev = r.End
			}
			if sum != tt.total {
				t.Errorf("ranges cover %d entries, want %d", sum, tt.total)
			}
		})
	}
}

func TestBoundariesDegenerate(t *testing.T) {
	if got := Boundaries(10, 0); got != nil {
		t.Errorf("Boundaries(10, 0) = %v, want nil", got)
	}
	if got := Boundaries(-1, 3); got != nil {
		t.Errorf("Boundaries(-1, 3) = %v, want nil", got)
	}
}
