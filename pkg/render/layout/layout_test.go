package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name           string
		totalHeight    int
		maxEntryHeight int
		n              int
		minSpacing     int
		want           []Slot
	}{
		{
			name:           "single entry centers between equal margins",
			totalHeight:    500,
			maxEntryHeight: 100,
			n:              1,
			minSpacing:     100,
			want:           []Slot{{Offset: 200, Height: 100}},
		},
		{
			name:           "spacious boundary keeps full heights",
			totalHeight:    500,
			maxEntryHeight: 100,
			n:              3,
			minSpacing:     100,
			want: []Slot{
				{Offset: 50, Height: 100},
				{Offset: 200, Height: 100},
				{Offset: 350, Height: 100},
			},
		},
		{
			name:           "compressed shrinks every entry uniformly",
			totalHeight:    500,
			maxEntryHeight: 100,
			n:              3,
			minSpacing:     130,
			want: []Slot{
				{Offset: 0, Height: 80},
				{Offset: 210, Height: 80},
				{Offset: 420, Height: 80},
			},
		},
		{
			name:           "spacious remainder absorbed by trailing margin",
			totalHeight:    505,
			maxEntryHeight: 100,
			n:              3,
			minSpacing:     100,
			want: []Slot{
				{Offset: 51, Height: 100},
				{Offset: 202, Height: 100},
				{Offset: 353, Height: 100},
			},
		},
		{
			name:           "compressed remainder dropped from reduction",
			totalHeight:    499,
			maxEntryHeight: 100,
			n:              3,
			minSpacing:     130,
			want: []Slot{
				{Offset: 0, Height: 80},
				{Offset: 210, Height: 80},
				{Offset: 420, Height: 80},
			},
		},
		{
			name:           "zero minimum spacing",
			totalHeight:    400,
			maxEntryHeight: 100,
			n:              4,
			minSpacing:     0,
			want: []Slot{
				{Offset: 0, Height: 100},
				{Offset: 100, Height: 100},
				{Offset: 200, Height: 100},
				{Offset: 300, Height: 100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allocate(tt.totalHeight, tt.maxEntryHeight, tt.n, tt.minSpacing)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Allocate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAllocateProperties(t *testing.T) {
	// Across both regimes: one slot per entry, strictly increasing offsets,
	// a single height shared by all slots.
	for _, minSpacing := range []int{0, 10, 130} {
		for n := 1; n <= 8; n++ {
			slots := Allocate(500, 100, n, minSpacing)

			if len(slots) != n {
				t.Fatalf("Allocate(n=%d, minSpacing=%d) returned %d slots", n, minSpacing, len(slots))
			}
			for i := 1; i < n; i++ {
				if slots[i].Offset <= slots[i-1].Offset {
					t.Errorf("n=%d minSpacing=%d: offsets not strictly increasing: %v", n, minSpacing, slots)
				}
				if slots[i].Height != slots[0].Height {
					t.Errorf("n=%d minSpacing=%d: mixed heights: %v", n, minSpacing, slots)
				}
			}
		}
	}
}

func TestAllocateSpaciousGapContract(t *testing.T) {
	// In the spacious regime consecutive slots are at least minSpacing apart.
	const minSpacing = 20
	slots := Allocate(600, 100, 4, minSpacing)
	for i := 1; i < len(slots); i++ {
		prev := slots[i-1]
		if prev.Offset+prev.Height+minSpacing > slots[i].Offset {
			t.Errorf("slot %d starts at %d, want >= %d", i, slots[i].Offset, prev.Offset+prev.Height+minSpacing)
		}
	}
}

func TestAllocateIdempotent(t *testing.T) {
	a := Allocate(500, 100, 3, 130)
	b := Allocate(500, 100, 3, 130)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated calls disagree (-first +second):\n%s", diff)
	}
}

func TestAllocateDegenerateInputs(t *testing.T) {
	// Characterization only: these inputs are not validated and the raw
	// formula results flow through to the caller.
	t.Run("no entries yields no slots", func(t *testing.T) {
		if got := Allocate(500, 100, 0, 10); len(got) != 0 {
			t.Errorf("Allocate(n=0) = %v, want empty", got)
		}
	})

	t.Run("over-compressed heights go negative", func(t *testing.T) {
		got := Allocate(50, 100, 3, 100)
		// deficit = 2*100 - (50 - 300) = 450, reduction = 150
		if got[0].Height != -50 {
			t.Errorf("height = %d, want -50", got[0].Height)
		}
	})
}
