// Package layout allocates vertical space for schedule entries.
//
// Given a fixed pixel budget, Allocate distributes a variable number of
// entries in one of two modes. When the budget is spacious, every entry
// keeps its maximum height and the leftover space becomes uniform gaps plus
// equal margins above and below the block. When the budget is tight, the
// gaps are pinned to the configured minimum and every entry gives up an
// equal share of the deficit instead.
package layout

// Slot is the allocated vertical span for one entry: its offset from the
// top of the schedule block and its height. Slots are consumed immediately
// by the renderer and never persisted.
type Slot struct {
	Offset int
	Height int
}

// Allocate distributes n entries across totalHeight pixels and returns one
// slot per entry, in order, with strictly increasing offsets.
//
// Inputs are not validated. Degenerate values (n == 0, a totalHeight small
// enough to drive heights negative) produce whatever the formulas yield;
// callers own their inputs.
func Allocate(totalHeight, maxEntryHeight, n, minSpacing int) []Slot {
	nSpaces := n - 1
	minTotalSpacing := nSpaces * minSpacing
	maxTotalEntryHeight := n * maxEntryHeight

	var start, spacing, entryHeight int
	if remaining := totalHeight - maxTotalEntryHeight; remaining >= minTotalSpacing {
		// Spacious: the +2 reserves a margin before the first entry and
		// after the last one, on top of the nSpaces internal gaps. Division
		// remainder is absorbed by the trailing margin.
		spacing = remaining / (nSpaces + 2)
		start = spacing
		entryHeight = maxEntryHeight
	} else {
		// Compressed: no outer margins, gaps pinned to the minimum, every
		// entry shrunk by the same amount. Division remainder is dropped.
		deficit := minTotalSpacing - remaining
		start = 0
		spacing = minSpacing
		entryHeight = maxEntryHeight - deficit/n
	}

	slots := make([]Slot, 0, n)
	current := start
	for i := 0; i < n; i++ {
		slots = append(slots, Slot{Offset: current, Height: entryHeight})
		current += spacing + entryHeight
	}
	return slots
}
