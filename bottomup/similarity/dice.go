package similarity

import "github.com/katalvlaran/gumdiff/mapping"

// Range is a closed descendant range [Lo, Hi], as returned by
// treeview.Tree.DescendantsRange.
type Range struct {
	Lo, Hi int
}

// Dice returns the Dice similarity coefficient between src's and dst's
// descendant ranges, counting a source descendant as "common" when m
// maps it to a destination descendant inside dst's range:
//
//	dice = 2 * |commonMappedDescendants| / (|src| + |dst|)
//
// Returns 0 when either range is empty, matching spec.md §4.4.1.
func Dice(src, dst Range, m mapping.Mono) float64 {
	srcSize := src.Hi - src.Lo + 1
	dstSize := dst.Hi - dst.Lo + 1
	if srcSize <= 0 || dstSize <= 0 {
		return 0
	}

	var common int
	for s := src.Lo; s <= src.Hi; s++ {
		d, ok := m.GetDst(s)
		if ok && d >= dst.Lo && d <= dst.Hi {
			common++
		}
	}

	return 2 * float64(common) / float64(srcSize+dstSize)
}
