package mapping

import "iter"

// SparseMono is a hash-backed Mono mapping, preferred over DenseMono when
// the index domain is large and sparsely used (Topit on a large tree but
// few nodes ever get mapped). Obeys the identical contract as DenseMono;
// mapping_test.go checks the two backends produce byte-identical mappings
// for the same sequence of operations.
type SparseMono struct {
	srcToDst map[int]int
	dstToSrc map[int]int
	left     int
	right    int
}

// NewSparseMono returns an empty SparseMono.
func NewSparseMono() *SparseMono {
	return &SparseMono{
		srcToDst: make(map[int]int),
		dstToSrc: make(map[int]int),
	}
}

// Topit records the addressable capacity on each side. The hash backend
// does not preallocate slots; this only affects Capacity's return value.
func (m *SparseMono) Topit(leftCap, rightCap int) {
	if leftCap+1 > m.left {
		m.left = leftCap + 1
	}
	if rightCap+1 > m.right {
		m.right = rightCap + 1
	}
}

// Len reports the number of mapped pairs.
func (m *SparseMono) Len() int {
	return len(m.srcToDst)
}

// Capacity reports the capacities recorded by Topit.
func (m *SparseMono) Capacity() (int, int) {
	return m.left, m.right
}

// Link maps src to dst in both directions.
func (m *SparseMono) Link(src, dst int) {
	m.srcToDst[src] = dst
	m.dstToSrc[dst] = src
}

// Cut deletes src's and dst's entries unconditionally, like DenseMono.Cut.
func (m *SparseMono) Cut(src, dst int) {
	delete(m.srcToDst, src)
	delete(m.dstToSrc, dst)
}

// IsSrc reports whether src has an outgoing link.
func (m *SparseMono) IsSrc(src int) bool {
	_, ok := m.srcToDst[src]
	return ok
}

// IsDst reports whether dst has an incoming link.
func (m *SparseMono) IsDst(dst int) bool {
	_, ok := m.dstToSrc[dst]
	return ok
}

// Has reports whether (src, dst) is linked in both directions.
func (m *SparseMono) Has(src, dst int) bool {
	d, ok := m.srcToDst[src]
	if !ok || d != dst {
		return false
	}
	s, ok := m.dstToSrc[dst]
	return ok && s == src
}

// GetSrc returns the source mapped to dst, if any.
func (m *SparseMono) GetSrc(dst int) (int, bool) {
	s, ok := m.dstToSrc[dst]
	return s, ok
}

// GetDst returns the destination mapped to src, if any.
func (m *SparseMono) GetDst(src int) (int, bool) {
	d, ok := m.srcToDst[src]
	return d, ok
}

// All iterates every (src, dst) pair. Map iteration order is randomized
// by Go's runtime; callers needing a deterministic order should sort the
// results (the bottom-up matcher never relies on SparseMono.All order).
func (m *SparseMono) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for src, dst := range m.srcToDst {
			if !yield(src, dst) {
				return
			}
		}
	}
}
