package mapping

import "iter"

// Mono is an injective (bijective-on-its-domain) partial mapping between
// source-side and destination-side decompressed indices.
//
// Implementations: DenseMono (array-backed) and SparseMono (hash-backed).
// Both obey: Has(s, d) iff Link(s, d) was the most recent call touching
// either s or d and neither has since been Cut.
type Mono interface {
	// Topit grows backing storage so both sides can address up to
	// leftCap and rightCap respectively. New slots start unmapped.
	Topit(leftCap, rightCap int)

	// Len reports the number of mapped pairs. May be O(n) for dense
	// backends; callers should not call it in a hot loop.
	Len() int

	// Capacity reports the current addressable range on each side.
	Capacity() (left, right int)

	// Has reports whether (src, dst) is currently linked.
	Has(src, dst int) bool

	// Link maps src to dst, overwriting either side's previous link
	// if present. Out-of-range indices are a programmer error.
	Link(src, dst int)

	// Cut clears src's outgoing and dst's incoming link. It does not
	// check that src and dst were linked to each other.
	Cut(src, dst int)

	// IsSrc reports whether src is currently mapped to anything.
	IsSrc(src int) bool

	// IsDst reports whether dst is currently mapped to anything.
	IsDst(dst int) bool

	// GetSrc returns the source mapped to dst, if any.
	GetSrc(dst int) (int, bool)

	// GetDst returns the destination mapped to src, if any.
	GetDst(src int) (int, bool)

	// All iterates every (src, dst) pair. Stop early by returning false
	// from the yield function.
	All() iter.Seq2[int, int]
}

// Multi is a multi-valued mapping: each side may hold several
// counterparts. Link never deduplicates.
type Multi interface {
	// Topit grows backing storage to the given capacities.
	Topit(leftCap, rightCap int)

	// Len reports the total number of (src, dst) pairs recorded.
	Len() int

	// Capacity reports the current addressable range on each side.
	Capacity() (left, right int)

	// Has reports whether the exact pair (src, dst) was linked.
	Has(src, dst int) bool

	// Link appends dst to src's counterpart slice and vice versa.
	Link(src, dst int)

	// Cut removes the first occurrence of (src, dst); collapses the
	// slot to empty once its last entry is removed.
	Cut(src, dst int)

	// IsSrc reports whether src's slot is non-empty.
	IsSrc(src int) bool

	// IsDst reports whether dst's slot is non-empty.
	IsDst(dst int) bool

	// GetDsts returns src's counterpart slice (nil if none). Callers
	// must not mutate the returned slice.
	GetDsts(src int) []int

	// GetSrcs returns dst's counterpart slice (nil if none). Callers
	// must not mutate the returned slice.
	GetSrcs(dst int) []int

	// AllMappedSrcs iterates every src index with a non-empty slot.
	AllMappedSrcs() iter.Seq[int]

	// AllMappedDsts iterates every dst index with a non-empty slot.
	AllMappedDsts() iter.Seq[int]
}
