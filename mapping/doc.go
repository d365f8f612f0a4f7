// Package mapping implements the bidirectional node-mapping substrate that
// underpins the structural tree matcher: injective (Mono) and multi-valued
// (Multi) partial relations between source-side and destination-side
// decompressed-tree indices.
//
// Two families of Mono are provided:
//
//	DenseMono  — two int slices, 0 = unmapped, O(1) ops except Len.
//	SparseMono — two hash maps, for sparsely used or very large index
//	             domains where a dense slice would waste memory.
//
// Both satisfy the same Mono contract, so a matcher can be built against
// the interface and swapped between backends without behavior change
// (mapping_test.go asserts bit-identical output across both).
//
// Multi never deduplicates and admits several counterparts per side; it
// backs the top-down / exact-subtree seeding pass that feeds the bottom-up
// matcher its starting mapping.
package mapping
