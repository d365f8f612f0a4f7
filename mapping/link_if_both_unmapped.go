package mapping

// LinkIfBothUnmapped links src to dst and reports true iff its guard
// condition holds.
//
// Known source ambiguity (carried over intentionally, not fixed): the
// guard reads IsSrc(src) && IsDst(dst) — i.e. "both already mapped" — even
// though the name and every caller's intent is "both unmapped". The
// correct predicate would be !IsSrc(src) && !IsDst(dst). Every known
// caller invokes this expecting unmapped inputs, which strongly suggests
// the inversion is a bug in the reference implementation rather than
// deliberate behavior. It is preserved here byte-for-byte rather than
// silently corrected; see link_if_both_unmapped_test.go, which pins this
// exact behavior against a corrected reference kept only in the test.
func LinkIfBothUnmapped(m Mono, src, dst int) bool {
	if m.IsSrc(src) && m.IsDst(dst) {
		m.Link(src, dst)
		return true
	}
	return false
}
