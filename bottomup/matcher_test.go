package bottomup_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gumdiff/bottomup"
	"github.com/katalvlaran/gumdiff/internal/corpus"
	"github.com/katalvlaran/gumdiff/mapping"
	"github.com/katalvlaran/gumdiff/treeview"
)

// buildPair packs srcRoot and dstRoot into one shared corpus.Tree and
// decompresses both sides. It also returns dstIdx, converting a
// corpus.Node on the destination side to its local treeview index:
// BuildPair assigns destination-side node ids starting right after the
// source side's, in the same post-order scheme treeview.Build uses, so
// a destination node's local index is its corpus id minus srcTree.Len().
func buildPair(t *testing.T, srcRoot, dstRoot *corpus.Node) (ct *corpus.Tree, srcTree, dstTree *treeview.Tree, dstIdx func(*corpus.Node) int) {
	t.Helper()
	ct, srcID, dstID := corpus.BuildPair(srcRoot, dstRoot)
	srcTree, err := treeview.Build(ct.Store(), srcID)
	require.NoError(t, err)
	dstTree, err = treeview.Build(ct.Store(), dstID)
	require.NoError(t, err)
	offset := srcTree.Len()
	dstIdx = func(n *corpus.Node) int { return int(n.ID) - offset }
	return ct, srcTree, dstTree, dstIdx
}

// chainOfLeaves returns a parent of type typ with n leaf children, each
// uniquely labelled, giving a subtree of exactly n+1 descendants, plus
// the leaf slice itself for seeding.
func chainOfLeaves(typ string, n int) (*corpus.Node, []*corpus.Node) {
	kids := make([]*corpus.Node, n)
	for i := range kids {
		kids[i] = corpus.Leaf("Leaf", fmt.Sprintf("l%d", i))
	}
	return corpus.Branch(typ, kids...), kids
}

// BottomupSuite covers the greedy bottom-up matcher's Execute,
// GetDstCandidates and LastChanceMatch behavior. Its large chain-of-
// leaves fixture (~2000 nodes once both sides are built) is expensive
// enough to assemble that it is built once in SetupSuite and shared
// read-only across every subtest that needs it, mirroring
// flow.EdmondsKarpSuite's use of suite.Suite for its own fixture-heavy
// scenarios.
type BottomupSuite struct {
	suite.Suite

	ct        *corpus.Tree
	srcTree   *treeview.Tree
	dstTree   *treeview.Tree
	dstIdx    func(*corpus.Node) int
	srcSub    *corpus.Node
	dstSub    *corpus.Node
	srcLeaves []*corpus.Node
	dstLeaves []*corpus.Node
}

// SetupSuite builds the shared large fixture once: a Root with a single
// Block child holding 998 leaves on the source side and 999 on the
// destination side (999 and 1000 descendants counting the Block), exactly
// the sizes TestLastChanceMatch_ThresholdCutoff
// and TestGetDstCandidates_OnLargeFixture need to exercise the
// SizeThreshold boundary.
func (s *BottomupSuite) SetupSuite() {
	srcSub, srcLeaves := chainOfLeaves("Block", 998) // 999 descendants total
	dstSub, dstLeaves := chainOfLeaves("Block", 999) // 1000 descendants total
	srcRoot := corpus.Branch("Root", srcSub)
	dstRoot := corpus.Branch("Root", dstSub)

	ct, srcID, dstID := corpus.BuildPair(srcRoot, dstRoot)
	srcTree, err := treeview.Build(ct.Store(), srcID)
	s.Require().NoError(err)
	dstTree, err := treeview.Build(ct.Store(), dstID)
	s.Require().NoError(err)

	s.ct = ct
	s.srcTree, s.dstTree = srcTree, dstTree
	offset := srcTree.Len()
	s.dstIdx = func(n *corpus.Node) int { return int(n.ID) - offset }
	s.srcSub, s.dstSub = srcSub, dstSub
	s.srcLeaves, s.dstLeaves = srcLeaves, dstLeaves
}

// TestExecute_RootsAlwaysLink covers spec.md §8's invariant: after
// matcher completion has(root_src, root_dst) always holds, even with an
// empty seed mapping on two structurally unrelated trees.
func (s *BottomupSuite) TestExecute_RootsAlwaysLink() {
	ct, srcTree, dstTree, _ := buildPair(s.T(),
		corpus.Branch("A", corpus.Leaf("X", "a")),
		corpus.Branch("B", corpus.Leaf("Y", "b")),
	)

	seed := mapping.NewDenseMono()
	m, err := bottomup.New(ct.Store(), ct.Labels(), srcTree, dstTree, seed)
	require.NoError(s.T(), err)
	require.NoError(s.T(), m.Execute())

	require.True(s.T(), seed.Has(srcTree.Root(), dstTree.Root()))
	require.Equal(s.T(), 1, seed.Len(), "unrelated trees: only the roots should end up linked")
}

// TestExecute_DiceTieBreak covers spec.md §8 seed scenario 3: both root
// children are the same type on each side, but the seed already maps
// their respective grandchildren, so Dice similarity resolves each
// child pairing unambiguously and the roots pair too.
func (s *BottomupSuite) TestExecute_DiceTieBreak() {
	srcLeaf0, srcLeaf1 := corpus.Leaf("L", "0"), corpus.Leaf("L", "1")
	srcChild0 := corpus.Branch("C", srcLeaf0)
	srcChild1 := corpus.Branch("C", srcLeaf1)
	srcRoot := corpus.Branch("R", srcChild0, srcChild1)

	dstLeaf0, dstLeaf1 := corpus.Leaf("L", "0"), corpus.Leaf("L", "1")
	dstChild0 := corpus.Branch("C", dstLeaf0)
	dstChild1 := corpus.Branch("C", dstLeaf1)
	dstRoot := corpus.Branch("R", dstChild0, dstChild1)

	ct, srcTree, dstTree, dstIdx := buildPair(s.T(), srcRoot, dstRoot)

	seed := mapping.NewDenseMono()
	seed.Topit(srcTree.Len(), dstTree.Len())
	seed.Link(int(srcLeaf0.ID), dstIdx(dstLeaf0))
	seed.Link(int(srcLeaf1.ID), dstIdx(dstLeaf1))

	m, err := bottomup.New(ct.Store(), ct.Labels(), srcTree, dstTree, seed)
	require.NoError(s.T(), err)
	require.NoError(s.T(), m.Execute())

	require.True(s.T(), seed.Has(int(srcChild0.ID), dstIdx(dstChild0)))
	require.True(s.T(), seed.Has(int(srcChild1.ID), dstIdx(dstChild1)))
	require.True(s.T(), seed.Has(srcTree.Root(), dstTree.Root()))
}

// TestLastChanceMatch_ThresholdCutoff covers spec.md §8's boundary case:
// subtrees at exactly SizeThreshold are skipped (strict <), so a pair
// discovered by the bottom-up phase itself survives but gets no further
// last-chance refinement beneath it. Reuses the suite's shared large
// fixture rather than rebuilding it. Only one leaf pair is seeded, giving
// the Block pair a Dice of 2/1999, so the similarity threshold is lowered
// to 1/1000 for the bottom-up phase to accept it.
func (s *BottomupSuite) TestLastChanceMatch_ThresholdCutoff() {
	seed := mapping.NewDenseMono()
	seed.Topit(s.srcTree.Len(), s.dstTree.Len())
	seed.Link(int(s.srcLeaves[0].ID), s.dstIdx(s.dstLeaves[0]))

	m, err := bottomup.New(s.ct.Store(), s.ct.Labels(), s.srcTree, s.dstTree, seed,
		bottomup.WithSizeThreshold(1000), bottomup.WithSimThreshold(1, 1000))
	require.NoError(s.T(), err)
	require.NoError(s.T(), m.Execute())

	require.True(s.T(), seed.Has(int(s.srcSub.ID), s.dstIdx(s.dstSub)), "bottom-up should still link the Block pair")
	require.True(s.T(), seed.Has(s.srcTree.Root(), s.dstTree.Root()))
	require.Equal(s.T(), 3, seed.Len(), "last-chance match must not fire above the size threshold")
}

// TestGetDstCandidates_OnLargeFixture covers spec.md §4.4's
// get_dst_candidates collaborator directly, independent of Execute's
// threshold gating, on the same shared large fixture: once one leaf pair
// is seeded, the Block/Block pair must surface as the sole candidate for
// the Root/Root pair's Block child.
func (s *BottomupSuite) TestGetDstCandidates_OnLargeFixture() {
	seed := mapping.NewDenseMono()
	seed.Topit(s.srcTree.Len(), s.dstTree.Len())
	seed.Link(int(s.srcLeaves[0].ID), s.dstIdx(s.dstLeaves[0]))

	m, err := bottomup.New(s.ct.Store(), s.ct.Labels(), s.srcTree, s.dstTree, seed, bottomup.WithSizeThreshold(1000))
	require.NoError(s.T(), err)

	candidates := m.GetDstCandidates(int(s.srcSub.ID))
	require.Equal(s.T(), []int{s.dstIdx(s.dstSub)}, candidates)
}

func TestBottomupSuite(t *testing.T) {
	suite.Run(t, new(BottomupSuite))
}
