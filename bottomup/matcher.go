package bottomup

import (
	"sort"

	"github.com/katalvlaran/gumdiff/bottomup/similarity"
	"github.com/katalvlaran/gumdiff/labelstore"
	"github.com/katalvlaran/gumdiff/mapping"
	"github.com/katalvlaran/gumdiff/nodestore"
	"github.com/katalvlaran/gumdiff/treeview"
	"github.com/katalvlaran/gumdiff/zhangshasha"
)

// Matcher runs the greedy bottom-up algorithm over a single (src, dst)
// tree pair, refining an existing seed mapping in place.
type Matcher struct {
	ns  nodestore.Store
	ls  labelstore.Store
	src *treeview.Tree
	dst *treeview.Tree
	m   mapping.Mono
	cfg Config

	srcType []string
	dstType []string
}

// New prepares a Matcher over src and dst, seeded with m (which must
// already be Topit'd to cover both trees' sizes, per spec.md §4.4's
// precondition — New grows it defensively to be sure). Resolves every
// node's syntactic type up front from ns so Execute's hot loops never
// touch the node store again.
func New(ns nodestore.Store, ls labelstore.Store, src, dst *treeview.Tree, m mapping.Mono, opts ...Option) (*Matcher, error) {
	if src.Len() == 0 {
		return nil, ErrEmptySource
	}
	if src.Root() != src.Len()-1 {
		return nil, ErrNotPostOrder
	}

	srcType, err := resolveTypes(ns, src)
	if err != nil {
		return nil, err
	}
	dstType, err := resolveTypes(ns, dst)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m.Topit(src.Len(), dst.Len())

	return &Matcher{
		ns: ns, ls: ls,
		src: src, dst: dst,
		m:   m,
		cfg: cfg,

		srcType: srcType,
		dstType: dstType,
	}, nil
}

func resolveTypes(ns nodestore.Store, t *treeview.Tree) ([]string, error) {
	out := make([]string, t.Len())
	for i := range t.IterDfPost() {
		v, err := ns.Resolve(t.Original(i))
		if err != nil {
			return nil, &treeview.ResolveError{ID: t.Original(i), Err: err}
		}
		out[i] = v.Type()
	}
	return out, nil
}

// Mapping returns the mapping store this Matcher refines. Valid to call
// before or after Execute.
func (mr *Matcher) Mapping() mapping.Mono { return mr.m }

// Execute runs the algorithm described in spec.md §4.4: for each
// unmapped, non-leaf, non-root source node in post-order, it finds the
// best destination candidate by Dice similarity, commits the pair after
// a last-chance Zhang-Shasha refinement, then unconditionally links the
// two roots and runs a final last-chance match on them.
func (mr *Matcher) Execute() error {
	root := mr.src.Root()
	minDice := float64(mr.cfg.SimThresholdNum) / float64(mr.cfg.SimThresholdDen)

	for a := 0; a < root; a++ {
		if mr.m.IsSrc(a) || mr.src.IsLeaf(a) {
			continue
		}

		candidates := mr.GetDstCandidates(a)
		best, bestDice, found := -1, 0.0, false
		for _, c := range candidates {
			d := mr.dice(a, c)
			if d > bestDice && d >= minDice {
				best, bestDice, found = c, d, true
			}
		}
		if !found {
			continue
		}
		if err := mr.LastChanceMatch(a, best); err != nil {
			return err
		}
		mr.m.Link(a, best)
	}

	dstRoot := mr.dst.Root()
	mr.m.Link(root, dstRoot)
	return mr.LastChanceMatch(root, dstRoot)
}

func (mr *Matcher) dice(a, c int) float64 {
	slo, shi := mr.src.DescendantsRange(a)
	dlo, dhi := mr.dst.DescendantsRange(c)
	return similarity.Dice(
		similarity.Range{Lo: slo, Hi: shi},
		similarity.Range{Lo: dlo, Hi: dhi},
		mr.m,
	)
}

// GetDstCandidates returns every unmapped destination node of a's type
// reachable by walking up, on the destination side, from the image of
// one of a's mapped descendants — spec.md §4.4's "get_dst_candidates"
// collaborator. The result is sorted ascending by destination post-
// order index, making tie-breaking in Execute deterministic regardless
// of visitation order (spec.md §9 Open Question 2).
func (mr *Matcher) GetDstCandidates(a int) []int {
	seen := make(map[int]bool)
	var out []int

	slo, shi := mr.src.DescendantsRange(a)
	for s := slo; s <= shi; s++ {
		d, ok := mr.m.GetDst(s)
		if !ok {
			continue
		}
		for p := d; ; {
			parent, ok := mr.dst.Parent(p)
			if !ok {
				break
			}
			p = parent
			if seen[p] {
				continue
			}
			seen[p] = true
			if !mr.m.IsDst(p) && mr.dstType[p] == mr.srcType[a] {
				out = append(out, p)
			}
		}
	}

	sort.Ints(out)
	return out
}

// LastChanceMatch implements spec.md §4.4.2: when both a's and b's
// subtrees have fewer than Config.SizeThreshold descendants, run the
// Zhang-Shasha matcher over them and merge every local pair into the
// global mapping whose translated endpoints are both still unmapped
// and whose node types agree. Above the threshold this is a no-op —
// the comparison is strict, matching canonical GumTree behavior.
func (mr *Matcher) LastChanceMatch(a, b int) error {
	sa := mr.src.DescendantsCount(a)
	sb := mr.dst.DescendantsCount(b)
	if !(sa < mr.cfg.SizeThreshold && sb < mr.cfg.SizeThreshold) {
		return nil
	}

	srcSub, dstSub, err := mr.lastChanceSubtrees(a, b)
	if err != nil {
		return err
	}

	local, err := zhangshasha.Match(mr.ns, mr.ls, srcSub, dstSub, zhangshasha.DefaultConfig())
	if err != nil {
		return err
	}

	offsetSrc := mr.src.FirstDescendant(a)
	offsetDst := mr.dst.FirstDescendant(b)
	for i, t := range local.All() {
		s2, d2 := offsetSrc+i, offsetDst+t
		if !mr.m.IsSrc(s2) && !mr.m.IsDst(d2) && mr.srcType[s2] == mr.dstType[d2] {
			mr.m.Link(s2, d2)
		}
	}
	return nil
}

func (mr *Matcher) lastChanceSubtrees(a, b int) (*treeview.Tree, *treeview.Tree, error) {
	if mr.cfg.UseSlice {
		return mr.src.SlicePo(a), mr.dst.SlicePo(b), nil
	}
	srcSub, err := treeview.Build(mr.ns, mr.src.Original(a))
	if err != nil {
		return nil, nil, err
	}
	dstSub, err := treeview.Build(mr.ns, mr.dst.Original(b))
	if err != nil {
		return nil, nil, err
	}
	return srcSub, dstSub, nil
}
