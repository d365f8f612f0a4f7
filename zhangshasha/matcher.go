package zhangshasha

import (
	"bytes"

	"github.com/katalvlaran/gumdiff/labelstore"
	"github.com/katalvlaran/gumdiff/mapping"
	"github.com/katalvlaran/gumdiff/nodestore"
	"github.com/katalvlaran/gumdiff/treeview"
)

const (
	insertCost = 1
	deleteCost = 1
	renameSame = 0
	renameDiff = 1
)

// Config tunes the rename-cost model. The zero value is not ready for
// use; call DefaultConfig.
type Config struct {
	// LeafSubstitutionCost is charged instead of the usual 0/1 rename
	// cost when both nodes being compared are leaves of differing
	// syntactic type, discouraging the DP from pairing unrelated leaves
	// just because it is cheap to do so.
	LeafSubstitutionCost int
}

// DefaultConfig returns the matcher's default tuning: leaf substitution
// costs twice a normal rename.
func DefaultConfig() Config {
	return Config{LeafSubstitutionCost: 2}
}

// Match computes an optimal mapping between src and dst via Zhang-Shasha
// tree-edit-distance DP, resolving node type and label information
// through ns and ls. The returned Mono is scoped to local indices
// [0, src.Len()) x [0, dst.Len()); callers translate to global indices.
func Match(ns nodestore.Store, ls labelstore.Store, src, dst *treeview.Tree, cfg Config) (mapping.Mono, error) {
	if src.Len() == 0 || dst.Len() == 0 {
		return nil, ErrEmptySubtree
	}

	n, m := src.Len(), dst.Len()
	sv, err := resolveViews(ns, src)
	if err != nil {
		return nil, err
	}
	dv, err := resolveViews(ns, dst)
	if err != nil {
		return nil, err
	}

	m2 := &matcher{
		src: src, dst: dst,
		sv: sv, dv: dv,
		ls:     ls,
		labels:   make(map[labelstore.ID][]byte),
		cfg:      cfg,
		treedist: make2D(n, m),
	}

	for kr1 := range src.IterKr() {
		for kr2 := range dst.IterKr() {
			m2.fillTreedist(kr1, kr2)
		}
	}

	out := mapping.NewDenseMono()
	out.Topit(n, m)
	m2.backtrace(src.Root(), dst.Root(), out)
	if m2.err != nil {
		return nil, m2.err
	}
	return out, nil
}

func make2D(n, m int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, m)
	}
	return rows
}

type matcher struct {
	src, dst *treeview.Tree
	sv, dv   []nodestore.NodeView
	ls       labelstore.Store
	labels   map[labelstore.ID][]byte
	cfg      Config
	treedist [][]int
	err      error
}

func resolveViews(ns nodestore.Store, t *treeview.Tree) ([]nodestore.NodeView, error) {
	views := make([]nodestore.NodeView, t.Len())
	for i := range t.IterDfPost() {
		v, err := ns.Resolve(t.Original(i))
		if err != nil {
			return nil, &treeview.ResolveError{ID: t.Original(i), Err: err}
		}
		views[i] = v
	}
	return views, nil
}

func (m *matcher) label(id labelstore.ID) []byte {
	if b, ok := m.labels[id]; ok {
		return b
	}
	b, err := m.ls.Resolve(id)
	if err != nil {
		if m.err == nil {
			m.err = &LabelResolveError{ID: id, Err: err}
		}
		return nil
	}
	m.labels[id] = b
	return b
}

// renameCost returns the substitution cost of turning src node i into
// dst node j: 0 if their labels match, 1 otherwise, except when both
// are leaves of differing type, which is charged LeafSubstitutionCost.
func (m *matcher) renameCost(i, j int) int {
	sv, dv := m.sv[i], m.dv[j]
	if m.src.IsLeaf(i) && m.dst.IsLeaf(j) && sv.Type() != dv.Type() {
		return m.cfg.LeafSubstitutionCost
	}
	if bytes.Equal(m.label(sv.Label()), m.label(dv.Label())) {
		return renameSame
	}
	return renameDiff
}

func min3(a, b, c int) int {
	v := a
	if b < v {
		v = b
	}
	if c < v {
		v = c
	}
	return v
}

// fillTreedist computes the forest-distance DP over the forest pair
// [lld(i), i] x [lld(j), j] for the key-root pair (i, j), writing
// m.treedist[i1][j1] whenever i1 and j1 are themselves tree roots of
// that forest (lld(i1) == lld(i) and lld(j1) == lld(j)) — the classic
// Zhang-Shasha recurrence, driven by key roots to avoid recomputing
// shared sub-forest distances.
func (m *matcher) fillTreedist(i, j int) {
	l1, l2 := m.src.FirstDescendant(i), m.dst.FirstDescendant(j)
	rows, cols := i-l1+2, j-l2+2
	fd := make([][]int, rows)
	for r := range fd {
		fd[r] = make([]int, cols)
	}

	for i1 := l1; i1 <= i; i1++ {
		fd[i1-l1+1][0] = fd[i1-l1][0] + deleteCost
	}
	for j1 := l2; j1 <= j; j1++ {
		fd[0][j1-l2+1] = fd[0][j1-l2] + insertCost
	}

	for i1 := l1; i1 <= i; i1++ {
		for j1 := l2; j1 <= j; j1++ {
			i1lld := m.src.FirstDescendant(i1)
			j1lld := m.dst.FirstDescendant(j1)
			if i1lld == l1 && j1lld == l2 {
				cost := min3(
					fd[i1-l1][j1-l2+1]+deleteCost,
					fd[i1-l1+1][j1-l2]+insertCost,
					fd[i1-l1][j1-l2]+m.renameCost(i1, j1),
				)
				fd[i1-l1+1][j1-l2+1] = cost
				m.treedist[i1][j1] = cost
			} else {
				cost := min3(
					fd[i1-l1][j1-l2+1]+deleteCost,
					fd[i1-l1+1][j1-l2]+insertCost,
					fd[i1lld-l1][j1lld-l2]+m.treedist[i1][j1],
				)
				fd[i1-l1+1][j1-l2+1] = cost
			}
		}
	}
}

// backtrace re-derives the forest-distance decision surface for the
// subtree pair (i, j) and records every matched node pair into out,
// recursing into nested subtree matches whose cost was looked up from
// m.treedist as an atomic value during fillTreedist.
func (m *matcher) backtrace(i, j int, out mapping.Mono) {
	l1, l2 := m.src.FirstDescendant(i), m.dst.FirstDescendant(j)
	rows, cols := i-l1+2, j-l2+2
	fd := make([][]int, rows)
	for r := range fd {
		fd[r] = make([]int, cols)
	}
	for i1 := l1; i1 <= i; i1++ {
		fd[i1-l1+1][0] = fd[i1-l1][0] + deleteCost
	}
	for j1 := l2; j1 <= j; j1++ {
		fd[0][j1-l2+1] = fd[0][j1-l2] + insertCost
	}
	for i1 := l1; i1 <= i; i1++ {
		for j1 := l2; j1 <= j; j1++ {
			i1lld := m.src.FirstDescendant(i1)
			j1lld := m.dst.FirstDescendant(j1)
			if i1lld == l1 && j1lld == l2 {
				fd[i1-l1+1][j1-l2+1] = min3(
					fd[i1-l1][j1-l2+1]+deleteCost,
					fd[i1-l1+1][j1-l2]+insertCost,
					fd[i1-l1][j1-l2]+m.renameCost(i1, j1),
				)
			} else {
				fd[i1-l1+1][j1-l2+1] = min3(
					fd[i1-l1][j1-l2+1]+deleteCost,
					fd[i1-l1+1][j1-l2]+insertCost,
					fd[i1lld-l1][j1lld-l2]+m.treedist[i1][j1],
				)
			}
		}
	}

	r, c := i-l1+1, j-l2+1
	for r > 0 || c > 0 {
		if r == 0 || c == 0 {
			// One forest is exhausted: the rest of the other is deleted
			// or inserted, and there is no node on the empty side to look up.
			if r > 0 {
				r--
			} else {
				c--
			}
			continue
		}
		i1, j1 := l1+r-1, l2+c-1
		i1lld, j1lld := m.src.FirstDescendant(i1), m.dst.FirstDescendant(j1)
		switch {
		// A substitution costing at least a delete plus an insert never
		// beats that pair, so on a tie the two nodes are left unmatched.
		case r > 0 && c > 0 && i1lld == l1 && j1lld == l2 &&
			m.renameCost(i1, j1) < deleteCost+insertCost &&
			fd[r][c] == fd[r-1][c-1]+m.renameCost(i1, j1):
			out.Link(i1, j1)
			r, c = r-1, c-1
		case r > 0 && c > 0 && (i1lld != l1 || j1lld != l2) &&
			fd[r][c] == fd[i1lld-l1][j1lld-l2]+m.treedist[i1][j1]:
			if i1 != i || j1 != j {
				m.backtrace(i1, j1, out)
			}
			r, c = i1lld-l1, j1lld-l2
		case r > 0 && fd[r][c] == fd[r-1][c]+deleteCost:
			r--
		default:
			c--
		}
	}
}
