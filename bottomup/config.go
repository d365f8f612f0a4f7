package bottomup

// Option configures a Config. Use with New(..., opts...).
type Option func(*Config)

// Config tunes the greedy bottom-up matcher. The zero value is not
// ready for use; start from DefaultConfig.
type Config struct {
	// SizeThreshold bounds the last-chance Zhang-Shasha match: it only
	// runs when both subtrees have fewer than SizeThreshold
	// descendants. The comparison is strict (spec.md §4.4.2 — this is
	// canonical GumTree behavior and must not become <=).
	SizeThreshold int

	// SimThresholdNum / SimThresholdDen express the minimum accepted
	// Dice similarity as a fraction (default 1/2).
	SimThresholdNum int
	SimThresholdDen int

	// UseSlice selects how the last-chance match obtains its subtree
	// views: true (default) borrows a view via treeview.Tree.SlicePo;
	// false rebuilds a fresh decompressed tree per call via
	// treeview.Build, retained for equivalence testing against the
	// slice path.
	UseSlice bool
}

// DefaultConfig returns the matcher's default tuning: size threshold
// 1000, similarity threshold 1/2, slice-based last-chance subtrees.
func DefaultConfig() Config {
	return Config{
		SizeThreshold:   1000,
		SimThresholdNum: 1,
		SimThresholdDen: 2,
		UseSlice:        true,
	}
}

// WithSizeThreshold overrides the last-chance match's size cutoff.
func WithSizeThreshold(n int) Option {
	return func(c *Config) { c.SizeThreshold = n }
}

// WithSimThreshold overrides the minimum accepted Dice similarity,
// expressed as the fraction num/den.
func WithSimThreshold(num, den int) Option {
	return func(c *Config) {
		c.SimThresholdNum = num
		c.SimThresholdDen = den
	}
}

// WithDisableSlice forces the last-chance match to rebuild subtrees via
// treeview.Build instead of borrowing a SlicePo view.
func WithDisableSlice() Option {
	return func(c *Config) { c.UseSlice = false }
}

// WithConfig replaces the whole Config wholesale, for callers (like
// gumtree.Match) that carry a pre-built Config across a layer boundary
// instead of composing individual options.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}
