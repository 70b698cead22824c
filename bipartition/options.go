package bipartition

// DefaultRootLabel names the root of reconstructed trees.
const DefaultRootLabel = "root"

// Option configures Reconstruct and StrictConsensus.
type Option func(*Options)

// Options holds the labelling used when building a tree from splits.
type Options struct {
	// RootLabel is the label of the star tree's root.
	RootLabel string

	// CladeLabel names each intermediate node created for a split.
	// It receives the split's sorted minor side.
	CladeLabel func(minor []string) string
}

// DefaultOptions returns Options with:
//   - RootLabel "root"
//   - unnamed clades.
func DefaultOptions() Options {
	return Options{
		RootLabel:  DefaultRootLabel,
		CladeLabel: func([]string) string { return "" },
	}
}

// WithRootLabel sets the label of the reconstructed root.
func WithRootLabel(label string) Option {
	return func(o *Options) {
		o.RootLabel = label
	}
}

// WithCladeLabel installs fn to name every clade created for a split.
// A nil fn keeps clades unnamed.
func WithCladeLabel(fn func(minor []string) string) Option {
	return func(o *Options) {
		if fn != nil {
			o.CladeLabel = fn
		}
	}
}
