package cache

// ScopedKeyer wraps a Keyer with a prefix so several block sets can share
// one cache without colliding, e.g. one namespace per input file:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "file:courses.yaml:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(blocksHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(blocksHash, opts)
}
