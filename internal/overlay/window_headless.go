//go:build headless

package overlay

// Open always fails in headless builds; use LogRenderer instead.
func Open(Options) (Surface, error) {
	return nil, ErrNoWindow
}
