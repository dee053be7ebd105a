// Package theme resolves named color variants to concrete style.RGBA
// values, with parent-chain inheritance. Adapted from
// _examples/wwsheng009-yao/tui/framework/theme/theme.go (Theme.GetColor/
// resolveColor: name-keyed palette, Parent field walked on miss),
// trimmed to the single concern spec.md §4.3 "Variant colors" needs:
// resolving a variant name to an RGBA at *read* time.
package theme

import (
	"sync"

	"github.com/reactivetui/tuicore/style"
)

// Theme is a named color palette with optional inheritance from a
// parent theme.
type Theme struct {
	mu     sync.RWMutex
	Name   string
	Parent *Theme
	colors map[string]style.RGBA
}

// New creates an empty Theme.
func New(name string) *Theme {
	return &Theme{Name: name, colors: make(map[string]style.RGBA)}
}

// WithParent sets t's parent for inheritance and returns t.
func (t *Theme) WithParent(parent *Theme) *Theme {
	t.mu.Lock()
	t.Parent = parent
	t.mu.Unlock()
	return t
}

// SetColor binds a variant name to an RGBA.
func (t *Theme) SetColor(variant string, c style.RGBA) {
	t.mu.Lock()
	t.colors[variant] = c
	t.mu.Unlock()
}

// Color resolves variant, walking the parent chain on a miss. The
// second return is false if no theme in the chain defines the variant.
func (t *Theme) Color(variant string) (style.RGBA, bool) {
	t.mu.RLock()
	c, ok := t.colors[variant]
	parent := t.Parent
	t.mu.RUnlock()
	if ok {
		return c, true
	}
	if parent != nil {
		return parent.Color(variant)
	}
	return style.RGBA{}, false
}

// Registry holds the process-wide active theme, swappable at runtime so
// every variant-bound color slot re-resolves on the next read.
type Registry struct {
	mu     sync.RWMutex
	active *Theme
}

// NewRegistry creates a Registry defaulting to an empty "default" theme.
func NewRegistry() *Registry {
	return &Registry{active: New("default")}
}

// SetActive swaps the active theme.
func (r *Registry) SetActive(t *Theme) {
	r.mu.Lock()
	r.active = t
	r.mu.Unlock()
}

// Active returns the current theme.
func (r *Registry) Active() *Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// ResolveVariant looks up variant in the active theme, falling back to
// style.NoneColor() (terminal default) when undefined.
func (r *Registry) ResolveVariant(variant string) style.Color {
	c, ok := r.Active().Color(variant)
	if !ok {
		return style.NoneColor()
	}
	return style.SetColor(c)
}
