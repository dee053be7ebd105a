package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reactivetui/tuicore/style"
)

func TestThemeColorReturnsOwnValueBeforeCheckingParent(t *testing.T) {
	parent := New("parent")
	parent.SetColor("primary", style.RGB(1, 1, 1))

	child := New("child").WithParent(parent)
	child.SetColor("primary", style.RGB(2, 2, 2))

	c, ok := child.Color("primary")
	assert.True(t, ok)
	assert.Equal(t, style.RGB(2, 2, 2), c)
}

func TestThemeColorFallsBackToParentOnMiss(t *testing.T) {
	parent := New("parent")
	parent.SetColor("danger", style.RGB(9, 0, 0))
	child := New("child").WithParent(parent)

	c, ok := child.Color("danger")
	assert.True(t, ok)
	assert.Equal(t, style.RGB(9, 0, 0), c)
}

func TestThemeColorUndefinedWithNoParentReturnsFalse(t *testing.T) {
	th := New("lonely")
	_, ok := th.Color("missing")
	assert.False(t, ok)
}

func TestThemeColorWalksMultipleAncestors(t *testing.T) {
	grandparent := New("gp")
	grandparent.SetColor("accent", style.RGB(3, 3, 3))
	parent := New("p").WithParent(grandparent)
	child := New("c").WithParent(parent)

	c, ok := child.Color("accent")
	assert.True(t, ok)
	assert.Equal(t, style.RGB(3, 3, 3), c)
}

func TestRegistryDefaultsToEmptyDefaultTheme(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "default", r.Active().Name)
}

func TestRegistrySetActiveSwapsTheme(t *testing.T) {
	r := NewRegistry()
	other := New("other")
	other.SetColor("primary", style.RGB(5, 5, 5))
	r.SetActive(other)

	assert.Equal(t, other, r.Active())
}

func TestRegistryResolveVariantFallsBackToNoneColor(t *testing.T) {
	r := NewRegistry()
	c := r.ResolveVariant("nonexistent")
	assert.Equal(t, style.NoneColor(), c)
}

func TestRegistryResolveVariantReturnsSetColor(t *testing.T) {
	r := NewRegistry()
	active := New("active")
	active.SetColor("primary", style.RGB(7, 8, 9))
	r.SetActive(active)

	c := r.ResolveVariant("primary")
	assert.Equal(t, style.SetColor(style.RGB(7, 8, 9)), c)
}

func TestVariantSourceReresolvesOnThemeSwap(t *testing.T) {
	r := NewRegistry()
	first := New("first")
	first.SetColor("bg", style.RGB(1, 2, 3))
	r.SetActive(first)

	src := r.VariantSource("bg")
	assert.Equal(t, style.SetColor(style.RGB(1, 2, 3)), src.Get())

	second := New("second")
	second.SetColor("bg", style.RGB(4, 5, 6))
	r.SetActive(second)

	assert.Equal(t, style.SetColor(style.RGB(4, 5, 6)), src.Get(), "the source must re-resolve against the newly active theme, not cache the old value")
}
