package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/input"
	"github.com/reactivetui/tuicore/registry"
	"github.com/reactivetui/tuicore/style"
)

func newTestContext() *Context {
	return NewContext(nil, 80, 24)
}

func soleAllocated(ctx *Context) registry.ComponentIndex {
	all := ctx.Registry.GetAllocatedIndices()
	return all[len(all)-1]
}

func TestBoxAllocatesAndAppliesDimProps(t *testing.T) {
	ctx := newTestContext()
	cleanup := Box(ctx, Props{"id": "root", "width": "50%", "height": 10})
	i := soleAllocated(ctx)
	assert.Equal(t, arrays.KindBox, ctx.Store.Core.Kind.Get(int(i)))
	cleanup()
}

func TestBoxChildrenRunWithSelfAsParentContext(t *testing.T) {
	ctx := newTestContext()
	parent := ctx.Registry.GetCurrentParentIndex() // registry.None, captured before any allocation
	_ = parent
	var gotParent registry.ComponentIndex
	var child registry.ComponentIndex
	var childCleanup Cleanup
	var parentIdx registry.ComponentIndex

	cleanup := Box(ctx, Props{
		"children": ChildBuilder(func() {
			parentIdx = ctx.Registry.GetCurrentParentIndex()
			childCleanup = Box(ctx, Props{})
			for _, allocated := range ctx.Registry.GetAllocatedIndices() {
				if allocated != parentIdx {
					child = allocated
				}
			}
		}),
	})
	gotParent = ctx.Store.Core.Parent.Peek(child)

	assert.Equal(t, parentIdx, gotParent, "a child built inside `children` must have the box as its parent")
	childCleanup()
	cleanup()
}

func TestTextContentAppliesMarkdownRenderingWhenEnabled(t *testing.T) {
	ctx := newTestContext()
	cleanup := Text(ctx, Props{"content": "# hi", "markdown": true})
	i := soleAllocated(ctx)
	content := ctx.Store.Text.Content.Peek(i)
	assert.NotEqual(t, "# hi", content, "markdown rendering must transform the raw heading markup")
	cleanup()
}

func TestTextPlainContentPassesThroughUnchanged(t *testing.T) {
	ctx := newTestContext()
	cleanup := Text(ctx, Props{"content": "hello"})
	i := soleAllocated(ctx)
	assert.Equal(t, "hello", ctx.Store.Text.Content.Peek(i))
	cleanup()
}

func TestInputDefaultsToFocusableUnlessOverridden(t *testing.T) {
	ctx := newTestContext()
	cleanup := Input(ctx, Props{})
	i := soleAllocated(ctx)
	assert.True(t, ctx.Store.Interact.Focusable.Peek(int(i)))
	cleanup()
}

func TestInputExplicitFocusableFalseIsHonored(t *testing.T) {
	ctx := newTestContext()
	cleanup := Input(ctx, Props{"focusable": false})
	i := soleAllocated(ctx)
	assert.False(t, ctx.Store.Interact.Focusable.Peek(int(i)))
	cleanup()
}

func TestInputShowsPlaceholderWhenEmpty(t *testing.T) {
	ctx := newTestContext()
	cleanup := Input(ctx, Props{"placeholder": "type here"})
	i := soleAllocated(ctx)
	assert.Equal(t, "type here", ctx.Store.Text.Content.Peek(i))
	cleanup()
}

func TestInputMasksValueWhenPassword(t *testing.T) {
	ctx := newTestContext()
	cleanup := Input(ctx, Props{"value": "secret", "password": true})
	i := soleAllocated(ctx)
	assert.Equal(t, "••••••", ctx.Store.Text.Content.Peek(i))
	cleanup()
}

func TestInputTypingInsertsAtCursorAndFiresOnChange(t *testing.T) {
	ctx := newTestContext()
	var changed string
	cleanup := Input(ctx, Props{"value": "ac", "onChange": func(v string) { changed = v }})
	i := soleAllocated(ctx)
	ctx.Store.Interact.CursorPos.SetValue(int(i), 1)
	ctx.Focus.Focus(i)

	handled := ctx.Dispatch.DispatchKey(input.Key{Rune: 'b'})
	assert.True(t, handled)
	assert.Equal(t, "abc", changed)
	cleanup()
}

func TestInputBackspaceRemovesPrecedingRune(t *testing.T) {
	ctx := newTestContext()
	var changed string
	cleanup := Input(ctx, Props{"value": "abc", "onChange": func(v string) { changed = v }})
	i := soleAllocated(ctx)
	ctx.Store.Interact.CursorPos.SetValue(int(i), 3)
	ctx.Focus.Focus(i)

	ctx.Dispatch.DispatchKey(input.Key{Name: input.KeyBackspace})
	assert.Equal(t, "ab", changed)
	cleanup()
}

func TestInputEnterFiresOnSubmitWithCurrentValue(t *testing.T) {
	ctx := newTestContext()
	var submitted string
	cleanup := Input(ctx, Props{"value": "done", "onSubmit": func(v string) { submitted = v }})
	ctx.Focus.Focus(soleAllocated(ctx))

	ctx.Dispatch.DispatchKey(input.Key{Name: input.KeyEnter})
	assert.Equal(t, "done", submitted)
	cleanup()
}

func TestInputEscapeFiresOnCancel(t *testing.T) {
	ctx := newTestContext()
	cancelled := false
	cleanup := Input(ctx, Props{"onCancel": func() { cancelled = true }})
	ctx.Focus.Focus(soleAllocated(ctx))

	ctx.Dispatch.DispatchKey(input.Key{Name: input.KeyEscape})
	assert.True(t, cancelled)
	cleanup()
}

func TestInputMaxLengthRejectsFurtherTyping(t *testing.T) {
	ctx := newTestContext()
	var changed string
	cleanup := Input(ctx, Props{"value": "ab", "maxLength": 2, "onChange": func(v string) { changed = v }})
	ctx.Focus.Focus(soleAllocated(ctx))

	ctx.Dispatch.DispatchKey(input.Key{Rune: 'c'})
	assert.Equal(t, "", changed, "onChange must not fire once maxLength is reached")
	cleanup()
}

func TestApplyColorPrefersExplicitColorOverVariant(t *testing.T) {
	ctx := newTestContext()
	ctx.Theme.Active().SetColor("accent", style.RGB(9, 9, 9))
	cleanup := Box(ctx, Props{"fg": "#010203", "variant": "accent"})
	i := soleAllocated(ctx)
	fg := ctx.Store.Visual.Fg.Peek(i)
	assert.True(t, fg.IsSet)
	assert.Equal(t, uint8(1), fg.RGBA.R)
	cleanup()
}

func TestApplyColorFallsBackToThemeVariant(t *testing.T) {
	ctx := newTestContext()
	ctx.Theme.Active().SetColor("accent", style.RGB(9, 8, 7))
	cleanup := Box(ctx, Props{"variant": "accent"})
	i := soleAllocated(ctx)
	fg := ctx.Store.Visual.Fg.Peek(i)
	assert.Equal(t, style.RGB(9, 8, 7), fg.RGBA)
	cleanup()
}

func TestBoxCleanupReleasesIndex(t *testing.T) {
	ctx := newTestContext()
	before := ctx.Registry.GetAllocatedCount()
	cleanup := Box(ctx, Props{})
	assert.Equal(t, before+1, ctx.Registry.GetAllocatedCount())
	cleanup()
	assert.Equal(t, before, ctx.Registry.GetAllocatedCount())
}

func TestMountRunsRootBuilderAndCleanupDisposesScope(t *testing.T) {
	ctx := newTestContext()
	ran := false
	cleanup := Mount(ctx, func() {
		ran = true
		Box(ctx, Props{})
	}, MountOptions{Mode: ModeFullscreen})
	assert.True(t, ran)
	assert.Equal(t, 1, ctx.Registry.GetAllocatedCount())

	cleanup()
}
