package arrays

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reactivetui/tuicore/config"
	"github.com/reactivetui/tuicore/registry"
	"github.com/reactivetui/tuicore/style"
)

func TestStoreDefaultsMatchSpecLiterals(t *testing.T) {
	reg := registry.New(config.Default())
	s := New(reg)
	i := reg.AllocateIndex("")
	s.EnsureAllCapacity(i)

	assert.Equal(t, style.Auto(), s.Dim.Width.Peek(i))
	assert.Equal(t, float32(0), s.Layout.FlexGrow.Peek(i))
	assert.Equal(t, float32(1), s.Layout.FlexShrink.Peek(i))
	assert.True(t, s.Core.Visible.Peek(i))
	assert.Equal(t, "…", s.Text.Ellipsis.Peek(i))
	assert.Equal(t, float32(1), s.Visual.Opacity.Peek(i))
}

func TestStoreClearAllAtIndexResetsColumnsAndDirtySets(t *testing.T) {
	reg := registry.New(&config.Config{ResetOnZero: false})
	s := New(reg)
	i := reg.AllocateIndex("")
	s.EnsureAllCapacity(i)

	s.Text.Content.SetValue(i, "hello")
	s.Visual.Fg.SetValue(i, style.SetColor(style.RGB(1, 2, 3)))
	assert.True(t, s.DirtyText.Contains(i))
	assert.True(t, s.DirtyVisual.Contains(i))

	s.ClearAllAtIndex(i)
	assert.Equal(t, "", s.Text.Content.Peek(i))
	assert.Equal(t, style.NoneColor(), s.Visual.Fg.Peek(i))
	assert.False(t, s.DirtyText.Contains(i))
	assert.False(t, s.DirtyVisual.Contains(i))
}

func TestStoreResetOnZeroClearsEveryColumn(t *testing.T) {
	reg := registry.New(&config.Config{ResetOnZero: true})
	s := New(reg)
	i := reg.AllocateIndex("")
	s.EnsureAllCapacity(i)
	s.Text.Content.SetValue(i, "hello")

	reg.ReleaseIndex(i)

	reused := reg.AllocateIndex("")
	s.EnsureAllCapacity(reused)
	assert.Equal(t, "", s.Text.Content.Peek(reused), "a reset-on-zero cycle must not leak the prior value into the reused index")
}

func TestStoreSnapshotReflectsColumnState(t *testing.T) {
	reg := registry.New(config.Default())
	s := New(reg)
	i := reg.AllocateIndex("widget-1")
	s.EnsureAllCapacity(i)

	s.Core.Kind.Set(int(i), KindText)
	s.Text.Content.SetValue(i, "hi")
	s.Layout.FlexDirection.SetValue(i, style.FlexColumn)
	s.Interact.Focusable.SetValue(int(i), true)

	snap := s.Snapshot(i)
	assert.Equal(t, "text", snap.Kind)
	assert.Equal(t, "hi", snap.Content)
	assert.Equal(t, "column", snap.FlexDirection)
	assert.True(t, snap.Focusable)

	js, err := s.SnapshotJSON(i)
	assert.NoError(t, err)
	assert.Contains(t, js, `"content":"hi"`)
}
