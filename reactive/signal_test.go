package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalDefaultAndSetValue(t *testing.T) {
	s := NewSignal[int](7)
	assert.Equal(t, 7, s.Get())

	s.SetValue(42)
	assert.Equal(t, 42, s.Get())
	assert.Equal(t, 42, s.Peek())
}

func TestSignalClearResetsToDefault(t *testing.T) {
	s := NewSignal[string]("default")
	s.SetValue("override")
	assert.Equal(t, "override", s.Get())

	s.Clear()
	assert.Equal(t, "default", s.Get())
}

func TestSignalSetSourceKeepsIdentity(t *testing.T) {
	s := NewSignal[int](0)
	var seen []int
	NewEffect(func() {
		seen = append(seen, s.Get())
	})

	s.SetSource(Static(1))
	s.SetSource(Static(2))

	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestGetterSourceReadsOnEveryAccess(t *testing.T) {
	n := 0
	g := GetterSource[int](func() int {
		n++
		return n
	})
	assert.Equal(t, 1, g.Get())
	assert.Equal(t, 2, g.Get())
}

func TestSignalGetSubscribesActiveEffect(t *testing.T) {
	s := NewSignal[int](1)
	runs := 0
	NewEffect(func() {
		runs++
		_ = s.Get()
	})
	assert.Equal(t, 1, runs)

	s.SetValue(2)
	assert.Equal(t, 2, runs)
}

func TestSignalPeekDoesNotSubscribe(t *testing.T) {
	s := NewSignal[int](1)
	runs := 0
	NewEffect(func() {
		runs++
		_ = s.Peek()
	})
	assert.Equal(t, 1, runs)

	s.SetValue(2)
	assert.Equal(t, 1, runs, "Peek must not create a dependency")
}
