package frame

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/reactivetui/tuicore/engine"
	"github.com/reactivetui/tuicore/primitives"
)

func TestModelInitMountsTreeAndReturnsBatchedCmd(t *testing.T) {
	e := engine.New(nil, 10, 5)
	mounted := false
	m := NewModel(e, func() {
		mounted = true
		primitives.Box(e.Context, primitives.Props{"width": 10, "height": 5})
	}, primitives.MountOptions{Mode: primitives.ModeFullscreen, Mouse: true})

	cmd := m.Init()
	assert.True(t, mounted)
	assert.NotNil(t, cmd)
}

func TestModelUpdateResizesGridOnWindowSizeMsg(t *testing.T) {
	e := engine.New(nil, 10, 5)
	m := NewModel(e, func() {}, primitives.MountOptions{})
	m.Init()

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Nil(t, cmd)
	assert.Equal(t, 40, e.Grid.Width())
	assert.Equal(t, 20, e.Grid.Height())
}

func TestModelUpdateDispatchesKeyAndQuitsOnCtrlC(t *testing.T) {
	e := engine.New(nil, 10, 5)
	m := NewModel(e, func() {}, primitives.MountOptions{})
	m.Init()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.quitRequested)
	assert.NotNil(t, cmd)
}

func TestModelUpdateDispatchesMouseWithoutPanicking(t *testing.T) {
	e := engine.New(nil, 10, 5)
	m := NewModel(e, func() {}, primitives.MountOptions{})
	m.Init()

	assert.NotPanics(t, func() {
		m.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion})
	})
}

func TestModelViewRendersNonEmptyFrame(t *testing.T) {
	e := engine.New(nil, 10, 5)
	m := NewModel(e, func() {
		primitives.Text(e.Context, primitives.Props{"content": "hi"})
	}, primitives.MountOptions{})
	m.Init()

	out := m.View()
	assert.Contains(t, out, "hi")
}
