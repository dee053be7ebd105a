package frame

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reactivetui/tuicore/engine"
	"github.com/reactivetui/tuicore/primitives"
)

// Model is a tea.Model driving an *engine.Engine: it forwards key/mouse
// messages to the dispatcher, resizes the hit grid and layout viewport
// on tea.WindowSizeMsg, and renders by compositing a fresh Buffer every
// frame. Demo/integration-only, per spec.md §1.
type Model struct {
	engine      *engine.Engine
	rootBuilder func()
	opts        primitives.MountOptions

	cursor        *CursorHelper
	cleanup       primitives.Cleanup
	quitRequested bool
}

// NewModel builds a Model that mounts rootBuilder under e on Init.
func NewModel(e *engine.Engine, rootBuilder func(), opts primitives.MountOptions) *Model {
	m := &Model{engine: e, rootBuilder: rootBuilder, opts: opts, cursor: NewCursorHelper()}
	e.OnExit(func() { m.quitRequested = true })
	return m
}

// Init mounts the component tree, starts the cursor blink, and requests
// the alt screen in fullscreen mode.
func (m *Model) Init() tea.Cmd {
	m.cleanup = m.engine.Mount(m.rootBuilder, m.opts)

	cmds := []tea.Cmd{m.cursor.BlinkCmd()}
	if m.opts.Mode == primitives.ModeFullscreen {
		cmds = append(cmds, tea.EnterAltScreen)
	}
	// Mouse reporting is the caller's concern (see wire/wire.go): it
	// writes wire.EnableMouse/DisableMouse itself around tea.Program.Run
	// so the exact bit-for-bit sequence spec.md §6 pins goes to the TTY,
	// rather than bubbletea's own cell/all-motion subset.
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.engine.Grid.Resize(msg.Width, msg.Height)
		m.engine.Layout.Invalidate()
		return m, nil

	case tea.KeyMsg:
		m.engine.Safely(func() {
			m.engine.Dispatch.DispatchKey(keyFromMsg(msg))
		})
		if m.quitRequested {
			if m.cleanup != nil {
				m.cleanup()
			}
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		m.engine.Safely(func() {
			m.engine.Dispatch.DispatchMouse(mouseFromMsg(msg))
		})
		return m, nil

	default:
		cmd := m.cursor.Update(msg)
		return m, cmd
	}
}

// View composites and renders the current frame.
func (m *Model) View() string {
	buf := Paint(m.engine.Context)
	DrawCursor(buf, m.engine.Context, m.cursor.Glyph())
	return buf.Render()
}
