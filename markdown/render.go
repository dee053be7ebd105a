// Package markdown renders Markdown content to styled terminal text for
// the text primitive's `markdown` prop, grounded on
// _examples/wwsheng009-yao/tui/components/viewport.go's EnableGlamour
// path.
package markdown

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	rendererOnce sync.Once
	renderer     *glamour.TermRenderer
)

func getRenderer() *glamour.TermRenderer {
	rendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(0), // the layout engine owns wrapping
		)
		if err == nil {
			renderer = r
		}
	})
	return renderer
}

// Render converts raw Markdown into the ANSI-styled string the text
// primitive stores as its display content. A construction or rendering
// failure falls back to the raw content unchanged, matching the
// teacher's own `if err == nil { content = rendered }` guard.
func Render(raw string) string {
	r := getRenderer()
	if r == nil {
		return raw
	}
	rendered, err := r.Render(raw)
	if err != nil {
		return raw
	}
	return rendered
}
