package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reactivetui/tuicore/config"
	"github.com/reactivetui/tuicore/engine"
	"github.com/reactivetui/tuicore/frame"
	"github.com/reactivetui/tuicore/primitives"
	"github.com/reactivetui/tuicore/wire"
)

func run(debug, inline bool) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	width, height := 80, 24
	eng := engine.New(cfg, width, height)
	if debug {
		eng.SetErrorSink(func(err error) {
			fmt.Fprintf(os.Stderr, "engine error: %v\n", err)
		})
	}

	opts := primitives.MountOptions{Mode: primitives.ModeFullscreen, Mouse: true}
	if inline {
		opts.Mode = primitives.ModeInline
		opts.Mouse = false
	}

	m := frame.NewModel(eng, func() { demoTree(eng.Context) }, opts)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	teaOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Mode == primitives.ModeFullscreen {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}

	// Mouse reporting is written to the TTY directly with the bit-exact
	// sequence spec.md §6 pins, rather than bubbletea's own
	// WithMouseCellMotion/WithMouseAllMotion (a narrower bit subset);
	// bubbletea's input reader decodes SGR/X10 mouse reports regardless
	// of how reporting was turned on, so this doesn't need a matching
	// ProgramOption.
	if opts.Mouse {
		fmt.Print(wire.EnableMouse)
		defer fmt.Print(wire.DisableMouse)
	}

	program := tea.NewProgram(m, teaOpts...)
	_, err = program.Run()
	return err
}

// demoTree mounts a column layout: a markdown heading text on top and a
// rounded-border box holding a placeholder input below it, the way a rootBuilder passed to mount() is expected to
// declare its whole tree in one pass (spec.md §6).
func demoTree(ctx *primitives.Context) {
	primitives.Box(ctx, primitives.Props{
		"flexDirection": "column",
		"width":         "100%",
		"height":        "100%",
		"paddingTop":    1,
		"paddingRight":  1,
		"paddingBottom": 1,
		"paddingLeft":   1,
		"children": primitives.ChildBuilder(func() {
			primitives.Text(ctx, primitives.Props{
				"content":      "# reactivetui/tuicore demo\n\nType below, press Enter to submit, Esc to cancel, Ctrl+C to quit.",
				"markdown":     true,
				"marginBottom": 1,
			})

			primitives.Box(ctx, primitives.Props{
				"borderStyle": "rounded",
				"borderColor": "#5ac8fa",
				"width":       "100%",
				"children": primitives.ChildBuilder(func() {
					primitives.Input(ctx, primitives.Props{
						"id":          "demo-input",
						"placeholder": "say something...",
						"width":       "100%",
						"onSubmit": func(v string) {
							_ = v
						},
					})
				}),
			})
		}),
	})
}
