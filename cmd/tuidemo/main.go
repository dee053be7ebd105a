// Command tuidemo is a small runnable example that mounts a component
// tree against a real TTY and drives it with bubbletea, the way
// _examples/wwsheng009-yao/cmd/tui.go wires its own engine.Load/tui.Load
// pipeline into a tea.NewProgram. It exercises engine.New, the box/text/
// input primitives and frame.Model end to end; it is not the scaffolding
// CLI spec.md's Non-goals exclude.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var debug bool
var inline bool

var rootCmd = &cobra.Command{
	Use:   "tuidemo",
	Short: "Run the reactivetui/tuicore reference demo",
	Long:  "Mounts a small box/text/input tree and runs it with bubbletea, exercising the engine end to end against a real terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := run(debug, inline); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "log unhandled engine errors to stderr")
	rootCmd.PersistentFlags().BoolVarP(&inline, "inline", "i", false, "run in inline mode instead of the alt screen")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
