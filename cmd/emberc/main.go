// Command emberc is the thin CLI entrypoint around the core pipeline (§6.1):
// it loads source files, runs them through internal/pipeline, renders
// diagnostics, and optionally dumps HIR/MIR or interprets the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "emberc",
	Short: "ember language compiler front-end",
	Long:  "emberc lowers ember source through HIR and MIR and can interpret the result.",
}

// main configures the root command's subcommands and global flags, then
// executes it, exiting 1 on any error -- including a compile that emitted an
// Error-level diagnostic (§6.1: "Exit code: 1 when any Error-level
// diagnostic was emitted").
func main() {
	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress rendered diagnostics (and run's printed result)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to accumulate before further ones are dropped")
	rootCmd.PersistentFlags().String("format", "text", "dump encoding for --print-hir/--dump-mir (text|msgpack)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// wantColor resolves the --color flag against terminal detection, the same
// auto|on|off tri-state the teacher's root command exposes.
func wantColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
