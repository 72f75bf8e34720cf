package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/interp"
	"ember/internal/mangle"
	"ember/internal/pipeline"
	"ember/internal/source"
)

var runCmd = &cobra.Command{
	Use:   "run [files...]",
	Short: "compile and interpret a program's top-level main function",
	Long:  "run compiles the named files and interprets the no-argument, top-level `main` function (§4.6).",
	RunE:  runExecution,
}

func init() {
	runCmd.Flags().String("entry", "main", "top-level function name to interpret")
}

func runExecution(cmd *cobra.Command, args []string) error {
	paths, err := resolveInputs(args)
	if err != nil {
		return err
	}
	entry, err := cmd.Flags().GetString("entry")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	ids, err := loadFiles(fs, paths)
	if err != nil {
		return err
	}

	// The entry function is always a direct child of a SourceFile (no
	// enclosing module), so its mangled path is just its own name (§6.4).
	mangled := mangle.Name(mangle.Func, []string{entry})

	res, value, runErr := pipeline.Run(pipeline.Request{Files: fs, FileIDs: ids, MaxDiagnostics: maxDiagnostics}, mangled)

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if res.Bag != nil {
		res.Bag.Sort()
		if res.Bag.Len() > 0 && !quiet {
			diagfmt.Pretty(os.Stderr, res.Bag, fs, diagfmt.PrettyOpts{
				Color:     wantColor(cmd),
				Context:   1,
				PathMode:  diagfmt.PathModeAuto,
				ShowNotes: true,
			})
		}
	}
	if res.HasErrors() {
		return fmt.Errorf("run failed: %d diagnostic(s) reported", res.Bag.Len())
	}
	if runErr != nil {
		var fault *interp.Fault
		if errors.As(runErr, &fault) {
			return fmt.Errorf("runtime fault: %s", fault.Message)
		}
		return runErr
	}

	if !quiet {
		fmt.Println(value.String())
	}
	return nil
}
