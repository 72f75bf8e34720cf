package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/pipeline"
	"ember/internal/project"
	"ember/internal/source"
)

var buildCmd = &cobra.Command{
	Use:   "build [files...]",
	Short: "lower ember source through HIR and MIR and report diagnostics",
	Long: "build loads the named files (or the nearest ember.toml's entry files\n" +
		"when none are given), runs the full pipeline, and prints diagnostics.",
	RunE: buildExecution,
}

func init() {
	buildCmd.Flags().Bool("print-hir", false, "dump the HIR tree after lowering (§6.1)")
	buildCmd.Flags().Bool("dump-mir", false, "dump the lowered MIR after HIR->MIR lowering")
	buildCmd.Flags().String("hir-out", "", "write --print-hir output here instead of stdout")
	buildCmd.Flags().String("mir-out", "", "write --dump-mir output here instead of stdout")
}

// resolveInputs picks the files to compile: positional arguments when given,
// otherwise the nearest ember.toml's entry files (§6.1's "positional
// arguments: input source files" extended with the project-manifest
// fallback this spec's CLI supplements it with).
func resolveInputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	manifest, ok, err := project.Load(cwd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no input files given and no %s found", project.ManifestName)
	}
	return manifest.EntryFiles(), nil
}

func buildExecution(cmd *cobra.Command, args []string) error {
	paths, err := resolveInputs(args)
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

	res, err := pipeline.Compile(pipeline.Request{Files: fs, FileIDs: ids, MaxDiagnostics: maxDiagnostics})
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	res.Bag.Sort()
	if res.Bag.Len() > 0 && !quiet {
		diagfmt.Pretty(os.Stderr, res.Bag, fs, diagfmt.PrettyOpts{
			Color:     wantColor(cmd),
			Context:   1,
			PathMode:  diagfmt.PathModeAuto,
			ShowNotes: true,
		})
	}

	printHIR, _ := cmd.Flags().GetBool("print-hir")
	dumpMIR, _ := cmd.Flags().GetBool("dump-mir")
	if printHIR || dumpMIR {
		format, fmtErr := dumpFormat(cmd)
		if fmtErr != nil {
			return fmtErr
		}
		if printHIR {
			if res.Store == nil {
				return fmt.Errorf("--print-hir: HIR was not produced (parse errors)")
			}
			hirOut, _ := cmd.Flags().GetString("hir-out")
			if dumpErr := dumpTo(hirOut, func(w io.Writer) error { return writeHIRDump(w, res.Store, format) }); dumpErr != nil {
				return dumpErr
			}
		}
		if dumpMIR {
			if res.MIR == nil {
				return fmt.Errorf("--dump-mir: MIR was not produced")
			}
			mirOut, _ := cmd.Flags().GetString("mir-out")
			if dumpErr := dumpTo(mirOut, func(w io.Writer) error { return writeMIRDump(w, res.MIR, format) }); dumpErr != nil {
				return dumpErr
			}
		}
	}

	if res.HasErrors() {
		return fmt.Errorf("build failed: %d diagnostic(s) reported", res.Bag.Len())
	}
	return nil
}

func dumpTo(path string, write func(io.Writer) error) error {
	w, closeFn, err := dumpDestination(path)
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()
	return write(w)
}
