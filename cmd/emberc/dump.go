package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ember/internal/hir"
	"ember/internal/mir"
)

// dumpFormat reads and validates the --format flag shared by --print-hir and
// --dump-mir.
func dumpFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Root().PersistentFlags().GetString("format")
	if err != nil {
		return "", err
	}
	switch format {
	case "text", "msgpack":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported --format %q (expected text|msgpack)", format)
	}
}

func writeHIRDump(w io.Writer, store *hir.Store, format string) error {
	if format == "msgpack" {
		return store.EncodeMsgpack(w)
	}
	_, err := fmt.Fprint(w, store.Dump())
	return err
}

func writeMIRDump(w io.Writer, ctx *mir.Context, format string) error {
	if format == "msgpack" {
		return ctx.EncodeMsgpack(w)
	}
	_, err := fmt.Fprint(w, ctx.Dump())
	return err
}

// dumpDestination opens path for writing, or returns os.Stdout for "" / "-".
func dumpDestination(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path) // #nosec G304 -- path is a CLI-supplied flag
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
