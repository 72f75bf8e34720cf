// Package diagfmt renders a diag.Bag into human-readable text for the CLI.
// It owns no diagnostic semantics of its own; it only knows how to resolve
// spans through a source.FileSet and lay out gutters and underlines.
package diagfmt

import (
	"fmt"
	"io"
	"strings"
	"ember/internal/diag"
	"ember/internal/source"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// visualWidthUpTo computes the visual column width of a substring up to a
// given 1-based byte column, accounting for tabs and wide Unicode runes.
func visualWidthUpTo(s string, byteCol uint32, tabWidth int) int {
	if byteCol <= 1 {
		return 0
	}

	bytePos := 0
	visualPos := 0

	for _, r := range s {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}

	return visualPos
}

// Pretty formats diagnostics for terminal display. Callers should call
// bag.Sort() first for deterministic ordering. Each entry prints:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <line context with a ^~~~ underline under the primary span>
//	  note: ... (if opts.ShowNotes)
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	infoColor := color.New(color.FgCyan, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	codeColor := color.New(color.FgMagenta)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)

	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	context, err := safecast.Conv[uint32](opts.Context)
	if err != nil {
		panic(fmt.Errorf("context overflow: %w", err))
	}
	if context == 0 {
		context = 1
	}

	formatPath := func(f *source.File) string {
		switch opts.PathMode {
		case PathModeAbsolute:
			return f.FormatPath("absolute", "")
		case PathModeRelative:
			return f.FormatPath("relative", fs.BaseDir())
		case PathModeBasename:
			return f.FormatPath("basename", "")
		default:
			return f.FormatPath("auto", "")
		}
	}

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w) //nolint:errcheck
		}

		lineColStart, lineColEnd := fs.Resolve(d.Primary)
		f, ok := fs.FileAt(d.Primary.Lo)
		if !ok {
			fmt.Fprintf(w, "<unknown>: %s %s: %s\n", d.Severity, d.Code.ID(), d.Message) //nolint:errcheck
			continue
		}
		displayPath := formatPath(f)

		sevStr := d.Severity.String()
		var sevColored string
		switch d.Severity {
		case diag.SevError:
			sevColored = errorColor.Sprint(sevStr)
		case diag.SevWarning:
			sevColored = warningColor.Sprint(sevStr)
		default:
			sevColored = infoColor.Sprint(sevStr)
		}

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", //nolint:errcheck
			pathColor.Sprint(displayPath),
			lineColStart.Line, lineColStart.Col,
			sevColored, codeColor.Sprint(d.Code.ID()), d.Message,
		)

		totalLines, err := safecast.Conv[uint32](len(f.LineIdx))
		if err != nil {
			panic(fmt.Errorf("total lines overflow: %w", err))
		}
		totalLines++

		startLine := uint32(1)
		if lineColStart.Line > context {
			startLine = lineColStart.Line - context
		}
		endLine := min(lineColStart.Line+context, totalLines)

		if startLine > 1 {
			fmt.Fprintln(w, "...") //nolint:errcheck
		}

		const tabWidth = 8
		lineNumWidth := max(len(fmt.Sprintf("%d", endLine)), 3)

		for lineNum := startLine; lineNum <= endLine; lineNum++ {
			lineText := f.GetLine(lineNum)
			lineNumStr := fmt.Sprintf("%*d", lineNumWidth, lineNum)
			gutter := fmt.Sprintf("%s | ", lineNumColor.Sprint(lineNumStr))
			gutterLen := lineNumWidth + 3

			io.WriteString(w, gutter)   //nolint:errcheck
			io.WriteString(w, lineText) //nolint:errcheck
			io.WriteString(w, "\n")     //nolint:errcheck

			if lineNum == lineColStart.Line {
				startCol := lineColStart.Col
				endCol := lineColEnd.Col
				if lineColEnd.Line > lineColStart.Line {
					lenLineText, err := safecast.Conv[uint32](len(lineText))
					if err != nil {
						panic(fmt.Errorf("len line text overflow: %w", err))
					}
					endCol = lenLineText + 1
				}

				visualStart := visualWidthUpTo(lineText, startCol, tabWidth)
				visualEnd := visualWidthUpTo(lineText, endCol, tabWidth)

				var underline strings.Builder
				for range gutterLen {
					underline.WriteByte(' ')
				}
				for range visualStart {
					underline.WriteByte(' ')
				}
				spanLen := visualEnd - visualStart
				if spanLen <= 0 {
					underline.WriteByte('^')
				} else {
					for i := 0; i < spanLen; i++ {
						if i == spanLen-1 {
							underline.WriteByte('^')
						} else {
							underline.WriteByte('~')
						}
					}
				}
				fmt.Fprintln(w, underlineColor.Sprint(underline.String())) //nolint:errcheck
			}
		}

		if endLine < totalLines {
			fmt.Fprintln(w, "...") //nolint:errcheck
		}

		if opts.ShowNotes {
			for _, note := range d.Notes {
				nf, ok := fs.FileAt(note.Span.Lo)
				if !ok {
					continue
				}
				notePath := formatPath(nf)
				noteStart, _ := fs.Resolve(note.Span)
				fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n", //nolint:errcheck
					infoColor.Sprint("note"), pathColor.Sprint(notePath),
					noteStart.Line, noteStart.Col, note.Msg,
				)
			}
		}
	}
}
