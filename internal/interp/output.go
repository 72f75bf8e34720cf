package interp

import (
	"io"
	"os"
)

// stdout is where the print builtin writes (§4.6: "print writes its string
// operand to standard output with a trailing newline"). Tests redirect it
// with SetOutput to capture output without touching the real os.Stdout.
var stdout io.Writer = os.Stdout

// SetOutput redirects where the print builtin writes, returning the
// previous writer so a caller can restore it.
func SetOutput(w io.Writer) io.Writer {
	prev := stdout
	stdout = w
	return prev
}
