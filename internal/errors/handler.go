package apperrors

import (
	"fmt"
	"io"
)

// ColorProvider supplies the escape codes used to highlight diagnostics.
// The cli package passes its theme-aware implementation; tests pass a
// no-op one.
type ColorProvider interface {
	Red() string
	Reset() string
}

// HandleError prints a one-line diagnostic for err and returns the exit
// code the process should terminate with.
func HandleError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(out, "%sError:%s %v\n", colors.Red(), colors.Reset(), err)
	return ExitCodeFor(err)
}
