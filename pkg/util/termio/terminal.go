package termio

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DEFAULT_WIDTH is the width assumed for anything which is not a terminal.
const DEFAULT_WIDTH = 80

// IsTerminal checks whether a given writer is attached to a terminal.
func IsTerminal(out io.Writer) bool {
	if f, ok := out.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	//
	return false
}

// Width returns the width (in characters) of the terminal attached to a given
// writer, or DEFAULT_WIDTH if there is none.
func Width(out io.Writer) uint {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return uint(w)
		}
	}
	//
	return DEFAULT_WIDTH
}
