// internal/render/render.go
package render

import (
	"io"
	"os"

	"github.com/AlverezYari/picamui/internal/session"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Renderer paints a full-screen view of a session snapshot. The screen is
// cleared before every paint; there is no partial update or diffing.
type Renderer interface {
	Render(snap session.Snapshot)
}

// Caps describes the terminal capabilities, probed once at startup and then
// injected — never queried again mid-run.
type Caps struct {
	IsTTY bool
	Color bool
}

// DetectCaps probes stdout.
func DetectCaps() Caps {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	profile := termenv.ColorProfile()
	return Caps{
		IsTTY: tty,
		Color: tty && profile != termenv.Ascii,
	}
}

// Select picks the renderer for the whole run: the rich panel when the
// terminal can take it, the fixed-width box otherwise. Both display the
// same fields.
func Select(caps Caps, out io.Writer) Renderer {
	if caps.Color {
		return NewRich(out)
	}
	return NewPlain(out)
}

func clearScreen(out io.Writer) {
	termenv.NewOutput(out).ClearScreen()
}

// lastN returns up to the n newest names, oldest first.
func lastN(names []string, n int) []string {
	if len(names) <= n {
		return names
	}
	return names[len(names)-n:]
}
