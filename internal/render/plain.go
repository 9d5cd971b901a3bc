// internal/render/plain.go
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlverezYari/picamui/internal/session"
)

// plainWidth is the inner width of the box, in characters.
const plainWidth = 62

// Plain is the fixed-width box fallback for terminals that cannot take the
// rich panel. It shows the same fields.
type Plain struct {
	out io.Writer
}

func NewPlain(out io.Writer) *Plain {
	return &Plain{out: out}
}

// Render clears the screen and paints the full box.
func (p *Plain) Render(snap session.Snapshot) {
	clearScreen(p.out)
	fmt.Fprint(p.out, p.view(snap))
}

func (p *Plain) view(snap session.Snapshot) string {
	ready := "[!!]"
	if snap.CameraReady {
		ready = "[ok]"
	}
	state := "READY"
	if snap.IsCapturing {
		state = "CAPTURING..."
	}

	var b strings.Builder
	border := "+" + strings.Repeat("-", plainWidth+2) + "+\n"

	b.WriteString(border)
	p.row(&b, "picamui")
	p.row(&b, ready+" "+snap.CameraStatus)
	b.WriteString(border)
	p.row(&b, fmt.Sprintf("Session: %-4d Total: %-4d Last: %s",
		snap.SessionCount, snap.TotalCount, snap.LastPhoto))
	p.row(&b, "")
	p.row(&b, state)
	p.row(&b, "")
	p.row(&b, "Recent photos:")
	recent := lastN(snap.RecentPhotos, 3)
	for _, photo := range recent {
		p.row(&b, "  - "+photo)
	}
	for i := len(recent); i < 3; i++ {
		p.row(&b, "")
	}
	b.WriteString(border)
	p.row(&b, "SPACE - Capture | R - Refresh | Q - Quit")
	b.WriteString(border)
	return b.String()
}

// row writes one padded box line, truncating text that does not fit.
func (p *Plain) row(b *strings.Builder, text string) {
	if len(text) > plainWidth {
		text = text[:plainWidth-3] + "..."
	}
	fmt.Fprintf(b, "| %-*s |\n", plainWidth, text)
}
