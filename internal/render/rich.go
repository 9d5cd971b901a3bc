// internal/render/rich.go
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/AlverezYari/picamui/internal/session"
	"github.com/charmbracelet/lipgloss"
)

// Style definitions
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	readyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	capturingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	errorDotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	readyDotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Rich renders the session as a rounded lipgloss panel.
type Rich struct {
	out io.Writer
}

func NewRich(out io.Writer) *Rich {
	return &Rich{out: out}
}

// Render clears the screen and paints the full panel.
func (r *Rich) Render(snap session.Snapshot) {
	clearScreen(r.out)
	fmt.Fprintln(r.out, panelStyle.Render(r.view(snap)))
}

func (r *Rich) view(snap session.Snapshot) string {
	dot := errorDotStyle.Render("●")
	if snap.CameraReady {
		dot = readyDotStyle.Render("●")
	}
	uptime := time.Since(snap.StartedAt).Truncate(time.Second)

	var b strings.Builder
	b.WriteString(titleStyle.Render("picamui"))
	b.WriteString(" | " + dot + " " + snap.CameraStatus)
	b.WriteString(" " + dimStyle.Render("up "+uptime.String()) + "\n\n")

	b.WriteString(labelStyle.Render("Session:"))
	b.WriteString(fmt.Sprintf(" %d  ", snap.SessionCount))
	b.WriteString(labelStyle.Render("Total:"))
	b.WriteString(fmt.Sprintf(" %d  ", snap.TotalCount))
	b.WriteString(labelStyle.Render("Last:"))
	b.WriteString(" " + lastStyle.Render(snap.LastPhoto) + "\n\n")

	if snap.IsCapturing {
		b.WriteString(capturingStyle.Render("CAPTURING..."))
	} else {
		b.WriteString(readyStyle.Render("READY"))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Recent photos:") + "\n")
	recent := lastN(snap.RecentPhotos, 3)
	if len(recent) == 0 {
		b.WriteString(dimStyle.Render("No photos yet...") + "\n")
	} else {
		for _, photo := range recent {
			b.WriteString("  • " + photo + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(readyStyle.Render("SPACE") + " capture | ")
	b.WriteString(lastStyle.Render("R") + " refresh | ")
	b.WriteString(capturingStyle.Render("Q") + " quit")
	return b.String()
}
