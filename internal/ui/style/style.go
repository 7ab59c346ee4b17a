// Package style provides the colors and icons shared by log output and
// rendered reports.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Ink    = lipgloss.Color("#0B0F19")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// Status returns the icon and color reporting a pass or a failure.
func Status(ok bool) (string, lipgloss.Color) {
	if ok {
		return Check, Green
	}
	return Cross, Red
}

// Presence returns the icon and color for an artifact that is stored or absent.
func Presence(stored bool) (string, lipgloss.Color) {
	if stored {
		return Dot, Iris
	}
	return Circle, Slate
}
