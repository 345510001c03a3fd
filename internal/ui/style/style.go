// Package style provides the colors and icons shared by the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#2F80ED")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// Heading renders a bold accent-colored title.
func Heading(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(Accent).Render(s)
}
