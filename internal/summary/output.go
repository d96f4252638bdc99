package summary

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for muted labels
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for the written path
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// boxStyle for the report box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)
)

// FormatReport renders the outcome of a run.
func FormatReport(w io.Writer, r *Report) {
	line1 := fmt.Sprintf("%s %s  %s %d",
		dimStyle.Render("Mode:"), titleStyle.Render(string(r.Mode)),
		dimStyle.Render("Entries:"), r.Entries,
	)
	if r.Mode == ModeTree {
		line1 += fmt.Sprintf("  %s %d", dimStyle.Render("Placeholders:"), r.Synthesized)
	}
	line2 := fmt.Sprintf("%s %s", dimStyle.Render("Wrote:"), successStyle.Render(r.Path))

	content := titleStyle.Render("Summary Complete") + "\n" + line1 + "\n" + line2
	fmt.Fprintln(w, boxStyle.Render(content))
}
