package nvup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}).
			Padding(0, 2)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
)

// renderNextSteps renders a bordered panel with a bold title followed
// by the given lines, one per row.
func renderNextSteps(title string, lines []string) string {
	body := panelTitleStyle.Render(title) + "\n" + strings.Join(lines, "\n")
	return panelStyle.Render(body)
}
