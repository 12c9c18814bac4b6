package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// levelStyles shade each data level with the palette GitHub uses for the
// contribution calendar, lightest to darkest.
var levelStyles = [MaxDataLevel + 1]lipgloss.Style{
	lipgloss.NewStyle().Background(lipgloss.Color("#161b22")),
	lipgloss.NewStyle().Background(lipgloss.Color("#0e4429")),
	lipgloss.NewStyle().Background(lipgloss.Color("#006d32")),
	lipgloss.NewStyle().Background(lipgloss.Color("#26a641")),
	lipgloss.NewStyle().Background(lipgloss.Color("#39d353")),
}

// Styled renders the map as a colored calendar for terminals, two cells
// per day so the grid is roughly square.
func (m DataLevelMap) Styled() string {
	var rows [7][]string

	for i, item := range m.Items() {
		level := item.Level
		if level < 0 || level > MaxDataLevel {
			level = MaxDataLevel
		}
		rows[i%7] = append(rows[i%7], levelStyles[level].Render("  "))
	}

	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = strings.Join(rows[i], "")
	}

	return strings.Join(lines, "\n")
}
