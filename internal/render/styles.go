// Package render formats habits and statistics for the terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitkit/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			Width(22)

	cardValueStyle = lipgloss.NewStyle().Bold(true)

	rankStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	}

	barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
)

var palette = map[models.Color]lipgloss.Color{
	models.ColorRed:    lipgloss.Color("196"),
	models.ColorOrange: lipgloss.Color("208"),
	models.ColorYellow: lipgloss.Color("220"),
	models.ColorGreen:  lipgloss.Color("40"),
	models.ColorBlue:   lipgloss.Color("33"),
	models.ColorPurple: lipgloss.Color("135"),
	models.ColorPink:   lipgloss.Color("212"),
	models.ColorIndigo: lipgloss.Color("62"),
	models.ColorTeal:   lipgloss.Color("30"),
	models.ColorCyan:   lipgloss.Color("51"),
}

// ColorOf maps a habit color tag to a terminal color. Unknown tags render red.
func ColorOf(c models.Color) lipgloss.Color {
	return palette[c.OrDefault()]
}

func habitStyle(h *models.Habit) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorOf(h.Color))
}

func rankStyle(rank int) lipgloss.Style {
	if rank >= 1 && rank <= len(rankStyles) {
		return rankStyles[rank-1]
	}
	return mutedStyle
}
