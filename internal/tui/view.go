package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitkit/internal/render"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHabits:
		content = m.viewHabits()
	case StateRanking:
		content = m.viewRanking()
	default:
		content = m.viewDashboard()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		contentStyle.Render(content),
		statusStyle.Render(m.status),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	tabs := make([]string, len(states))
	for i, s := range states {
		style := inactiveTabStyle
		if s == m.state {
			style = activeTabStyle
		}
		tabs[i] = style.Render(s.String())
	}
	tabs = append(tabs, inactiveTabStyle.Render("· "+m.policy.Label()))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	if m.coll.Len() == 0 {
		return "No habits yet. Add one with 'habitkit habit add'."
	}
	now := m.now()
	s := m.statistics()

	var b strings.Builder
	b.WriteString(render.Summary(s.Summarize(now), m.cal))
	b.WriteString("\n\n")
	points, err := s.Trend(now)
	if err != nil {
		b.WriteString("Trend unavailable: " + err.Error())
	} else {
		b.WriteString(render.Trend(points, m.policy))
	}
	return b.String()
}

func (m Model) viewHabits() string {
	h := m.habitsModel.Selected()
	if h == nil {
		return "No habits yet. Add one with 'habitkit habit add'."
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.habitsModel.View(),
		"  ",
		render.Detail(h, m.cal, m.now(), m.settings.HeatmapColumns),
	)
}

func (m Model) viewRanking() string {
	ranked := m.statistics().Rank(m.metric, m.now())
	return render.Ranking(ranked, m.metric, m.settings.RankingLimit)
}
