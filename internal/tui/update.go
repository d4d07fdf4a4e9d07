package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitkit/internal/logger"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/tui/components/habits"
)

const chromeHeight = 4

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.habitsModel.SetSize(msg.Width, max(0, msg.Height-chromeHeight))
		return m, nil

	case habits.ToggleHabitMsg:
		m.toggle(msg.ID)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = states[(int(m.state)+1)%len(states)]
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = states[(int(m.state)+len(states)-1)%len(states)]
			return m, nil
		case key.Matches(msg, m.keys.Range):
			m.policy = m.policy.Next()
			m.status = "Range: " + m.policy.Label()
			return m, nil
		case key.Matches(msg, m.keys.Metric) && m.state == StateRanking:
			m.metric = nextMetric(m.metric)
			return m, nil
		}
	}

	if m.state == StateHabits {
		var cmd tea.Cmd
		m.habitsModel, cmd = m.habitsModel.Update(msg)
		return m, cmd
	}
	return m, nil
}

// toggle flips today's completion and persists the habit.
func (m *Model) toggle(id string) {
	now := m.now()
	before, _ := m.coll.Get(id)
	updated, err := m.coll.Toggle(m.cal, id, now)
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return
	}
	if err := m.store.UpdateHabit(updated); err != nil {
		logger.Error("Failed to save habit", "id", id, "error", err)
		m.status = fmt.Sprintf("Error: %v", err)
		// Put back the exact pre-toggle completions so the collection matches the store.
		if _, err := m.coll.Update(id, func(h *models.Habit) { *h = before }); err != nil {
			logger.Warn("Failed to revert toggle", "id", id, "error", err)
		}
		return
	}

	if updated.IsCompletedOn(m.cal, now) {
		m.status = fmt.Sprintf("Marked %s", updated.Name)
	} else {
		m.status = fmt.Sprintf("Unmarked %s", updated.Name)
	}
	m.refreshHabits()
}
