package habits

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/models"
)

type ToggleHabitMsg struct {
	ID string
}

type Item struct {
	Habit    *models.Habit
	IsMarked bool
	Streak   int
}

func (i Item) Title() string {
	if i.IsMarked {
		return "✓ " + i.Habit.Name
	}
	return "○ " + i.Habit.Name
}

func (i Item) Description() string {
	status := "not completed today"
	if i.IsMarked {
		status = "completed today"
	}
	if i.Streak == 1 {
		return fmt.Sprintf("%s · 1 day streak", status)
	}
	return fmt.Sprintf("%s · %d day streak", status, i.Streak)
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "m"),
			key.WithHelp("space/m", "toggle today"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []*models.Habit, cal calendar.Calendar, now time.Time, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle}
	}

	m := Model{list: l, keys: keys}
	m.SetHabits(habits, cal, now)
	return m
}

// SetHabits replaces the items, keeping the cursor position.
func (m *Model) SetHabits(habits []*models.Habit, cal calendar.Calendar, now time.Time) {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{
			Habit:    h,
			IsMarked: h.IsCompletedOn(cal, now),
			Streak:   h.CurrentStreak(cal, now),
		}
	}
	index := m.list.Index()
	m.list.SetItems(items)
	if index < len(items) {
		m.list.Select(index)
	}
}

// Selected returns the highlighted habit, or nil when the list is empty.
func (m Model) Selected() *models.Habit {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Habit
	}
	return nil
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		if key.Matches(msg, m.keys.Toggle) {
			if h := m.Selected(); h != nil {
				id := h.ID
				return m, func() tea.Msg { return ToggleHabitMsg{ID: id} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
