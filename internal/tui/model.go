// Package tui is the interactive habit dashboard.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/stats"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/tracker"
	"github.com/julianstephens/habitkit/internal/tui/components/habits"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateHabits
	StateRanking
)

var states = []SessionState{StateDashboard, StateHabits, StateRanking}

func (s SessionState) String() string {
	switch s {
	case StateHabits:
		return "Habits"
	case StateRanking:
		return "Ranking"
	default:
		return "Dashboard"
	}
}

var metrics = []stats.Metric{stats.MetricCompletionRate, stats.MetricStreak, stats.MetricTotalCheckIns}

type Model struct {
	store    storage.Provider
	cal      calendar.Calendar
	settings models.Settings
	now      func() time.Time

	coll        *tracker.Collection
	policy      stats.RangePolicy
	metric      stats.Metric
	state       SessionState
	keys        KeyMap
	help        help.Model
	habitsModel habits.Model
	status      string
	quitting    bool
	width       int
	height      int
}

// NewModel loads the live habits from store. now supplies the evaluation
// instant, time.Now when nil.
func NewModel(store storage.Provider, cal calendar.Calendar, settings models.Settings, now func() time.Time) (Model, error) {
	if now == nil {
		now = time.Now
	}
	list, err := store.GetAllHabits(false, false)
	if err != nil {
		return Model{}, fmt.Errorf("failed to load habits: %w", err)
	}

	policy, err := stats.ParseRangePolicy(settings.DefaultRange)
	if err != nil {
		policy = stats.RangeAll
	}

	coll := tracker.NewCollection(list)
	return Model{
		store:       store,
		cal:         cal,
		settings:    settings,
		now:         now,
		coll:        coll,
		policy:      policy,
		metric:      stats.MetricCompletionRate,
		state:       StateDashboard,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		habitsModel: habits.New(coll.Snapshot(), cal, now(), 0, 0),
	}, nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Range}
	switch m.state {
	case StateHabits:
		keys = append(keys, habits.DefaultKeyMap().Toggle)
	case StateRanking:
		keys = append(keys, m.keys.Metric)
	}
	return append(keys, m.keys.Help, m.keys.Quit)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Help, m.keys.Quit}
	actions := []key.Binding{m.keys.Range, m.keys.Metric, habits.DefaultKeyMap().Toggle}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// statistics builds fresh statistics over the current collection.
func (m Model) statistics() *stats.Statistics {
	return stats.New(m.coll.Snapshot(), m.policy, m.cal)
}

func (m *Model) refreshHabits() {
	m.habitsModel.SetHabits(m.coll.Snapshot(), m.cal, m.now())
}

func nextMetric(current stats.Metric) stats.Metric {
	for i, metric := range metrics {
		if metric == current {
			return metrics[(i+1)%len(metrics)]
		}
	}
	return stats.MetricCompletionRate
}
