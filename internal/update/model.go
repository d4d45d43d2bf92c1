package update

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/dowk233/steelMaster/internal/model"
	"github.com/dowk233/steelMaster/internal/scheduler"
	"github.com/dowk233/steelMaster/internal/storage"
)

type View string

const (
	ViewToday View = "Today"
	ViewGrid  View = "Grid"
	ViewStats View = "Stats"
)

// EntryMode says which input box on the Today view owns keystrokes.
type EntryMode string

const (
	EntryNone  EntryMode = ""
	EntryTask  EntryMode = "task"
	EntrySub   EntryMode = "sub"
	EntryHabit EntryMode = "habit"
	EntryGoal  EntryMode = "goal"
)

type StatusBar struct {
	Text    string
	IsError bool
}

// CursorRow addresses the selection on the Today view: a task, or one of
// its sub-tasks.
type CursorRow struct {
	TaskIndex int
	SubIndex  int // -1 selects the task row itself
}

type TodayState struct {
	Cursor      CursorRow
	HabitCursor int
	FocusHabits bool
}

type GridState struct {
	Cursor int // 0-based index into the 365 days
}

type CommandPaletteState struct {
	Active bool
}

type KeyMap struct {
	Today   key.Binding
	Grid    key.Binding
	Stats   key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() KeyMap {
	return KeyMap{
		Today:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "today")),
		Grid:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "grid")),
		Stats:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "stats")),
		Palette: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// InsightGateway is what the update loop needs from the advisor boundary.
type InsightGateway interface {
	RequestInsight(ctx context.Context, days []model.Day, goal string) model.AIInsight
}

type Model struct {
	State       model.YearState
	CurrentView View
	TodayID     int
	SelectedID  int
	Today       TodayState
	Grid        GridState
	Palette     CommandPaletteState
	Entry       EntryMode
	Status      StatusBar
	Keys        KeyMap
	HelpVisible bool
	Quitting    bool

	Insight           model.AIInsight
	InsightAt         time.Time
	insightRefreshing bool

	store    storage.Store
	gateway  InsightGateway
	refresh  *scheduler.Engine
	logger   *slog.Logger
	saveCtx  func() context.Context
	uiWidth  int
	uiHeight int

	entryInput   textinput.Model
	commandInput textinput.Model
	thinkSpinner spinner.Model
	helpModel    help.Model
}

// Messages.

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type SaveDoneMsg struct {
	Err error
}

type RefreshDueMsg struct {
	Event scheduler.RefreshEvent
}

type InsightMsg struct {
	Insight model.AIInsight
	At      time.Time
}

// NewModel builds the application model around an already-loaded state.
// store may be nil in tests; saves become no-ops then.
func NewModel(state model.YearState, todayID int, store storage.Store, gateway InsightGateway, refresh *scheduler.Engine, logger *slog.Logger) Model {
	if todayID < 1 {
		todayID = 1
	}
	if todayID > model.TotalDays {
		todayID = model.TotalDays
	}
	if logger == nil {
		logger = slog.Default()
	}
	m := Model{
		State:       state,
		CurrentView: ViewToday,
		TodayID:     todayID,
		SelectedID:  todayID,
		Today:       TodayState{Cursor: CursorRow{TaskIndex: 0, SubIndex: -1}},
		Grid:        GridState{Cursor: todayID - 1},
		Keys:        defaultKeyMap(),
		Insight:     model.AIInsight{},
		store:       store,
		gateway:     gateway,
		refresh:     refresh,
		logger:      logger,
		saveCtx:     context.Background,
	}
	m.entryInput = textinput.New()
	m.entryInput.CharLimit = 200
	m.entryInput.Width = 48
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 200
	m.commandInput.Width = 48
	m.thinkSpinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.helpModel = help.New()
	return m
}

// SelectedDay returns the day the UI is focused on. The canonical layout
// puts day N at index N-1.
func (m Model) SelectedDay() model.Day {
	idx := m.SelectedID - 1
	if idx < 0 || idx >= len(m.State.Days) {
		return model.Day{}
	}
	return m.State.Days[idx]
}
