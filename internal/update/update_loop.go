package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dowk233/steelMaster/internal/i18n"
	"github.com/dowk233/steelMaster/internal/model"
	"github.com/dowk233/steelMaster/internal/progress"
)

func (m Model) Init() tea.Cmd {
	if m.refresh != nil {
		return waitForRefreshCmd(m.refresh.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiWidth = typed.Width
		m.uiHeight = typed.Height
		return m, nil

	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.Entry != EntryNone {
			return m.handleEntryKey(typed)
		}
		return m.handleGlobalKey(typed)

	case spinner.TickMsg:
		if m.insightRefreshing {
			var cmd tea.Cmd
			m.thinkSpinner, cmd = m.thinkSpinner.Update(typed)
			return m, cmd
		}
		return m, nil

	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case RefreshDueMsg:
		return m.onRefreshDue()

	case InsightMsg:
		// Last arrival wins; a stale in-flight reply simply lands later
		// and overwrites.
		m.Insight = typed.Insight
		m.InsightAt = typed.At
		m.insightRefreshing = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Today):
		m.CurrentView = ViewToday
		m.SelectedID = m.TodayID
		m.Today.Cursor = CursorRow{TaskIndex: 0, SubIndex: -1}
		return m, nil
	case key.Matches(msg, m.Keys.Grid):
		m.CurrentView = ViewGrid
		return m, nil
	case key.Matches(msg, m.Keys.Stats):
		m.CurrentView = ViewStats
		return m, nil
	case key.Matches(msg, m.Keys.Palette):
		m.Palette.Active = true
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, nil
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
		return m, nil
	}

	switch msg.String() {
	case "T":
		return m.applyState(progress.ToggleTheme(m.State), "theme switched")
	case "L":
		next := progress.CycleLanguage(m.State)
		return m.applyState(next, fmt.Sprintf("language: %s", next.Language))
	case "R":
		if m.refresh != nil {
			m.refresh.Kick()
		}
		return m, nil
	}

	switch m.CurrentView {
	case ViewToday:
		return m.handleTodayKey(msg)
	case ViewGrid:
		return m.handleGridKey(msg)
	}
	return m, nil
}

// applyState installs a mutated state, persists it synchronously, and sets
// the status line. Persistence failures are the one error class shown to
// the user undecorated.
func (m Model) applyState(next model.YearState, okStatus string) (Model, tea.Cmd) {
	m.State = next
	if m.store != nil {
		if err := m.store.Save(m.saveCtx(), next); err != nil {
			m.logger.Error("save failed", "error", err)
			m.Status = StatusBar{Text: fmt.Sprintf("save failed: %v", err), IsError: true}
			return m, nil
		}
	}
	if okStatus == "" {
		okStatus = i18n.For(m.State.Language).StatusSaved
	}
	m.Status = StatusBar{Text: okStatus, IsError: false}
	return m, nil
}

func isKnownView(v View) bool {
	switch v {
	case ViewToday, ViewGrid, ViewStats:
		return true
	default:
		return false
	}
}
