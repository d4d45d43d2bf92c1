package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dowk233/steelMaster/internal/model"
)

const gridColumns = 28

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.Grid.Cursor = clampGrid(m.Grid.Cursor - 1)
	case "right", "l":
		m.Grid.Cursor = clampGrid(m.Grid.Cursor + 1)
	case "up", "k":
		m.Grid.Cursor = clampGrid(m.Grid.Cursor - gridColumns)
	case "down", "j":
		m.Grid.Cursor = clampGrid(m.Grid.Cursor + gridColumns)
	case "g", "home":
		m.Grid.Cursor = 0
	case "G", "end":
		m.Grid.Cursor = model.TotalDays - 1
	case "t":
		m.Grid.Cursor = m.TodayID - 1
	case "enter":
		m.SelectedID = m.Grid.Cursor + 1
		m.CurrentView = ViewToday
		m.Today.Cursor = CursorRow{TaskIndex: 0, SubIndex: -1}
		m.Today.FocusHabits = false
	}
	return m, nil
}

func clampGrid(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx > model.TotalDays-1 {
		return model.TotalDays - 1
	}
	return idx
}
