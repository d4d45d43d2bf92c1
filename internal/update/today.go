package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dowk233/steelMaster/internal/model"
	"github.com/dowk233/steelMaster/internal/progress"
)

// row is one selectable line on the Today view: a task or a sub-task.
type row struct {
	TaskIndex int
	SubIndex  int
}

func dayRows(day model.Day) []row {
	rows := make([]row, 0, len(day.Tasks))
	for i, t := range day.Tasks {
		rows = append(rows, row{TaskIndex: i, SubIndex: -1})
		for j := range t.SubTasks {
			rows = append(rows, row{TaskIndex: i, SubIndex: j})
		}
	}
	return rows
}

func (m Model) handleTodayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.Today.FocusHabits = !m.Today.FocusHabits
		return m, nil
	case "a":
		m.Entry = EntryTask
		m.entryInput.SetValue("")
		m.entryInput.Placeholder = "new task"
		m.entryInput.Focus()
		return m, nil
	case "s":
		if _, ok := m.selectedTask(); ok {
			m.Entry = EntrySub
			m.entryInput.SetValue("")
			m.entryInput.Placeholder = "new sub-task"
			m.entryInput.Focus()
		}
		return m, nil
	case "h":
		m.Entry = EntryHabit
		m.entryInput.SetValue("")
		m.entryInput.Placeholder = "new habit"
		m.entryInput.Focus()
		return m, nil
	case "g":
		m.Entry = EntryGoal
		m.entryInput.SetValue(m.State.Goal)
		m.entryInput.Placeholder = "goal"
		m.entryInput.Focus()
		return m, nil
	}

	if m.Today.FocusHabits {
		return m.handleHabitListKey(msg)
	}
	return m.handleTaskListKey(msg)
}

func (m Model) handleTaskListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	day := m.SelectedDay()
	rows := dayRows(day)
	pos := m.cursorPos(rows)

	switch msg.String() {
	case "up", "k":
		if pos > 0 {
			m.Today.Cursor = CursorRow(rows[pos-1])
		}
		return m, nil
	case "down", "j":
		if pos >= 0 && pos < len(rows)-1 {
			m.Today.Cursor = CursorRow(rows[pos+1])
		}
		return m, nil
	case " ", "space":
		return m.toggleSelectedRow(day)
	case "d", "x":
		return m.deleteSelectedRow(day)
	}
	return m, nil
}

func (m Model) handleHabitListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Today.HabitCursor > 0 {
			m.Today.HabitCursor--
		}
		return m, nil
	case "down", "j":
		if m.Today.HabitCursor < len(m.State.Habits)-1 {
			m.Today.HabitCursor++
		}
		return m, nil
	case "d", "x":
		if m.Today.HabitCursor < 0 || m.Today.HabitCursor >= len(m.State.Habits) {
			return m, nil
		}
		target := m.State.Habits[m.Today.HabitCursor]
		next := progress.SetHabits(m.State, progress.RemoveHabit(m.State.Habits, target.ID))
		if m.Today.HabitCursor >= len(next.Habits) && m.Today.HabitCursor > 0 {
			m.Today.HabitCursor--
		}
		return m.applyState(next, "habit removed: "+target.Title)
	}
	return m, nil
}

func (m Model) toggleSelectedRow(day model.Day) (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	var mutated model.Day
	if m.Today.Cursor.SubIndex >= 0 {
		if m.Today.Cursor.SubIndex >= len(task.SubTasks) {
			return m, nil
		}
		mutated = progress.ToggleSubtask(day, task.ID, task.SubTasks[m.Today.Cursor.SubIndex].ID)
	} else {
		mutated = progress.ToggleTask(day, task.ID)
	}
	return m.applyState(progress.ApplyDay(m.State, mutated), "")
}

func (m Model) deleteSelectedRow(day model.Day) (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	var mutated model.Day
	if m.Today.Cursor.SubIndex >= 0 {
		if m.Today.Cursor.SubIndex >= len(task.SubTasks) {
			return m, nil
		}
		mutated = progress.DeleteSubtask(day, task.ID, task.SubTasks[m.Today.Cursor.SubIndex].ID)
		m.Today.Cursor.SubIndex--
	} else {
		mutated = progress.DeleteTask(day, task.ID)
		if m.Today.Cursor.TaskIndex >= len(mutated.Tasks) && m.Today.Cursor.TaskIndex > 0 {
			m.Today.Cursor.TaskIndex--
		}
	}
	return m.applyState(progress.ApplyDay(m.State, mutated), "")
}

func (m Model) handleEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Entry = EntryNone
		m.entryInput.Blur()
		return m, nil
	case "enter":
		return m.commitEntry()
	}
	var cmd tea.Cmd
	m.entryInput, cmd = m.entryInput.Update(msg)
	return m, cmd
}

func (m Model) commitEntry() (tea.Model, tea.Cmd) {
	text := m.entryInput.Value()
	mode := m.Entry
	m.Entry = EntryNone
	m.entryInput.Blur()

	switch mode {
	case EntryTask:
		day := progress.AddTask(m.SelectedDay(), text)
		return m.applyState(progress.ApplyDay(m.State, day), "")
	case EntrySub:
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		day := progress.AddSubtask(m.SelectedDay(), task.ID, text)
		return m.applyState(progress.ApplyDay(m.State, day), "")
	case EntryHabit:
		return m.applyState(progress.SetHabits(m.State, progress.AddHabit(m.State.Habits, text)), "")
	case EntryGoal:
		return m.applyState(progress.SetGoal(m.State, text), "goal updated")
	}
	return m, nil
}

func (m Model) selectedTask() (model.Task, bool) {
	day := m.SelectedDay()
	idx := m.Today.Cursor.TaskIndex
	if idx < 0 || idx >= len(day.Tasks) {
		return model.Task{}, false
	}
	return day.Tasks[idx], true
}

func (m Model) cursorPos(rows []row) int {
	for i, r := range rows {
		if r.TaskIndex == m.Today.Cursor.TaskIndex && r.SubIndex == m.Today.Cursor.SubIndex {
			return i
		}
	}
	if len(rows) > 0 {
		return 0
	}
	return -1
}
