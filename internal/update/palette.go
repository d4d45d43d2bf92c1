package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dowk233/steelMaster/internal/commands"
	"github.com/dowk233/steelMaster/internal/model"
	"github.com/dowk233/steelMaster/internal/progress"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.commandInput.Blur()
		return m, nil
	case "enter":
		line := m.commandInput.Value()
		m.Palette.Active = false
		m.commandInput.Blur()
		return m.runCommand(line)
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

// runCommand parses a palette line and dispatches it. Handler errors and
// parse errors both land on the status bar; the model is untouched on
// failure.
func (m Model) runCommand(line string) (tea.Model, tea.Cmd) {
	cmd, err := commands.Parse(line)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var (
		next    *model.YearState
		kick    bool
		jumpDay int
	)

	handlers := commands.Handlers{
		Task: func(args commands.TaskArgs) (commands.Result, error) {
			day := progress.AddTask(m.SelectedDay(), args.Title)
			s := progress.ApplyDay(m.State, day)
			next = &s
			return commands.Result{Message: "task added: " + args.Title}, nil
		},
		Sub: func(args commands.SubArgs) (commands.Result, error) {
			day := m.SelectedDay()
			if args.TaskIndex > len(day.Tasks) {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("day %d has no task %d", m.SelectedID, args.TaskIndex),
				}
			}
			parent := day.Tasks[args.TaskIndex-1]
			s := progress.ApplyDay(m.State, progress.AddSubtask(day, parent.ID, args.Title))
			next = &s
			return commands.Result{Message: "sub-task added under: " + parent.Title}, nil
		},
		Habit: func(args commands.HabitArgs) (commands.Result, error) {
			s := progress.SetHabits(m.State, progress.AddHabit(m.State.Habits, args.Title))
			next = &s
			return commands.Result{Message: "habit added: " + args.Title}, nil
		},
		Goal: func(args commands.GoalArgs) (commands.Result, error) {
			s := progress.SetGoal(m.State, args.Text)
			next = &s
			if args.Text == "" {
				return commands.Result{Message: "goal cleared"}, nil
			}
			return commands.Result{Message: "goal updated"}, nil
		},
		Day: func(args commands.DayArgs) (commands.Result, error) {
			jumpDay = args.DayID
			return commands.Result{Message: fmt.Sprintf("day %d", args.DayID)}, nil
		},
		Theme: func() (commands.Result, error) {
			s := progress.ToggleTheme(m.State)
			next = &s
			return commands.Result{Message: fmt.Sprintf("theme: %s", s.Theme)}, nil
		},
		Lang: func() (commands.Result, error) {
			s := progress.CycleLanguage(m.State)
			next = &s
			return commands.Result{Message: fmt.Sprintf("language: %s", s.Language)}, nil
		},
		Refresh: func() (commands.Result, error) {
			kick = true
			return commands.Result{Message: "insight refresh requested"}, nil
		},
	}

	res, err := commands.Execute(cmd, handlers)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	if jumpDay != 0 {
		m.SelectedID = jumpDay
		m.Grid.Cursor = jumpDay - 1
		m.CurrentView = ViewToday
		m.Today.Cursor = CursorRow{TaskIndex: 0, SubIndex: -1}
	}
	if kick && m.refresh != nil {
		m.refresh.Kick()
	}
	if next != nil {
		return m.applyState(*next, res.Message)
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	return m, nil
}
