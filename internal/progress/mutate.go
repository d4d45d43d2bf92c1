// Package progress implements the state transitions behind every
// user-initiated change: task and sub-task CRUD on a single day, habit
// list edits, and the goal/theme/language preferences. All operations are
// pure: inputs are left untouched and a new value is returned, so the
// caller can persist the result and discard the old snapshot.
package progress

import (
	"strings"

	"github.com/dowk233/steelMaster/internal/model"
)

// AddTask appends a new open task to the day. A blank or whitespace-only
// title leaves the day unchanged.
func AddTask(day model.Day, title string) model.Day {
	if strings.TrimSpace(title) == "" {
		return day
	}
	out := cloneDay(day)
	out.Tasks = append(out.Tasks, model.Task{
		ID:    model.NewID(),
		Title: title,
	})
	return recompute(out)
}

// ToggleTask flips the completion flag on the matching task. Unknown ids
// are a no-op.
func ToggleTask(day model.Day, taskID string) model.Day {
	out := cloneDay(day)
	for i := range out.Tasks {
		if out.Tasks[i].ID == taskID {
			out.Tasks[i].Completed = !out.Tasks[i].Completed
			return recompute(out)
		}
	}
	return day
}

// DeleteTask removes the matching task. Unknown ids are a no-op.
func DeleteTask(day model.Day, taskID string) model.Day {
	out := cloneDay(day)
	for i := range out.Tasks {
		if out.Tasks[i].ID == taskID {
			out.Tasks = append(out.Tasks[:i], out.Tasks[i+1:]...)
			return recompute(out)
		}
	}
	return day
}

// AddSubtask appends an open sub-task to the matching task. Sub-tasks never
// feed the task or day completion flags, so no recompute happens here.
func AddSubtask(day model.Day, taskID, title string) model.Day {
	if strings.TrimSpace(title) == "" {
		return day
	}
	out := cloneDay(day)
	for i := range out.Tasks {
		if out.Tasks[i].ID == taskID {
			out.Tasks[i].SubTasks = append(out.Tasks[i].SubTasks, model.SubTask{
				ID:    model.NewID(),
				Title: title,
			})
			return out
		}
	}
	return day
}

// ToggleSubtask flips the completion flag on the matching sub-task.
func ToggleSubtask(day model.Day, taskID, subtaskID string) model.Day {
	out := cloneDay(day)
	for i := range out.Tasks {
		if out.Tasks[i].ID != taskID {
			continue
		}
		for j := range out.Tasks[i].SubTasks {
			if out.Tasks[i].SubTasks[j].ID == subtaskID {
				out.Tasks[i].SubTasks[j].Completed = !out.Tasks[i].SubTasks[j].Completed
				return out
			}
		}
	}
	return day
}

// DeleteSubtask removes the matching sub-task.
func DeleteSubtask(day model.Day, taskID, subtaskID string) model.Day {
	out := cloneDay(day)
	for i := range out.Tasks {
		if out.Tasks[i].ID != taskID {
			continue
		}
		for j := range out.Tasks[i].SubTasks {
			if out.Tasks[i].SubTasks[j].ID == subtaskID {
				out.Tasks[i].SubTasks = append(out.Tasks[i].SubTasks[:j], out.Tasks[i].SubTasks[j+1:]...)
				return out
			}
		}
	}
	return day
}

// AddHabit appends a new active habit. Blank titles are a no-op.
func AddHabit(habits []model.Habit, title string) []model.Habit {
	if strings.TrimSpace(title) == "" {
		return habits
	}
	out := make([]model.Habit, len(habits), len(habits)+1)
	copy(out, habits)
	return append(out, model.Habit{ID: model.NewID(), Title: title, Active: true})
}

// RemoveHabit removes the habit with the given id. Unknown ids are a no-op.
func RemoveHabit(habits []model.Habit, habitID string) []model.Habit {
	for i := range habits {
		if habits[i].ID == habitID {
			out := make([]model.Habit, 0, len(habits)-1)
			out = append(out, habits[:i]...)
			return append(out, habits[i+1:]...)
		}
	}
	return habits
}

// ApplyDay replaces the matching day in the state. Sibling days are shared,
// not copied; only the slice header is fresh.
func ApplyDay(state model.YearState, day model.Day) model.YearState {
	out := state
	out.Days = make([]model.Day, len(state.Days))
	copy(out.Days, state.Days)
	for i := range out.Days {
		if out.Days[i].DayID == day.DayID {
			out.Days[i] = day
			break
		}
	}
	return out
}

// SetHabits replaces the habit list.
func SetHabits(state model.YearState, habits []model.Habit) model.YearState {
	out := state
	out.Habits = habits
	return out
}

// SetGoal replaces the goal verbatim; the empty string is allowed.
func SetGoal(state model.YearState, goal string) model.YearState {
	out := state
	out.Goal = goal
	return out
}

// ToggleTheme flips between light and dark.
func ToggleTheme(state model.YearState) model.YearState {
	out := state
	if out.Theme == model.ThemeLight {
		out.Theme = model.ThemeDark
	} else {
		out.Theme = model.ThemeLight
	}
	return out
}

// CycleLanguage advances through the fixed language order, wrapping after
// the last entry. An unknown stored language restarts at the first.
func CycleLanguage(state model.YearState) model.YearState {
	out := state
	next := 0
	for i, lang := range model.LanguageCycle {
		if lang == state.Language {
			next = (i + 1) % len(model.LanguageCycle)
			break
		}
	}
	out.Language = model.LanguageCycle[next]
	return out
}

// recompute refreshes the day's cached completion flag. Every operation
// that touches the task list funnels through here before returning.
func recompute(day model.Day) model.Day {
	day.Completed = day.DerivedCompleted()
	return day
}

func cloneDay(day model.Day) model.Day {
	out := day
	out.Tasks = make([]model.Task, len(day.Tasks))
	copy(out.Tasks, day.Tasks)
	for i := range out.Tasks {
		if len(day.Tasks[i].SubTasks) > 0 {
			out.Tasks[i].SubTasks = make([]model.SubTask, len(day.Tasks[i].SubTasks))
			copy(out.Tasks[i].SubTasks, day.Tasks[i].SubTasks)
		}
	}
	return out
}
