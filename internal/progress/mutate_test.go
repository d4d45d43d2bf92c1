package progress

import (
	"reflect"
	"testing"

	"github.com/dowk233/steelMaster/internal/model"
)

func dayWith(tasks ...model.Task) model.Day {
	d := model.Day{DayID: 5, Tasks: tasks}
	d.Completed = d.DerivedCompleted()
	return d
}

func TestAddTask(t *testing.T) {
	day := dayWith()
	got := AddTask(day, "Morning run")
	if len(got.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got.Tasks))
	}
	task := got.Tasks[0]
	if task.Title != "Morning run" || task.Completed || len(task.SubTasks) != 0 {
		t.Fatalf("unexpected new task: %#v", task)
	}
	if task.ID == "" {
		t.Fatal("task id not generated")
	}
	if got.Completed {
		t.Fatal("day with an open task must not be completed")
	}
	if len(day.Tasks) != 0 {
		t.Fatal("input day was mutated")
	}
}

func TestAddTaskBlankTitleIsNoop(t *testing.T) {
	day := dayWith(model.Task{ID: "t1", Title: "Keep", Completed: true})
	for _, title := range []string{"", "   ", "\t\n"} {
		got := AddTask(day, title)
		if !reflect.DeepEqual(got, day) {
			t.Fatalf("blank title %q changed the day: %#v", title, got)
		}
	}
}

func TestToggleTaskRecomputesDayCompletion(t *testing.T) {
	day := dayWith(
		model.Task{ID: "t1", Title: "a", Completed: true},
		model.Task{ID: "t2", Title: "b"},
	)
	if day.Completed {
		t.Fatal("precondition: day must start incomplete")
	}

	got := ToggleTask(day, "t2")
	if !got.Tasks[1].Completed {
		t.Fatal("t2 not toggled on")
	}
	if !got.Completed {
		t.Fatal("all tasks done, day must be completed")
	}

	back := ToggleTask(got, "t1")
	if back.Tasks[0].Completed {
		t.Fatal("t1 not toggled off")
	}
	if back.Completed {
		t.Fatal("day must drop completion when a task reopens")
	}
}

func TestToggleTaskUnknownIDIsNoop(t *testing.T) {
	day := dayWith(model.Task{ID: "t1", Title: "a"})
	got := ToggleTask(day, "missing")
	if !reflect.DeepEqual(got, day) {
		t.Fatalf("unknown id changed the day: %#v", got)
	}
}

func TestDeleteTask(t *testing.T) {
	day := dayWith(
		model.Task{ID: "t1", Title: "a", Completed: true},
		model.Task{ID: "t2", Title: "b"},
	)
	got := DeleteTask(day, "t2")
	if len(got.Tasks) != 1 || got.Tasks[0].ID != "t1" {
		t.Fatalf("unexpected tasks after delete: %#v", got.Tasks)
	}
	if !got.Completed {
		t.Fatal("remaining tasks all done, day must be completed")
	}

	empty := DeleteTask(got, "t1")
	if len(empty.Tasks) != 0 {
		t.Fatalf("expected empty task list, got %#v", empty.Tasks)
	}
	if empty.Completed {
		t.Fatal("day with no tasks must not be completed")
	}
}

func TestAddThenDeleteTaskRestoresDay(t *testing.T) {
	day := dayWith(model.Task{ID: "t1", Title: "keep"})
	added := AddTask(day, "temp")
	got := DeleteTask(added, added.Tasks[len(added.Tasks)-1].ID)
	if !reflect.DeepEqual(got, day) {
		t.Fatalf("add/delete did not restore the day:\n got: %#v\nwant: %#v", got, day)
	}
}

func TestSubtaskLifecycle(t *testing.T) {
	day := dayWith(model.Task{ID: "t1", Title: "parent", Completed: true})
	if !day.Completed {
		t.Fatal("precondition: day completed")
	}

	got := AddSubtask(day, "t1", "step one")
	if len(got.Tasks[0].SubTasks) != 1 {
		t.Fatalf("expected 1 subtask, got %d", len(got.Tasks[0].SubTasks))
	}
	sub := got.Tasks[0].SubTasks[0]
	if sub.Title != "step one" || sub.Completed || sub.ID == "" {
		t.Fatalf("unexpected subtask: %#v", sub)
	}
	// Sub-tasks never feed the parent task or the day completion flags.
	if !got.Tasks[0].Completed || !got.Completed {
		t.Fatal("subtask add must not change task or day completion")
	}

	toggled := ToggleSubtask(got, "t1", sub.ID)
	if !toggled.Tasks[0].SubTasks[0].Completed {
		t.Fatal("subtask not toggled")
	}
	if !toggled.Completed {
		t.Fatal("subtask toggle must not change day completion")
	}

	deleted := DeleteSubtask(toggled, "t1", sub.ID)
	if len(deleted.Tasks[0].SubTasks) != 0 {
		t.Fatalf("subtask not deleted: %#v", deleted.Tasks[0].SubTasks)
	}
}

func TestSubtaskNoops(t *testing.T) {
	day := dayWith(model.Task{ID: "t1", Title: "parent", SubTasks: []model.SubTask{{ID: "s1", Title: "x"}}})

	if got := AddSubtask(day, "t1", "  "); !reflect.DeepEqual(got, day) {
		t.Fatal("blank subtask title must be a no-op")
	}
	if got := AddSubtask(day, "missing", "y"); !reflect.DeepEqual(got, day) {
		t.Fatal("unknown task id must be a no-op")
	}
	if got := ToggleSubtask(day, "t1", "missing"); !reflect.DeepEqual(got, day) {
		t.Fatal("unknown subtask id must be a no-op")
	}
	if got := DeleteSubtask(day, "missing", "s1"); !reflect.DeepEqual(got, day) {
		t.Fatal("unknown task id must be a no-op for delete")
	}
}

func TestHabitAddRemove(t *testing.T) {
	habits := []model.Habit{{ID: "h1", Title: "Daily Review", Active: true}}

	got := AddHabit(habits, "Stretch")
	if len(got) != 2 || got[1].Title != "Stretch" || !got[1].Active || got[1].ID == "" {
		t.Fatalf("unexpected habits after add: %#v", got)
	}
	if len(habits) != 1 {
		t.Fatal("input habit slice was mutated")
	}

	if blank := AddHabit(habits, " "); len(blank) != 1 {
		t.Fatalf("blank habit title must be a no-op: %#v", blank)
	}

	removed := RemoveHabit(got, got[0].ID)
	if len(removed) != 1 || removed[0].Title != "Stretch" {
		t.Fatalf("unexpected habits after remove: %#v", removed)
	}
	if missing := RemoveHabit(got, "nope"); !reflect.DeepEqual(missing, got) {
		t.Fatal("unknown habit id must be a no-op")
	}
}

func TestApplyDayLeavesSiblingsUntouched(t *testing.T) {
	state := model.DefaultYearState()
	day := AddTask(state.Days[4], "only day five changes")

	got := ApplyDay(state, day)
	if len(got.Days[4].Tasks) != 1 {
		t.Fatalf("day 5 not replaced: %#v", got.Days[4])
	}
	for i, d := range got.Days {
		if i == 4 {
			continue
		}
		if !reflect.DeepEqual(d, state.Days[i]) {
			t.Fatalf("sibling day %d changed: %#v", d.DayID, d)
		}
	}
	if len(state.Days[4].Tasks) != 0 {
		t.Fatal("input state was mutated")
	}
}

func TestSetGoalAllowsEmpty(t *testing.T) {
	state := model.DefaultYearState()
	got := SetGoal(state, "")
	if got.Goal != "" {
		t.Fatalf("expected empty goal, got %q", got.Goal)
	}
	got = SetGoal(got, "Ship the album")
	if got.Goal != "Ship the album" {
		t.Fatalf("unexpected goal: %q", got.Goal)
	}
}

func TestToggleTheme(t *testing.T) {
	state := model.DefaultYearState()
	dark := ToggleTheme(state)
	if dark.Theme != model.ThemeDark {
		t.Fatalf("expected dark, got %q", dark.Theme)
	}
	light := ToggleTheme(dark)
	if light.Theme != model.ThemeLight {
		t.Fatalf("expected light, got %q", light.Theme)
	}
}

func TestCycleLanguageWraps(t *testing.T) {
	state := model.DefaultYearState()
	want := []model.Language{model.LanguageENUK, model.LanguageJP, model.LanguageZH, model.LanguageEN}
	for _, lang := range want {
		state = CycleLanguage(state)
		if state.Language != lang {
			t.Fatalf("expected %q, got %q", lang, state.Language)
		}
	}
}

func TestScenarioDayCompletionDerivation(t *testing.T) {
	state := model.DefaultYearState()

	day5 := AddTask(state.Days[4], "first")
	day5 = AddTask(day5, "second")
	day5 = ToggleTask(day5, day5.Tasks[0].ID)
	day5 = ToggleTask(day5, day5.Tasks[1].ID)

	day6 := AddTask(state.Days[5], "first")
	day6 = AddTask(day6, "second")
	day6 = ToggleTask(day6, day6.Tasks[0].ID)

	state = ApplyDay(state, day5)
	state = ApplyDay(state, day6)

	if !state.Days[4].Completed {
		t.Fatal("day 5 must be completed")
	}
	if state.Days[5].Completed {
		t.Fatal("day 6 must not be completed")
	}
	if err := state.Validate(); err != nil {
		t.Fatalf("state invalid after mutations: %v", err)
	}
}
