package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Task    func(TaskArgs) (Result, error)
	Sub     func(SubArgs) (Result, error)
	Habit   func(HabitArgs) (Result, error)
	Goal    func(GoalArgs) (Result, error)
	Day     func(DayArgs) (Result, error)
	Theme   func() (Result, error)
	Lang    func() (Result, error)
	Refresh func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeTask:
		if handlers.Task == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "task handler not configured"}
		}
		return handlers.Task(*cmd.Task)
	case TypeSub:
		if handlers.Sub == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "sub handler not configured"}
		}
		return handlers.Sub(*cmd.Sub)
	case TypeHabit:
		if handlers.Habit == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "habit handler not configured"}
		}
		return handlers.Habit(*cmd.Habit)
	case TypeGoal:
		if handlers.Goal == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "goal handler not configured"}
		}
		return handlers.Goal(*cmd.Goal)
	case TypeDay:
		if handlers.Day == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "day handler not configured"}
		}
		return handlers.Day(*cmd.Day)
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "theme handler not configured"}
		}
		return handlers.Theme()
	case TypeLang:
		if handlers.Lang == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "lang handler not configured"}
		}
		return handlers.Lang()
	case TypeRefresh:
		if handlers.Refresh == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "refresh handler not configured"}
		}
		return handlers.Refresh()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
