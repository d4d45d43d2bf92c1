package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dowk233/steelMaster/internal/model"
)

type Type string

const (
	TypeTask    Type = "task"
	TypeSub     Type = "sub"
	TypeHabit   Type = "habit"
	TypeGoal    Type = "goal"
	TypeDay     Type = "day"
	TypeTheme   Type = "theme"
	TypeLang    Type = "lang"
	TypeRefresh Type = "refresh"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type TaskArgs struct {
	Title string
}

// SubArgs targets a task by its 1-based position in the selected day.
type SubArgs struct {
	TaskIndex int
	Title     string
}

type HabitArgs struct {
	Title string
}

type GoalArgs struct {
	Text string
}

type DayArgs struct {
	DayID int
}

type Command struct {
	Type  Type
	Raw   string
	Task  *TaskArgs
	Sub   *SubArgs
	Habit *HabitArgs
	Goal  *GoalArgs
	Day   *DayArgs
}

// Parse turns a palette line like "/task Morning run" into a Command.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeTask:
		return parseTask(input, args)
	case TypeSub:
		return parseSub(input, args)
	case TypeHabit:
		return parseHabit(input, args)
	case TypeGoal:
		return parseGoal(input, args)
	case TypeDay:
		return parseDay(input, args)
	case TypeTheme:
		return Command{Type: TypeTheme, Raw: input}, nil
	case TypeLang:
		return Command{Type: TypeLang, Raw: input}, nil
	case TypeRefresh:
		return Command{Type: TypeRefresh, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseTask(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "task requires a title"}
	}
	return Command{Type: TypeTask, Raw: raw, Task: &TaskArgs{Title: title}}, nil
}

func parseSub(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sub requires a task number and a title"}
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task number: %s", args[0])}
	}
	title := strings.TrimSpace(strings.Join(args[1:], " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sub requires a title"}
	}
	return Command{Type: TypeSub, Raw: raw, Sub: &SubArgs{TaskIndex: idx, Title: title}}, nil
}

func parseHabit(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "habit requires a title"}
	}
	return Command{Type: TypeHabit, Raw: raw, Habit: &HabitArgs{Title: title}}, nil
}

func parseGoal(raw string, args []string) (Command, error) {
	// An empty goal is allowed: "/goal" clears it.
	return Command{Type: TypeGoal, Raw: raw, Goal: &GoalArgs{Text: strings.TrimSpace(strings.Join(args, " "))}}, nil
}

func parseDay(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "day requires a day number"}
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 1 || id > model.TotalDays {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("day must be 1..%d", model.TotalDays)}
	}
	return Command{Type: TypeDay, Raw: raw, Day: &DayArgs{DayID: id}}, nil
}
