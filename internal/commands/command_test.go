package commands

import (
	"errors"
	"testing"
)

func parseErrCode(t *testing.T, input string) ErrorCode {
	t.Helper()
	_, err := Parse(input)
	if err == nil {
		t.Fatalf("expected error for %q", input)
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected CommandError, got %T", err)
	}
	return cmdErr.Code
}

func TestParseTask(t *testing.T) {
	cmd, err := Parse("/task Morning run 5k")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeTask || cmd.Task == nil || cmd.Task.Title != "Morning run 5k" {
		t.Fatalf("unexpected command: %#v", cmd)
	}
}

func TestParseSub(t *testing.T) {
	cmd, err := Parse("sub 2 warm up first")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeSub || cmd.Sub.TaskIndex != 2 || cmd.Sub.Title != "warm up first" {
		t.Fatalf("unexpected command: %#v", cmd)
	}
}

func TestParseGoalAllowsEmpty(t *testing.T) {
	cmd, err := Parse("/goal")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeGoal || cmd.Goal.Text != "" {
		t.Fatalf("unexpected command: %#v", cmd)
	}
}

func TestParseDay(t *testing.T) {
	cmd, err := Parse("day 120")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeDay || cmd.Day.DayID != 120 {
		t.Fatalf("unexpected command: %#v", cmd)
	}
}

func TestParseBareCommands(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  Type
	}{
		{"theme", TypeTheme},
		{"/lang", TypeLang},
		{"REFRESH", TypeRefresh},
	} {
		cmd, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.input, err)
		}
		if cmd.Type != tc.want {
			t.Fatalf("parse %q: got type %q, want %q", tc.input, cmd.Type, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"   ", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"frobnicate now", ErrCodeUnknownCommand},
		{"task", ErrCodeInvalidArgument},
		{"task   ", ErrCodeInvalidArgument},
		{"sub one stretch", ErrCodeInvalidArgument},
		{"sub 0 stretch", ErrCodeInvalidArgument},
		{"sub 1", ErrCodeInvalidArgument},
		{"habit", ErrCodeInvalidArgument},
		{"day", ErrCodeInvalidArgument},
		{"day 0", ErrCodeInvalidArgument},
		{"day 366", ErrCodeInvalidArgument},
		{"day soon", ErrCodeInvalidArgument},
	}
	for _, tc := range tests {
		if got := parseErrCode(t, tc.input); got != tc.want {
			t.Fatalf("Parse(%q) code = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	var gotTitle string
	handlers := Handlers{
		Task: func(args TaskArgs) (Result, error) {
			gotTitle = args.Title
			return Result{Message: "added"}, nil
		},
	}
	cmd, err := Parse("task Deep work")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := Execute(cmd, handlers)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.Message != "added" || gotTitle != "Deep work" {
		t.Fatalf("unexpected dispatch: res=%#v title=%q", res, gotTitle)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("theme")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing, got %v", err)
	}
}
