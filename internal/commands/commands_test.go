package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"todoapp/internal/commands"
	"todoapp/internal/config"
	"todoapp/internal/exitcode"
	"todoapp/internal/service"
	"todoapp/internal/tasklist"
	"todoapp/internal/testutil"
)

// runCommand is a helper to run a command against svc.
func runCommand(t *testing.T, cmd commands.Command, svc service.Service, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
	}

	code = cmd.Run(context.Background(), cfg, svc, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestVersionCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.VersionCmd{}, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todoapp 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

func TestHelpCommand_ListsEveryCommand(t *testing.T) {
	stdout, _, code := runCommand(t, &commands.HelpCmd{}, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.HasPrefix(stdout, "Usage:\n") {
		t.Errorf("help output should start with 'Usage:', got %q", stdout)
	}
	for _, cmd := range commands.DefaultRegistry.All() {
		if !strings.Contains(stdout, cmd.Usage()) {
			t.Errorf("help output missing %q", cmd.Usage())
		}
	}
}

func TestListCommand_SampleTasks(t *testing.T) {
	svc := tasklist.New(tasklist.SampleTasks())

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "list_sample", stdout)
}

func TestListCommand_CompletedOnly(t *testing.T) {
	svc := tasklist.New(tasklist.SampleTasks())

	cmd := &commands.ListCmd{}
	cmd.SetFilter(false, true)
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "Completed Tasks\n   2  [x] dig for gold\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_ActiveOnlyEmpty(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(2, "dig for gold", true)

	cmd := &commands.ListCmd{}
	cmd.SetFilter(true, false)
	stdout, _, _ := runCommand(t, cmd, svc, nil, false)

	expected := "Active Tasks\n      No active tasks\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_ConflictingFilters(t *testing.T) {
	cmd := &commands.ListCmd{}
	cmd.SetFilter(true, true)
	stdout, stderr, code := runCommand(t, cmd, testutil.NewFakeService(), nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: cannot use both --active and --completed\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestAddCommand_Success(t *testing.T) {
	svc := tasklist.New(tasklist.SampleTasks())

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, svc, []string{"buy", "milk"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "added 4\n" {
		t.Errorf("expected 'added 4\\n', got %q", stdout)
	}

	task, ok := svc.Get(4)
	if !ok || task.Description != "buy milk" || task.IsCompleted {
		t.Errorf("unexpected task: %+v (found %v)", task, ok)
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, svc, []string{"Buy", "milk"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestAddCommand_BlankDescription(t *testing.T) {
	for _, args := range [][]string{nil, {"  "}, {"", "\t"}} {
		svc := testutil.NewFakeService()

		stdout, stderr, code := runCommand(t, &commands.AddCmd{}, svc, args, false)

		if code != exitcode.UserError {
			t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
		}
		if stdout != "" {
			t.Errorf("expected no stdout, got %q", stdout)
		}
		if stderr != "error: description required\n" {
			t.Errorf("expected description required error, got %q", stderr)
		}
		if len(svc.Calls) != 0 {
			t.Errorf("expected no service calls, got %v", svc.Calls)
		}
	}
}

func TestDoneCommand_TogglesBothWays(t *testing.T) {
	svc := tasklist.New(tasklist.SampleTasks())

	stdout, stderr, code := runCommand(t, &commands.DoneCmd{}, svc, []string{"1", "2"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}

	one, _ := svc.Get(1)
	two, _ := svc.Get(2)
	if !one.IsCompleted {
		t.Error("expected task 1 to be completed")
	}
	if two.IsCompleted {
		t.Error("expected task 2 to be reopened")
	}
}

func TestDoneCommand_NoRef(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.DoneCmd{}, testutil.NewFakeService(), nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: task reference required\n" {
		t.Errorf("expected task reference required error, got %q", stderr)
	}
}

func TestDoneCommand_InvalidRef(t *testing.T) {
	svc := testutil.NewFakeService()

	_, stderr, code := runCommand(t, &commands.DoneCmd{}, svc, []string{"abc"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid task reference: abc\n" {
		t.Errorf("expected invalid task reference error, got %q", stderr)
	}
	if len(svc.Calls) != 0 {
		t.Errorf("expected no service calls, got %v", svc.Calls)
	}
}

func TestDoneCommand_NotFoundStopsProcessing(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(0, "a", false)
	svc.AddTask(1, "b", false)

	stdout, stderr, code := runCommand(t, &commands.DoneCmd{}, svc, []string{"0", "7", "1"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: task not found: 7\n" {
		t.Errorf("expected not found error, got %q", stderr)
	}
	want := []string{"Toggle(0)", "Toggle(7)"}
	if strings.Join(svc.Calls, ",") != strings.Join(want, ",") {
		t.Errorf("expected calls %v, got %v", want, svc.Calls)
	}
}

func TestRmCommand_Success(t *testing.T) {
	svc := tasklist.New(tasklist.SampleTasks())

	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, svc, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}
	if svc.Len() != 3 {
		t.Errorf("expected 3 tasks remaining, got %d", svc.Len())
	}
}

func TestRmCommand_Twice(t *testing.T) {
	svc := tasklist.New(tasklist.SampleTasks())

	runCommand(t, &commands.RmCmd{}, svc, []string{"1"}, false)
	_, stderr, code := runCommand(t, &commands.RmCmd{}, svc, []string{"1"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: 1\n" {
		t.Errorf("expected not found error, got %q", stderr)
	}
	if svc.Len() != 3 {
		t.Errorf("expected 3 tasks remaining, got %d", svc.Len())
	}
}

func TestRmCommand_NoRef(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, testutil.NewFakeService(), nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: task reference required\n" {
		t.Errorf("expected task reference required error, got %q", stderr)
	}
}
