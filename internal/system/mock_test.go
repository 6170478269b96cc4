package system

import (
	"context"
	"errors"
	"testing"
)

func TestMockExecutor_RecordsCommands(t *testing.T) {
	m := NewMockExecutor()

	if _, err := m.Execute(context.Background(), "ssh", "-V"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if err := m.ExecuteInteractive(context.Background(), "ssh", "user@host"); err != nil {
		t.Fatalf("ExecuteInteractive: %v", err)
	}
	if err := m.ReplaceProcess("ssh", "user@host"); err != nil {
		t.Fatalf("ReplaceProcess: %v", err)
	}

	cmds := m.Commands()
	if len(cmds) != 3 {
		t.Fatalf("recorded %d commands, want 3", len(cmds))
	}
	if cmds[1].Interactive != true {
		t.Error("second command should be interactive")
	}
	if cmds[2].Replaced != true {
		t.Error("third command should be a process replacement")
	}

	last, ok := m.LastCommand()
	if !ok || !last.Replaced {
		t.Errorf("LastCommand() = %+v, %v", last, ok)
	}
}

func TestMockExecutor_Responses(t *testing.T) {
	m := NewMockExecutor()
	m.AddResponse("uname", []byte("Linux\n"), nil)
	m.AddResponse("false", nil, errors.New("exit status 1"))

	out, err := m.Execute(context.Background(), "uname", "-s")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if string(out) != "Linux\n" {
		t.Errorf("output = %q", out)
	}

	if _, err := m.Execute(context.Background(), "false"); err == nil {
		t.Error("registered error should surface")
	}

	// Unmatched commands succeed with empty output.
	out, err = m.Execute(context.Background(), "true")
	if err != nil || len(out) != 0 {
		t.Errorf("unmatched command = %q, %v", out, err)
	}
}

func TestMockExecutor_Reset(t *testing.T) {
	m := NewMockExecutor()
	m.AddResponse("x", []byte("y"), nil)
	m.Execute(context.Background(), "x")

	m.Reset()
	if _, ok := m.LastCommand(); ok {
		t.Error("Reset should clear recorded commands")
	}
	out, _ := m.Execute(context.Background(), "x")
	if len(out) != 0 {
		t.Error("Reset should clear responses")
	}
}

func TestDefaultExecutorSwap(t *testing.T) {
	m := NewMockExecutor()
	SetDefaultExecutor(m)
	defer ResetDefault()

	if DefaultExecutor() != CommandExecutor(m) {
		t.Error("DefaultExecutor should return the installed mock")
	}

	ResetDefault()
	if _, ok := DefaultExecutor().(*osExecutor); !ok {
		t.Error("ResetDefault should restore the real executor")
	}
}
