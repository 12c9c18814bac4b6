package commands

import (
	"testing"
)

func TestDrawCommand_Help(t *testing.T) {
	cmd := &DrawCommand{}
	help := cmd.Help()

	expectedStrings := []string{
		"Draw TEXT on the GitHub activity calendar",
		"--dilute",
		"--token",
		"--token-file",
		"--no-push",
		"--create",
		"--replace",
		"--private-repo",
		"--help",
	}

	for _, expected := range expectedStrings {
		if !contains(help, expected) {
			t.Errorf("Help output should contain '%s', but got: %s", expected, help)
		}
	}
}

func TestDrawCommand_Synopsis(t *testing.T) {
	cmd := &DrawCommand{}
	synopsis := cmd.Synopsis()

	expected := "Draw text on the GitHub activity calendar"
	if synopsis != expected {
		t.Errorf("Expected synopsis '%s', got '%s'", expected, synopsis)
	}
}

func TestDrawCommand_Run_Help(t *testing.T) {
	cmd := &DrawCommand{}

	exitCode := cmd.Run([]string{"--help"})
	if exitCode != 0 {
		t.Errorf("Expected exit code 0 for --help, got %d", exitCode)
	}

	exitCode = cmd.Run([]string{"-h"})
	if exitCode != 0 {
		t.Errorf("Expected exit code 0 for -h, got %d", exitCode)
	}
}

func TestDrawCommand_Run_InvalidFlag(t *testing.T) {
	cmd := &DrawCommand{}

	exitCode := cmd.Run([]string{"--invalid-flag"})
	if exitCode != exitUsage {
		t.Errorf("Expected exit code %d for invalid flag, got %d", exitUsage, exitCode)
	}
}

func TestDrawCommand_Run_MissingArguments(t *testing.T) {
	cmd := &DrawCommand{}

	exitCode := cmd.Run([]string{})
	if exitCode != exitUsage {
		t.Errorf("Expected exit code %d for missing arguments, got %d", exitUsage, exitCode)
	}

	exitCode = cmd.Run([]string{"HI"})
	if exitCode != exitUsage {
		t.Errorf("Expected exit code %d for a single argument, got %d", exitUsage, exitCode)
	}

	exitCode = cmd.Run([]string{"HI", "canvas", "extra"})
	if exitCode != exitUsage {
		t.Errorf("Expected exit code %d for extra arguments, got %d", exitUsage, exitCode)
	}
}
