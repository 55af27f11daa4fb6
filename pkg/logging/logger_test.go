package logging

import (
	"strings"
	"testing"
)

func TestConsoleWritesOneLinePerEvent(t *testing.T) {
	var buf strings.Builder
	logger := NewConsole(&buf)

	Infof(logger, "Version", "Project Generator v%s", "0.1.0")
	Successf(logger, "Success", "Project creation completed")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[") || !strings.Contains(lines[0], "Version") {
		t.Errorf("missing label in %q", lines[0])
	}
	if !strings.Contains(lines[0], "Project Generator v0.1.0") {
		t.Errorf("missing message in %q", lines[0])
	}
	if !strings.Contains(lines[1], "Project creation completed") {
		t.Errorf("missing message in %q", lines[1])
	}
}

func TestConsoleUnknownLevelFallsBackToBullet(t *testing.T) {
	var buf strings.Builder
	logger := NewConsole(&buf)

	logger.Logf(Level("mystery"), "Label", "message")

	if !strings.HasPrefix(buf.String(), "•") {
		t.Errorf("expected bullet prefix, got %q", buf.String())
	}
}

func TestConsoleEcho(t *testing.T) {
	var buf strings.Builder
	logger := NewConsole(&buf)

	logger.Echo("raw output")
	logger.Echo("")

	if buf.String() != "raw output\n" {
		t.Errorf("unexpected echo output %q", buf.String())
	}
}

func TestHelpersRouteLevels(t *testing.T) {
	var buf strings.Builder
	logger := NewConsole(&buf)

	File(logger, "/tmp/x/package.json")
	Directory(logger, "/tmp/x/src")
	Hook(logger, "yarn install")

	out := buf.String()
	for _, want := range []string{
		"Created: /tmp/x/package.json",
		"Created: /tmp/x/src",
		"Executing: yarn install",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestOrNop(t *testing.T) {
	if _, ok := OrNop(nil).(Nop); !ok {
		t.Errorf("expected Nop for nil logger")
	}
	console := NewConsole(&strings.Builder{})
	if OrNop(console) != console {
		t.Errorf("expected passthrough for non-nil logger")
	}

	// The no-op sink must swallow everything without panicking.
	OrNop(nil).Logf(LevelInfo, "Label", "message %d", 1)
	OrNop(nil).Echo("text")
}
