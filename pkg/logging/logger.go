// Package logging defines the log sink scaffold operations report progress
// through. The library never writes to stdout on its own; callers inject a
// sink (or get the no-op one).
package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Level tags a log line with the event class it reports.
type Level string

const (
	LevelInfo      Level = "info"
	LevelSuccess   Level = "success"
	LevelWarning   Level = "warning"
	LevelError     Level = "error"
	LevelFile      Level = "file"
	LevelDirectory Level = "directory"
	LevelStart     Level = "start"
	LevelHook      Level = "hook"
)

// Logger is the sink interface. Logf emits one formatted line; Echo passes
// raw text through unchanged (captured hook output).
type Logger interface {
	Logf(level Level, label, format string, args ...any)
	Echo(text string)
}

// Infof logs an informational line to l.
func Infof(l Logger, label, format string, args ...any) {
	l.Logf(LevelInfo, label, format, args...)
}

// Successf logs a success line to l.
func Successf(l Logger, label, format string, args ...any) {
	l.Logf(LevelSuccess, label, format, args...)
}

// Warningf logs a warning line to l.
func Warningf(l Logger, label, format string, args ...any) {
	l.Logf(LevelWarning, label, format, args...)
}

// Errorf logs an error line to l.
func Errorf(l Logger, label, format string, args ...any) {
	l.Logf(LevelError, label, format, args...)
}

// File logs a created-file line to l.
func File(l Logger, path string) {
	l.Logf(LevelFile, "File", "Created: %s", path)
}

// Directory logs a created-directory line to l.
func Directory(l Logger, path string) {
	l.Logf(LevelDirectory, "Directory", "Created: %s", path)
}

// Hook logs a hook-execution line to l.
func Hook(l Logger, command string) {
	l.Logf(LevelHook, "Hook", "Executing: %s", command)
}

var icons = map[Level]string{
	LevelInfo:      "ℹ️",
	LevelSuccess:   "🎉",
	LevelWarning:   "⚠️",
	LevelError:     "❌",
	LevelFile:      "📝",
	LevelDirectory: "📁",
	LevelStart:     "🚀",
	LevelHook:      "🔄",
}

var labelStyles = map[Level]lipgloss.Style{
	LevelInfo:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	LevelSuccess:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	LevelWarning:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	LevelError:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	LevelFile:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	LevelDirectory: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	LevelStart:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	LevelHook:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
}

// Console writes one styled "<icon> [label] message" line per event.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole builds a console sink writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Logf implements Logger.
func (c *Console) Logf(level Level, label, format string, args ...any) {
	icon, ok := icons[level]
	if !ok {
		icon = "•"
	}
	styled := label
	if style, ok := labelStyles[level]; ok {
		styled = style.Render(label)
	}
	msg := fmt.Sprintf(format, args...)

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "%s [%s] %s\n", icon, styled, msg)
}

// Echo implements Logger.
func (c *Console) Echo(text string) {
	if text == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, text)
}

// Nop discards everything.
type Nop struct{}

// Logf implements Logger.
func (Nop) Logf(Level, string, string, ...any) {}

// Echo implements Logger.
func (Nop) Echo(string) {}

// OrNop returns l, or the no-op sink when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop{}
	}
	return l
}
