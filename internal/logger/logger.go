// Package logger provides the leveled logger used across selectfile.
//
// Messages are written as "[HH:MM:SS] [LEVEL] message". Levels are colourised
// when the destination is a terminal. A Logger with a nil writer discards
// everything, which is what the picker uses while the terminal UI owns the screen
// and no log file was requested.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Level is a message severity.
type Level int

// Levels, from most to least verbose.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel converts a level name case-insensitively. Unknown names map to info
// and report false.
func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

// Logger writes leveled messages to a writer. It is safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	writer io.Writer
	level  Level
	color  bool
	now    func() time.Time
}

// New creates a Logger writing messages at level and above to writer.
// Colour is enabled when writer is a terminal and NO_COLOR is unset.
func New(writer io.Writer, level Level) *Logger {
	return &Logger{
		writer: writer,
		level:  level,
		color:  isTerminal(writer),
		now:    time.Now,
	}
}

// Discard returns a Logger that drops every message.
func Discard() *Logger {
	return New(nil, LevelError)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}

	return !color.NoColor && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && l.writer != nil && level >= l.level
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) { l.logf(LevelInfo, format, args...) }

// Warnf logs at warn level.
func (l *Logger) Warnf(format string, args ...any) { l.logf(LevelWarn, format, args...) }

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	name := level.String()
	if l.color {
		name = levelColor(level).Sprint(name)
	}

	//nolint:errcheck // Logging must not fail the caller
	fmt.Fprintf(l.writer, "[%s] [%s] %s\n", l.now().Format("15:04:05"), name, fmt.Sprintf(format, args...))
}

func levelColor(level Level) *color.Color {
	switch level {
	case LevelDebug:
		return color.New(color.FgCyan)
	case LevelWarn:
		return color.New(color.FgYellow)
	case LevelError:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgBlue)
	}
}
