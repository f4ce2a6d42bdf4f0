// Package logger configures the structured logger shared by buildterm.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance.
var Logger *log.Logger

// output is where component loggers write; it follows Configure.
var output io.Writer = os.Stderr

var (
	mu         sync.Mutex
	components []*log.Logger
)

func init() {
	Logger = log.New(output)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.InfoLevel)
}

// Configure sets the level and destination. An empty level falls back to
// BUILDTERM_LOG_LEVEL, then info. A non-empty file is opened for append.
func Configure(level string, file string) error {
	if level == "" {
		level = os.Getenv("BUILDTERM_LOG_LEVEL")
	}

	var w io.Writer = os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		w = f
	}
	reset(w, ParseLevel(level))
	return nil
}

// Discard silences all logging, keeping the current level.
func Discard() {
	reset(io.Discard, Logger.GetLevel())
}

// SetOutput redirects logging, mainly for tests.
func SetOutput(w io.Writer) {
	reset(w, Logger.GetLevel())
}

func reset(w io.Writer, level log.Level) {
	output = w
	Logger = log.New(w)
	Logger.SetTimeFormat("")
	Logger.SetLevel(level)
}

// SetLevel changes the level of the global logger and of every component
// logger created so far.
func SetLevel(level string) {
	lvl := ParseLevel(level)
	Logger.SetLevel(lvl)

	mu.Lock()
	defer mu.Unlock()
	for _, l := range components {
		l.SetLevel(lvl)
	}
}

// ParseLevel converts a level name to a log.Level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs and exits.
func Fatal(msg interface{}, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

// NewStyledLogger returns a component logger, e.g. "repl" or "api", that
// writes where the global logger does at the same level.
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("33")).
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("214")).
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("196")).
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("240")).
		Foreground(lipgloss.Color("15"))

	styles.Keys["command"] = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	styles.Keys["session"] = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	l := log.NewWithOptions(output, log.Options{
		Prefix: prefix + " ",
	})
	l.SetStyles(styles)
	l.SetLevel(Logger.GetLevel())

	mu.Lock()
	components = append(components, l)
	mu.Unlock()
	return l
}
