// Package log provides structured logging for quill.
// It wraps tea.LogToFile with structured fields (level, category, timestamp)
// and is only enabled via the --debug flag or QUILL_DEBUG env.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/quill/internal/pubsub"
)

// Level represents log severity.
type Level int

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
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatEditor  Category = "editor"  // Session dispatch and invariants
	CatKeys    Category = "keys"    // Key event translation
	CatConfig  Category = "config"  // Configuration loading/saving
	CatWatcher Category = "watcher" // Config file watcher events
	CatUI      Category = "ui"      // UI component updates
)

// DefaultBufferSize is how many recent entries are kept in memory.
const DefaultBufferSize = 500

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[string]

	// recent is a ring of the last entries, oldest first once full.
	recent []string
	next   int
	full   bool
}

var defaultLogger *Logger

// InitWithTeaLog routes log output to path via tea.LogToFile.
// Returns a cleanup function that closes the file.
func InitWithTeaLog(path string, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	defaultLogger = newLogger(f, DefaultBufferSize)
	defaultLogger.file = f

	return func() {
		defaultLogger.broker.Close()
		_ = f.Close()
	}, nil
}

// InitWithWriter routes log output to w. Intended for tests.
func InitWithWriter(w io.Writer) func() {
	defaultLogger = newLogger(w, DefaultBufferSize)
	return func() {
		defaultLogger.broker.Close()
		defaultLogger = nil
	}
}

func newLogger(w io.Writer, bufferSize int) *Logger {
	return &Logger{
		writer:   w,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](),
		recent:   make([]string, bufferSize),
	}
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.enabled = enabled
		defaultLogger.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.minLevel = level
		defaultLogger.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	log(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	log(LevelError, cat, msg, fields...)
}

func log(level Level, cat Category, msg string, fields ...any) {
	if defaultLogger == nil {
		return
	}

	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	if !defaultLogger.enabled || level < defaultLogger.minLevel {
		return
	}

	entry := formatEntry(time.Now(), level, cat, msg, fields...)

	if defaultLogger.writer != nil {
		_, _ = io.WriteString(defaultLogger.writer, entry+"\n")
	}
	defaultLogger.remember(entry)
	defaultLogger.broker.Publish(pubsub.LogEntry, entry)
}

// formatEntry renders one line:
// 2025-12-06T10:45:00 [ERROR] [editor] message key=value key2=value2
func formatEntry(ts time.Time, level Level, cat Category, msg string, fields ...any) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] [%s] %s", ts.Format("2006-01-02T15:04:05"), level, cat, msg)

	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", fields[i], fields[i+1])
	}
	// Odd field count: orphan key with no value
	if len(fields)%2 != 0 {
		fmt.Fprintf(&sb, " %v=<missing>", fields[len(fields)-1])
	}
	return sb.String()
}

func (l *Logger) remember(entry string) {
	if len(l.recent) == 0 {
		return
	}
	l.recent[l.next] = entry
	l.next = (l.next + 1) % len(l.recent)
	if l.next == 0 {
		l.full = true
	}
}

// GetRecentLogs returns up to n of the most recent entries, oldest first.
func GetRecentLogs(n int) []string {
	if defaultLogger == nil || n <= 0 {
		return nil
	}
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	l := defaultLogger
	var ordered []string
	if l.full {
		ordered = append(ordered, l.recent[l.next:]...)
	}
	ordered = append(ordered, l.recent[:l.next]...)

	if len(ordered) > n {
		ordered = ordered[len(ordered)-n:]
	}
	return ordered
}

// ClearBuffer drops all remembered entries. The log file is untouched.
func ClearBuffer() {
	if defaultLogger == nil {
		return
	}
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	clear(defaultLogger.recent)
	defaultLogger.next = 0
	defaultLogger.full = false
}

// LogEvent is a pubsub event containing a log entry.
type LogEvent = pubsub.Event[string]

// LogListener wraps a continuous listener for log events.
type LogListener = pubsub.ContinuousListener[string]

// NewListener creates a new log event listener.
// The listener is automatically cleaned up when the context is cancelled.
func NewListener(ctx context.Context) *LogListener {
	if defaultLogger == nil {
		return nil
	}
	return pubsub.NewContinuousListener[string](ctx, defaultLogger.broker)
}
