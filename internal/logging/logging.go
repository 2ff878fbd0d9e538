package logging

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultFile is used when configuration leaves the log path empty.
	DefaultFile = "consolenav.log"

	separator = "============================================================\n"
)

// ErrNoPath is returned by Open when the path is blank.
var ErrNoPath = errors.New("log path is empty")

// Prefixes mark the severity of a plain log line.
type Prefixes struct {
	Error   string
	Warning string
	Info    string
}

// DefaultPrefixes are the markers written when Options leaves them empty.
var DefaultPrefixes = Prefixes{Error: "[!]", Warning: "[.]", Info: "[-]"}

// Options tweaks a Logger.
type Options struct {
	Prefixes Prefixes
	Trace    bool
}

// Logger writes prefixed lines and optional JSON trace entries to a single
// destination. A nil *Logger discards everything, so callers never need to
// guard their log calls.
type Logger struct {
	mu       sync.Mutex
	w        io.Writer
	closer   io.Closer
	prefixes Prefixes
	trace    bool
	now      func() time.Time
}

// Open creates (or truncates) the file at path, creating missing parent
// directories, and writes the opening banner. The caller owns the returned
// Logger and must Close it.
func Open(path string, opts Options) (*Logger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := New(f, opts)
	l.closer = f
	l.write(banner("Logging started", l.now()) + separator)
	return l, nil
}

// New wraps an arbitrary writer. No banner is written.
func New(w io.Writer, opts Options) *Logger {
	prefixes := opts.Prefixes
	if prefixes.Error == "" {
		prefixes.Error = DefaultPrefixes.Error
	}
	if prefixes.Warning == "" {
		prefixes.Warning = DefaultPrefixes.Warning
	}
	if prefixes.Info == "" {
		prefixes.Info = DefaultPrefixes.Info
	}
	return &Logger{w: w, prefixes: prefixes, trace: opts.Trace, now: time.Now}
}

// Close writes the closing banner and releases the underlying file.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.write(separator + banner("Logging is closed", l.now()))
	l.mu.Lock()
	defer l.mu.Unlock()
	closer := l.closer
	l.closer = nil
	l.w = nil
	if closer == nil {
		return nil
	}
	return closer.Close()
}

func banner(what string, at time.Time) string {
	return fmt.Sprintf("[!][!][!] %s at %s [!][!][!]\n", what, at.Format(time.DateTime))
}

func (l *Logger) write(s string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.w == nil {
		return
	}
	if _, err := io.WriteString(l.w, s); err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
	}
}

// Info logs with the info prefix.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.write(l.prefixes.Info + " " + msg + "\n")
}

// Warn logs with the warning prefix.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.write(l.prefixes.Warning + " " + msg + "\n")
}

// Error logs with the error prefix.
func (l *Logger) Error(msg string) {
	if l == nil {
		return
	}
	l.write(l.prefixes.Error + " " + msg + "\n")
}

// Err logs a non-nil error with the error prefix.
func (l *Logger) Err(err error) {
	if err == nil {
		return
	}
	l.Error(err.Error())
}

// Raw logs msg without a prefix.
func (l *Logger) Raw(msg string) {
	l.write(msg + "\n")
}

// Sep writes an optional line followed by a separator.
func (l *Logger) Sep(msg string) {
	if msg != "" {
		l.write(msg + "\n")
	}
	l.write(separator)
}

// TraceEnabled reports whether Trace emits anything.
func (l *Logger) TraceEnabled() bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.trace
}

// SetTraceEnabled toggles emission of structured trace entries.
func (l *Logger) SetTraceEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.trace = enabled
	l.mu.Unlock()
}

// Trace appends a structured JSON entry when tracing is enabled.
func (l *Logger) Trace(event string, payload interface{}) {
	if !l.TraceEnabled() {
		return
	}
	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    l.now().UTC(),
		Event:   event,
		Payload: payload,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
		return
	}
	l.write(string(data) + "\n")
}
