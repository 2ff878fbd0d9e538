package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
}

func TestPrefixedLines(t *testing.T) {
	var b strings.Builder
	l := New(&b, Options{})
	l.Info("started")
	l.Warn("low capacity")
	l.Error("bad input")
	l.Err(errors.New("boom"))
	l.Err(nil)
	l.Raw("plain")
	want := "[-] started\n[.] low capacity\n[!] bad input\n[!] boom\nplain\n"
	if b.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestCustomPrefixes(t *testing.T) {
	var b strings.Builder
	l := New(&b, Options{Prefixes: Prefixes{Info: "INFO"}})
	l.Info("x")
	l.Warn("y")
	if b.String() != "INFO x\n[.] y\n" {
		t.Fatalf("unexpected output %q", b.String())
	}
}

func TestSeparator(t *testing.T) {
	var b strings.Builder
	l := New(&b, Options{})
	l.Sep("")
	l.Sep("header")
	if strings.Count(b.String(), separator) != 2 {
		t.Fatalf("expected two separators, got %q", b.String())
	}
	if !strings.Contains(b.String(), "header\n"+separator) {
		t.Fatalf("expected header before separator, got %q", b.String())
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Info("ignored")
	l.Trace("ignored", nil)
	l.Sep("ignored")
	if err := l.Close(); err != nil {
		t.Fatalf("expected nil close error, got %v", err)
	}
	if l.TraceEnabled() {
		t.Fatalf("nil logger must not trace")
	}
}

func TestTraceOnlyWhenEnabled(t *testing.T) {
	var b strings.Builder
	l := New(&b, Options{})
	l.now = fixedClock
	l.Trace("menu.cursor", map[string]interface{}{"cursor": 1})
	if b.Len() != 0 {
		t.Fatalf("expected no trace output while disabled, got %q", b.String())
	}
	l.SetTraceEnabled(true)
	l.Trace("menu.cursor", map[string]interface{}{"cursor": 1})
	var entry struct {
		Time    time.Time              `json:"time"`
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(b.String())), &entry); err != nil {
		t.Fatalf("trace line is not JSON: %v", err)
	}
	if entry.Event != "menu.cursor" || entry.Payload["cursor"] != float64(1) {
		t.Fatalf("unexpected entry %#v", entry)
	}
	if !entry.Time.Equal(fixedClock()) {
		t.Fatalf("unexpected time %v", entry.Time)
	}
}

func TestOpenWritesBannersAndCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "app.log")
	l, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	l.Info("hello")
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "[!][!][!] Logging started at ") {
		t.Fatalf("missing start banner: %q", text)
	}
	if !strings.Contains(text, "[-] hello\n") {
		t.Fatalf("missing info line: %q", text)
	}
	if !strings.Contains(text, "Logging is closed at ") {
		t.Fatalf("missing close banner: %q", text)
	}
	l.Info("after close")
	data, _ = os.ReadFile(path)
	if strings.Contains(string(data), "after close") {
		t.Fatalf("writes after close must be dropped")
	}
}

func TestOpenRejectsBlankPath(t *testing.T) {
	if _, err := Open("  ", Options{}); !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}
