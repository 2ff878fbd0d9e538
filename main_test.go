package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/consolenav/internal/app"
	"github.com/atomicstack/consolenav/internal/config"
	"github.com/atomicstack/consolenav/internal/logging"
	"github.com/atomicstack/consolenav/internal/logging/events"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Language:   "eng",
			Width:      80,
			Height:     24,
			ShowFooter: true,
			PageSize:   15,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"lang":     "eng",
			"width":    "80",
			"height":   "24",
			"footer":   "true",
			"pageSize": "15",
		},
		Args: []string{"--lang", "eng"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["lang"] != "eng" {
		t.Fatalf("expected lang flag %q, got %v", "eng", flagsValue["lang"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestStartupTraceIsWrittenAsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, logging.Options{Trace: true})
	events.For(log).App.Start(startupTracePayload(config.Config{Args: []string{"-trace"}}))
	line := strings.TrimSpace(buf.String())
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("trace line is not JSON: %v\n%s", err, line)
	}
	if entry["event"] != "app.start" {
		t.Fatalf("unexpected event %v", entry["event"])
	}
}

func TestOpenLogger(t *testing.T) {
	if openLogger(config.Logging{}) != nil {
		t.Fatalf("empty path should disable logging")
	}
	path := filepath.Join(t.TempDir(), "logs", "consolenav.log")
	log := openLogger(config.Logging{FilePath: path})
	if log == nil {
		t.Fatalf("expected a logger for %s", path)
	}
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
