package config

import (
	"errors"
	"testing"

	"github.com/atomicstack/consolenav/internal/engine"
	"github.com/atomicstack/consolenav/internal/locale"
	"github.com/atomicstack/consolenav/internal/warehouse"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Language != "" {
		t.Fatalf("expected empty language, got %q", cfg.App.Language)
	}
	if cfg.App.PageSize != engine.DefaultPageSize || cfg.App.ListingSize != engine.DefaultListingSize {
		t.Fatalf("unexpected page sizes %d/%d", cfg.App.PageSize, cfg.App.ListingSize)
	}
	wh := cfg.App.Warehouse
	if wh.MaxBoxes != warehouse.DefaultMaxBoxes || wh.MaxMass != warehouse.DefaultMaxMass || wh.ScrollSize != warehouse.DefaultScrollSize {
		t.Fatalf("unexpected warehouse options %+v", wh)
	}
	if cfg.Logging.FilePath != "" || cfg.Logging.Trace {
		t.Fatalf("logging should be off by default: %+v", cfg.Logging)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	env := []string{
		envLanguage + "=eng",
		envPageSize + "=7",
		envMaxMass + "=250.5",
		envTrace + "=true",
		envLogFile + "=/tmp/consolenav.log",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Language != "eng" {
		t.Fatalf("expected eng, got %q", cfg.App.Language)
	}
	if cfg.App.PageSize != 7 {
		t.Fatalf("expected page size 7, got %d", cfg.App.PageSize)
	}
	if cfg.App.Warehouse.MaxMass != 250.5 {
		t.Fatalf("expected max mass 250.5, got %v", cfg.App.Warehouse.MaxMass)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/consolenav.log" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadArgsIgnoresUnparsableEnv(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envWidth + "=wide", envShowFooter + "=maybe"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("bad env values should fall back: %+v", cfg.App)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	cfg, err := LoadArgs([]string{"-lang", "rus", "-page-size", "3", "-max-boxes", "4"}, []string{envLanguage + "=eng", envPageSize + "=9"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Language != "rus" || cfg.App.PageSize != 3 || cfg.App.Warehouse.MaxBoxes != 4 {
		t.Fatalf("flags did not win: %+v", cfg.App)
	}
	if cfg.Flags["lang"] != "rus" || cfg.Flags["pageSize"] != "3" || cfg.Flags["maxBoxes"] != "4" {
		t.Fatalf("unexpected flag echo %v", cfg.Flags)
	}
	if len(cfg.Args) != 6 {
		t.Fatalf("expected args to be kept, got %v", cfg.Args)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-3"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"-socket", "x"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg, err := LoadArgs([]string{"-lang", "deu", "-page-size", "0", "-max-mass", "0"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	err = Validate(cfg)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !errors.Is(err, locale.ErrUnknownLanguage) {
		t.Fatalf("expected unknown language in %v", err)
	}
	if !errors.Is(err, engine.ErrInvalidPageSize) {
		t.Fatalf("expected invalid page size in %v", err)
	}
}
