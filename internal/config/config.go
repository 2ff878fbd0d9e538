package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/consolenav/internal/app"
	"github.com/atomicstack/consolenav/internal/engine"
	"github.com/atomicstack/consolenav/internal/locale"
	"github.com/atomicstack/consolenav/internal/warehouse"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envLanguage    = "CONSOLENAV_LANG"
	envWidth       = "CONSOLENAV_WIDTH"
	envHeight      = "CONSOLENAV_HEIGHT"
	envShowFooter  = "CONSOLENAV_FOOTER"
	envPageSize    = "CONSOLENAV_PAGE_SIZE"
	envListingSize = "CONSOLENAV_LISTING_SIZE"
	envScrollSize  = "CONSOLENAV_SCROLL_SIZE"
	envMaxBoxes    = "CONSOLENAV_MAX_BOXES"
	envMaxMass     = "CONSOLENAV_MAX_MASS"
	envTrace       = "CONSOLENAV_TRACE"
	envLogFile     = "CONSOLENAV_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("consolenav", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	lang := fs.String("lang", envOrDefault(env, envLanguage, ""), "interface language: rus or eng (empty asks on startup)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	pageSize := fs.Int("page-size", envOrInt(env, envPageSize, engine.DefaultPageSize), "text lines per page")
	listingSize := fs.Int("listing-size", envOrInt(env, envListingSize, engine.DefaultListingSize), "side panel lines per page")
	scrollSize := fs.Int("scroll-size", envOrInt(env, envScrollSize, warehouse.DefaultScrollSize), "visible items in scrollable menus")
	maxBoxes := fs.Int("max-boxes", envOrInt(env, envMaxBoxes, warehouse.DefaultMaxBoxes), "boxes per container")
	maxMass := fs.Float64("max-mass", envOrFloat(env, envMaxMass, warehouse.DefaultMaxMass), "total mass per container")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file (empty disables logging)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Language:    strings.TrimSpace(*lang),
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			PageSize:    *pageSize,
			ListingSize: *listingSize,
			Warehouse: warehouse.Options{
				MaxBoxes:   *maxBoxes,
				MaxMass:    *maxMass,
				ScrollSize: *scrollSize,
			},
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"lang":        *lang,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"pageSize":    strconv.Itoa(*pageSize),
			"listingSize": strconv.Itoa(*listingSize),
			"scrollSize":  strconv.Itoa(*scrollSize),
			"maxBoxes":    strconv.Itoa(*maxBoxes),
			"maxMass":     strconv.FormatFloat(*maxMass, 'f', -1, 64),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values that parse but make no sense together.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Language != "" {
		if _, err := locale.ParseLanguage(cfg.App.Language); err != nil {
			errs = append(errs, err)
		}
	}
	if cfg.App.PageSize < 1 {
		errs = append(errs, fmt.Errorf("page-size: %w", engine.ErrInvalidPageSize))
	}
	if cfg.App.ListingSize < 1 {
		errs = append(errs, fmt.Errorf("listing-size: %w", engine.ErrInvalidPageSize))
	}
	if cfg.App.Warehouse.ScrollSize < 1 {
		errs = append(errs, fmt.Errorf("scroll-size: %w", engine.ErrInvalidPageSize))
	}
	if cfg.App.Warehouse.MaxBoxes < 1 {
		errs = append(errs, fmt.Errorf("max-boxes must be >= 1 (got %d)", cfg.App.Warehouse.MaxBoxes))
	}
	if cfg.App.Warehouse.MaxMass <= 0 {
		errs = append(errs, fmt.Errorf("max-mass must be > 0 (got %g)", cfg.App.Warehouse.MaxMass))
	}
	return errors.Join(errs...)
}
