package engine

import (
	"errors"

	"github.com/atomicstack/consolenav/internal/locale"
	"github.com/atomicstack/consolenav/internal/logging"
	"github.com/atomicstack/consolenav/internal/logging/events"
	"github.com/atomicstack/consolenav/internal/menu"
)

const (
	DefaultPageSize    = 15
	DefaultListingSize = 10
)

// ErrInvalidPageSize is returned when a paged view is asked for fewer than
// one entry per page.
var ErrInvalidPageSize = errors.New("page size must be at least 1")

// Renderer draws frames. Implementations own the surface; the engine never
// inspects what was drawn.
type Renderer interface {
	// DrawInfo draws a titled block of lines with an optional side panel.
	// wait asks the renderer to show a "press any key" hint; the engine
	// performs the key read itself.
	DrawInfo(title string, lines, side []string, wait bool)
	// DrawMenu draws a menu with an optional side panel and panel header.
	DrawMenu(title string, items []menu.Item, side, header []string)
}

// Input supplies blocking key and line reads.
type Input interface {
	ReadKey() (Key, error)
	ReadLine() (string, error)
}

// Terminal is everything the engine needs from the outside world.
type Terminal interface {
	Renderer
	Input
}

// Config carries the collaborators and sizes used by an Engine.
type Config struct {
	Strings     *locale.Table
	Language    locale.Language
	Logger      *logging.Logger
	PageSize    int // lines per page in Pages
	ListingSize int // side panel lines per page in MenuWithSidePanel
}

// Engine runs input loops against a Terminal. It holds no per-loop state;
// each call owns its cursor for its own duration.
type Engine struct {
	term        Terminal
	strings     *locale.Table
	text        locale.Text
	log         *logging.Logger
	trace       events.Tracers
	pageSize    int
	listingSize int
}

// New builds an Engine. Zero sizes fall back to the defaults and a nil
// string table falls back to the embedded one.
func New(term Terminal, cfg Config) *Engine {
	strs := cfg.Strings
	if strs == nil {
		strs = locale.Default()
	}
	pageSize := cfg.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	listingSize := cfg.ListingSize
	if listingSize < 1 {
		listingSize = DefaultListingSize
	}
	return &Engine{
		term:        term,
		strings:     strs,
		text:        strs.In(cfg.Language),
		log:         cfg.Logger,
		trace:       events.For(cfg.Logger),
		pageSize:    pageSize,
		listingSize: listingSize,
	}
}

// Text returns the string table bound to the current language.
func (e *Engine) Text() locale.Text { return e.text }

// Language reports the current language.
func (e *Engine) Language() locale.Language { return e.text.Language() }

// SetLanguage switches every subsequent lookup to lang.
func (e *Engine) SetLanguage(lang locale.Language) {
	e.text = e.strings.In(lang)
	e.trace.App.Language(lang.String())
}

// Logger exposes the injected logger; it may be nil.
func (e *Engine) Logger() *logging.Logger { return e.log }
