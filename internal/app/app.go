package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/consolenav/internal/engine"
	"github.com/atomicstack/consolenav/internal/locale"
	"github.com/atomicstack/consolenav/internal/logging"
	"github.com/atomicstack/consolenav/internal/menu"
	"github.com/atomicstack/consolenav/internal/ui"
	"github.com/atomicstack/consolenav/internal/warehouse"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Language    string // empty asks on startup
	Width       int
	Height      int
	ShowFooter  bool
	PageSize    int
	ListingSize int
	Warehouse   warehouse.Options
}

const (
	actStart       = "start"
	actInstruction = "instruction"
	actExit        = "exit"
)

// hinter is implemented by terminals that show a "press any key" hint.
type hinter interface {
	SetContinueHint(text string)
}

// Run bootstraps the Bubble Tea session and drives the application on it.
func Run(cfg Config, log *logging.Logger) error {
	strs := locale.Default()
	lang, err := initialLanguage(cfg.Language)
	if err != nil {
		return err
	}
	session := ui.NewSession(ui.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		ContinueHint: strs.Text("continue", lang),
	})
	session.Start(tea.WithAltScreen())
	err = runWith(session, strs, cfg, log)
	if closeErr := session.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if errors.Is(err, ui.ErrClosed) {
		log.Info("terminal closed by user")
		return nil
	}
	return err
}

func initialLanguage(code string) (locale.Language, error) {
	if code == "" {
		return locale.Fallback, nil
	}
	lang, err := locale.ParseLanguage(code)
	if err != nil {
		return lang, fmt.Errorf("language: %w", err)
	}
	return lang, nil
}

// runWith is Run without the Bubble Tea program, so tests can script the
// terminal.
func runWith(term engine.Terminal, strs *locale.Table, cfg Config, log *logging.Logger) error {
	lang, err := initialLanguage(cfg.Language)
	if err != nil {
		return err
	}
	e := engine.New(term, engine.Config{
		Strings:     strs,
		Language:    lang,
		Logger:      log,
		PageSize:    cfg.PageSize,
		ListingSize: cfg.ListingSize,
	})
	if cfg.Language == "" {
		ok, err := e.ChooseLanguage()
		if err != nil || !ok {
			return err
		}
	}
	if h, ok := term.(hinter); ok {
		h.SetContinueHint(e.Text().Get("continue"))
	}
	log.Sep(e.Text().Get("log_start"))
	log.Info("language " + e.Language().String())
	return mainMenu(e, cfg)
}

func mainMenu(e *engine.Engine, cfg Config) error {
	text := e.Text()
	opts, err := menu.Pair([]string{actStart, actInstruction, actExit}, text.Lines("main_menu_items"))
	if err != nil {
		return fmt.Errorf("main menu: %w", err)
	}
	for {
		id, ok, err := e.Menu(text.Get("main_menu_title"), opts, nil)
		if err != nil {
			return err
		}
		switch {
		case !ok, id == actExit:
			e.Exit()
			return nil
		case id == actInstruction:
			if err := e.Pages(text.Get("instruction"), text.Lines("instruction_text")); err != nil {
				return err
			}
		case id == actStart:
			w, ok, err := warehouse.Setup(e)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			e.Logger().Info(fmt.Sprintf("warehouse opened: capacity %d, storage cost %.2f", w.Capacity, w.StorageCost))
			if err := warehouse.Run(e, w, cfg.Warehouse); err != nil {
				return err
			}
		}
	}
}
