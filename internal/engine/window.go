package engine

import (
	"github.com/atomicstack/consolenav/internal/locale"
	"github.com/atomicstack/consolenav/internal/menu"
)

// Answer is the outcome of YesNo.
type Answer int

const (
	Yes Answer = iota
	No
	Abort
)

func (a Answer) String() string {
	switch a {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "abort"
	}
}

// Window draws a titled block. With wait it blocks until any key.
func (e *Engine) Window(title string, lines []string, wait bool) error {
	if title == "" {
		title = e.text.Get("menu")
	}
	e.term.DrawInfo(title, lines, nil, wait)
	if !wait {
		return nil
	}
	_, err := e.term.ReadKey()
	return err
}

// ErrorWindow shows lines under the localized error title and waits for a key.
func (e *Engine) ErrorWindow(lines []string) error {
	return e.Window(e.text.Get("error"), lines, true)
}

// Intro draws the intro screen.
func (e *Engine) Intro(lines []string) {
	e.term.DrawInfo(e.text.Get("intro_default"), lines, nil, false)
}

// Exit draws the farewell screen.
func (e *Engine) Exit() {
	e.term.DrawInfo("", e.text.Lines("exit"), nil, false)
	e.trace.App.Exit()
}

// ChooseLanguage asks for the interface language: 1 selects Russian, 2
// English. Any other key shows the exit screen and reports false.
func (e *Engine) ChooseLanguage() (bool, error) {
	e.Intro(e.text.Lines("intro_info"))
	key, err := e.term.ReadKey()
	if err != nil {
		return false, err
	}
	switch key {
	case KeyDigit1:
		e.SetLanguage(locale.Rus)
	case KeyDigit2:
		e.SetLanguage(locale.Eng)
	default:
		e.Exit()
		return false, nil
	}
	return true, nil
}

// YesNo asks a two-way question. labels defaults to the localized yes/no
// pair; side is drawn next to the choices. Escape yields Abort.
func (e *Engine) YesNo(side []string, labels ...string) (Answer, error) {
	if len(labels) == 0 {
		labels = e.text.Lines("yes_no")
	}
	opts, err := menu.Pair([]string{"yes", "no"}, labels)
	if err != nil {
		return Abort, err
	}
	id, ok, err := e.Menu(e.text.Get("choose"), opts, side)
	if err != nil || !ok {
		return Abort, err
	}
	if id == "yes" {
		return Yes, nil
	}
	return No, nil
}
