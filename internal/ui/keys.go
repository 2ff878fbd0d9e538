package ui

import (
	"github.com/atomicstack/consolenav/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
)

// keyFor maps a terminal key press onto the engine's key set. Anything the
// engine has no use for becomes KeyOther, which still counts as "any key".
func keyFor(msg tea.KeyMsg) engine.Key {
	switch msg.Type {
	case tea.KeyUp:
		return engine.KeyUp
	case tea.KeyDown:
		return engine.KeyDown
	case tea.KeyLeft:
		return engine.KeyLeft
	case tea.KeyRight:
		return engine.KeyRight
	case tea.KeyEnter:
		return engine.KeyEnter
	case tea.KeyEsc:
		return engine.KeyEscape
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return engine.KeyOther
		}
		switch msg.Runes[0] {
		case '1':
			return engine.KeyDigit1
		case '2':
			return engine.KeyDigit2
		case 'k':
			return engine.KeyUp
		case 'j':
			return engine.KeyDown
		case 'h':
			return engine.KeyLeft
		case 'l':
			return engine.KeyRight
		}
	}
	return engine.KeyOther
}
