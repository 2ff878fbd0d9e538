package ui

import (
	"testing"

	"github.com/atomicstack/consolenav/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyFor(t *testing.T) {
	runes := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }
	cases := []struct {
		msg  tea.KeyMsg
		want engine.Key
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, engine.KeyUp},
		{tea.KeyMsg{Type: tea.KeyDown}, engine.KeyDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, engine.KeyLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, engine.KeyRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, engine.KeyEnter},
		{tea.KeyMsg{Type: tea.KeyEsc}, engine.KeyEscape},
		{tea.KeyMsg{Type: tea.KeyTab}, engine.KeyOther},
		{runes("1"), engine.KeyDigit1},
		{runes("2"), engine.KeyDigit2},
		{runes("3"), engine.KeyOther},
		{runes("j"), engine.KeyDown},
		{runes("k"), engine.KeyUp},
		{runes("12"), engine.KeyOther},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1"), Alt: true}, engine.KeyOther},
	}
	for _, tc := range cases {
		if got := keyFor(tc.msg); got != tc.want {
			t.Fatalf("keyFor(%v) = %v, want %v", tc.msg, got, tc.want)
		}
	}
}
