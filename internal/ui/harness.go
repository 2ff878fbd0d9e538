package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Attach routes the session's draw calls and line requests through the
// harness instead of a tea.Program. Posted messages are queued on the
// returned channel; the caller feeds them to Send so the model is only ever
// touched from one goroutine.
func (h *Harness) Attach(s *Session) <-chan tea.Msg {
	msgs := make(chan tea.Msg, 64)
	s.post = func(msg tea.Msg) { msgs <- msg }
	return msgs
}

// Send routes a message through the model and returns the resulting
// command without running it. Cursor blink commands sleep and re-arm
// themselves, so callers run only the commands they care about.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	if h.model == nil {
		return nil
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	return cmd
}

// Drain sends every message queued on msgs without blocking.
func (h *Harness) Drain(msgs <-chan tea.Msg) {
	for {
		select {
		case msg := <-msgs:
			h.Send(msg)
		default:
			return
		}
	}
}

// Type sends each rune of text as a separate key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
