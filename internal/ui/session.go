package ui

import (
	"errors"
	"sync"

	"github.com/atomicstack/consolenav/internal/engine"
	"github.com/atomicstack/consolenav/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrClosed is returned by reads once the program has exited.
var ErrClosed = errors.New("ui: session closed")

const keyBuffer = 64

// Session runs a Model in a tea.Program and exposes it as an
// engine.Terminal. Draw calls may come from any goroutine; reads block until
// the user acts or the program exits.
type Session struct {
	model   *Model
	program *tea.Program
	post    func(tea.Msg)

	keys  chan engine.Key
	lines chan string

	done   chan struct{}
	once   sync.Once
	runErr error
}

// NewSession prepares a session. Nothing is drawn until Start.
func NewSession(opts Options) *Session {
	s := &Session{
		model: NewModel(opts),
		keys:  make(chan engine.Key, keyBuffer),
		lines: make(chan string, 1),
		done:  make(chan struct{}),
	}
	s.model.keys = s.keys
	s.model.lines = s.lines
	s.post = func(tea.Msg) {}
	return s
}

// Model exposes the underlying model.
func (s *Session) Model() *Model { return s.model }

// Start runs the program on its own goroutine.
func (s *Session) Start(opts ...tea.ProgramOption) {
	s.program = tea.NewProgram(s.model, opts...)
	s.post = s.program.Send
	go func() {
		_, err := s.program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			err = nil
		}
		s.runErr = err
		s.finish()
	}()
}

// Done is closed once the program has exited or Close was called.
func (s *Session) Done() <-chan struct{} { return s.done }

// Close stops the program and waits for it to exit.
func (s *Session) Close() error {
	select {
	case <-s.done:
		return s.runErr
	default:
	}
	if s.program == nil {
		s.finish()
		return nil
	}
	s.program.Quit()
	<-s.done
	return s.runErr
}

func (s *Session) finish() {
	s.once.Do(func() { close(s.done) })
}

// SetContinueHint replaces the text shown under waiting info frames.
func (s *Session) SetContinueHint(text string) {
	s.send(hintMsg{text: text})
}

func (s *Session) DrawInfo(title string, lines, side []string, wait bool) {
	s.send(infoMsg{title: title, lines: clone(lines), side: clone(side), wait: wait})
}

func (s *Session) DrawMenu(title string, items []menu.Item, side, header []string) {
	s.send(menuMsg{title: title, items: append([]menu.Item(nil), items...), side: clone(side), header: clone(header)})
}

func (s *Session) ReadKey() (engine.Key, error) {
	select {
	case k := <-s.keys:
		return k, nil
	case <-s.done:
		return engine.KeyOther, ErrClosed
	}
}

// ReadLine switches the model to line input and waits for Enter.
func (s *Session) ReadLine() (string, error) {
	if !s.send(lineModeMsg{}) {
		return "", ErrClosed
	}
	select {
	case line := <-s.lines:
		return line, nil
	case <-s.done:
		return "", ErrClosed
	}
}

func (s *Session) send(msg tea.Msg) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	s.post(msg)
	return true
}

func clone(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

var _ engine.Terminal = (*Session)(nil)
