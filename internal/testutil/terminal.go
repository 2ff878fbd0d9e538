// Package testutil provides a scripted engine.Terminal for tests.
package testutil

import (
	"errors"
	"sync"

	"github.com/atomicstack/consolenav/internal/engine"
	"github.com/atomicstack/consolenav/internal/menu"
)

// ErrExhausted is returned once the scripted keys or lines run out.
var ErrExhausted = errors.New("testutil: script exhausted")

type FrameKind int

const (
	InfoFrame FrameKind = iota
	MenuFrame
)

// Frame records one draw call.
type Frame struct {
	Kind   FrameKind
	Title  string
	Lines  []string
	Side   []string
	Header []string
	Items  []menu.Item
	Wait   bool
}

// Active returns the content of the active item, or "" if none.
func (f Frame) Active() string {
	for _, item := range f.Items {
		if item.Active() {
			return item.Content()
		}
	}
	return ""
}

// Labels returns the contents of the drawn items in order.
func (f Frame) Labels() []string {
	out := make([]string, len(f.Items))
	for i, item := range f.Items {
		out[i] = item.Content()
	}
	return out
}

// Terminal replays queued keys and lines and records every frame.
type Terminal struct {
	mu     sync.Mutex
	keys   []engine.Key
	lines  []string
	frames []Frame
}

func NewTerminal() *Terminal { return &Terminal{} }

// Keys queues key presses.
func (t *Terminal) Keys(keys ...engine.Key) *Terminal {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.keys = append(t.keys, keys...)
	return t
}

// Lines queues submitted input lines.
func (t *Terminal) Lines(lines ...string) *Terminal {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, lines...)
	return t
}

func (t *Terminal) DrawInfo(title string, lines, side []string, wait bool) {
	t.record(Frame{Kind: InfoFrame, Title: title, Lines: clone(lines), Side: clone(side), Wait: wait})
}

func (t *Terminal) DrawMenu(title string, items []menu.Item, side, header []string) {
	t.record(Frame{Kind: MenuFrame, Title: title, Items: append([]menu.Item(nil), items...), Side: clone(side), Header: clone(header)})
}

func (t *Terminal) ReadKey() (engine.Key, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.keys) == 0 {
		return engine.KeyOther, ErrExhausted
	}
	k := t.keys[0]
	t.keys = t.keys[1:]
	return k, nil
}

func (t *Terminal) ReadLine() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.lines) == 0 {
		return "", ErrExhausted
	}
	l := t.lines[0]
	t.lines = t.lines[1:]
	return l, nil
}

// Frames returns a copy of everything drawn so far.
func (t *Terminal) Frames() []Frame {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Frame(nil), t.frames...)
}

// Last returns the most recent frame.
func (t *Terminal) Last() Frame {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.frames) == 0 {
		return Frame{}
	}
	return t.frames[len(t.frames)-1]
}

// Pending reports how many keys and lines are still queued.
func (t *Terminal) Pending() (keys, lines int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.keys), len(t.lines)
}

func (t *Terminal) record(f Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frames = append(t.frames, f)
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

var _ engine.Terminal = (*Terminal)(nil)
