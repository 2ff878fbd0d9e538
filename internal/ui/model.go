package ui

import (
	"reflect"

	"github.com/atomicstack/consolenav/internal/engine"
	"github.com/atomicstack/consolenav/internal/menu"
	"github.com/atomicstack/consolenav/internal/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeKeys Mode = iota
	ModeLine
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// infoMsg and menuMsg carry one engine draw call each.
type infoMsg struct {
	title string
	lines []string
	side  []string
	wait  bool
}

type menuMsg struct {
	title  string
	items  []menu.Item
	side   []string
	header []string
}

// lineModeMsg switches the model to line input until Enter.
type lineModeMsg struct{}

type hintMsg struct{ text string }

type screenKind int

const (
	screenBlank screenKind = iota
	screenInfo
	screenMenu
)

// screen is the last frame the engine drew.
type screen struct {
	kind   screenKind
	title  string
	lines  []string
	items  []menu.Item
	side   []string
	header []string
	wait   bool
}

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	// ContinueHint is shown under info frames that wait for a key.
	ContinueHint string
}

// Model implements tea.Model for the engine bridge.
type Model struct {
	screen      screen
	mode        Mode
	input       textinput.Model
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	hint        string

	keys  chan<- engine.Key
	lines chan<- string

	handlers map[reflect.Type]msgHandler
}

// NewModel builds a model that only renders. Session wires the key and
// line channels.
func NewModel(opts Options) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 256
	if styles.Prompt != nil {
		ti.PromptStyle = styles.Prompt.Copy()
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = styles.Cursor.Copy()
	}
	m := &Model{
		input:      ti,
		showFooter: opts.ShowFooter,
		hint:       opts.ContinueHint,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	if m.mode == ModeLine {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Mode reports whether keys go to the engine or to the line editor.
func (m *Model) Mode() Mode { return m.mode }

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(infoMsg{}):           m.handleInfoMsg,
		reflect.TypeOf(menuMsg{}):           m.handleMenuMsg,
		reflect.TypeOf(lineModeMsg{}):       m.handleLineModeMsg,
		reflect.TypeOf(hintMsg{}):           m.handleHintMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if m.mode == ModeLine {
		return m.handleLineKey(keyMsg)
	}
	if m.keys != nil {
		select {
		case m.keys <- keyFor(keyMsg):
		default:
			// engine is far behind; drop rather than stall the renderer
		}
	}
	return nil
}

func (m *Model) handleLineKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		value := m.input.Value()
		m.input.Reset()
		m.input.Blur()
		m.mode = ModeKeys
		if m.lines != nil {
			select {
			case m.lines <- value:
			default:
			}
		}
		return nil
	case tea.KeyEsc:
		m.input.Reset()
		return nil
	case tea.KeyCtrlU:
		m.input.SetValue("")
		m.input.CursorStart()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

func (m *Model) handleInfoMsg(msg tea.Msg) tea.Cmd {
	info, ok := msg.(infoMsg)
	if !ok {
		return nil
	}
	m.screen = screen{kind: screenInfo, title: info.title, lines: info.lines, side: info.side, wait: info.wait}
	return nil
}

func (m *Model) handleMenuMsg(msg tea.Msg) tea.Cmd {
	mm, ok := msg.(menuMsg)
	if !ok {
		return nil
	}
	m.screen = screen{kind: screenMenu, title: mm.title, items: mm.items, side: mm.side, header: mm.header}
	return nil
}

func (m *Model) handleLineModeMsg(tea.Msg) tea.Cmd {
	m.mode = ModeLine
	m.input.Reset()
	return m.input.Focus()
}

func (m *Model) handleHintMsg(msg tea.Msg) tea.Cmd {
	if h, ok := msg.(hintMsg); ok {
		m.hint = h.text
	}
	return nil
}
