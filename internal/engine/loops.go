package engine

import (
	"fmt"

	"github.com/atomicstack/consolenav/internal/menu"
)

// run drives one loop until a terminal phase: draw, block on a key, apply.
func (e *Engine) run(t table, draw func(), apply func(Action)) (Phase, error) {
	phase := Browsing
	for phase == Browsing {
		draw()
		key, err := e.term.ReadKey()
		if err != nil {
			return Cancelled, err
		}
		var act Action
		phase, act = t.step(phase, key)
		if apply != nil {
			apply(act)
		}
	}
	return phase, nil
}

// choose runs a selection loop over list and resolves the committed label
// through opts. paging handles Left/Right for loops that have a side panel.
func (e *Engine) choose(title string, opts *menu.Options, list *menu.List, t table, draw func(), paging func(Action)) (string, bool, error) {
	phase, err := e.run(t, draw, func(act Action) {
		switch act {
		case ActNext:
			list.Next()
			e.trace.Menu.Cursor(title, list.Selected())
		case ActPrev:
			list.Prev()
			e.trace.Menu.Cursor(title, list.Selected())
		case ActPageLeft, ActPageRight:
			if paging != nil {
				paging(act)
			}
		}
	})
	if err != nil {
		return "", false, err
	}
	if phase == Cancelled {
		e.trace.Menu.Cancel(title)
		return "", false, nil
	}
	label, ok := list.Current()
	if !ok {
		return "", false, nil
	}
	id, ok := opts.ID(label)
	e.trace.Menu.Commit(title, label, id)
	return id, ok, nil
}

// Menu lets the user pick one of opts with Up/Down. Enter returns the id of
// the active label; Escape returns ok == false.
func (e *Engine) Menu(title string, opts *menu.Options, side []string) (string, bool, error) {
	list := menu.FromOptions(opts)
	return e.choose(title, opts, list, menuTable, func() {
		e.term.DrawMenu(title, list.Items(), side, nil)
	}, nil)
}

// ScrollableMenu is Menu showing only the page of perPage items that holds
// the active item.
func (e *Engine) ScrollableMenu(title string, opts *menu.Options, perPage int, side []string) (string, bool, error) {
	if perPage < 1 {
		return "", false, fmt.Errorf("scrollable menu %q: %w", title, ErrInvalidPageSize)
	}
	list := menu.FromOptions(opts)
	return e.choose(title, opts, list, menuTable, func() {
		w := menu.ScrollWindow(list.Len(), list.Selected(), perPage)
		e.term.DrawMenu(title, list.Window(w), side, nil)
	}, nil)
}

// MenuWithSidePanel is Menu with a side panel paged by Left/Right. header is
// drawn above the panel on every page.
func (e *Engine) MenuWithSidePanel(title string, opts *menu.Options, panel, header []string) (string, bool, error) {
	list := menu.FromOptions(opts)
	cursor := menu.NewPageCursor(len(panel), e.listingSize)
	draw := func() {
		w := menu.CalcRange(len(panel), e.listingSize, cursor.Current)
		lines := menu.Slice(panel, w)
		if len(lines) == 0 {
			lines = []string{" "}
		}
		e.term.DrawMenu(title, list.Items(), lines, header)
	}
	return e.choose(title, opts, list, compositeTable, draw, func(act Action) {
		e.turn(title, &cursor, act)
	})
}

// Pages shows lines a page at a time until Escape.
func (e *Engine) Pages(title string, lines []string) error {
	if title == "" {
		title = e.text.Get("menu")
	}
	cursor := menu.NewPageCursor(len(lines), e.pageSize)
	_, err := e.run(pageTable, func() {
		w := menu.CalcRange(len(lines), e.pageSize, cursor.Current)
		e.term.DrawInfo(title, menu.Slice(lines, w), e.text.Format("pages", cursor.Current+1, cursor.Max+1), false)
	}, func(act Action) {
		switch act {
		case ActPageLeft, ActPageRight:
			e.turn(title, &cursor, act)
		case ActCancel:
			e.trace.Page.Close(title)
		}
	})
	return err
}

func (e *Engine) turn(title string, cursor *menu.PageCursor, act Action) {
	if act == ActPageLeft {
		cursor.Left()
	} else {
		cursor.Right()
	}
	e.trace.Page.Turn(title, cursor.Current, cursor.Max)
}
