package menu

// List is an ordered set of labels with exactly one selected entry whenever
// it is non-empty. Activity is derived from the selected index instead of
// being stored per item, so the single-active invariant cannot drift.
type List struct {
	labels   []string
	selected int
}

// NewList selects the first label.
func NewList(labels []string) *List {
	dup := make([]string, len(labels))
	copy(dup, labels)
	return &List{labels: dup}
}

// FromOptions builds a list in the mapping's display order.
func FromOptions(opts *Options) *List {
	return NewList(opts.Labels())
}

func (l *List) Len() int { return len(l.labels) }

// Selected returns the active index, or -1 for an empty list.
func (l *List) Selected() int {
	if len(l.labels) == 0 {
		return -1
	}
	return l.selected
}

// Current returns the active label.
func (l *List) Current() (string, bool) {
	if len(l.labels) == 0 {
		return "", false
	}
	return l.labels[l.selected], true
}

// Next advances the selection, wrapping from the last entry to the first.
func (l *List) Next() {
	if len(l.labels) == 0 {
		return
	}
	if l.selected >= len(l.labels)-1 {
		l.selected = 0
		return
	}
	l.selected++
}

// Prev moves the selection back, wrapping from the first entry to the last.
func (l *List) Prev() {
	if len(l.labels) == 0 {
		return
	}
	if l.selected-1 < 0 {
		l.selected = len(l.labels) - 1
		return
	}
	l.selected--
}

// Items materializes the whole list for rendering.
func (l *List) Items() []Item {
	return l.Window(Window{Offset: 0, Length: len(l.labels)})
}

// Window materializes the visible slice w. The active flag follows the
// selected index, so the active entry keeps its identity across slices.
func (l *List) Window(w Window) []Item {
	w = w.clamp(len(l.labels))
	items := make([]Item, 0, w.Length)
	for i := w.Offset; i < w.End(); i++ {
		items = append(items, NewItem(l.labels[i], false, i == l.selected))
	}
	return items
}
