package menu

// Window is a contiguous slice of an ordered collection.
type Window struct {
	Offset int
	Length int
}

// End is the exclusive upper bound.
func (w Window) End() int { return w.Offset + w.Length }

func (w Window) clamp(total int) Window {
	if w.Offset < 0 {
		w.Offset = 0
	}
	if w.Offset > total {
		w.Offset = total
	}
	if w.Length < 0 {
		w.Length = 0
	}
	if w.End() > total {
		w.Length = total - w.Offset
	}
	return w
}

// Slice returns the part of s covered by w.
func Slice[T any](s []T, w Window) []T {
	w = w.clamp(len(s))
	return s[w.Offset:w.End()]
}

// CalcRange returns the window for page pageIndex. Every page is pageSize
// long except the last, which holds the remainder. An index past the end
// yields an empty window at total.
func CalcRange(total, pageSize, pageIndex int) Window {
	offset := pageIndex * pageSize
	if offset > total {
		return Window{Offset: total}
	}
	length := pageSize
	if (pageIndex+1)*pageSize > total {
		length = total - offset
	}
	return Window{Offset: offset, Length: length}
}

// MaxPageIndex returns the zero-based index of the last page. When total is
// an exact multiple of pageSize the floor division would point at an empty
// trailing page, so it is pulled back by one. An empty collection still has
// one (empty) page.
func MaxPageIndex(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 0
	}
	last := total / pageSize
	if total%pageSize == 0 {
		last--
	}
	return last
}

// PageLeft steps back one page, wrapping from 0 to max.
func PageLeft(current, max int) int {
	if current-1 < 0 {
		return max
	}
	return current - 1
}

// PageRight steps forward one page, wrapping from max to 0.
func PageRight(current, max int) int {
	if current+1 > max {
		return 0
	}
	return current + 1
}

// PageCursor tracks the visible page of a paged collection.
type PageCursor struct {
	Current int
	Max     int
}

// NewPageCursor starts on the first page of total entries.
func NewPageCursor(total, pageSize int) PageCursor {
	return PageCursor{Max: MaxPageIndex(total, pageSize)}
}

func (c *PageCursor) Left()  { c.Current = PageLeft(c.Current, c.Max) }
func (c *PageCursor) Right() { c.Current = PageRight(c.Current, c.Max) }
