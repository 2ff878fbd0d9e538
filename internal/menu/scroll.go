package menu

// ScrollWindow returns the page of perPage entries that contains active.
// The window starts at the nearest multiple of perPage at or below active
// and is clipped on the final page. perPage below one yields the whole list.
func ScrollWindow(total, active, perPage int) Window {
	if perPage < 1 {
		return Window{Offset: 0, Length: total}
	}
	if active < 0 {
		active = 0
	}
	anchor := active
	if rem := active % perPage; rem != 0 {
		anchor = active - rem
	}
	if anchor+perPage > total {
		return Window{Offset: anchor, Length: total - anchor}.clamp(total)
	}
	return Window{Offset: anchor, Length: perPage}
}
