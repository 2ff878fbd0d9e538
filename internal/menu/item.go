package menu

// Item is a labeled menu entry carrying a single active flag.
type Item struct {
	content string
	isFile  bool
	active  bool
}

// NewItem builds an item. isFile only matters to callers that mix directory
// and file listings.
func NewItem(content string, isFile, active bool) Item {
	return Item{content: content, isFile: isFile, active: active}
}

func (i Item) Content() string { return i.content }
func (i Item) IsFile() bool     { return i.isFile }
func (i Item) Active() bool     { return i.active }

// SetActive marks the item as highlighted.
func (i *Item) SetActive() { i.active = true }

// SetInactive clears the highlight.
func (i *Item) SetInactive() { i.active = false }
