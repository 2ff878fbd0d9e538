package engine

// Key identifies one key press.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyDigit1
	KeyDigit2
)

var keyNames = map[Key]string{
	KeyOther:  "other",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyEnter:  "enter",
	KeyEscape: "esc",
	KeyDigit1: "1",
	KeyDigit2: "2",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "other"
}
