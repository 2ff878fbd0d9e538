package engine

// Phase is the state of a running loop.
type Phase int

const (
	Browsing Phase = iota
	Committed
	Cancelled
)

// Action is what a key asks the loop to do.
type Action int

const (
	ActNone Action = iota
	ActNext
	ActPrev
	ActPageLeft
	ActPageRight
	ActCommit
	ActCancel
)

// table maps keys to actions for one loop variant. Unmapped keys are no-ops.
type table map[Key]Action

var (
	menuTable = table{
		KeyUp:     ActPrev,
		KeyDown:   ActNext,
		KeyEnter:  ActCommit,
		KeyEscape: ActCancel,
	}
	pageTable = table{
		KeyLeft:   ActPageLeft,
		KeyRight:  ActPageRight,
		KeyEscape: ActCancel,
	}
	compositeTable = table{
		KeyUp:     ActPrev,
		KeyDown:   ActNext,
		KeyLeft:   ActPageLeft,
		KeyRight:  ActPageRight,
		KeyEnter:  ActCommit,
		KeyEscape: ActCancel,
	}
)

// step advances the loop state machine. Terminal phases absorb every key.
func (t table) step(p Phase, k Key) (Phase, Action) {
	if p != Browsing {
		return p, ActNone
	}
	act := t[k]
	switch act {
	case ActCommit:
		return Committed, act
	case ActCancel:
		return Cancelled, act
	}
	return Browsing, act
}
