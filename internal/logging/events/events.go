// Package events provides typed trace helpers on top of a logging.Logger.
package events

import "github.com/atomicstack/consolenav/internal/logging"

type reason string

const (
	ReasonEscape reason = "escape"
	ReasonParse  reason = "parse"
	ReasonCheck  reason = "check"
	ReasonEmpty  reason = "empty"
)

// Tracers groups the typed tracers bound to one logger.
type Tracers struct {
	App   AppTracer
	Menu  MenuTracer
	Page  PageTracer
	Input InputTracer
}

// For binds tracers to l. A nil logger yields tracers that do nothing.
func For(l *logging.Logger) Tracers {
	return Tracers{
		App:   AppTracer{l},
		Menu:  MenuTracer{l},
		Page:  PageTracer{l},
		Input: InputTracer{l},
	}
}
