package events

import "github.com/atomicstack/consolenav/internal/logging"

type AppTracer struct{ log *logging.Logger }

func (t AppTracer) Start(payload map[string]interface{}) {
	t.log.Trace("app.start", payload)
}

func (t AppTracer) Language(lang string) {
	t.log.Trace("app.language", map[string]interface{}{"language": lang})
}

func (t AppTracer) Exit() {
	t.log.Trace("app.exit", nil)
}
