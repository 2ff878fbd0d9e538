package events

import "github.com/atomicstack/consolenav/internal/logging"

type MenuTracer struct{ log *logging.Logger }

type PageTracer struct{ log *logging.Logger }

func (t MenuTracer) Cursor(title string, cursor int) {
	t.log.Trace("menu.cursor", map[string]interface{}{"title": title, "cursor": cursor})
}

func (t MenuTracer) Commit(title, label, id string) {
	t.log.Trace("menu.commit", map[string]interface{}{"title": title, "label": label, "id": id})
}

func (t MenuTracer) Cancel(title string) {
	t.log.Trace("menu.cancel", map[string]interface{}{"title": title, "reason": string(ReasonEscape)})
}

func (t PageTracer) Turn(title string, page, max int) {
	t.log.Trace("page.turn", map[string]interface{}{"title": title, "page": page, "max": max})
}

func (t PageTracer) Close(title string) {
	t.log.Trace("page.close", map[string]interface{}{"title": title})
}
