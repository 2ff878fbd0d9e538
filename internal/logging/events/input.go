package events

import "github.com/atomicstack/consolenav/internal/logging"

type InputTracer struct{ log *logging.Logger }

func (t InputTracer) Prompt(prompt string) {
	t.log.Trace("input.prompt", map[string]interface{}{"prompt": prompt})
}

func (t InputTracer) Rejected(prompt, value string, why reason) {
	t.log.Trace("input.rejected", map[string]interface{}{"prompt": prompt, "value": value, "reason": string(why)})
}

func (t InputTracer) Accepted(prompt, value string) {
	t.log.Trace("input.accepted", map[string]interface{}{"prompt": prompt, "value": value})
}

func (t InputTracer) Interrupted(prompt string) {
	t.log.Trace("input.interrupted", map[string]interface{}{"prompt": prompt, "reason": string(ReasonEscape)})
}
