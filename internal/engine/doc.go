// Package engine runs the blocking input loops of the console navigation
// engine: menus, paged text and validated scalar prompts.
//
// Every loop follows the same cycle: render the current state through the
// Terminal, block on a single key (or line), translate the key through the
// loop's dispatch table and apply the resulting action to state owned by
// the call. A loop only ends on a terminal action (Enter commits, Escape
// cancels) or when the Terminal reports an error.
//
// Selection and window arithmetic live in internal/menu; this package owns
// the control flow, the localized chrome around it and the trace events.
package engine
