package agent

import "errors"

// ErrModelCall wraps any transport or provider failure from a completion
// call. Callers match it with errors.Is; the orchestration layers convert
// it to degraded results rather than propagating it.
var ErrModelCall = errors.New("model call failed")
