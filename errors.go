package genlocal

import (
	"errors"
	"fmt"
)

var (
	// ErrIgnored is returned by Start when the behavior declines to start.
	// No session is created; this is a normal outcome, not a failure.
	ErrIgnored = errors.New("start ignored")
)

// StopError reports that the behavior requested termination. Reason is
// opaque application data, propagated verbatim. State holds the final state
// the stopping callback produced (nil when stopping from Init, which never
// produced one). For a stop-with-reply call result, Reply holds the final
// reply and HasReply is true.
type StopError struct {
	Reason   any
	State    any
	Reply    any
	HasReply bool
}

func (e *StopError) Error() string {
	return fmt.Sprintf("server stopped: %v", e.Reason)
}
