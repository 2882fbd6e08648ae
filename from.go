package genlocal

import (
	"fmt"
	"sync/atomic"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// From identifies the caller of a synchronous call: the execution context
// blocked inside [Session.Call] plus the correlation token minted for that
// invocation. A From may be captured by the handler and handed to any
// goroutine; [From.Reply] is safe to invoke from anywhere.
type From struct {
	token   string
	reply   chan any
	claimed *atomic.Bool
}

func newFrom() From {
	return From{
		token:   gonanoid.Must(),
		reply:   make(chan any, 1),
		claimed: new(atomic.Bool),
	}
}

// Reply delivers the deferred reply for this token. The first delivery wins
// and returns true; every later delivery is dropped and returns false, as is
// any delivery on a zero From.
func (f From) Reply(v any) bool {
	if f.reply == nil || !f.claimed.CompareAndSwap(false, true) {
		return false
	}
	f.reply <- v
	return true
}

// Token returns the correlation token minted for the call.
func (f From) Token() string { return f.token }

func (f From) String() string { return fmt.Sprintf("from(%s)", f.token) }

// wait blocks until the deferred reply arrives. There is no timeout and no
// cancellation: a handler that never replies leaves the caller blocked.
func (f From) wait() any { return <-f.reply }
