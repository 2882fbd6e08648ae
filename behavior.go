package genlocal

import (
	"fmt"
	"log/slog"
	"time"
)

// Behavior is the callback contract a wrapped server module implements.
// State is opaque to this package: it is produced by Init, threaded through
// every callback unchanged, and never inspected. Messages and stop reasons
// are opaque application data as well.
type Behavior[S any] interface {
	// Init produces the initial state, or declines to start.
	Init(args any) InitResult[S]
	// HandleCall serves a synchronous request. from identifies the blocked
	// caller; a handler returning a no-reply result must arrange for
	// from.Reply to be invoked eventually.
	HandleCall(msg any, from From, state S) CallResult[S]
	// HandleCast serves an asynchronous request.
	HandleCast(msg any, state S) Result[S]
	// HandleInfo serves an out-of-band message.
	HandleInfo(msg any, state S) Result[S]
	// HandleContinue serves a continuation scheduled by a previous callback.
	HandleContinue(msg any, state S) Result[S]
}

// InitResult is the outcome of [Behavior.Init]. Build values with [Ready],
// [ReadyContinue], [ReadyTimeout], [Ignore] or [StopInit].
type InitResult[S any] struct {
	state       S
	reason      any
	continueMsg any
	ignore      bool
	stop        bool
	hasContinue bool
}

// Ready accepts startup with the given initial state.
func Ready[S any](state S) InitResult[S] {
	return InitResult[S]{state: state}
}

// ReadyContinue accepts startup and schedules a continuation to run before
// Start returns.
func ReadyContinue[S any](state S, msg any) InitResult[S] {
	return InitResult[S]{state: state, hasContinue: true, continueMsg: msg}
}

// ReadyTimeout accepts startup with an idle-timeout hint. The hint is
// dropped: no timer is armed.
func ReadyTimeout[S any](state S, _ time.Duration) InitResult[S] {
	return Ready(state)
}

// Ignore declines startup without error. Start returns [ErrIgnored] and no
// session.
func Ignore[S any]() InitResult[S] {
	return InitResult[S]{ignore: true}
}

// StopInit aborts startup with a reason. Start returns a [*StopError] and no
// session.
func StopInit[S any](reason any) InitResult[S] {
	return InitResult[S]{stop: true, reason: reason}
}

// CallResult is the outcome of [Behavior.HandleCall]. Build values with
// [Reply], [ReplyContinue], [ReplyTimeout], [NoReplyCall],
// [NoReplyCallContinue], [NoReplyCallTimeout], [StopCall] or [StopReply].
type CallResult[S any] struct {
	state       S
	reply       any
	reason      any
	continueMsg any
	hasReply    bool
	stop        bool
	hasContinue bool
}

// Reply answers the call immediately with reply and installs the new state.
func Reply[S any](reply any, state S) CallResult[S] {
	return CallResult[S]{reply: reply, hasReply: true, state: state}
}

// ReplyContinue answers the call with reply after the continuation chain for
// msg has run. A stop inside the chain discards the reply.
func ReplyContinue[S any](reply any, state S, msg any) CallResult[S] {
	return CallResult[S]{reply: reply, hasReply: true, state: state, hasContinue: true, continueMsg: msg}
}

// ReplyTimeout answers the call immediately; the timeout hint is dropped.
func ReplyTimeout[S any](reply any, state S, _ time.Duration) CallResult[S] {
	return Reply(reply, state)
}

// NoReplyCall installs the new state without answering. The caller blocks
// until the reply is delivered via [From.Reply].
func NoReplyCall[S any](state S) CallResult[S] {
	return CallResult[S]{state: state}
}

// NoReplyCallContinue runs the continuation chain for msg, then leaves the
// caller blocked on the deferred reply.
func NoReplyCallContinue[S any](state S, msg any) CallResult[S] {
	return CallResult[S]{state: state, hasContinue: true, continueMsg: msg}
}

// NoReplyCallTimeout is [NoReplyCall]; the timeout hint is dropped.
func NoReplyCallTimeout[S any](state S, _ time.Duration) CallResult[S] {
	return NoReplyCall(state)
}

// StopCall terminates the server without answering the call.
func StopCall[S any](reason any, state S) CallResult[S] {
	return CallResult[S]{stop: true, reason: reason, state: state}
}

// StopReply terminates the server and hands the caller a final reply, both
// carried on the resulting [*StopError].
func StopReply[S any](reason any, reply any, state S) CallResult[S] {
	return CallResult[S]{stop: true, reason: reason, reply: reply, hasReply: true, state: state}
}

// Result is the outcome of [Behavior.HandleCast], [Behavior.HandleInfo] and
// [Behavior.HandleContinue]. Build values with [NoReply], [NoReplyContinue],
// [NoReplyTimeout] or [Stop].
type Result[S any] struct {
	state       S
	reason      any
	continueMsg any
	stop        bool
	hasContinue bool
}

// NoReply installs the new state.
func NoReply[S any](state S) Result[S] {
	return Result[S]{state: state}
}

// NoReplyContinue installs the new state and schedules a continuation.
func NoReplyContinue[S any](state S, msg any) Result[S] {
	return Result[S]{state: state, hasContinue: true, continueMsg: msg}
}

// NoReplyTimeout is [NoReply]; the timeout hint is dropped.
func NoReplyTimeout[S any](state S, _ time.Duration) Result[S] {
	return NoReply(state)
}

// Stop terminates the server with a reason and a final state.
func Stop[S any](reason any, state S) Result[S] {
	return Result[S]{stop: true, reason: reason, state: state}
}

// BehaviorFuncs adapts plain functions to [Behavior], so tests can wrap a
// couple of closures instead of declaring a type per module. Nil callbacks
// fall back to the contract's defaults: a nil InitFunc readies the zero
// state, a nil HandleInfoFunc logs the message and keeps the state, and nil
// call/cast/continue callbacks stop the server, since receiving a message
// the module never implemented a handler for is a contract violation.
type BehaviorFuncs[S any] struct {
	InitFunc           func(args any) InitResult[S]
	HandleCallFunc     func(msg any, from From, state S) CallResult[S]
	HandleCastFunc     func(msg any, state S) Result[S]
	HandleInfoFunc     func(msg any, state S) Result[S]
	HandleContinueFunc func(msg any, state S) Result[S]
}

var _ Behavior[int] = BehaviorFuncs[int]{}

func (b BehaviorFuncs[S]) Init(args any) InitResult[S] {
	if b.InitFunc == nil {
		var zero S
		return Ready(zero)
	}
	return b.InitFunc(args)
}

func (b BehaviorFuncs[S]) HandleCall(msg any, from From, state S) CallResult[S] {
	if b.HandleCallFunc == nil {
		return StopCall(fmt.Sprintf("unexpected call: %+v", msg), state)
	}
	return b.HandleCallFunc(msg, from, state)
}

func (b BehaviorFuncs[S]) HandleCast(msg any, state S) Result[S] {
	if b.HandleCastFunc == nil {
		return Stop(fmt.Sprintf("unexpected cast: %+v", msg), state)
	}
	return b.HandleCastFunc(msg, state)
}

func (b BehaviorFuncs[S]) HandleInfo(msg any, state S) Result[S] {
	if b.HandleInfoFunc == nil {
		slog.Default().Warn("discarding unexpected info message", slog.Any("msg", msg))
		return NoReply(state)
	}
	return b.HandleInfoFunc(msg, state)
}

func (b BehaviorFuncs[S]) HandleContinue(msg any, state S) Result[S] {
	if b.HandleContinueFunc == nil {
		return Stop(fmt.Sprintf("unexpected continue: %+v", msg), state)
	}
	return b.HandleContinueFunc(msg, state)
}
