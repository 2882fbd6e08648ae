// Package genlocal runs an actor-style callback module synchronously, in the
// caller's goroutine, instead of behind a mailbox-draining process. It exists
// to make modules that implement the standard server callback contract
// (init, handle call, handle cast, handle info, handle continue) trivial to
// unit-test: every operation invokes the callbacks immediately and hands back
// the updated session value, so tests see each state transition as a plain
// return value.
//
// # The contract
//
// A wrapped module implements [Behavior]. Callbacks return result values
// built with the package constructors, one per shape the contract allows:
//
//   - Init: [Ready], [ReadyContinue], [ReadyTimeout], [Ignore], [StopInit]
//   - HandleCall: [Reply], [ReplyContinue], [ReplyTimeout], [NoReplyCall],
//     [NoReplyCallContinue], [NoReplyCallTimeout], [StopCall], [StopReply]
//   - HandleCast / HandleInfo / HandleContinue: [NoReply], [NoReplyContinue],
//     [NoReplyTimeout], [Stop]
//
// Timeout hints are accepted everywhere and dropped everywhere: no timer is
// ever armed, and a result with a hint behaves exactly like the same result
// without one.
//
// # Sessions
//
// [Start] runs Init and wraps the produced state in a [Session]. A Session is
// a value, not a live process: each of [Session.Call], [Session.Cast] and
// [Session.Send] consumes the receiver and returns the session to use next,
// or an error ([ErrIgnored], [*StopError]) that ends the simulated server's
// life. Callers thread the session through their test exactly like any other
// accumulator:
//
//	sess, err := genlocal.Start[int](counter{}, nil)
//	reply, sess, err := sess.Call(increment{})
//	sess, err = sess.Cast(reset{})
//
// Operations on one session value must not run concurrently; sessions are
// independent of each other.
//
// # Continuations
//
// A callback may attach a continuation message to its result. The chain runs
// depth-first and immediately, before the triggering operation returns, and
// each link may attach another continuation. A stop anywhere in the chain
// wins over the triggering callback's reply.
//
// # Deferred replies
//
// HandleCall receives a [From] carrying a unique correlation token. A handler
// that returns a no-reply result makes Call block until someone, from any
// goroutine, delivers the answer with [From.Reply]. Each From accepts exactly
// one delivery. There is no timeout and no cancellation: if nothing ever
// replies, Call blocks forever. That is a documented property of the shim,
// not a bug — bound the wait in the test harness if a handler under test
// might not reply.
//
// # Faults
//
// The shim adds no supervisor boundary. A panicking callback propagates to
// the caller unmodified.
package genlocal
