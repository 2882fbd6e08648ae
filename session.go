package genlocal

import "log/slog"

// Session wraps a behavior together with its current state. A Session is a
// value, not a live process: each operation consumes the receiver and
// returns the session to use next. A session returned alongside a non-nil
// error is the zero value and must not be used. Operations on one session
// value must not run concurrently; independent sessions share nothing.
type Session[S any] struct {
	behavior Behavior[S]
	state    S
	opts     Options
}

// State returns the wrapped state.
func (s Session[S]) State() S { return s.state }

// Start invokes b.Init synchronously and wraps the produced state. A
// continuation scheduled by Init runs to completion before Start returns; a
// stop inside that chain makes Start return its [*StopError] instead of a
// session. An ignoring behavior yields [ErrIgnored].
func Start[S any](b Behavior[S], args any, opts ...Option) (Session[S], error) {
	o := buildOptions(opts)
	res := b.Init(args)
	o.Metrics.CallbackInvoked("init", res.stop)
	switch {
	case res.ignore:
		o.Logger.Debug("init ignored")
		return Session[S]{}, ErrIgnored
	case res.stop:
		o.Logger.Debug("init stopped", slog.Any("reason", res.reason))
		return Session[S]{}, &StopError{Reason: res.reason}
	}
	s := Session[S]{behavior: b, state: res.state, opts: o}
	if res.hasContinue {
		return s.runContinue(res.continueMsg)
	}
	return s, nil
}

// Call invokes HandleCall synchronously with a fresh correlation token. An
// immediate reply is returned directly; a no-reply result blocks the caller
// until the matching [From.Reply] delivery arrives. A stop anywhere in an
// attached continuation chain wins over the handler's reply.
func (s Session[S]) Call(msg any) (any, Session[S], error) {
	from := newFrom()
	res := s.behavior.HandleCall(msg, from, s.state)
	s.opts.Metrics.CallbackInvoked("call", res.stop)

	if res.stop {
		s.opts.Logger.Debug("call stopped", slog.String("token", from.token), slog.Any("reason", res.reason))
		return nil, Session[S]{}, &StopError{
			Reason:   res.reason,
			State:    res.state,
			Reply:    res.reply,
			HasReply: res.hasReply,
		}
	}

	s.state = res.state
	if res.hasContinue {
		next, err := s.runContinue(res.continueMsg)
		if err != nil {
			// termination inside the chain discards the computed reply
			return nil, Session[S]{}, err
		}
		s = next
	}

	if res.hasReply {
		return res.reply, s, nil
	}

	s.opts.Metrics.DeferredReplyWait()
	s.opts.Logger.Debug("awaiting deferred reply", slog.String("token", from.token))
	return from.wait(), s, nil
}

// Cast invokes HandleCast synchronously.
func (s Session[S]) Cast(msg any) (Session[S], error) {
	return s.dispatch("cast", s.behavior.HandleCast(msg, s.state))
}

// Send delivers an out-of-band message via HandleInfo.
func (s Session[S]) Send(msg any) (Session[S], error) {
	return s.dispatch("info", s.behavior.HandleInfo(msg, s.state))
}

// dispatch applies the shared cast/info/continue result handling.
func (s Session[S]) dispatch(kind string, res Result[S]) (Session[S], error) {
	s.opts.Metrics.CallbackInvoked(kind, res.stop)
	if res.stop {
		s.opts.Logger.Debug("callback stopped", slog.String("callback", kind), slog.Any("reason", res.reason))
		return Session[S]{}, &StopError{Reason: res.reason, State: res.state}
	}
	s.state = res.state
	if res.hasContinue {
		return s.runContinue(res.continueMsg)
	}
	return s, nil
}

// runContinue drains a continuation chain. Chains run depth-first and
// immediately, each link free to schedule the next; an explicit loop keeps
// pathological chains off the call stack. A chain that never ends never
// returns, matching the contract.
func (s Session[S]) runContinue(msg any) (Session[S], error) {
	length := 0
	for {
		length++
		res := s.behavior.HandleContinue(msg, s.state)
		s.opts.Metrics.CallbackInvoked("continue", res.stop)
		if res.stop {
			s.opts.Metrics.ContinueChain(length)
			s.opts.Logger.Debug("callback stopped", slog.String("callback", "continue"), slog.Any("reason", res.reason))
			return Session[S]{}, &StopError{Reason: res.reason, State: res.state}
		}
		s.state = res.state
		if !res.hasContinue {
			s.opts.Metrics.ContinueChain(length)
			return s, nil
		}
		msg = res.continueMsg
	}
}
