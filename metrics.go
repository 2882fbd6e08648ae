package genlocal

// Metrics observes session activity. Implementations must be safe for use
// from multiple sessions at once. The default is [NopMetrics]; a
// Prometheus-backed implementation lives in the prometheus subpackage.
type Metrics interface {
	// CallbackInvoked records one callback dispatch. kind is one of
	// "init", "call", "cast", "info", "continue"; stopped reports whether
	// the callback requested termination.
	CallbackInvoked(kind string, stopped bool)
	// ContinueChain observes the number of links in a finished
	// continuation chain.
	ContinueChain(length int)
	// DeferredReplyWait records that a call blocked for a deferred reply.
	DeferredReplyWait()
}

// nopMetrics is a no-op implementation of Metrics.
type nopMetrics struct{}

func (nopMetrics) CallbackInvoked(string, bool) {}
func (nopMetrics) ContinueChain(int)            {}
func (nopMetrics) DeferredReplyWait()           {}

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }
