// Package prometheus provides a Prometheus implementation of the
// genlocal.Metrics interface.
package prometheus

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	genlocal "github.com/hauleth/gen-local"
)

// metrics implements genlocal.Metrics using Prometheus.
type metrics struct {
	callbacksTotal     *prometheus.CounterVec
	continueChainLinks prometheus.Histogram
	deferredWaitsTotal prometheus.Counter
}

// NewMetrics creates a Prometheus implementation of genlocal.Metrics and
// registers its collectors with reg.
func NewMetrics(reg prometheus.Registerer) genlocal.Metrics {
	m := &metrics{
		callbacksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "genlocal_callbacks_total",
			Help: "Total number of callback dispatches",
		}, []string{"callback", "stopped"}),

		continueChainLinks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "genlocal_continue_chain_links",
			Help:    "Number of links in finished continuation chains",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),

		deferredWaitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "genlocal_deferred_reply_waits_total",
			Help: "Total number of calls that blocked for a deferred reply",
		}),
	}

	reg.MustRegister(
		m.callbacksTotal,
		m.continueChainLinks,
		m.deferredWaitsTotal,
	)

	return m
}

func (m *metrics) CallbackInvoked(kind string, stopped bool) {
	m.callbacksTotal.WithLabelValues(kind, strconv.FormatBool(stopped)).Inc()
}

func (m *metrics) ContinueChain(length int) {
	m.continueChainLinks.Observe(float64(length))
}

func (m *metrics) DeferredReplyWait() {
	m.deferredWaitsTotal.Inc()
}
