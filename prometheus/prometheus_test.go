package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	genlocal "github.com/hauleth/gen-local"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	require.NotNil(t, m)

	m.CallbackInvoked("init", false)
	m.CallbackInvoked("call", false)
	m.CallbackInvoked("cast", true)
	m.ContinueChain(3)
	m.DeferredReplyWait()

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	assert.True(t, names["genlocal_callbacks_total"])
	assert.True(t, names["genlocal_continue_chain_links"])
	assert.True(t, names["genlocal_deferred_reply_waits_total"])
}

func TestMetrics_throughSession(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	b := genlocal.BehaviorFuncs[int]{
		HandleCallFunc: func(msg any, _ genlocal.From, state int) genlocal.CallResult[int] {
			return genlocal.Reply(state, state+1)
		},
	}

	sess, err := genlocal.Start[int](b, nil, genlocal.WithMetrics(m))
	require.NoError(t, err)

	_, _, err = sess.Call("get")
	require.NoError(t, err)

	mm := m.(*metrics)
	require.Equal(t, 1.0, testutil.ToFloat64(mm.callbacksTotal.WithLabelValues("init", "false")))
	require.Equal(t, 1.0, testutil.ToFloat64(mm.callbacksTotal.WithLabelValues("call", "false")))
	require.Equal(t, 0.0, testutil.ToFloat64(mm.deferredWaitsTotal))
}
