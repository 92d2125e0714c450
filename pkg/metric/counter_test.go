package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCounterWithRegistry(reg, "procedure_invocations_total", "calls", "name")

	c.Increment("quit")
	c.Increment("quit")

	counter, ok := c.(*Counter)
	require.True(t, ok)
	assert.Equal(t, 2.0, testutil.ToFloat64(counter.vec.WithLabelValues("quit")))

	n, err := testutil.GatherAndCount(reg, "jellmachine_procedure_invocations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCounterDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCounterWithRegistry(reg, "dup_total", "dup")

	assert.Panics(t, func() {
		NewCounterWithRegistry(reg, "dup_total", "dup")
	})
}

func TestNop(t *testing.T) {
	var c IncrementalCounter = Nop{}
	assert.NotPanics(t, func() { c.Increment("anything") })
}
