package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemMonitorStop(t *testing.T) {
	mm := newMemMonitor()
	peak := mm.Stop()
	require.Positive(t, peak)

	select {
	case <-mm.done:
	default:
		t.Fatal("sampler still running after Stop")
	}
	require.Equal(t, peak, mm.maxAlloc)
}
