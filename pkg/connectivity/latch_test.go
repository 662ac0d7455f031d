package connectivity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatchStartsLive(t *testing.T) {
	l := NewLatch()
	assert.Equal(t, StateLive, l.State())
	assert.True(t, l.Online())
}

func TestLatchDegradesOnTransientError(t *testing.T) {
	l := NewLatch()
	l.Observe(errors.New("connection refused"))
	assert.Equal(t, StateDegraded, l.State())
	assert.True(t, l.Online(), "degraded still attempts remote calls")
}

func TestLatchTripsOfflineOnPermissionDenied(t *testing.T) {
	tests := []string{
		"rpc error: permission denied",
		"firestore: permission-denied",
		"401 unauthorized",
	}

	for _, msg := range tests {
		t.Run(msg, func(t *testing.T) {
			l := NewLatch()
			l.Observe(errors.New(msg))
			assert.Equal(t, StateOffline, l.State())
			assert.False(t, l.Online())
		})
	}
}

func TestLatchIsOneWay(t *testing.T) {
	l := NewLatch()
	l.Observe(errors.New("permission denied"))
	assert.Equal(t, StateOffline, l.State())

	// Later successes or other errors never resurrect the connection.
	l.Observe(nil)
	assert.Equal(t, StateOffline, l.State())
	l.Observe(errors.New("timeout"))
	assert.Equal(t, StateOffline, l.State())
}

func TestLatchNilErrorKeepsState(t *testing.T) {
	l := NewLatch()
	assert.Equal(t, StateLive, l.Observe(nil))

	l.Observe(errors.New("timeout"))
	assert.Equal(t, StateDegraded, l.Observe(nil), "degraded does not recover")
}
