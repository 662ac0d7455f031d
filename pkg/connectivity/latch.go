package connectivity

import (
	"strings"
	"sync"
)

// State is the remote data-access mode for the process.
type State int32

const (
	// StateLive: remote calls are attempted normally.
	StateLive State = iota
	// StateDegraded: a transient failure was observed; calls are still
	// attempted but callers should expect defaults.
	StateDegraded
	// StateOffline: a permission-denied style failure latched the process
	// into local-only mode. One-way for the process lifetime.
	StateOffline
)

func (s State) String() string {
	switch s {
	case StateLive:
		return "live"
	case StateDegraded:
		return "degraded"
	case StateOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Latch tracks remote-store health. It only ever moves forward:
// live -> degraded -> offline. Offline is terminal.
type Latch struct {
	mu    sync.RWMutex
	state State
}

func NewLatch() *Latch {
	return &Latch{state: StateLive}
}

func (l *Latch) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Online reports whether remote calls should be attempted at all.
func (l *Latch) Online() bool {
	return l.State() != StateOffline
}

// Observe inspects a remote-call error and advances the latch. Permission
// denials trip the offline latch; other errors mark the store degraded.
// A nil error in live state is a no-op; degraded does not recover, matching
// the one-way semantics of the original client.
func (l *Latch) Observe(err error) State {
	if err == nil {
		return l.State()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == StateOffline {
		return l.state
	}

	if isPermissionDenied(err) {
		l.state = StateOffline
	} else if l.state == StateLive {
		l.state = StateDegraded
	}
	return l.state
}

func isPermissionDenied(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "permission-denied") ||
		strings.Contains(msg, "unauthorized")
}
