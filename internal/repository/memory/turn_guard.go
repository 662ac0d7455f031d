package memory

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// TurnGuard serializes message turns per chat session: a second send for the
// same session is rejected while the first is still awaiting its inference
// result. Entries expire so a crashed turn cannot wedge a session forever.
type TurnGuard struct {
	cache *cache.Cache
	mu    sync.Mutex
}

func NewTurnGuard() *TurnGuard {
	// Expiration doubles as a safety valve for turns that never call Release.
	c := cache.New(2*time.Minute, 5*time.Minute)
	return &TurnGuard{
		cache: c,
	}
}

// Acquire marks the session as awaiting-response. Returns false when a turn
// is already in flight for this session.
func (g *TurnGuard) Acquire(sessionID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, found := g.cache.Get(sessionID); found {
		return false
	}
	g.cache.Set(sessionID, struct{}{}, cache.DefaultExpiration)
	return true
}

// Release returns the session to idle.
func (g *TurnGuard) Release(sessionID string) {
	g.cache.Delete(sessionID)
}

// InFlight reports whether the session is currently awaiting a response.
func (g *TurnGuard) InFlight(sessionID string) bool {
	_, found := g.cache.Get(sessionID)
	return found
}
