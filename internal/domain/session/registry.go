// internal/domain/session/registry.go
package session

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
)

type entry struct {
	store      *cart.Store
	lastAccess time.Time
}

// Registry keeps one cart store per guest session and forgets sessions that
// have been idle for longer than the configured TTL
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	catalog  cart.ProductLookup
	idleTTL  time.Duration
	logger   *logrus.Logger
	now      func() time.Time
}

// NewRegistry creates an empty session registry
func NewRegistry(catalog cart.ProductLookup, idleTTL time.Duration, logger *logrus.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		catalog:  catalog,
		idleTTL:  idleTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// Get returns the store for sessionID, creating an empty cart on first use
func (r *Registry) Get(sessionID string) *cart.Store {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[sessionID]
	if !ok {
		e = &entry{store: cart.NewStore(r.catalog, r.logger)}
		r.sessions[sessionID] = e
		r.logger.WithField("session_id", sessionID).Debug("Cart session created")
	}
	e.lastAccess = now
	return e.store
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Delete discards a session and its cart
func (r *Registry) Delete(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// Sweep removes sessions idle since before now minus the TTL and returns how many were removed
func (r *Registry) Sweep(now time.Time) int {
	cutoff := now.Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.sessions {
		if e.lastAccess.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := r.Sweep(r.now()); removed > 0 {
				r.logger.WithFields(logrus.Fields{
					"removed":  removed,
					"sessions": r.Len(),
				}).Info("Expired idle cart sessions")
			}
		}
	}
}
