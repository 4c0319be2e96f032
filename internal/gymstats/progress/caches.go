package progress

import (
	"sync"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

type sessionCache struct {
	userID string
	cache  *Cache
}

type transitionSubscriber interface {
	Subscribe(fn func(auth.Transition)) (unsubscribe func())
}

// Caches holds one records Cache per login session. It follows auth transitions:
// a signed out session has its cache invalidated and dropped before Publish returns.
type Caches struct {
	mu      sync.Mutex
	byToken map[string]sessionCache

	metrics     *metrics.Manager
	unsubscribe func()
}

func NewCaches(broker transitionSubscriber, metricsManager *metrics.Manager) *Caches {
	c := &Caches{
		byToken: make(map[string]sessionCache),
		metrics: metricsManager,
	}
	c.unsubscribe = broker.Subscribe(c.onTransition)
	return c
}

// For returns the cache of the identity's login session, creating it on first use.
func (c *Caches) For(identity auth.Identity) *Cache {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.byToken[identity.Token]
	if !ok {
		entry = sessionCache{
			userID: identity.UserID,
			cache:  NewCache(),
		}
		c.byToken[identity.Token] = entry
		c.updateGauge()
	}
	return entry.cache
}

// InvalidateUser invalidates the caches of every login session of userID,
// including the ones with a computation in flight.
func (c *Caches) InvalidateUser(userID string) {
	c.mu.Lock()
	var caches []*Cache
	for _, entry := range c.byToken {
		if entry.userID == userID {
			caches = append(caches, entry.cache)
		}
	}
	c.mu.Unlock()

	for _, cache := range caches {
		cache.Invalidate()
	}
}

func (c *Caches) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.byToken)
}

// Close stops following auth transitions.
func (c *Caches) Close() {
	c.unsubscribe()
}

func (c *Caches) onTransition(t auth.Transition) {
	if t.Authenticated {
		return
	}

	c.mu.Lock()
	entry, ok := c.byToken[t.Token]
	delete(c.byToken, t.Token)
	c.updateGauge()
	c.mu.Unlock()

	if ok {
		entry.cache.Invalidate()
		log.Tracef("records cache dropped for signed out user %s", t.UserID)
	}
}

func (c *Caches) updateGauge() {
	if c.metrics == nil {
		return
	}
	c.metrics.GaugeRecordCaches.Set(float64(len(c.byToken)))
}
