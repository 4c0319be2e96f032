package progress

import (
	"context"
	"slices"
	"sync"
)

type FetchFunc func(ctx context.Context) ([]PersonalRecord, error)

// Cache memoizes the personal records of the last computed user.
//
// Every computation takes a request token. A result is committed only if its token
// is still the latest one, so a stale or invalidated computation never overwrites
// newer state. The lock is never held while fetching.
type Cache struct {
	mu          sync.Mutex
	records     []PersonalRecord
	userID      string
	latestToken uint64
}

func NewCache() *Cache {
	return &Cache{}
}

// GetOrCompute returns the cached records for userID, unless they are empty, belong to
// another user or force is set; then fetch is called and its result committed.
// The returned bool tells whether the cache was hit.
func (c *Cache) GetOrCompute(ctx context.Context, userID string, force bool, fetch FetchFunc) ([]PersonalRecord, bool, error) {
	c.mu.Lock()
	if !force && c.userID == userID && len(c.records) > 0 {
		records := slices.Clone(c.records)
		c.mu.Unlock()
		return records, true, nil
	}
	c.latestToken++
	token := c.latestToken
	c.mu.Unlock()

	records, err := fetch(ctx)
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	if token == c.latestToken {
		c.records = records
		c.userID = userID
	}
	c.mu.Unlock()

	return slices.Clone(records), false, nil
}

// Invalidate clears the cache and cancels the commit of any in-flight computation.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
	c.userID = ""
	c.latestToken++
}

// Previous returns the committed records if they belong to userID.
func (c *Cache) Previous(userID string) []PersonalRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.userID != userID || len(c.records) == 0 {
		return []PersonalRecord{}
	}
	return slices.Clone(c.records)
}
