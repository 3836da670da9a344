package payments

import (
	"context"
	"log"
	"sync"
	"time"
)

// TokenSource fetches a fresh provider access token and its lifetime.
type TokenSource func(ctx context.Context) (token string, expiresIn time.Duration, err error)

// TokenCache keeps the provider access token in process memory and refreshes
// it on demand. The cached token is considered expired earlyExpiry before the
// provider's stated lifetime so an in-flight request never carries a token
// that dies mid-call.
//
// Concurrent Get calls serialize on the mutex; the worst case under races is
// a redundant refresh, never a stale token.

type TokenCache struct {
	mu          sync.Mutex
	fetch       TokenSource
	now         func() time.Time
	earlyExpiry time.Duration

	token  string
	expiry time.Time
}

const defaultEarlyExpiry = 10 * time.Second

func NewTokenCache(fetch TokenSource) *TokenCache {
	return &TokenCache{
		fetch:       fetch,
		now:         time.Now,
		earlyExpiry: defaultEarlyExpiry,
	}
}

// WithClock overrides the cache's clock. Tests use it to simulate expiry
// without real delays.
func (c *TokenCache) WithClock(now func() time.Time) *TokenCache {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	return c
}

// Get returns the cached token, refreshing it first when absent or expired.
func (c *TokenCache) Get(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiry) {
		return c.token, nil
	}

	log.Printf("[phonepe][token] fetching new access token")
	token, expiresIn, err := c.fetch(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.expiry = c.now().Add(expiresIn - c.earlyExpiry)
	log.Printf("[phonepe][token] access token refreshed, valid until %s", c.expiry.Format(time.RFC3339))
	return token, nil
}

// Invalidate drops the cached token so the next Get refetches. Called when
// the provider rejects a request as unauthorized.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.expiry = time.Time{}
}
