package ratelimit

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the limiter deterministically in tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestLimiter builds a limiter on the default endpoint tiers with cleanup
// disabled and the clock under test control.
func newTestLimiter(clock *fakeClock) *Limiter {
	l := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	l.now = clock.now
	return l
}

func TestLimiter_PDFExportBurst(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(clock)
	defer l.Stop()

	const path = "/resumes/7f9c3a10-1111-2222-3333-444455556666/export.pdf"

	// The PDF tier allows 30/min but caps bursts at 5 back-to-back exports.
	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("198.51.100.7", path, "GET")
		require.True(t, allowed, "export %d should fit in the burst", i+1)
		assert.Equal(t, 30, info.Limit)
		assert.Equal(t, 4-i, info.Remaining)
	}

	allowed, info := l.Allow("198.51.100.7", path, "GET")
	require.False(t, allowed, "sixth back-to-back export should be throttled")
	assert.Equal(t, 30, info.Limit)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
	assert.True(t, info.ResetTime.After(clock.now()))

	// 30/min refills one token every two seconds.
	clock.advance(2 * time.Second)
	allowed, _ = l.Allow("198.51.100.7", path, "GET")
	assert.True(t, allowed, "export should succeed once a token refills")
}

func TestLimiter_ExportBudgetSharedAcrossResumes(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(clock)
	defer l.Stop()

	// Exporting different resumes draws from the same per-client budget.
	for i := 0; i < 5; i++ {
		path := fmt.Sprintf("/resumes/00000000-0000-0000-0000-00000000000%d/export.pdf", i)
		allowed, _ := l.Allow("198.51.100.7", path, "GET")
		require.True(t, allowed)
	}

	allowed, _ := l.Allow("198.51.100.7", "/resumes/aaaabbbb-cccc-dddd-eeee-ffff00001111/export.pdf", "GET")
	assert.False(t, allowed, "a fresh resume ID must not reset the PDF budget")
}

func TestLimiter_EnhanceTier(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(clock)
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("203.0.113.9", "/enhance", "POST")
		require.True(t, allowed)
		assert.Equal(t, 20, info.Limit)
	}
	allowed, _ := l.Allow("203.0.113.9", "/enhance", "POST")
	assert.False(t, allowed, "enhance calls beyond the burst should be throttled")
}

func TestLimiter_DefaultTierForReads(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(clock)
	defer l.Stop()

	allowed, info := l.Allow("203.0.113.9", "/templates", "GET")
	require.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
	assert.Equal(t, 999, info.Remaining)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(clock)
	defer l.Stop()

	for i := 0; i < 2000; i++ {
		allowed, info := l.Allow("203.0.113.9", "/health", "GET")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_PerClientIsolation(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(clock)
	defer l.Stop()

	const path = "/resumes/7f9c3a10-1111-2222-3333-444455556666/export.pdf"
	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("198.51.100.7", path, "GET")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("198.51.100.7", path, "GET")
	require.False(t, allowed)

	allowed, _ = l.Allow("198.51.100.8", path, "GET")
	assert.True(t, allowed, "one client's exhausted budget must not throttle another")
}

func TestLimiter_Whitelist(t *testing.T) {
	clock := newFakeClock()
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.5": true},
		Blacklist:     make(map[string]bool),
	})
	l.now = clock.now
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("10.0.0.5", "/enhance", "POST")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	clock := newFakeClock()
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     map[string]bool{"192.0.2.66": true},
	})
	l.now = clock.now
	defer l.Stop()

	allowed, info := l.Allow("192.0.2.66", "/templates", "GET")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("203.0.113.9", "/enhance", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	clock := newFakeClock()
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Hour,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
	})
	l.now = clock.now
	defer l.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _ := l.Allow("203.0.113.9", "/resumes", "GET")
			if allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestLimiter_CleanupDropsIdleClients(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(clock)
	defer l.Stop()

	l.Allow("198.51.100.7", "/templates", "GET")
	l.Allow("198.51.100.8", "/templates", "GET")

	clock.advance(30 * time.Minute)
	l.Allow("198.51.100.7", "/templates", "GET")

	clock.advance(40 * time.Minute)
	l.dropIdle(clock.now())

	l.mu.Lock()
	defer l.mu.Unlock()
	require.Len(t, l.buckets, 1)
	for key := range l.buckets {
		assert.True(t, strings.HasPrefix(key, "198.51.100.7|"),
			"the recently active client should keep its bucket")
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	// Nil config enables the built-in tiers.
	allowed, info := l.Allow("203.0.113.9", "/enhance", "POST")
	require.True(t, allowed)
	assert.Equal(t, 20, info.Limit)

	allowed, info = l.Allow("203.0.113.9", "/templates", "GET")
	require.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}
