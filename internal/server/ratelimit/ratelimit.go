// Package ratelimit applies per-client token-bucket budgets to API
// endpoints. Budgets are tiered by cost: routes that spin up headless Chrome
// or call paid services get small buckets, plain reads fall through to a
// generous default, and the health check is never limited.
package ratelimit

import (
	"sync"
	"time"
)

// idleTTL is how long an untouched budget survives before cleanup drops it.
const idleTTL = time.Hour

// bucket is one client's budget for one endpoint rule. Tokens refill
// continuously at rate per second, up to burst capacity.
type bucket struct {
	tokens   float64
	burst    float64
	rate     float64
	refilled time.Time
	lastSeen time.Time
}

// take refills, then consumes one token when available. It reports whether
// the request may proceed, the whole tokens left, and when the bucket will
// be full again. Callers hold the limiter lock.
func (b *bucket) take(now time.Time) (allowed bool, remaining int, reset time.Time) {
	b.tokens = min(b.burst, b.tokens+now.Sub(b.refilled).Seconds()*b.rate)
	b.refilled = now

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}
	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.burst {
		reset = now.Add(time.Duration((b.burst - b.tokens) / b.rate * float64(time.Second)))
	}
	return allowed, remaining, reset
}

// Info is the rate-limit status reported alongside an Allow decision; the
// server copies it into the X-RateLimit-* response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter hands out tokens per client per matched endpoint rule. Budgets for
// pattern rules are keyed by the pattern, not the raw path, so exporting two
// different resumes draws from the same per-client PDF budget.
type Limiter struct {
	config *Config
	now    func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter. A nil config enables the built-in tiers with
// the same defaults LoadConfig uses when no environment overrides are set.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
			EndpointConfigs: DefaultEndpointConfigs(),
		}
	}

	l := &Limiter{
		config:  config,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}
	return l
}

// Allow charges one request from the client against the budget of the rule
// matching path and method.
func (l *Limiter) Allow(clientID string, path string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	rule := MatchEndpoint(path, method, l.config.EndpointConfigs)
	key := clientID + "|" + method + " " + path
	if rule == nil {
		rule = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
		}
	} else {
		key = clientID + "|" + method + " " + rule.Path
	}
	if rule.Limit <= 0 {
		// Unlimited tier (health check).
		return true, Info{Allowed: true}
	}

	now := l.now()

	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		burst := rule.Burst
		if burst <= 0 {
			burst = rule.Limit
		}
		b = &bucket{
			tokens:   float64(burst),
			burst:    float64(burst),
			rate:     float64(rule.Limit) / rule.Window.Seconds(),
			refilled: now,
		}
		l.buckets[key] = b
	}
	b.lastSeen = now
	allowed, remaining, reset := b.take(now)
	l.mu.Unlock()

	info := Info{
		Allowed:   allowed,
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if retry := reset.Sub(now); retry > 0 {
			info.RetryAfter = retry
		}
	}
	return allowed, info
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.dropIdle(l.now())
		case <-l.cleanupStop:
			return
		}
	}
}

// dropIdle removes budgets for clients that have gone quiet, so one-off
// exporters do not accumulate buckets forever.
func (l *Limiter) dropIdle(now time.Time) {
	cutoff := now.Add(-idleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
