// Package ratelimiter implements a token bucket limiter keyed by an
// arbitrary identity string (IP here). Idle buckets expire to keep the
// map bounded.
package ratelimiter

import (
	"sync"
	"time"
)

type bucket struct {
	tokens     float64
	capacity   float64
	rate       float64
	lastRefill time.Time
	mu         sync.Mutex
	timer      *time.Timer
	identity   string
	parent     *Limiter
}

// Limiter manages one bucket per identity.
type Limiter struct {
	buckets        map[string]*bucket
	mu             sync.RWMutex
	rate           float64 // tokens per second
	capacity       float64
	expirationTime time.Duration
}

func New(rate, capacity float64, expirationTime time.Duration) *Limiter {
	return &Limiter{
		buckets:        make(map[string]*bucket),
		rate:           rate,
		capacity:       capacity,
		expirationTime: expirationTime,
	}
}

func (l *Limiter) cleanup(identity string) {
	l.mu.Lock()
	delete(l.buckets, identity)
	l.mu.Unlock()
}

func (b *bucket) resetTimer() {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.parent.expirationTime, func() {
		b.parent.cleanup(b.identity)
	})
}

func (l *Limiter) getBucket(identity string) *bucket {
	l.mu.RLock()
	b, exists := l.buckets[identity]
	l.mu.RUnlock()

	if exists {
		b.resetTimer()
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// double-check after acquiring the write lock
	b, exists = l.buckets[identity]
	if exists {
		b.resetTimer()
		return b
	}

	b = &bucket{
		tokens:     l.capacity,
		capacity:   l.capacity,
		rate:       l.rate,
		lastRefill: time.Now(),
		identity:   identity,
		parent:     l,
	}
	l.buckets[identity] = b
	b.resetTimer()

	return b
}

func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()

	b.tokens += elapsed * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Allow reports whether a request from identity may proceed.
func (l *Limiter) Allow(identity string) bool {
	return l.getBucket(identity).allow()
}

// Stop cancels all expiration timers.
func (l *Limiter) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range l.buckets {
		if b.timer != nil {
			b.timer.Stop()
		}
	}
}
