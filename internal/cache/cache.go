// Package cache memoizes composed responses so identical input yields
// identical reply text for the lifetime of the cache.
package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/mindhaven/mindhaven/internal/models"
)

// Key identifies one composed response: the matched category (empty when
// none), the classified mood, and a content hash of the raw message.
type Key struct {
	Category string
	Mood     models.Mood
	TextHash string
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s", k.Category, k.Mood, k.TextHash)
}

// ResponseCache returns the stored response for a key, or computes,
// stores, and returns one. A hit must return the stored string unchanged
// so repeated identical input gets a stable reply.
type ResponseCache interface {
	GetOrCompute(ctx context.Context, key Key, compute func() string) string
}

// Memory is the in-process backend. Entries live for the process
// lifetime; unbounded growth is an accepted tradeoff. Concurrent misses
// on one key may both compute; last write wins.
type Memory struct {
	mu      sync.Mutex
	entries map[string]string
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) GetOrCompute(_ context.Context, key Key, compute func() string) string {
	k := key.String()

	m.mu.Lock()
	if response, ok := m.entries[k]; ok {
		m.mu.Unlock()
		return response
	}
	m.mu.Unlock()

	response := compute()

	m.mu.Lock()
	m.entries[k] = response
	m.mu.Unlock()
	return response
}

// Len reports the number of cached responses.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
