package ratelimit

import (
	"context"
	"sync"
	"time"
)

// sweep the whole table once it tracks this many keys
const sweepThreshold = 10000

// Memory is a per-process sliding-window limiter.
type Memory struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu   sync.Mutex
	hits map[string][]time.Time
}

func NewMemory(max int, window time.Duration) *Memory {
	return &Memory{
		max:    max,
		window: window,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
}

func (m *Memory) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	cutoff := now.Add(-m.window)

	if len(m.hits) >= sweepThreshold {
		for k, ts := range m.hits {
			if len(prune(ts, cutoff)) == 0 {
				delete(m.hits, k)
			}
		}
	}

	recent := prune(m.hits[key], cutoff)
	if len(recent) >= m.max {
		m.hits[key] = recent
		return false, nil
	}

	m.hits[key] = append(recent, now)
	return true, nil
}

// prune drops timestamps at or before cutoff. ts is in ascending order.
func prune(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	return ts[i:]
}

var _ Limiter = (*Memory)(nil)

func (m *Memory) Window() time.Duration { return m.window }
