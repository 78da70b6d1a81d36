// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package metrics defines a concurrently-accessible metrics collector for
// rendezvous channels.
//
// A *metrics.M tracks named integer counters and maximum values. Names are not
// interpreted by the collector. The rendezvous package records under names
// with the prefix "rendezvous.".
package metrics

import "sync"

// An M collects counters and maximum value trackers. A nil *M is valid, and
// discards all metrics. The methods of an *M are safe for concurrent use by
// multiple goroutines.
type M struct {
	mu      sync.Mutex
	counter map[string]int64
	maxVal  map[string]int64
}

// New creates a new, empty metrics collector.
func New() *M {
	return &M{counter: make(map[string]int64), maxVal: make(map[string]int64)}
}

// Count adds n to the counter named, defining it if necessary.
func (m *M) Count(name string, n int64) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter[name] += n
}

// SetMaxValue sets the maximum value metric named to the greater of n and its
// current value, defining the value if it does not already exist.
func (m *M) SetMaxValue(name string, n int64) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if n > m.maxVal[name] {
		m.maxVal[name] = n
	}
}

// CountAndSetMax adds n to the counter named, and updates the max value
// tracker of the same name in a single step.
func (m *M) CountAndSetMax(name string, n int64) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if n > m.maxVal[name] {
		m.maxVal[name] = n
	}
	m.counter[name] += n
}

// Counter reports the current value of the counter named, or 0.
func (m *M) Counter(name string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counter[name]
}

// MaxValue reports the current value of the max tracker named, or 0.
func (m *M) MaxValue(name string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxVal[name]
}

// Snapshot copies an atomic snapshot of the counters and max value trackers
// into the provided non-nil maps.
func (m *M) Snapshot(counters, maxValues map[string]int64) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, val := range m.counter {
		counters[name] = val
	}
	for name, val := range m.maxVal {
		maxValues[name] = val
	}
}
