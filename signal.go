// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rendezvous

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/semaphore"
)

// signalLimit bounds the count a signal can hold. A weighted semaphore of this
// size with all but n units held behaves as a counting semaphore with count n.
const signalLimit = math.MaxInt64

// A signal is a counting semaphore used purely for signaling: post increments
// the count without blocking, and wait blocks until the count is positive and
// then decrements it. Waiters are served in FIFO order.
type signal struct {
	sem *semaphore.Weighted
}

func newSignal(n int64) (*signal, error) {
	if n < 0 {
		return nil, errors.New("negative initial count")
	}
	sem := semaphore.NewWeighted(signalLimit)
	if !sem.TryAcquire(signalLimit - n) {
		return nil, errors.New("cannot reserve signal count")
	}
	return &signal{sem: sem}, nil
}

// post increments the count, releasing one waiter if any are blocked.
func (s *signal) post() { s.sem.Release(1) }

// wait blocks until the count is positive or ctx ends. It reports nil if it
// decremented the count; otherwise the count is unchanged.
func (s *signal) wait(ctx context.Context) error { return s.sem.Acquire(ctx, 1) }

// tryWait decrements the count if it is positive, without blocking.
func (s *signal) tryWait() bool { return s.sem.TryAcquire(1) }
