// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines internal support code for writing tests.
package testutil

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/creachadair/rendezvous"
)

// ErrInjected is the error reported by an Allocator told to fail.
var ErrInjected = errors.New("injected allocation failure")

// An Allocator is a payload allocator whose failures can be scheduled by a
// test. Its Allocate method is suitable for rendezvous.Options.Allocate. The
// zero value is ready for use and never fails.
type Allocator struct {
	mu    sync.Mutex
	fail  int   // fail this many upcoming calls
	sizes []int // requested sizes, in call order
}

// FailNext causes the next n calls to Allocate to fail.
func (a *Allocator) FailNext(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fail = n
}

// Allocate records the request and returns a buffer of n bytes, or reports
// ErrInjected if a failure is scheduled.
func (a *Allocator) Allocate(n int) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sizes = append(a.sizes, n)
	if a.fail > 0 {
		a.fail--
		return nil, ErrInjected
	}
	return make([]byte, n), nil
}

// Sizes returns the sizes requested so far, in call order.
func (a *Allocator) Sizes() []int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]int(nil), a.sizes...)
}

// Numbered returns the messages for the decimal values start, start+step, ...
// less than limit, each terminated by a NUL byte.
func Numbered(start, step, limit int) [][]byte {
	if step <= 0 {
		panic("non-positive step")
	}
	var out [][]byte
	for i := start; i < limit; i += step {
		out = append(out, append([]byte(strconv.Itoa(i)), 0))
	}
	return out
}

// MustOpen opens a channel with the given options, fails t if that reports
// an error, and arranges for the channel to be closed when t ends.
func MustOpen(t testing.TB, opts *rendezvous.Options) *rendezvous.Channel {
	t.Helper()

	ch, err := rendezvous.Open(opts)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { ch.Close() })
	return ch
}
