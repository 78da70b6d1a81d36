// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rendezvous

import (
	"fmt"
	"math"
)

// A payload is the single reusable buffer holding the in-flight message.
// Access is serialized by the bufferFree and dataReady signals of the channel
// that owns it; a payload is never shared outside that critical section.
type payload struct {
	data []byte // len(data) is the capacity
	n    int    // bytes of data currently valid, n <= len(data)
}

func (p *payload) capacity() int { return len(p.data) }

// growTarget returns the capacity to request for a message of n bytes, given
// an optional ceiling (0 means none).
func growTarget(n, ceiling int) int {
	want := 2 * n
	if n > math.MaxInt/2 {
		want = n
	}
	if ceiling > 0 && want > ceiling {
		want = ceiling
	}
	return want
}

// store copies msg into p, growing the storage with alloc if it is too small.
// The previous contents are discarded when growing. If growth fails, p is
// left holding no message and the error is returned.
func (p *payload) store(msg []byte, ceiling int, alloc func(int) ([]byte, error)) (grew bool, err error) {
	if len(msg) > p.capacity() {
		if ceiling > 0 && len(msg) > ceiling {
			p.n = 0
			return false, fmt.Errorf("message of %d bytes exceeds capacity limit %d", len(msg), ceiling)
		}
		want := growTarget(len(msg), ceiling)
		buf, err := alloc(want)
		if err != nil {
			p.n = 0
			return false, err
		} else if len(buf) < want {
			p.n = 0
			return false, errShortAlloc(len(buf), want)
		}
		p.data = buf
		grew = true
	}
	p.n = copy(p.data, msg)
	return grew, nil
}

// load copies up to len(dst) bytes of the current message into dst and
// reports how many were copied.
func (p *payload) load(dst []byte) int { return copy(dst, p.data[:p.n]) }

// clone returns a fresh copy of the whole current message.
func (p *payload) clone() []byte {
	if p.n == 0 {
		return nil
	}
	out := make([]byte, p.n)
	copy(out, p.data[:p.n])
	return out
}

// release drops the storage held by p.
func (p *payload) release() { p.data, p.n = nil, 0 }

func errShortAlloc(got, want int) error {
	return fmt.Errorf("allocator returned %d bytes, want %d", got, want)
}
