// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rendezvous

import (
	"context"
	"sync/atomic"

	"github.com/creachadair/rendezvous/code"
	"github.com/creachadair/rendezvous/metrics"
)

// A Channel hands discrete byte messages from writers to readers through a
// single shared payload buffer. Each Send blocks until a reader is present
// and the previous message has been consumed; each Receive blocks until a
// writer has stored a complete message. The methods of a Channel are safe for
// concurrent use by multiple goroutines, except Close.
type Channel struct {
	writerReady *signal // a writer wants to hand off a message
	readerReady *signal // a reader wants to accept a message
	bufferFree  *signal // permit to write buf (initially 1)
	dataReady   *signal // buf holds a message not yet read

	buf payload // guarded by bufferFree and dataReady

	alloc   func(int) ([]byte, error)
	ceiling int
	log     func(string, ...any)
	m       *metrics.M
	closed  atomic.Bool
}

// Open constructs a new empty channel. If the channel or its initial payload
// buffer cannot be constructed, Open reports an error matching
// ErrAllocationFailed. A nil *Options provides defaults.
func Open(opts *Options) (*Channel, error) {
	c := &Channel{
		alloc:   opts.allocator(),
		ceiling: opts.maxCapacity(),
		log:     opts.logFunc(),
		m:       opts.metrics(),
	}
	for _, s := range []struct {
		sig  **signal
		init int64
	}{
		{&c.writerReady, 0},
		{&c.readerReady, 0},
		{&c.bufferFree, 1},
		{&c.dataReady, 0},
	} {
		sig, err := newSignal(s.init)
		if err != nil {
			return nil, errorf(code.AllocationFailed, err, "initializing signals")
		}
		*s.sig = sig
	}

	if n := opts.initialCapacity(); n > 0 {
		if c.ceiling > 0 && n > c.ceiling {
			n = c.ceiling
		}
		buf, err := c.alloc(n)
		if err == nil && len(buf) < n {
			err = errShortAlloc(len(buf), n)
		}
		if err != nil {
			return nil, errorf(code.AllocationFailed, err, "allocating %d-byte payload", n)
		}
		c.buf.data = buf
	}
	channelsOpenGauge.Add(1)
	c.log("Channel opened (capacity %d, limit %d)", c.buf.capacity(), c.ceiling)
	return c, nil
}

// Send transmits msg to a reader, blocking until a reader is present and the
// channel's buffer is free. Send does not retain msg after it returns.
//
// Send reports ErrInvalidArgument without blocking if msg is empty. If the
// buffer cannot grow to hold msg, the message is lost and Send reports
// ErrOutOfResources; the reader it was paired with is released with the same
// error and the channel remains usable.
func (c *Channel) Send(msg []byte) error { return c.SendContext(context.Background(), msg) }

// SendContext behaves as Send, but gives up waiting for a reader if ctx ends
// first. Once a reader has committed to the exchange, SendContext completes it
// regardless of ctx. A withdrawn send leaves the channel as if it had never
// been called, and reports an error whose code is code.Cancelled or
// code.DeadlineExceeded.
func (c *Channel) SendContext(ctx context.Context, msg []byte) error {
	if len(msg) == 0 {
		sendErrorsCount.Add(1)
		return errorf(code.InvalidArgument, nil, "empty message")
	} else if c.closed.Load() {
		sendErrorsCount.Add(1)
		return errorf(code.Closed, nil, "send on closed channel")
	} else if err := ctx.Err(); err != nil {
		sendErrorsCount.Add(1)
		return errorf(code.FromError(err), err, "send")
	}

	if err := c.handshake(ctx, c.writerReady, c.readerReady); err != nil {
		sendErrorsCount.Add(1)
		return errorf(code.FromError(err), err, "send")
	}

	// The exchange is committed: a reader will wait on dataReady, so every
	// path from here must post it exactly once.
	c.bufferFree.wait(context.Background())
	grew, err := c.buf.store(msg, c.ceiling, c.alloc)
	capacity := c.buf.capacity()
	c.dataReady.post()

	if err != nil {
		sendErrorsCount.Add(1)
		c.m.Count("rendezvous.errors", 1)
		c.log("Storing %d-byte message failed: %v", len(msg), err)
		return errorf(code.OutOfResources, err, "storing %d-byte message", len(msg))
	}
	if grew {
		c.m.Count("rendezvous.grow", 1)
		c.m.SetMaxValue("rendezvous.capacity", int64(capacity))
		c.log("Payload grew to %d bytes", capacity)
	}
	messagesSentCount.Add(1)
	bytesSentCount.Add(int64(len(msg)))
	c.m.Count("rendezvous.sent", 1)
	c.m.CountAndSetMax("rendezvous.bytes_sent", int64(len(msg)))
	return nil
}

// Receive copies the next message into dst, blocking until a writer has
// delivered one, and reports the number of bytes copied. If dst is shorter
// than the message, only len(dst) bytes are copied and the remainder is
// discarded.
//
// Receive reports ErrInvalidArgument without blocking if len(dst) == 0. If
// the writer it was paired with failed to store its message, Receive reports
// ErrOutOfResources.
func (c *Channel) Receive(dst []byte) (int, error) {
	return c.ReceiveContext(context.Background(), dst)
}

// ReceiveContext behaves as Receive, but gives up waiting for a writer if ctx
// ends first, under the same rules as SendContext.
func (c *Channel) ReceiveContext(ctx context.Context, dst []byte) (int, error) {
	if len(dst) == 0 {
		receiveErrorsCount.Add(1)
		return 0, errorf(code.InvalidArgument, nil, "zero-length destination")
	}
	var nr int
	size, err := c.accept(ctx, func(p *payload) { nr = p.load(dst) })
	if err != nil {
		return 0, err
	}
	if nr < size {
		truncatedReceivesCount.Add(1)
		c.m.Count("rendezvous.truncated", 1)
	}
	c.recordReceive(nr)
	return nr, nil
}

// Next receives the next message and returns a fresh copy of all of it. It
// blocks as ReceiveContext does, but never truncates.
func (c *Channel) Next(ctx context.Context) ([]byte, error) {
	var out []byte
	if _, err := c.accept(ctx, func(p *payload) { out = p.clone() }); err != nil {
		return nil, err
	}
	c.recordReceive(len(out))
	return out, nil
}

// Close releases the resources held by c. Operations that begin after Close
// report ErrClosed. Calling Close more than once is harmless.
//
// Close does not unblock goroutines already waiting inside Send or Receive.
// The caller must ensure no operation is in flight when Close is called; the
// behaviour of an operation that overlaps Close is undefined.
func (c *Channel) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.buf.release()
	channelsOpenGauge.Add(-1)
	c.log("Channel closed")
	return nil
}

// handshake posts mine and waits for theirs. If ctx ends before theirs is
// available, handshake withdraws its own post and returns the context error.
// If the post was already consumed by a counterpart, that counterpart is
// committed to the exchange, so handshake waits for theirs without ctx.
func (c *Channel) handshake(ctx context.Context, mine, theirs *signal) error {
	mine.post()
	err := theirs.wait(ctx)
	if err == nil {
		return nil
	}
	if mine.tryWait() {
		handshakesWithdrawCount.Add(1)
		c.log("Handshake withdrawn: %v", err)
		return err
	}
	theirs.wait(context.Background())
	return nil
}

// accept runs the reader side of an exchange, calling take with exclusive
// access to the payload when it holds a message. It reports the length of the
// message that was pending.
func (c *Channel) accept(ctx context.Context, take func(*payload)) (int, error) {
	if c.closed.Load() {
		receiveErrorsCount.Add(1)
		return 0, errorf(code.Closed, nil, "receive on closed channel")
	} else if err := ctx.Err(); err != nil {
		receiveErrorsCount.Add(1)
		return 0, errorf(code.FromError(err), err, "receive")
	}

	if err := c.handshake(ctx, c.readerReady, c.writerReady); err != nil {
		receiveErrorsCount.Add(1)
		return 0, errorf(code.FromError(err), err, "receive")
	}

	c.dataReady.wait(context.Background())
	size := c.buf.n
	if size > 0 {
		take(&c.buf)
	}
	c.bufferFree.post()

	if size == 0 {
		receiveErrorsCount.Add(1)
		c.m.Count("rendezvous.errors", 1)
		return 0, errorf(code.OutOfResources, nil, "no message to transfer")
	}
	return size, nil
}

func (c *Channel) recordReceive(n int) {
	messagesReceivedCount.Add(1)
	bytesReceivedCount.Add(int64(n))
	c.m.Count("rendezvous.received", 1)
	c.m.Count("rendezvous.bytes_received", int64(n))
}
