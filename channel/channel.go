// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package channel adapts rendezvous channels to a record-oriented Channel
// interface, and provides helpers for fanning records in from many sources.
package channel

import (
	"context"
	"errors"
	"io"

	"github.com/creachadair/rendezvous"
	"golang.org/x/sync/errgroup"
)

// A Channel represents the ability to transmit and receive data records. A
// channel does not interpret the contents of a record.
type Channel interface {
	// Send transmits a record on the channel.
	Send([]byte) error

	// Recv returns the next available record from the channel. If no further
	// records are available, it returns io.EOF.
	Recv() ([]byte, error)

	// Close shuts down the channel, after which no further records may be
	// sent or received.
	Close() error
}

// A ContextSender is a Channel whose sends can be bounded by a context.
type ContextSender interface {
	SendContext(context.Context, []byte) error
}

// Rendezvous adapts ch to the Channel interface. Recv returns a complete copy
// of each record, and reports io.EOF once ch has been closed. Empty records
// cannot be sent on the resulting channel.
//
// The concurrency rules of ch carry over: Send and Recv may be called
// concurrently, but Close must not overlap them.
func Rendezvous(ch *rendezvous.Channel) Channel { return rv{ch: ch} }

type rv struct{ ch *rendezvous.Channel }

// Send implements part of the Channel interface.
func (r rv) Send(msg []byte) error { return r.ch.Send(msg) }

// SendContext implements the ContextSender interface.
func (r rv) SendContext(ctx context.Context, msg []byte) error { return r.ch.SendContext(ctx, msg) }

// Recv implements part of the Channel interface.
func (r rv) Recv() ([]byte, error) {
	msg, err := r.ch.Next(context.Background())
	if errors.Is(err, rendezvous.ErrClosed) {
		return nil, io.EOF
	}
	return msg, err
}

// Close implements part of the Channel interface.
func (r rv) Close() error { return r.ch.Close() }

// FanIn sends the records of each source on ch, using one goroutine per
// source, and waits for all of them to finish. Records from a single source
// are sent in order; records from different sources interleave arbitrarily.
// FanIn does not receive, so the caller must drain ch concurrently.
//
// If a send fails, the remaining sources stop before their next record and
// FanIn returns the first error. If ch is a ContextSender, a pending send also
// gives up when ctx ends.
func FanIn(ctx context.Context, ch Channel, sources ...[][]byte) error {
	send := func(_ context.Context, msg []byte) error { return ch.Send(msg) }
	if cs, ok := ch.(ContextSender); ok {
		send = cs.SendContext
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, src := range sources {
		g.Go(func() error {
			for _, rec := range src {
				if err := ctx.Err(); err != nil {
					return err
				} else if err := send(ctx, rec); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
