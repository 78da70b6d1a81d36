// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rendezvous

import (
	"fmt"
	"io"
	"log"

	"github.com/creachadair/rendezvous/metrics"
)

const logFlags = log.LstdFlags | log.Lshortfile

// Options control the behaviour of a channel created by Open.
// A nil *Options provides sensible defaults.
type Options struct {
	// If not nil, send debug logs to this writer.
	LogWriter io.Writer

	// If not nil, this function is called to obtain storage when the payload
	// buffer must grow to hold a message. It must return a slice of length at
	// least n, or an error. By default, storage is obtained with make.
	Allocate func(n int) ([]byte, error)

	// If positive, the payload buffer is allocated with this capacity when
	// the channel is opened. Otherwise the buffer starts empty.
	InitialCapacity int

	// If positive, the payload buffer never grows beyond this many bytes. A
	// message longer than this fails as if allocation had failed.
	MaxCapacity int

	// If not nil, per-channel statistics are recorded here.
	Metrics *metrics.M
}

func (o *Options) logFunc() func(string, ...any) {
	if o == nil || o.LogWriter == nil {
		return func(string, ...any) {}
	}
	logger := log.New(o.LogWriter, "[rendezvous.Channel] ", logFlags)
	return func(msg string, args ...any) { logger.Output(2, fmt.Sprintf(msg, args...)) }
}

func (o *Options) allocator() func(int) ([]byte, error) {
	if o == nil || o.Allocate == nil {
		return func(n int) ([]byte, error) { return make([]byte, n), nil }
	}
	return o.Allocate
}

func (o *Options) initialCapacity() int {
	if o == nil || o.InitialCapacity < 0 {
		return 0
	}
	return o.InitialCapacity
}

func (o *Options) maxCapacity() int {
	if o == nil || o.MaxCapacity < 0 {
		return 0
	}
	return o.MaxCapacity
}

func (o *Options) metrics() *metrics.M {
	if o == nil {
		return nil
	}
	return o.Metrics
}
