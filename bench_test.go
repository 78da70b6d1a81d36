// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rendezvous_test

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/creachadair/rendezvous"
)

func BenchmarkRoundTrip(b *testing.B) {
	// Benchmark a single writer handing messages of various sizes to a single
	// reader, as a proxy for the overhead of the handshake.
	for _, size := range []int{1, 64, 4096} {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			ch, err := rendezvous.Open(nil)
			if err != nil {
				b.Fatalf("Open: %v", err)
			}
			defer ch.Close()

			msg := bytes.Repeat([]byte("x"), size)
			buf := make([]byte, size)
			go func() {
				for i := 0; i < b.N; i++ {
					if err := ch.Send(msg); err != nil {
						b.Errorf("Send: %v", err)
						return
					}
				}
			}()

			b.SetBytes(int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := ch.Receive(buf); err != nil {
					b.Fatalf("Receive: %v", err)
				}
			}
		})
	}
}

func BenchmarkFanIn(b *testing.B) {
	ch, err := rendezvous.Open(nil)
	if err != nil {
		b.Fatalf("Open: %v", err)
	}
	defer ch.Close()

	msg := []byte("fan-in")
	buf := make([]byte, 16)
	b.RunParallel(func(pb *testing.PB) {
		// Each iteration starts a writer and receives one message, which may
		// come from any goroutine's writer.
		for pb.Next() {
			go ch.Send(msg)
			if _, err := ch.Receive(buf); err != nil {
				b.Errorf("Receive: %v", err)
				return
			}
		}
	})
}
