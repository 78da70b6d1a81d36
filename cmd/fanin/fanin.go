// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program fanin exercises a rendezvous channel with many concurrent writers
// and a single reader, printing messages in the order they arrive.
//
// Usage:
//
//	fanin [options]
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/creachadair/rendezvous"
	"github.com/creachadair/rendezvous/metrics"
	"golang.org/x/sync/errgroup"
)

var (
	numWriters  = flag.Int("writers", 10, "Number of concurrent writers")
	numMessages = flag.Int("count", 100, "Total number of messages to send")
	bufSize     = flag.Int("buf", 32, "Size of the receive buffer in bytes")
	maxSize     = flag.Int("max-size", 0, "Payload capacity limit in bytes (0 for no limit)")
	sendTimeout = flag.Duration("timeout", 0, "Timeout on each send before retrying (0 for no timeout)")
	withLogging = flag.Bool("v", false, "Enable verbose logging")
	doStats     = flag.Bool("stats", false, "Print channel statistics to stderr")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: %s [options]

Start -writers goroutines that share a single rendezvous channel. Writer i
sends the decimal numbers i, i+W, i+2W, ... below -count, each terminated by
a NUL byte. The main goroutine receives -count messages into a buffer of -buf
bytes and prints each one on its own line, in arrival order.

Options:
`, filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	if *numWriters < 1 || *numMessages < 0 || *bufSize < 1 {
		log.Fatal("The -writers and -buf values must be positive, and -count must not be negative")
	}

	stats := metrics.New()
	opts := &rendezvous.Options{MaxCapacity: *maxSize, Metrics: stats}
	if *withLogging {
		opts.LogWriter = os.Stderr
	}
	ch, err := rendezvous.Open(opts)
	if err != nil {
		log.Fatalf("Opening channel: %v", err)
	}

	start := time.Now()
	var g errgroup.Group
	for i := 0; i < *numWriters; i++ {
		g.Go(func() error { return runWriter(ch, i) })
	}

	out := bufio.NewWriter(os.Stdout)
	buf := make([]byte, *bufSize)
	for i := 0; i < *numMessages; i++ {
		n, err := ch.Receive(buf)
		if err != nil {
			log.Fatalf("Receive %d: %v", i+1, err)
		}
		fmt.Fprintf(out, "%s\n", bytes.TrimRight(buf[:n], "\x00"))
	}
	out.Flush()

	if err := g.Wait(); err != nil {
		log.Fatalf("Writer failed: %v", err)
	}
	elapsed := time.Since(start)
	ch.Close()

	if *doStats {
		printStats(stats, elapsed)
	}
}

// runWriter sends the messages assigned to writer id, retrying a send that
// gives up after -timeout.
func runWriter(ch *rendezvous.Channel, id int) error {
	for v := id; v < *numMessages; v += *numWriters {
		msg := append([]byte(strconv.Itoa(v)), 0)
		for {
			if err := send(ch, msg); err == nil {
				break
			} else if !errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("writer %d: send %d: %w", id, v, err)
			}
		}
	}
	return nil
}

func send(ch *rendezvous.Channel, msg []byte) error {
	if *sendTimeout <= 0 {
		return ch.Send(msg)
	}
	ctx, cancel := context.WithTimeout(context.Background(), *sendTimeout)
	defer cancel()
	return ch.SendContext(ctx, msg)
}

func printStats(m *metrics.M, elapsed time.Duration) {
	counters := make(map[string]int64)
	maxValues := make(map[string]int64)
	m.Snapshot(counters, maxValues)

	fmt.Fprintf(os.Stderr, "elapsed: %v\n", elapsed)
	for _, name := range sortedKeys(counters) {
		fmt.Fprintf(os.Stderr, "counter %-28s %d\n", name, counters[name])
	}
	for _, name := range sortedKeys(maxValues) {
		fmt.Fprintf(os.Stderr, "max     %-28s %d\n", name, maxValues[name])
	}
	fmt.Fprintf(os.Stderr, "expvar  %s\n", rendezvous.ChannelMetrics().String())
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
