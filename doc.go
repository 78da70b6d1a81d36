// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

/*
Package rendezvous implements a synchronous channel that hands discrete,
variable-length byte messages from concurrent writers to a reader.

# Channels

A *Channel holds at most one message at a time, in a single payload buffer
that it owns. To create a channel, call Open:

	ch, err := rendezvous.Open(nil) // nil for default options
	if err != nil {
	   log.Fatalf("Open: %v", err)
	}
	defer ch.Close()

Writers call Send, and a reader calls Receive with a buffer to fill:

	go func() {
	   if err := ch.Send([]byte("hello")); err != nil {
	      log.Printf("Send: %v", err)
	   }
	}()

	buf := make([]byte, 32)
	n, err := ch.Receive(buf)
	if err != nil {
	   log.Fatalf("Receive: %v", err)
	}
	fmt.Println(string(buf[:n]))

Both operations block. A Send does not complete until a reader is present
and the previous message has been consumed, so the channel never holds more
than one pending message and a fast writer is held back by a slow reader.

# Ordering

Messages from a single writer are delivered in the order sent. Messages from
different writers are delivered in no particular order. A reader never sees
part of a message, nor two messages merged together. If the receive buffer is
shorter than the message, the message is truncated to fit and the rest is
discarded; use Next to receive a full copy instead.

# Errors

Errors reported by channel operations have concrete type *Error, and carry a
code.Code value. They can be matched with errors.Is against ErrInvalidArgument,
ErrOutOfResources, ErrAllocationFailed, and ErrClosed. A failed operation never
leaves the channel deadlocked for other callers.

# Cancellation

Send and Receive wait indefinitely. SendContext and ReceiveContext accept a
context that bounds only the wait for a counterpart. Once a writer and a
reader have committed to an exchange, the exchange runs to completion.

# Lifecycle

Close releases the payload buffer. It does not wake goroutines that are
blocked in Send or Receive; the caller must ensure that no operation is in
flight when the channel is closed.
*/
package rendezvous
