package code

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestRegistration(t *testing.T) {
	const message = "fun for the whole family"
	c := Register(-100, message)
	if got := c.String(); got != message {
		t.Errorf("Register(-100): got %q, want %q", got, message)
	} else if c != -100 {
		t.Errorf("Register(-100): got %d instead", c)
	}
}

func TestRegistrationError(t *testing.T) {
	for _, v := range []int32{int32(OutOfResources), 50} {
		func() {
			defer func() {
				if p := recover(); p != nil {
					t.Logf("Register correctly panicked: %v", p)
				} else {
					t.Errorf("Register should have panicked on input %d, but did not", v)
				}
			}()
			Register(v, "bogus")
		}()
	}
}

type testCoder Code

func (t testCoder) Code() Code  { return Code(t) }
func (testCoder) Error() string { return "bogus" }

func TestFromError(t *testing.T) {
	tests := []struct {
		input error
		want  Code
	}{
		{nil, NoError},
		{testCoder(InvalidArgument), InvalidArgument},
		{testCoder(OutOfResources), OutOfResources},
		{fmt.Errorf("wrapped: %w", Closed.Err()), Closed},
		{context.Canceled, Cancelled},
		{fmt.Errorf("wrapped cancellation: %w", context.Canceled), Cancelled},
		{context.DeadlineExceeded, DeadlineExceeded},
		{errors.New("other"), SystemError},
		{io.EOF, SystemError},
	}
	for _, test := range tests {
		if got := FromError(test.input); got != test.want {
			t.Errorf("FromError(%v): got %v, want %v", test.input, got, test.want)
		}
	}
}

func TestErr(t *testing.T) {
	if err := NoError.Err(); err != nil {
		t.Errorf("NoError.Err(): got %v, want nil", err)
	}
	for _, c := range []Code{InvalidArgument, OutOfResources, AllocationFailed, Closed, 17} {
		err := c.Err()
		if got, want := err.Error(), c.String(); got != want {
			t.Errorf("Code(%d).Err(): got %q, want %q", c, got, want)
		}
		if !errors.Is(fmt.Errorf("op: %w", err), c.Err()) {
			t.Errorf("Code(%d): wrapped error does not match its code", c)
		}
		if errors.Is(err, Code(c+100).Err()) {
			t.Errorf("Code(%d): matched unrelated code %d", c, c+100)
		}
	}
}
