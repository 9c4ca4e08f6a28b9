package chanx

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func within(t *testing.T, d time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatal("timed out waiting for operation")
	}
}

// Scenario 1: capacity 2, single producer/consumer, FIFO across 4 values.
func TestSendReceiveFIFO(t *testing.T) {
	c, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	values := []any{"A", "B", "C", "D"}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, v := range values {
			if st, err := c.Send(v, true); st != Success {
				t.Errorf("Send(%v) = %v, %v", v, st, err)
			}
		}
	}()

	got := make([]any, 0, len(values))
	for range values {
		v, st, err := c.Receive(true)
		if st != Success {
			t.Fatalf("Receive() = %v, %v", st, err)
		}
		got = append(got, v)
	}
	wg.Wait()

	for i, want := range values {
		if got[i] != want {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want)
		}
	}
}

// Scenario 2: capacity 1, Close wakes a blocked receiver.
func TestCloseWakesBlockedReceiver(t *testing.T) {
	c, _ := New(1)

	recvDone := make(chan Status, 1)
	go func() {
		_, st, _ := c.Receive(true)
		recvDone <- st
	}()

	time.Sleep(20 * time.Millisecond) // let the receiver block

	st, err := c.Close()
	if st != Success || err != nil {
		t.Fatalf("Close() = %v, %v, want Success, nil", st, err)
	}

	select {
	case got := <-recvDone:
		if got != Closed {
			t.Fatalf("Receive() status = %v, want Closed", got)
		}
	case <-time.After(time.Second):
		t.Fatal("blocked Receive was not woken by Close")
	}
}

func TestNonBlockingSendFullReturnsWouldBlock(t *testing.T) {
	c, _ := New(1)
	if st, _ := c.Send(1, true); st != Success {
		t.Fatalf("priming Send = %v, want Success", st)
	}
	st, err := c.Send(2, false)
	if st != WouldBlock {
		t.Fatalf("Send(full, non-blocking) = %v, want WouldBlock", st)
	}
	if !errors.Is(err, WouldBlock) {
		t.Fatalf("errors.Is(err, WouldBlock) = false")
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d after WouldBlock send, want 1 (buffer unchanged)", c.Len())
	}
}

func TestNonBlockingReceiveEmptyReturnsWouldBlock(t *testing.T) {
	c, _ := New(1)
	_, st, _ := c.Receive(false)
	if st != WouldBlock {
		t.Fatalf("Receive(empty, non-blocking) = %v, want WouldBlock", st)
	}
}

func TestSendReceiveOnClosedChannel(t *testing.T) {
	c, _ := New(1)
	c.Close()

	if st, _ := c.Send(1, true); st != Closed {
		t.Fatalf("Send on closed channel = %v, want Closed", st)
	}
	if _, st, _ := c.Receive(true); st != Closed {
		t.Fatalf("Receive on closed channel = %v, want Closed", st)
	}
}

func TestCloseDiscardsBufferedValues(t *testing.T) {
	c, _ := New(2)
	c.Send("leftover", true)
	c.Close()

	if _, st, _ := c.Receive(true); st != Closed {
		t.Fatalf("Receive after close with buffered value = %v, want Closed", st)
	}
}

func TestCloseOnClosedChannel(t *testing.T) {
	c, _ := New(1)
	c.Close()
	st, err := c.Close()
	if st != Closed {
		t.Fatalf("second Close() = %v, want Closed", st)
	}
	if !errors.Is(err, Closed) {
		t.Fatal("errors.Is(err, Closed) = false")
	}
}

func TestDestroyOnOpenChannelIsError(t *testing.T) {
	c, _ := New(1)
	st, err := c.Destroy()
	if st != DestroyError {
		t.Fatalf("Destroy(open) = %v, want DestroyError", st)
	}
	if !errors.Is(err, DestroyError) {
		t.Fatal("errors.Is(err, DestroyError) = false")
	}
	// Channel must still be usable.
	if st, _ := c.Send(1, true); st != Success {
		t.Fatalf("Send after failed Destroy = %v, want Success", st)
	}
}

func TestDestroyAfterClose(t *testing.T) {
	c, _ := New(1)
	c.Close()
	if st, err := c.Destroy(); st != Success {
		t.Fatalf("Destroy(closed) = %v, %v, want Success", st, err)
	}
}

// Scenario 6: concurrent senders, one receiver, FIFO preserved per sender.
func TestConcurrentSendersPerSenderFIFO(t *testing.T) {
	c, _ := New(4)
	s1 := []any{1, 2, 3}
	s2 := []any{10, 20, 30}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for _, v := range s1 {
			c.Send(v, true)
		}
	}()
	go func() {
		defer wg.Done()
		for _, v := range s2 {
			c.Send(v, true)
		}
	}()

	var got []any
	for i := 0; i < len(s1)+len(s2); i++ {
		v, st, _ := c.Receive(true)
		if st != Success {
			t.Fatalf("Receive() = %v", st)
		}
		got = append(got, v)
	}
	wg.Wait()

	var fromS1, fromS2 []any
	for _, v := range got {
		n := v.(int)
		if n < 10 {
			fromS1 = append(fromS1, v)
		} else {
			fromS2 = append(fromS2, v)
		}
	}
	for i, want := range s1 {
		if fromS1[i] != want {
			t.Fatalf("s1 stream[%d] = %v, want %v", i, fromS1[i], want)
		}
	}
	for i, want := range s2 {
		if fromS2[i] != want {
			t.Fatalf("s2 stream[%d] = %v, want %v", i, fromS2[i], want)
		}
	}
}

func TestNegativeCapacityIsOtherError(t *testing.T) {
	_, err := New(-1)
	if !errors.Is(err, OtherError) {
		t.Fatalf("New(-1) error = %v, want OtherError", err)
	}
}

func TestLenCapInvariant(t *testing.T) {
	c, _ := New(3)
	if c.Cap() != 3 {
		t.Fatalf("Cap() = %d, want 3", c.Cap())
	}
	for i := 0; i < 3; i++ {
		c.Send(i, true)
		if n := c.Len(); n < 0 || n > c.Cap() {
			t.Fatalf("Len() = %d violates 0 <= len <= cap (%d)", n, c.Cap())
		}
	}
}
