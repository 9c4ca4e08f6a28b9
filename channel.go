package chanx

import (
	"sync"

	"github.com/gopherlabs/chanx/internal/ringbuf"
	"github.com/gopherlabs/chanx/internal/token"
	"github.com/gopherlabs/chanx/internal/waitset"
)

// Channel is a bounded, typed-by-convention-only (payloads are opaque
// interface{} handles) multi-producer/multi-consumer channel. It binds
// together a bounded buffer, a monotonic closed flag, and two
// condition variables with two waiter registries — see the channel
// core design in SPEC_FULL.md §4.1.
//
// A Channel must be created with New and must be closed before it is
// discarded; Destroy enforces that structurally (it is an error to
// Destroy an open Channel, matching the teacher's panic-on-double-
// close discipline in runtime/chan.go, minus the panic: here it is a
// reported Status rather than a crash, since chanx is a library, not
// the runtime).
type Channel struct {
	capacity int

	mu       sync.Mutex // guards buf and closed; core-mutex in the spec
	sendCond *sync.Cond // associated with mu; signaled when buffer has room
	recvCond *sync.Cond // associated with mu; signaled when buffer is non-empty
	buf      *ringbuf.Buffer
	closed   bool

	sendMu       sync.Mutex   // leaf lock guarding sendRegistry only
	sendRegistry *waitset.Set // select callers waiting to send

	recvMu       sync.Mutex   // leaf lock guarding recvRegistry only
	recvRegistry *waitset.Set // select callers waiting to receive
}

// New creates a Channel with the given capacity. Capacity must be
// non-negative; zero is accepted (see DESIGN.md / spec.md §9,
// open question 2 — every send on a zero-capacity channel blocks until
// Close, there is no rendezvous fast path).
func New(capacity int) (*Channel, error) {
	if capacity < 0 {
		return nil, statusError("create", OtherError, 0)
	}
	c := &Channel{
		capacity:     capacity,
		buf:          ringbuf.New(capacity),
		sendRegistry: waitset.New(),
		recvRegistry: waitset.New(),
	}
	c.sendCond = sync.NewCond(&c.mu)
	c.recvCond = sync.NewCond(&c.mu)
	return c, nil
}

// Cap returns the channel's fixed capacity.
func (c *Channel) Cap() int {
	return c.capacity
}

// Len returns the number of values currently buffered. It is a
// snapshot; by the time the caller observes it, it may already be
// stale.
func (c *Channel) Len() int {
	c.mu.Lock()
	n := c.buf.Size()
	c.mu.Unlock()
	return n
}

// Send deposits value into the channel. In blocking mode, Send waits
// until there is room (or the channel closes). In non-blocking mode,
// Send returns WouldBlock immediately if the buffer is full, or if the
// core mutex is currently held by another goroutine (the chosen
// resolution of spec.md §9 open question 1: the non-blocking path uses
// TryLock rather than an unconditional lock, since Go's sync.Mutex
// exposes TryLock directly and a failed TryLock is a genuine
// WouldBlock rather than the source's not-actually-failing blocking
// acquire).
func (c *Channel) Send(value any, blocking bool) (Status, error) {
	if !blocking {
		if !c.mu.TryLock() {
			return WouldBlock, statusError("send", WouldBlock, 0)
		}
	} else {
		c.mu.Lock()
	}

	if c.closed {
		c.mu.Unlock()
		return Closed, statusError("send", Closed, 0)
	}

	for c.buf.Size() == c.capacity {
		if !blocking {
			c.mu.Unlock()
			return WouldBlock, statusError("send", WouldBlock, 0)
		}
		c.sendCond.Wait()
		if c.closed {
			c.mu.Unlock()
			return Closed, statusError("send", Closed, 0)
		}
	}

	c.buf.Push(value)
	c.recvCond.Signal()
	c.mu.Unlock()

	c.postRecvWaiters()
	debugLogf("send: posted %d recv waiter(s)", c.recvRegistryLen())
	return Success, nil
}

// Receive removes and returns the oldest value in the channel. In
// blocking mode, Receive waits until a value is available (or the
// channel closes). In non-blocking mode, Receive returns WouldBlock
// immediately if the buffer is empty or the core mutex is currently
// held.
func (c *Channel) Receive(blocking bool) (any, Status, error) {
	if !blocking {
		if !c.mu.TryLock() {
			return nil, WouldBlock, statusError("receive", WouldBlock, 0)
		}
	} else {
		c.mu.Lock()
	}

	if c.closed {
		c.mu.Unlock()
		return nil, Closed, statusError("receive", Closed, 0)
	}

	for c.buf.Size() == 0 {
		if !blocking {
			c.mu.Unlock()
			return nil, WouldBlock, statusError("receive", WouldBlock, 0)
		}
		c.recvCond.Wait()
		if c.closed {
			c.mu.Unlock()
			return nil, Closed, statusError("receive", Closed, 0)
		}
	}

	v := c.buf.Pop()
	c.sendCond.Signal()
	c.mu.Unlock()

	c.postSendWaiters()
	debugLogf("receive: posted %d send waiter(s)", c.sendRegistryLen())
	return v, Success, nil
}

// Close transitions the channel to closed. It wakes every blocked
// Send and Receive (via Broadcast on both condition variables) and
// every select call registered in either waiter registry (via Post on
// every token in both). Close does not drain or otherwise preserve
// buffered values: a closed channel rejects both Send and Receive
// regardless of residual buffer contents (spec.md §4.1, §9 open
// question 3 — this spec follows the observed "discard on close"
// behavior rather than a "drain then close" alternative).
func (c *Channel) Close() (Status, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Closed, statusError("close", Closed, 0)
	}
	c.closed = true
	c.sendCond.Broadcast()
	c.recvCond.Broadcast()
	c.mu.Unlock()

	c.postSendWaiters()
	c.postRecvWaiters()
	return Success, nil
}

// IsClosed reports whether the channel has been closed. It is a
// snapshot, offered for diagnostics; it must not be used to decide
// whether a subsequent Send/Receive will succeed, since the flag is
// monotonic but the channel may close between the check and the call.
func (c *Channel) IsClosed() bool {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	return closed
}

// Destroy releases the channel's resources. It requires the channel
// to already be closed; calling Destroy on an open channel is a
// reported DestroyError and leaves the channel untouched and still
// usable, matching spec.md §4.1/§7/§8 exactly.
func (c *Channel) Destroy() (Status, error) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if !closed {
		return DestroyError, statusError("destroy", DestroyError, 0)
	}
	// Nothing beyond the Go runtime's own GC is required to free the
	// channel's resources; Destroy exists as an explicit lifecycle
	// boundary (mirroring the source's manual free()) rather than a
	// manual deallocation step. Registries must already be empty by
	// the time a channel is legitimately destroyed: every select call
	// deregisters its token before returning (§4.2 phase 3, invariant
	// 6), including a Select that registers on an already-closed
	// channel and immediately completes with Closed (see select.go).
	return Success, nil
}

// postSendWaiters posts every token currently registered in the
// send-registry. It is always called after mu has been released, so
// that a woken select call can re-enter Send/Receive without
// contending against the signaling goroutine (spec.md §4.1 ordering
// rationale).
func (c *Channel) postSendWaiters() {
	c.sendMu.Lock()
	c.sendRegistry.ForEach(func(tok any) { tok.(*token.Token).Post() })
	c.sendMu.Unlock()
}

func (c *Channel) postRecvWaiters() {
	c.recvMu.Lock()
	c.recvRegistry.ForEach(func(tok any) { tok.(*token.Token).Post() })
	c.recvMu.Unlock()
}

func (c *Channel) sendRegistryLen() int {
	c.sendMu.Lock()
	n := c.sendRegistry.Len()
	c.sendMu.Unlock()
	return n
}

func (c *Channel) recvRegistryLen() int {
	c.recvMu.Lock()
	n := c.recvRegistry.Len()
	c.recvMu.Unlock()
	return n
}

// registerSend inserts tok into the send-registry iff not already
// present. Registry mutexes are leaves in the lock order (§5): no
// other lock may be held by the caller when calling this.
func (c *Channel) registerSend(tok *token.Token) {
	c.sendMu.Lock()
	c.sendRegistry.Insert(tok)
	c.sendMu.Unlock()
}

func (c *Channel) deregisterSend(tok *token.Token) {
	c.sendMu.Lock()
	c.sendRegistry.Remove(tok)
	c.sendMu.Unlock()
}

func (c *Channel) registerRecv(tok *token.Token) {
	c.recvMu.Lock()
	c.recvRegistry.Insert(tok)
	c.recvMu.Unlock()
}

func (c *Channel) deregisterRecv(tok *token.Token) {
	c.recvMu.Lock()
	c.recvRegistry.Remove(tok)
	c.recvMu.Unlock()
}
