// Package token implements the wakeup token used by Select.
//
// A Token is a counting semaphore, initialized to zero, created on the
// stack of a single select call. It targets the same narrow goal the
// runtime's own asynchronous semaphore targets (see runtime/sema.go in
// the standard library): a sleep/wakeup pairing that is safe even when
// the wakeup happens to arrive before the sleep. Unlike the runtime's
// semaphore, a Token is not addressed by a memory location shared
// across unrelated call sites — it is borrowed directly by pointer
// into exactly the registries its owning select call registered with.
package token

import "sync"

// Token is a private, per-select-call counting semaphore. A Token
// starts at count 0. Create Tokens with New: the zero value has no
// condition variable and is not ready to use.
//
// A Token must not be copied after first use.
type Token struct {
	mu    sync.Mutex
	cond  *sync.Cond
	count int
}

// New returns a Token ready to be posted to and waited on.
func New() *Token {
	t := &Token{}
	t.cond = sync.NewCond(&t.mu)
	return t
}

// Post increments the token's count by one and wakes at most one
// waiter blocked in Wait. Post never blocks. It is safe to call Post
// before any call to Wait; the post is not lost (the motivating
// requirement for a counting semaphore rather than a bare condition
// variable).
func (t *Token) Post() {
	t.mu.Lock()
	t.count++
	t.mu.Unlock()
	t.cond.Signal()
}

// Wait blocks until the token's count is greater than zero, then
// decrements it by one and returns. A single Post pairs with exactly
// one Wait.
func (t *Token) Wait() {
	t.mu.Lock()
	for t.count == 0 {
		t.cond.Wait()
	}
	t.count--
	t.mu.Unlock()
}
