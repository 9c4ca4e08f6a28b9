package token

import (
	"sync"
	"testing"
	"time"
)

func TestPostBeforeWaitIsNotLost(t *testing.T) {
	tok := New()
	tok.Post()

	done := make(chan struct{})
	go func() {
		tok.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after a Post that happened before it")
	}
}

func TestWaitBlocksUntilPost(t *testing.T) {
	tok := New()
	done := make(chan struct{})
	go func() {
		tok.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before any Post")
	case <-time.After(20 * time.Millisecond):
	}

	tok.Post()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Post")
	}
}

func TestCountingAcrossMultiplePosts(t *testing.T) {
	tok := New()
	const n = 5
	for i := 0; i < n; i++ {
		tok.Post()
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			tok.Wait()
		}()
	}

	waited := make(chan struct{})
	go func() {
		wg.Wait()
		close(waited)
	}()

	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("not every Wait returned for its matching Post")
	}
}
