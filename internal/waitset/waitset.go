// Package waitset implements the Waiter Registry consumed by the
// channel core and the select operator: an unordered collection of
// wakeup-token pointers with insert/find/remove/foreach, equality by
// pointer identity, no ordering requirement.
//
// The backing structure is container/list's doubly linked list, the
// same structure golang.org/x/sync's semaphore implementation
// (semaphore.Weighted) uses for its waiter queue.
// The registry itself does no locking; callers guard it with their
// own mutex, as the channel core does with its per-direction registry
// mutexes.
package waitset

import "container/list"

// Set is an unordered collection of *token.Token pointers, compared by
// identity. It is not safe for concurrent use; callers must guard it
// with an external mutex (see the locking discipline in the channel
// core).
type Set struct {
	l     list.List
	index map[any]*list.Element
}

// New returns an empty Set.
func New() *Set {
	s := &Set{index: make(map[any]*list.Element)}
	s.l.Init()
	return s
}

// Insert adds tok to the set if it is not already present. Insert
// reports whether tok was newly added.
func (s *Set) Insert(tok any) bool {
	if _, ok := s.index[tok]; ok {
		return false
	}
	s.index[tok] = s.l.PushBack(tok)
	return true
}

// Contains reports whether tok is present in the set.
func (s *Set) Contains(tok any) bool {
	_, ok := s.index[tok]
	return ok
}

// Remove deletes tok from the set, if present. Remove reports whether
// tok was present.
func (s *Set) Remove(tok any) bool {
	e, ok := s.index[tok]
	if !ok {
		return false
	}
	s.l.Remove(e)
	delete(s.index, tok)
	return true
}

// Len returns the number of tokens currently registered.
func (s *Set) Len() int {
	return s.l.Len()
}

// ForEach calls fn once for every token currently in the set, in
// insertion order. fn must not mutate the set.
func (s *Set) ForEach(fn func(tok any)) {
	for e := s.l.Front(); e != nil; e = e.Next() {
		fn(e.Value)
	}
}
