package chanx

import "sync"

// Directory is a process-wide, named registry of channels, letting
// independently-constructed goroutines rendezvous on a channel by name
// instead of threading a handle through their call graphs.
//
// It is grounded directly on the teacher's own
// internal/singleflight.Group: a map of in-flight/completed work
// behind a single mutex, with duplicate-create suppression for a
// given key. Here the "work" is channel creation rather than a
// function call, so there is no result to fan out over a WaitGroup —
// the first caller for a name creates the Channel and every caller,
// first or not, gets the same *Channel back.
type Directory struct {
	mu sync.Mutex
	m  map[string]*Channel
}

// NewDirectory returns an empty Directory.
func NewDirectory() *Directory {
	return &Directory{m: make(map[string]*Channel)}
}

// GetOrCreate returns the channel registered under name, creating one
// with the given capacity if none exists yet. Concurrent GetOrCreate
// calls for the same name that race to create are suppressed the same
// way singleflight.Group.Do suppresses duplicate concurrent calls for
// one key: only the first caller's capacity takes effect, and every
// caller receives the same *Channel.
func (d *Directory) GetOrCreate(name string, capacity int) (*Channel, error) {
	d.mu.Lock()
	if c, ok := d.m[name]; ok {
		d.mu.Unlock()
		return c, nil
	}
	c, err := New(capacity)
	if err != nil {
		d.mu.Unlock()
		return nil, err
	}
	d.m[name] = c
	d.mu.Unlock()
	return c, nil
}

// Get returns the channel registered under name, and whether it
// exists.
func (d *Directory) Get(name string) (*Channel, bool) {
	d.mu.Lock()
	c, ok := d.m[name]
	d.mu.Unlock()
	return c, ok
}

// Forget removes name from the directory without touching the
// channel itself — callers remain free to keep using a handle they
// already obtained via GetOrCreate/Get. Close the channel separately.
func (d *Directory) Forget(name string) {
	d.mu.Lock()
	delete(d.m, name)
	d.mu.Unlock()
}

// Names returns a snapshot of the currently registered channel names.
func (d *Directory) Names() []string {
	d.mu.Lock()
	names := make([]string, 0, len(d.m))
	for name := range d.m {
		names = append(names, name)
	}
	d.mu.Unlock()
	return names
}
