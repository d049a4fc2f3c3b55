package genarena

import "sync"

// SafeArena is an RWMutex-protected wrapper around Arena for concurrent access.
// The whole arena is locked for each call. Pointer accessors are not
// offered because the pointer would outlive the lock; use Update instead.
type SafeArena[T any] struct {
	mu sync.RWMutex
	a  *Arena[T]
}

// NewSafeArena creates a new thread-safe arena with the given capacity hint.
// If capacityHint <= 0, DefaultCapacity is used.
func NewSafeArena[T any](capacityHint int) *SafeArena[T] {
	return &SafeArena[T]{a: NewArena[T](capacityHint)}
}

// Alloc thread-safely stores v and returns a handle to it.
func (s *SafeArena[T]) Alloc(v T) Handle[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(v)
}

// AllocMany thread-safely stores every value under a single lock.
func (s *SafeArena[T]) AllocMany(values ...T) []Handle[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocMany(s.a, values...)
}

// Free thread-safely releases the entry h names. Stale handles are ignored.
func (s *SafeArena[T]) Free(h Handle[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Free(h)
}

// Reset thread-safely frees every live entry.
func (s *SafeArena[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Update thread-safely calls fn with a pointer to the value h names.
// fn runs under the write lock and must not call back into s.
func (s *SafeArena[T]) Update(h Handle[T], fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Update(s.a, h, fn)
}

// Exists thread-safely reports whether h names a live entry.
func (s *SafeArena[T]) Exists(h Handle[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.Exists(h)
}

// Get thread-safely returns a copy of the value h names.
func (s *SafeArena[T]) Get(h Handle[T]) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.Get(h)
}

// MustGet thread-safely returns a copy of the value h names or panics.
func (s *SafeArena[T]) MustGet(h Handle[T]) T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.MustGet(h)
}

// Check thread-safely reports why h does not name a live entry.
func (s *SafeArena[T]) Check(h Handle[T]) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.Check(h)
}

// Values thread-safely returns a snapshot of the live values in slot order.
func (s *SafeArena[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Collect(s.a)
}

// Range calls fn for each live entry in slot order while holding the read
// lock, stopping early if fn returns false. fn must not call back into s.
func (s *SafeArena[T]) Range(fn func(Handle[T], T) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for h, v := range s.a.All() {
		if !fn(h, v) {
			return
		}
	}
}

// String thread-safely returns the diagnostic dump of the arena.
func (s *SafeArena[T]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.String()
}
