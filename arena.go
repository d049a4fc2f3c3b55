package genarena

import (
	"fmt"
	"iter"
	"strings"
	"sync/atomic"
)

// DefaultCapacity is the slot capacity reserved by New and by NewArena
// when given a non-positive hint.
const DefaultCapacity = 8

// slot is a single storage cell within an arena.
type slot[T any] struct {
	gen   uint64 // incremented on every free, never otherwise
	live  bool   // occupied; used by iteration only, access checks gen
	value T      // kept after free until the slot is reused
}

// Arena is a generational arena. Not goroutine-safe.
// Use SafeArena for concurrent access. The zero value is ready to use.
type Arena[T any] struct {
	slots []slot[T]
	free  []int // LIFO stack of reusable slot indexes

	// active iterators; also updated by readers under SafeArena's read lock
	iterating atomic.Int32

	allocs uint64
	reuses uint64
	frees  uint64
}

// New creates an arena with DefaultCapacity slots reserved.
func New[T any]() *Arena[T] {
	return NewArena[T](DefaultCapacity)
}

// NewArena creates an arena with room for capacityHint entries before the
// slot storage grows. If capacityHint <= 0, DefaultCapacity is used.
func NewArena[T any](capacityHint int) *Arena[T] {
	if capacityHint <= 0 {
		capacityHint = DefaultCapacity
	}
	return &Arena[T]{slots: make([]slot[T], 0, capacityHint)}
}

// Alloc stores v and returns a handle to it.
//
// The most recently freed slot is reused first. A reused slot keeps the
// generation it was given when freed, so the new handle differs from
// every handle previously issued for that slot.
func (a *Arena[T]) Alloc(v T) Handle[T] {
	if a.iterating.Load() > 0 {
		panic("arena: Alloc during iteration")
	}
	a.allocs++

	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[i]
		s.value = v
		s.live = true
		a.reuses++
		return newHandle[T](s.gen, i)
	}

	i := len(a.slots)
	a.slots = append(a.slots, slot[T]{value: v, live: true})
	return newHandle[T](0, i)
}

// Free releases the entry h names. It invalidates h and every copy of it.
// Freeing a stale, zero or out of range handle is a no-op, so double frees
// are harmless. The stored value is not cleared.
func (a *Arena[T]) Free(h Handle[T]) {
	s := a.lookup(h)
	if s == nil {
		return
	}
	s.gen++
	s.live = false
	a.free = append(a.free, h.Index())
	a.frees++
}

// Exists reports whether h names a live entry.
func (a *Arena[T]) Exists(h Handle[T]) bool {
	return a.lookup(h) != nil
}

// Get returns a copy of the value h names, or false if h is stale.
func (a *Arena[T]) Get(h Handle[T]) (T, bool) {
	if s := a.lookup(h); s != nil {
		return s.value, true
	}
	var zero T
	return zero, false
}

// GetPtr returns a pointer to the value h names, or false if h is stale.
// The pointer is valid until the next Alloc, which may move storage.
func (a *Arena[T]) GetPtr(h Handle[T]) (*T, bool) {
	if s := a.lookup(h); s != nil {
		return &s.value, true
	}
	return nil, false
}

// MustGet returns a copy of the value h names.
// It panics with an error wrapping ErrInvalidHandle if h is not live.
func (a *Arena[T]) MustGet(h Handle[T]) T {
	return a.mustSlot(h).value
}

// MustPtr returns a pointer to the value h names.
// It panics with an error wrapping ErrInvalidHandle if h is not live.
func (a *Arena[T]) MustPtr(h Handle[T]) *T {
	return &a.mustSlot(h).value
}

// Len returns the number of live entries.
func (a *Arena[T]) Len() int {
	return len(a.slots) - len(a.free)
}

// Reset frees every live entry and keeps the slot storage for reuse.
// All outstanding handles become stale.
func (a *Arena[T]) Reset() {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		s.gen++
		s.live = false
		a.free = append(a.free, i)
		a.frees++
	}
}

// Values returns an iterator over copies of the live values in slot order.
// Freed slots are skipped but still scanned, so a pass costs O(Slots()).
func (a *Arena[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		a.scan(func(_ int, s *slot[T]) bool { return yield(s.value) })
	}
}

// All returns an iterator over the live entries and their handles.
func (a *Arena[T]) All() iter.Seq2[Handle[T], T] {
	return func(yield func(Handle[T], T) bool) {
		a.scan(func(i int, s *slot[T]) bool {
			return yield(newHandle[T](s.gen, i), s.value)
		})
	}
}

// Pointers returns an iterator over pointers to the live values, for
// updating entries in place. Alloc panics while it runs; Free is allowed.
func (a *Arena[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		a.scan(func(_ int, s *slot[T]) bool { return yield(&s.value) })
	}
}

// AllPointers is like Pointers but also yields each entry's handle.
func (a *Arena[T]) AllPointers() iter.Seq2[Handle[T], *T] {
	return func(yield func(Handle[T], *T) bool) {
		a.scan(func(i int, s *slot[T]) bool {
			return yield(newHandle[T](s.gen, i), &s.value)
		})
	}
}

// String returns a diagnostic dump of every slot and the free list.
// The format is not stable.
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteString("Arena{slots: [")
	for i, s := range a.slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "{gen: %d, live: %t, value: %v}", s.gen, s.live, s.value)
	}
	fmt.Fprintf(&b, "], free: %v}", a.free)
	return b.String()
}

// lookup returns the slot h names if h is live, nil otherwise.
func (a *Arena[T]) lookup(h Handle[T]) *slot[T] {
	i := h.Index()
	if i < 0 || i >= len(a.slots) {
		return nil
	}
	if s := &a.slots[i]; s.gen == h.gen {
		return s
	}
	return nil
}

// scan visits occupied slots in index order until fn returns false.
func (a *Arena[T]) scan(fn func(i int, s *slot[T]) bool) {
	a.iterating.Add(1)
	defer a.iterating.Add(-1)

	for i := range a.slots {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		if !fn(i, s) {
			return
		}
	}
}
