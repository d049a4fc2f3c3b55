package genarena

import "fmt"

// Handle identifies one allocation in an Arena[T].
//
// Handles are plain values: copy them, compare them with ==, use them as
// map keys. A handle stays valid until the entry it names is freed; after
// that it is stale forever, even once its slot is reused.
//
// The element type is carried only by the type parameter, so a
// Handle[int] cannot be passed to an *Arena[string].
type Handle[T any] struct {
	gen uint64
	pos int // slot index + 1; 0 marks the zero handle
}

func newHandle[T any](gen uint64, index int) Handle[T] {
	return Handle[T]{gen: gen, pos: index + 1}
}

// Generation returns the slot generation the handle was issued at.
func (h Handle[T]) Generation() uint64 { return h.gen }

// Index returns the slot index the handle names, or -1 for the zero handle.
func (h Handle[T]) Index() int { return h.pos - 1 }

// IsZero reports whether h is the zero Handle, which never names an entry.
func (h Handle[T]) IsZero() bool { return h.pos == 0 }

func (h Handle[T]) String() string {
	return fmt.Sprintf("Handle(gen=%d, index=%d)", h.gen, h.Index())
}
