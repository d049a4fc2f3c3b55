package genarena

import "github.com/pkg/errors"

// ErrInvalidHandle is the root of every error reported for a handle that
// does not name a live entry: stale generations and out of range indexes.
// MustGet and MustPtr panic with an error wrapping it.
var ErrInvalidHandle = errors.New("arena: invalid handle")

// Check returns nil if h names a live entry, otherwise an error wrapping
// ErrInvalidHandle that describes why it does not.
func (a *Arena[T]) Check(h Handle[T]) error {
	i := h.Index()
	if i < 0 || i >= len(a.slots) {
		return errors.Wrapf(ErrInvalidHandle, "index %d out of range [0, %d)", i, len(a.slots))
	}
	if g := a.slots[i].gen; g != h.gen {
		return errors.Wrapf(ErrInvalidHandle, "stale generation %d for slot %d (current %d)", h.gen, i, g)
	}
	return nil
}

// mustSlot returns the slot h names or panics with the Check error.
func (a *Arena[T]) mustSlot(h Handle[T]) *slot[T] {
	if err := a.Check(h); err != nil {
		panic(err)
	}
	return &a.slots[h.Index()]
}
