package genarena

// AllocMany stores each value and returns the handles in argument order.
func AllocMany[T any](a *Arena[T], values ...T) []Handle[T] {
	if len(values) == 0 {
		return nil
	}
	handles := make([]Handle[T], len(values))
	for i, v := range values {
		handles[i] = a.Alloc(v)
	}
	return handles
}

// FreeMany frees every handle and returns how many entries were actually
// released. Stale and repeated handles are skipped.
func FreeMany[T any](a *Arena[T], handles ...Handle[T]) int {
	n := 0
	for _, h := range handles {
		if a.Exists(h) {
			a.Free(h)
			n++
		}
	}
	return n
}

// Update calls fn with a pointer to the value h names.
// Returns false without calling fn if h is stale.
func Update[T any](a *Arena[T], h Handle[T], fn func(*T)) bool {
	p, ok := a.GetPtr(h)
	if !ok {
		return false
	}
	fn(p)
	return true
}

// Collect returns a copy of the live values in slot order.
func Collect[T any](a *Arena[T]) []T {
	out := make([]T, 0, a.Len())
	for v := range a.Values() {
		out = append(out, v)
	}
	return out
}
