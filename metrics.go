package genarena

// Slots returns the number of slots ever created, live or free.
func (a *Arena[T]) Slots() int {
	return len(a.slots)
}

// FreeSlots returns the number of slots waiting on the free list.
func (a *Arena[T]) FreeSlots() int {
	return len(a.free)
}

// Cap returns the number of slots the arena can hold before its storage grows.
func (a *Arena[T]) Cap() int {
	return cap(a.slots)
}

// Utilization returns the ratio of live entries to slots (0.0 to 1.0).
// Returns 0.0 if the arena has no slots.
func (a *Arena[T]) Utilization() float64 {
	if len(a.slots) == 0 {
		return 0
	}
	return float64(a.Len()) / float64(len(a.slots))
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Live:        a.Len(),
		Slots:       a.Slots(),
		FreeSlots:   a.FreeSlots(),
		Capacity:    a.Cap(),
		Utilization: a.Utilization(),
		Allocs:      a.allocs,
		Reuses:      a.reuses,
		Frees:       a.frees,
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Live        int     // Entries currently allocated
	Slots       int     // Slots ever created
	FreeSlots   int     // Slots on the free list
	Capacity    int     // Reserved slot capacity
	Utilization float64 // Ratio of live entries to slots (0.0-1.0)
	Allocs      uint64  // Alloc calls
	Reuses      uint64  // Alloc calls served from the free list
	Frees       uint64  // Entries released; ignored frees are not counted
}

// MetricsSource is anything that can report ArenaMetrics.
// Both *Arena[T] and *SafeArena[T] implement it.
type MetricsSource interface {
	Metrics() ArenaMetrics
}

// Thread-safe metrics for SafeArena

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena[T]) Metrics() ArenaMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.Metrics()
}

// Len thread-safely returns the number of live entries.
func (s *SafeArena[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.Len()
}
