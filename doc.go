// Package genarena implements a generational arena (slot map) for Go.
//
// # Overview
//
// An arena stores values in a growable slice of slots and hands out
// Handle values that name a slot together with the slot's generation.
// Freeing an entry bumps its slot's generation and pushes the slot onto a
// free list; the next allocation reuses it. Any handle issued before the
// free no longer matches the generation and is reported as stale, so a
// reused slot never silently aliases an old handle.
//
// This is useful for:
//
//   - Entity tables in games and simulations
//   - Graphs and trees whose nodes refer to each other by handle
//   - Object registries exposed to callers as opaque IDs
//   - Any place a pointer would outlive the thing it points to
//
// # Basic Usage
//
//	a := genarena.New[string]()
//
//	h := a.Alloc("hello")
//	v, ok := a.Get(h)  // "hello", true
//	a.Free(h)
//	_, ok = a.Get(h)   // "", false
//	a.Free(h)          // no-op
//
//	// Iterate over live values in slot order
//	for v := range a.Values() {
//		fmt.Println(v)
//	}
//
// # Checked and Asserting Access
//
// Get, GetPtr and Exists report a stale handle as absent. MustGet and
// MustPtr are for call sites that already know the handle is live; they
// panic with an error wrapping ErrInvalidHandle otherwise. Check returns
// that error without panicking.
//
// # Generations
//
// A slot's generation starts at 0 and is incremented by exactly one on
// every free. An allocation that reuses a slot returns a handle carrying
// the generation already stored there, so a slot that has been freed once
// holds its next live value at generation 1. Liveness is always decided by
// comparing the handle's generation with the slot's, never by parity.
//
// # Thread Safety
//
// The basic Arena type is not thread-safe. For concurrent access, use
// SafeArena, which guards a whole arena with one lock:
//
//	s := genarena.NewSafeArena[int](0)
//	h := s.Alloc(42)
//	s.Update(h, func(v *int) { *v++ })
//
// # Performance Characteristics
//
//   - Alloc, Free, Exists, Get: O(1) (Alloc amortized)
//   - Iteration: O(number of slots ever created), not O(live entries)
//   - Reset: O(number of slots)
//   - Storage never shrinks
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("live %d of %d slots\n", m.Live, m.Slots)
//
// NewCollector exports the same numbers to Prometheus and LogState writes
// them through a go-kit logger.
package genarena
