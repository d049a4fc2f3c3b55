package genarena

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewSafeArena(t *testing.T) {
	s := NewSafeArena[int](0)
	require.NotNil(t, s)
	require.NotNil(t, s.a)
	assert.Equal(t, DefaultCapacity, s.a.Cap())
}

func TestSafeArenaOperations(t *testing.T) {
	s := NewSafeArena[string](16)

	h := s.Alloc("a")
	hs := s.AllocMany("b", "c")
	require.Len(t, hs, 2)

	v, ok := s.Get(h)
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	assert.True(t, s.Exists(hs[1]))
	assert.NoError(t, s.Check(hs[0]))

	assert.True(t, s.Update(h, func(v *string) { *v += "!" }))
	assert.Equal(t, "a!", s.MustGet(h))

	s.Free(hs[0])
	assert.False(t, s.Exists(hs[0]))
	assert.ErrorIs(t, s.Check(hs[0]), ErrInvalidHandle)
	assert.Equal(t, []string{"a!", "c"}, s.Values())
	assert.Equal(t, 2, s.Len())

	var seen []string
	s.Range(func(h Handle[string], v string) bool {
		seen = append(seen, v)
		return false
	})
	assert.Equal(t, []string{"a!"}, seen)

	assert.Contains(t, s.String(), "free: [1]")

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 3, s.Metrics().FreeSlots)
	assert.Panics(t, func() { s.MustGet(h) })
}

func TestSafeArenaConcurrency(t *testing.T) {
	s := NewSafeArena[int](8)
	const numGoroutines = 10
	const numAllocsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	// Launch multiple goroutines mixing writers and readers
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			var mine []Handle[int]
			for j := 0; j < numAllocsPerGoroutine; j++ {
				switch j % 4 {
				case 0, 1:
					mine = append(mine, s.Alloc(id*numAllocsPerGoroutine+j))
				case 2:
					if len(mine) > 0 {
						s.Free(mine[0])
						mine = mine[1:]
					}
				case 3:
					_ = s.Values()
					_ = s.Metrics()
					runtime.Gosched()
				}
			}
			for _, h := range mine {
				if v, ok := s.Get(h); !ok || v/numAllocsPerGoroutine != id {
					t.Errorf("goroutine %d lost entry %v (got %d, %v)", id, h, v, ok)
				}
			}
		}(i)
	}

	wg.Wait()

	// 50 allocs and 25 frees per goroutine
	m := s.Metrics()
	assert.Equal(t, numGoroutines*25, m.Live)
	assert.Equal(t, uint64(numGoroutines*50), m.Allocs)
	assert.Equal(t, uint64(numGoroutines*25), m.Frees)
}

func BenchmarkSafeArena(b *testing.B) {
	s := NewSafeArena[int](1024)

	b.Run("AllocFree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s.Free(s.Alloc(i))
		}
	})

	b.Run("Get", func(b *testing.B) {
		h := s.Alloc(1)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s.Get(h)
		}
	})
}

func BenchmarkSafeArenaConcurrent(b *testing.B) {
	s := NewSafeArena[int](1024)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			h := s.Alloc(i)
			s.Get(h)
			s.Free(h)
			i++
		}
	})
}
