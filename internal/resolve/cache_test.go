package resolve_test

import (
	"fmt"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/mwatts/anyctl/internal/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_PutThenGet(t *testing.T) {
	cache := resolve.NewCache[string](5 * time.Second)

	cache.Put("home", "id-1")

	got, ok := cache.Get("home")
	require.True(t, ok)
	assert.Equal(t, "id-1", got)
}

func TestCache_MissIsNotAnError(t *testing.T) {
	cache := resolve.NewCache[string](5 * time.Second)

	got, ok := cache.Get("unknown")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestCache_ExpiredEntryIsRemovedOnRead(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		cache := resolve.NewCache[string](5 * time.Second)

		cache.Put("home", "id-1")

		got, ok := cache.Get("home")
		require.True(t, ok)
		assert.Equal(t, "id-1", got)

		time.Sleep(6 * time.Second)

		_, ok = cache.Get("home")
		assert.False(t, ok)
		// The expired read evicted the entry, occupancy drops to zero.
		assert.Equal(t, 0, cache.Len())
	})
}

func TestCache_EntryInvalidAtExactExpiry(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		cache := resolve.NewCache[string](5 * time.Second)

		cache.Put("home", "id-1")
		time.Sleep(5 * time.Second)

		// Valid iff now < expiry, so the boundary instant is already stale.
		_, ok := cache.Get("home")
		assert.False(t, ok)
	})
}

func TestCache_OverwriteRefreshesExpiry(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		cache := resolve.NewCache[string](5 * time.Second)

		cache.Put("home", "id-1")
		time.Sleep(3 * time.Second)
		cache.Put("home", "id-2")
		time.Sleep(3 * time.Second)

		// Six seconds after the first insert, but the overwrite reset the clock.
		got, ok := cache.Get("home")
		require.True(t, ok)
		assert.Equal(t, "id-2", got)
	})
}

func TestCache_ClearDropsUnexpiredEntries(t *testing.T) {
	cache := resolve.NewCache[string](time.Hour)

	cache.Put("a", "id-a")
	cache.Put("b", "id-b")
	require.Equal(t, 2, cache.Len())

	cache.Clear()

	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get("a")
	assert.False(t, ok)
}

func TestCache_ConcurrentSameKeyLastWriterWins(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		cache := resolve.NewCache[string](time.Hour)

		var wg sync.WaitGroup
		for _, value := range []string{"id-1", "id-2"} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				cache.Put("home", value)
			}()
		}
		wg.Wait()

		// Exactly one of the two writes is readable, never a torn entry.
		got, ok := cache.Get("home")
		require.True(t, ok)
		assert.Contains(t, []string{"id-1", "id-2"}, got)
		assert.Equal(t, 1, cache.Len())
	})
}

func TestCache_ConcurrentDistinctKeys(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		cache := resolve.NewCache[string](time.Hour)

		const n = 64
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				key := fmt.Sprintf("space-%d", i)
				cache.Put(key, fmt.Sprintf("id-%d", i))
				_, _ = cache.Get(key)
			}()
		}
		wg.Wait()

		assert.Equal(t, n, cache.Len())
		for i := range n {
			got, ok := cache.Get(fmt.Sprintf("space-%d", i))
			require.True(t, ok)
			assert.Equal(t, fmt.Sprintf("id-%d", i), got)
		}
	})
}

func TestCache_StatsCountHitsAndMisses(t *testing.T) {
	cache := resolve.NewCache[string](time.Hour)

	cache.Put("home", "id-1")
	_, _ = cache.Get("home")
	_, _ = cache.Get("home")
	_, _ = cache.Get("unknown")

	stats := cache.Stats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, uint64(2), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

func TestCache_StructuralKeys(t *testing.T) {
	cache := resolve.NewCache[resolve.TypeKey](time.Hour)

	cache.Put(resolve.TypeKey{SpaceID: "space-1", Name: "Notes"}, "a")
	cache.Put(resolve.TypeKey{SpaceID: "space-2", Name: "Notes"}, "b")

	got, ok := cache.Get(resolve.TypeKey{SpaceID: "space-1", Name: "Notes"})
	require.True(t, ok)
	assert.Equal(t, "a", got)

	got, ok = cache.Get(resolve.TypeKey{SpaceID: "space-2", Name: "Notes"})
	require.True(t, ok)
	assert.Equal(t, "b", got)
}
