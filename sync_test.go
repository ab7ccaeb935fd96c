package chainmap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/spinlock"
)

// Map has no internal locking; concurrent writers have to hold an external
// lock around every call.
func TestExternalSynchronization(t *testing.T) {
	const (
		writers       = 8
		keysPerWriter = 1000
	)

	m := New()
	locker := &spinlock.Locker{}

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < keysPerWriter; i++ {
				key := w*keysPerWriter + i
				locker.Lock()
				_, err := m.Put(key, w)
				locker.Unlock()
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, writers*keysPerWriter, m.Len())
	for w := 0; w < writers; w++ {
		assert.Equal(t, w, m.Get(w*keysPerWriter))
	}
	require.NoError(t, m.CheckConsistency())
}
