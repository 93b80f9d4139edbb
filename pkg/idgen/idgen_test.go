package idgen_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schotanus/goutil/pkg/idgen"
)

func TestSequence(t *testing.T) {
	t.Run("starts at the supplied value", func(t *testing.T) {
		seq := idgen.NewSequence(100)
		assert.Equal(t, int64(100), seq.Next())
		assert.Equal(t, int64(101), seq.Next())
		assert.Equal(t, int64(102), seq.Next())
	})

	t.Run("concurrent callers get distinct ids", func(t *testing.T) {
		seq := idgen.NewSequence(0)

		const workers, perWorker = 8, 1000
		ids := make(chan int64, workers*perWorker)

		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range perWorker {
					ids <- seq.Next()
				}
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[int64]bool, workers*perWorker)
		for id := range ids {
			assert.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}
		assert.Len(t, seen, workers*perWorker)
	})
}

func TestNewUUID(t *testing.T) {
	id := idgen.NewUUID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	assert.NotEqual(t, id, idgen.NewUUID())
}

func TestNewSortableUUID(t *testing.T) {
	first, err := idgen.NewSortableUUID()
	require.NoError(t, err)
	second, err := idgen.NewSortableUUID()
	require.NoError(t, err)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Less(t, first, second, "version 7 uuids sort by creation time")
}
