package idgen

import (
	"sort"
	"sync"
	"testing"
	"time"

	coremocks "github.com/kunalPisolkar24/payflow/mocks/port/core"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULIDGenerator(t *testing.T) {
	fixedTime := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime)

	generator := NewULIDGenerator(mockTime)

	t.Run("Sequential references sort in creation order", func(t *testing.T) {
		ids := make([]string, 0, 100)
		for i := 0; i < 100; i++ {
			ids = append(ids, generator.NewID())
		}

		assert.True(t, sort.StringsAreSorted(ids))

		parsed, err := ulid.Parse(ids[0])
		require.NoError(t, err)
		assert.Equal(t, ulid.Timestamp(fixedTime), parsed.Time())
		assert.Len(t, ids[0], 26)
	})

	t.Run("Concurrent references are unique", func(t *testing.T) {
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			seen = make(map[string]struct{})
		)

		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 50; j++ {
					id := generator.NewID()
					mu.Lock()
					seen[id] = struct{}{}
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Len(t, seen, 400)
	})
}
