package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	provider := NewRealTimeProvider()

	now := provider.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.GreaterOrEqual(t, provider.Since(now.Add(-time.Second)), time.Second)
}
