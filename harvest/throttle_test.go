package harvest_test

import (
	"testing"
	"time"

	"github.com/GongyiChuren/docsift/harvest"
	"github.com/stretchr/testify/assert"
)

func TestThrottle_Allow(t *testing.T) {
	t.Parallel()

	t.Run("suppresses calls within the interval", func(t *testing.T) {
		t.Parallel()

		th := harvest.NewThrottle(100 * time.Millisecond)

		assert.True(t, th.Allow())
		assert.False(t, th.Allow())
		assert.False(t, th.Allow())
	})

	t.Run("permits a call after the interval has passed", func(t *testing.T) {
		t.Parallel()

		th := harvest.NewThrottle(50 * time.Millisecond)

		assert.True(t, th.Allow())
		assert.False(t, th.Allow())

		time.Sleep(60 * time.Millisecond)

		assert.True(t, th.Allow())
	})

	t.Run("non-positive interval uses the default", func(t *testing.T) {
		t.Parallel()

		th := harvest.NewThrottle(0)

		assert.True(t, th.Allow())
		assert.False(t, th.Allow())
	})
}
