package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestCache(ttl time.Duration) (*Cache[string], *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return New[string](ttl, clock.Now), clock
}

func TestGet_RunsProducerOnFirstCall(t *testing.T) {
	c, _ := newTestCache(5 * time.Minute)

	value, fresh, err := c.Get("feed", func() (string, error) { return "v1", nil })
	assert.NoError(t, err)
	assert.True(t, fresh)
	assert.Equal(t, "v1", value)
}

func TestGet_ReturnsCachedWithinTTL(t *testing.T) {
	c, clock := newTestCache(5 * time.Minute)

	c.Get("feed", func() (string, error) { return "v1", nil })
	clock.Advance(4 * time.Minute)

	// Underlying data changed, but the window has not elapsed.
	value, fresh, err := c.Get("feed", func() (string, error) { return "v2", nil })
	assert.NoError(t, err)
	assert.False(t, fresh)
	assert.Equal(t, "v1", value)
}

func TestGet_RecomputesAfterTTL(t *testing.T) {
	c, clock := newTestCache(5 * time.Minute)

	c.Get("feed", func() (string, error) { return "v1", nil })
	clock.Advance(5*time.Minute + time.Second)

	value, fresh, err := c.Get("feed", func() (string, error) { return "v2", nil })
	assert.NoError(t, err)
	assert.True(t, fresh)
	assert.Equal(t, "v2", value)
}

func TestGet_ProducerErrorIsNotCached(t *testing.T) {
	c, _ := newTestCache(5 * time.Minute)
	boom := errors.New("connection refused")

	_, fresh, err := c.Get("feed", func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	assert.True(t, fresh)
	assert.Equal(t, 0, c.Size())

	// The next call retries immediately instead of serving the failure.
	value, fresh, err := c.Get("feed", func() (string, error) { return "v1", nil })
	assert.NoError(t, err)
	assert.True(t, fresh)
	assert.Equal(t, "v1", value)
}

func TestGet_SlotsAreIndependent(t *testing.T) {
	c, _ := newTestCache(5 * time.Minute)

	c.Get("posts", func() (string, error) { return "p", nil })
	c.Get("comments", func() (string, error) { return "c", nil })

	value, fresh, _ := c.Get("posts", func() (string, error) { return "changed", nil })
	assert.False(t, fresh)
	assert.Equal(t, "p", value)
	assert.Equal(t, 2, c.Size())
}

func TestInvalidate_ForcesRecompute(t *testing.T) {
	c, _ := newTestCache(5 * time.Minute)

	c.Get("feed", func() (string, error) { return "v1", nil })
	c.Invalidate("feed")

	value, fresh, err := c.Get("feed", func() (string, error) { return "v2", nil })
	assert.NoError(t, err)
	assert.True(t, fresh)
	assert.Equal(t, "v2", value)
}

func TestAge_ReportsSlotAge(t *testing.T) {
	c, clock := newTestCache(5 * time.Minute)

	_, ok := c.Age("feed")
	assert.False(t, ok)

	c.Get("feed", func() (string, error) { return "v1", nil })
	clock.Advance(90 * time.Second)

	age, ok := c.Age("feed")
	assert.True(t, ok)
	assert.Equal(t, 90*time.Second, age)
}

func TestNew_NilClockDefaultsToWallClock(t *testing.T) {
	c := New[string](time.Minute, nil)
	value, fresh, err := c.Get("feed", func() (string, error) { return "v1", nil })
	assert.NoError(t, err)
	assert.True(t, fresh)
	assert.Equal(t, "v1", value)
}
