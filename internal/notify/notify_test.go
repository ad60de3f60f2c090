package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/frontdesk/internal/constants"
)

func TestPushAndActiveOrder(t *testing.T) {
	c := NewCenter(0)
	c.Error("first")
	c.Success("second")

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "first", active[0].Message)
	assert.Equal(t, constants.NoticeError, active[0].Kind)
	assert.Equal(t, constants.NoticeSuccess, active[1].Kind)
}

func TestDismiss(t *testing.T) {
	c := NewCenter(0)
	id := c.Info("going away")
	c.Info("staying")

	c.Dismiss(id)
	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "staying", active[0].Message)
}

func TestExpire(t *testing.T) {
	base := time.Date(2024, 8, 10, 12, 0, 0, 0, time.UTC)
	c := NewCenter(6 * time.Second)
	c.now = func() time.Time { return base }
	c.Error("old")
	c.now = func() time.Time { return base.Add(4 * time.Second) }
	c.Error("fresh")

	changed := c.Expire(base.Add(7 * time.Second))
	assert.True(t, changed)
	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "fresh", active[0].Message)

	assert.False(t, c.Expire(base.Add(7*time.Second)))
}
