package listctl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/frontdesk/internal/listctl"
)

func page(items []string, total, pages int) listctl.Result[string] {
	return listctl.Result[string]{Items: items, TotalElements: total, TotalPages: pages}
}

func TestFirstLoad(t *testing.T) {
	c := listctl.New[string](3)

	gen, _, req := c.Begin(context.Background())
	assert.Equal(t, 0, req.Index)
	assert.Equal(t, 3, req.Size)
	assert.True(t, c.Loading())

	require.True(t, c.Apply(gen, page([]string{"a", "b", "c"}, 7, 3), nil))
	assert.False(t, c.Loading())
	assert.Equal(t, []string{"a", "b", "c"}, c.Items())
	assert.Equal(t, 7, c.TotalElements())
	assert.Equal(t, 3, c.TotalPages())
	assert.True(t, c.HasNext())
	assert.False(t, c.HasPrev())
}

func TestStaleResponseDiscarded(t *testing.T) {
	c := listctl.New[string](3)

	oldGen, oldCtx, _ := c.Begin(context.Background())
	newGen, _, _ := c.Begin(context.Background())

	// Beginning a new attempt cancels the old one's context.
	assert.Error(t, oldCtx.Err())

	require.True(t, c.Apply(newGen, page([]string{"new"}, 1, 1), nil))
	assert.False(t, c.Apply(oldGen, page([]string{"old"}, 9, 3), nil))
	assert.Equal(t, []string{"new"}, c.Items())
	assert.Equal(t, 1, c.TotalPages())
}

func TestApplyReleasesFetchContext(t *testing.T) {
	c := listctl.New[string](3)

	gen, ctx, _ := c.Begin(context.Background())
	require.True(t, c.Apply(gen, page([]string{"a"}, 1, 1), nil))
	// Committing the outcome must release the attempt's context, not just
	// forget it.
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestErrorKeepsSnapshot(t *testing.T) {
	c := listctl.New[string](3)

	gen, _, _ := c.Begin(context.Background())
	require.True(t, c.Apply(gen, page([]string{"a"}, 1, 1), nil))

	gen, _, _ = c.Begin(context.Background())
	require.True(t, c.Apply(gen, listctl.Result[string]{}, errors.New("boom")))
	assert.False(t, c.Loading())
	assert.Error(t, c.Err())
	assert.Equal(t, []string{"a"}, c.Items())

	gen, _, _ = c.Begin(context.Background())
	require.True(t, c.Apply(gen, page([]string{"b"}, 1, 1), nil))
	assert.NoError(t, c.Err())
}

func TestFilterChangeResetsPage(t *testing.T) {
	c := listctl.New[string](3)

	gen, _, _ := c.Begin(context.Background())
	require.True(t, c.Apply(gen, page([]string{"a", "b", "c"}, 9, 3), nil))
	require.True(t, c.Next())
	assert.Equal(t, 1, c.Index())

	c.ResetPage()
	_, _, req := c.Begin(context.Background())
	assert.Equal(t, 0, req.Index)
}

func TestIndexClampedWhenTotalsShrink(t *testing.T) {
	c := listctl.New[string](3)

	gen, _, _ := c.Begin(context.Background())
	require.True(t, c.Apply(gen, page([]string{"a", "b", "c"}, 9, 3), nil))
	require.True(t, c.Next())
	require.True(t, c.Next())
	assert.Equal(t, 2, c.Index())

	// A deletion on the last page leaves only two pages behind.
	gen, _, _ = c.Begin(context.Background())
	require.True(t, c.Apply(gen, page([]string{"d"}, 4, 2), nil))
	assert.Equal(t, 1, c.Index())

	_, _, req := c.Begin(context.Background())
	assert.Equal(t, 1, req.Index)
}

func TestEverythingDeletedClampsToZero(t *testing.T) {
	c := listctl.New[string](3)

	gen, _, _ := c.Begin(context.Background())
	require.True(t, c.Apply(gen, page([]string{"a"}, 4, 2), nil))
	require.True(t, c.Next())

	gen, _, _ = c.Begin(context.Background())
	require.True(t, c.Apply(gen, page(nil, 0, 0), nil))
	assert.Equal(t, 0, c.Index())
	assert.Empty(t, c.Items())
	assert.False(t, c.HasNext())
	assert.False(t, c.HasPrev())
}

func TestPagingBounds(t *testing.T) {
	c := listctl.New[string](3)

	// Totals unknown: nothing to page through yet.
	assert.False(t, c.Next())
	assert.False(t, c.Prev())

	gen, _, _ := c.Begin(context.Background())
	require.True(t, c.Apply(gen, page([]string{"a", "b", "c"}, 5, 2), nil))

	assert.False(t, c.Prev())
	assert.True(t, c.Next())
	assert.False(t, c.Next())
	assert.True(t, c.Prev())
	assert.Equal(t, 0, c.Index())
}
