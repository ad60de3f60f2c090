// Package listctl owns the fetch lifecycle of a filtered, paginated list.
//
// The controller never talks to the network itself. A view calls Begin to
// open a fetch attempt, performs the request with the returned context, and
// hands the outcome to Apply together with the generation Begin issued.
// Responses from superseded attempts are discarded, so a slow early request
// can never overwrite the result of a later one no matter how fast the user
// drives the filters.
//
// All methods are meant for a single event loop (the Bubble Tea update
// cycle); the controller is not safe for concurrent mutation.
package listctl

import "context"

// PageRequest is the page window for one fetch attempt.
type PageRequest struct {
	Index int
	Size  int
}

// Result is the payload of a completed fetch.
type Result[T any] struct {
	Items         []T
	TotalElements int
	TotalPages    int
}

// Controller tracks one paginated collection.
type Controller[T any] struct {
	size int

	index         int
	totalElements int
	totalPages    int
	totalKnown    bool

	items   []T
	loaded  bool
	loading bool
	lastErr error

	gen    uint64
	cancel context.CancelFunc
}

// New creates a controller with a fixed page size.
func New[T any](size int) *Controller[T] {
	if size <= 0 {
		size = 1
	}
	return &Controller[T]{size: size}
}

// Begin opens a fetch attempt: it cancels any in-flight attempt, advances the
// generation, clamps the page index against the last known totals, and marks
// the controller loading. The caller must pass the returned generation back
// to Apply and issue the request with the returned context.
func (c *Controller[T]) Begin(parent context.Context) (uint64, context.Context, PageRequest) {
	if c.cancel != nil {
		c.cancel()
	}
	c.clampIndex()
	c.gen++
	c.loading = true

	ctx, cancel := context.WithCancel(parent)
	c.cancel = cancel
	return c.gen, ctx, PageRequest{Index: c.index, Size: c.size}
}

// Apply commits the outcome of a fetch attempt. It reports whether the
// outcome was current; stale generations are dropped without any state
// change. Errors clear the loading flag but leave the previous snapshot in
// place, so the user keeps the last good page.
func (c *Controller[T]) Apply(gen uint64, res Result[T], err error) bool {
	if gen != c.gen {
		return false
	}
	c.loading = false
	if c.cancel != nil {
		// The attempt is settled; release its context.
		c.cancel()
		c.cancel = nil
	}
	if err != nil {
		c.lastErr = err
		return true
	}
	c.lastErr = nil
	c.loaded = true
	c.items = res.Items
	c.totalElements = res.TotalElements
	c.totalPages = res.TotalPages
	c.totalKnown = true
	c.clampIndex()
	return true
}

// ResetPage returns to the first page. Called on every filter or date-range
// change: the old page index is meaningless under new criteria.
func (c *Controller[T]) ResetPage() {
	c.index = 0
}

// Next advances one page, clamped to the last page. Reports whether the
// index moved.
func (c *Controller[T]) Next() bool {
	if !c.totalKnown || c.index+1 >= c.totalPages {
		return false
	}
	c.index++
	return true
}

// Prev retreats one page, clamped to the first page. Reports whether the
// index moved.
func (c *Controller[T]) Prev() bool {
	if c.index == 0 {
		return false
	}
	c.index--
	return true
}

func (c *Controller[T]) clampIndex() {
	if c.index < 0 {
		c.index = 0
	}
	if !c.totalKnown {
		return
	}
	if c.index >= c.totalPages {
		c.index = c.totalPages - 1
		if c.index < 0 {
			c.index = 0
		}
	}
}

// Items returns the current page's items.
func (c *Controller[T]) Items() []T { return c.items }

// Index returns the 0-based page index.
func (c *Controller[T]) Index() int { return c.index }

// Size returns the fixed page size.
func (c *Controller[T]) Size() int { return c.size }

// TotalElements returns the collection size from the last response.
func (c *Controller[T]) TotalElements() int { return c.totalElements }

// TotalPages returns the page count from the last response.
func (c *Controller[T]) TotalPages() int { return c.totalPages }

// Loading reports whether a fetch attempt is outstanding.
func (c *Controller[T]) Loading() bool { return c.loading }

// Loaded reports whether any fetch has ever succeeded.
func (c *Controller[T]) Loaded() bool { return c.loaded }

// Err returns the error of the last completed attempt, nil after a success.
func (c *Controller[T]) Err() error { return c.lastErr }

// HasPrev reports whether a previous page exists.
func (c *Controller[T]) HasPrev() bool { return c.index > 0 }

// HasNext reports whether a following page exists.
func (c *Controller[T]) HasNext() bool { return c.totalKnown && c.index+1 < c.totalPages }
