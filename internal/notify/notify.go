// Package notify keeps the process-wide list of transient user notices.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/frontdesk/internal/constants"
)

// Notice is one transient message shown to the user.
type Notice struct {
	ID      string
	Kind    constants.NoticeKind
	Message string
	Posted  time.Time
}

// Center is the process-wide notice list. One Center is constructed in main
// and injected into every surface; notices auto-dismiss after a fixed
// duration and can be dismissed early.
type Center struct {
	mu       sync.Mutex
	duration time.Duration
	notices  []Notice
	now      func() time.Time
}

// NewCenter creates a Center with the given auto-dismiss duration. A zero
// duration selects the default.
func NewCenter(duration time.Duration) *Center {
	if duration <= 0 {
		duration = constants.NoticeDuration
	}
	return &Center{duration: duration, now: time.Now}
}

// Push appends a notice and returns its id.
func (c *Center) Push(kind constants.NoticeKind, message string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := Notice{
		ID:      uuid.New().String(),
		Kind:    kind,
		Message: message,
		Posted:  c.now(),
	}
	c.notices = append(c.notices, n)
	return n.ID
}

// Success pushes a success notice.
func (c *Center) Success(message string) string {
	return c.Push(constants.NoticeSuccess, message)
}

// Error pushes an error notice.
func (c *Center) Error(message string) string {
	return c.Push(constants.NoticeError, message)
}

// Info pushes an info notice.
func (c *Center) Info(message string) string {
	return c.Push(constants.NoticeInfo, message)
}

// Dismiss removes the notice with the given id, if present.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.notices[:0]
	for _, n := range c.notices {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.notices = kept
}

// Expire drops every notice older than the auto-dismiss duration and reports
// whether anything changed.
func (c *Center) Expire(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.notices[:0]
	for _, n := range c.notices {
		if now.Sub(n.Posted) < c.duration {
			kept = append(kept, n)
		}
	}
	changed := len(kept) != len(c.notices)
	c.notices = kept
	return changed
}

// Active returns the current notices in posting order.
func (c *Center) Active() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}
