package flow

import (
	"sync"
	"time"
)

// AutoAdvanceDelay is how long a completed step stays on screen before the
// quiz moves on by itself.
const AutoAdvanceDelay = time.Second

// Ticket identifies one scheduled auto-advance.
type Ticket uint64

// AutoAdvance is a cancellable delayed transition. Each Schedule supersedes
// the previous one, and Cancel invalidates whatever is pending, so a tick
// that arrives after navigation or teardown is ignored.
type AutoAdvance struct {
	mu      sync.Mutex
	gen     Ticket
	pending bool
}

// Schedule returns a ticket for a new pending advance.
func (a *AutoAdvance) Schedule() Ticket {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	a.pending = true
	return a.gen
}

// Cancel drops any pending advance.
func (a *AutoAdvance) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++
	a.pending = false
}

// Pending reports whether an advance is scheduled.
func (a *AutoAdvance) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending
}

// Fire consumes t. It returns true only for the most recent ticket that
// has been neither cancelled nor fired.
func (a *AutoAdvance) Fire(t Ticket) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.pending || t != a.gen {
		return false
	}
	a.pending = false
	return true
}
