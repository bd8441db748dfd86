package browser

import "sync"

// History keeps back and forward stacks of visited directories.
type History struct {
	back    []string
	forward []string
}

// Visit records that the user left from for a new directory. It clears the forward stack.
func (h *History) Visit(from string) {
	if from == "" {
		return
	}

	h.back = append(h.back, from)
	h.forward = h.forward[:0]
}

// Back pops the previous directory, remembering current for Forward.
func (h *History) Back(current string) (string, bool) {
	if len(h.back) == 0 {
		return "", false
	}

	prev := h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	h.forward = append(h.forward, current)

	return prev, true
}

// Forward pops the next directory, remembering current for Back.
func (h *History) Forward(current string) (string, bool) {
	if len(h.forward) == 0 {
		return "", false
	}

	next := h.forward[len(h.forward)-1]
	h.forward = h.forward[:len(h.forward)-1]
	h.back = append(h.back, current)

	return next, true
}

// CanBack reports whether Back has a directory to return.
func (h *History) CanBack() bool { return len(h.back) > 0 }

// CanForward reports whether Forward has a directory to return.
func (h *History) CanForward() bool { return len(h.forward) > 0 }

// Guard lets only one directory change be in flight at a time.
type Guard struct {
	mu     sync.Mutex
	target string
	busy   bool
}

// TryBegin claims the guard for a change to target. It returns false while
// another change is pending.
func (g *Guard) TryBegin(target string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.busy {
		return false
	}

	g.busy, g.target = true, target

	return true
}

// End releases the guard.
func (g *Guard) End() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.busy, g.target = false, ""
}

// Pending returns the target of the change in flight, if any.
func (g *Guard) Pending() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.target, g.busy
}
