package router

import "sync"

// Navigator keeps the client history and applies the guard to every step
type Navigator struct {
	guard   *Guard
	history []string
	mu      sync.Mutex
}

// NewNavigator creates a navigator with empty history
func NewNavigator(guard *Guard) *Navigator {
	return &Navigator{guard: guard}
}

// Navigate resolves path and pushes the screen actually shown.
// A redirect takes the place of the requested path, so the guarded
// path never enters the history and the previous screen is kept.
func (n *Navigator) Navigate(path string) Decision {
	d := n.guard.Resolve(path)

	n.mu.Lock()
	defer n.mu.Unlock()

	n.history = append(n.history, d.Match.Path)

	return d
}

// Back returns to the previous entry, resolving it through the guard again.
// It reports false when there is nothing to go back to.
func (n *Navigator) Back() (Decision, bool) {
	n.mu.Lock()
	if len(n.history) < 2 {
		n.mu.Unlock()
		return Decision{}, false
	}
	n.history = n.history[:len(n.history)-1]
	prev := n.history[len(n.history)-1]
	n.mu.Unlock()

	d := n.guard.Resolve(prev)
	if d.Redirected() {
		n.mu.Lock()
		n.history[len(n.history)-1] = d.Match.Path
		n.mu.Unlock()
	}

	return d, true
}

// Current returns the path of the screen on top of the history
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.history) == 0 {
		return ""
	}
	return n.history[len(n.history)-1]
}

// History returns a copy of the history, oldest first
func (n *Navigator) History() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.history...)
}
