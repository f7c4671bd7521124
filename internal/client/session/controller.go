// Package session exposes the current gateway session as an observable value.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/iudanet/umkmhub/internal/models"
)

//go:generate moq -out source_mock.go . Source

// Source provides the current session and notifies about changes.
// The auth service implements it.
type Source interface {
	// CurrentSession returns the stored session, refreshing it when needed.
	// It returns nil without error when there is no usable session.
	CurrentSession(ctx context.Context) (*models.Session, error)

	// OnChange registers fn for every session change and returns its release function
	OnChange(fn func(*models.Session)) func()
}

// Controller holds the current session and fans out changes to subscribers
type Controller struct {
	current     *models.Session
	subscribers map[int]func(*models.Session)
	release     func()
	nextID      int
	mu          sync.RWMutex
}

// NewController creates a controller with no session
func NewController() *Controller {
	return &Controller{subscribers: make(map[int]func(*models.Session))}
}

// Init starts mirroring the changes of src until Close is called and loads
// its current session. The subscription survives a failed load, so a later
// sign in still reaches the controller.
func (c *Controller) Init(ctx context.Context, src Source) error {
	release := src.OnChange(c.Set)

	c.mu.Lock()
	if c.release != nil {
		c.release()
	}
	c.release = release
	c.mu.Unlock()

	sess, err := src.CurrentSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	c.Set(sess)
	return nil
}

// Close releases the subscription on the source
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.release != nil {
		c.release()
		c.release = nil
	}
}

// Current returns the current session or nil
func (c *Controller) Current() *models.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// IsAuthenticated reports whether a session is present
func (c *Controller) IsAuthenticated() bool {
	return c.Current() != nil
}

// Set replaces the current session and notifies subscribers
func (c *Controller) Set(sess *models.Session) {
	c.mu.Lock()
	c.current = sess
	subs := make([]func(*models.Session), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(sess)
	}
}

// Subscribe registers fn for session changes. The returned function
// unsubscribes and may be called more than once.
func (c *Controller) Subscribe(fn func(*models.Session)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers, id)
			c.mu.Unlock()
		})
	}
}

// Watch delivers session changes on a channel until ctx is done.
// The subscription is released and the channel closed when ctx ends.
// A slow reader only sees the latest change.
func (c *Controller) Watch(ctx context.Context) <-chan *models.Session {
	out := make(chan *models.Session, 1)
	var mu sync.Mutex
	closed := false

	unsubscribe := c.Subscribe(func(sess *models.Session) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		// вытесняем непрочитанное значение
		select {
		case <-out:
		default:
		}
		out <- sess
	})

	go func() {
		<-ctx.Done()
		unsubscribe()
		mu.Lock()
		closed = true
		close(out)
		mu.Unlock()
	}()

	return out
}
