package collections

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"rulesconsole/internal/api"
	"rulesconsole/internal/models"
	"rulesconsole/internal/session"
)

// Snapshot is one consistent view of the three collections. All entries
// come from the same load generation.
type Snapshot struct {
	Users      []models.User
	Devices    []models.Device
	Rules      []models.Rule
	Generation uint64
}

// Cache holds the users, devices and rules backing the current view. Each
// successful load replaces all three collections wholesale; a failed load
// leaves the previous contents untouched.
type Cache struct {
	client  *api.Client
	session *session.Session

	mu         sync.Mutex
	users      []models.User
	devices    []models.Device
	rules      []models.Rule
	generation uint64
}

// NewCache creates an empty cache bound to one client and session
func NewCache(client *api.Client, sess *session.Session) *Cache {
	return &Cache{client: client, session: sess}
}

// Load fetches the three collections concurrently and swaps them in
// atomically once all three succeed. Any single failure discards the whole
// result. Overlapping loads are tolerated: the last one to complete wins.
func (c *Cache) Load(ctx context.Context) error {
	var (
		users   []models.User
		devices []models.Device
		rules   []models.Rule
	)

	// The three fetches share one join point; the caller's context is the
	// only cancellation source so a status-false rejection on one endpoint
	// never masks itself behind a cancellation error on another.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		users, err = c.client.Users(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		devices, err = c.client.Devices(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		// Restricted callers only ever see their own rules
		if c.session.Restricted() {
			rules, err = c.client.RulesForUser(ctx, c.session.UserID)
		} else {
			rules, err = c.client.Rules(ctx)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	c.users = users
	c.devices = devices
	c.rules = rules
	c.generation++
	c.mu.Unlock()
	return nil
}

// Snapshot returns the current collections
func (c *Cache) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Users:      c.users,
		Devices:    c.devices,
		Rules:      c.rules,
		Generation: c.generation,
	}
}
