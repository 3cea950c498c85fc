package mem

import (
	"sync"

	"github.com/google/uuid"

	"github.com/goserg/sportscheduler/auth/users"
)

// Cache keeps authenticated users by id. Accounts are never edited, so entries do not expire.
type Cache struct {
	mu    sync.RWMutex
	users map[uuid.UUID]users.User
}

func New() *Cache {
	return &Cache{
		users: make(map[uuid.UUID]users.User),
	}
}

func (c *Cache) Put(user users.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.users[user.ID] = user
}

func (c *Cache) Get(id uuid.UUID) (users.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	user, ok := c.users[id]
	return user, ok
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.users)
}
