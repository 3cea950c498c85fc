package mem

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/goserg/sportscheduler/auth/users"
	"github.com/goserg/sportscheduler/internal/domain"
)

func TestCache(t *testing.T) {
	c := New()
	user := users.User{ID: uuid.New(), FirstName: "John", Role: domain.RolePlayer}

	_, ok := c.Get(user.ID)
	assert.False(t, ok)

	c.Put(user)
	got, ok := c.Get(user.ID)
	assert.True(t, ok)
	assert.Equal(t, user, got)
	assert.Equal(t, 1, c.Len())
}

func TestCacheConcurrent(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user := users.User{ID: uuid.New()}
			c.Put(user)
			_, _ = c.Get(user.ID)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, c.Len())
}
