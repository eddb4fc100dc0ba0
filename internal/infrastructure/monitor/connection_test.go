package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshWithoutDependencies(t *testing.T) {
	// Nil clients read as unreachable dependencies.
	m := New(nil, nil, time.Second, nil)
	m.refresh()

	assert.False(t, m.IsOnline())

	status := m.GetStatus()
	assert.False(t, status.PostgreSQL)
	assert.False(t, status.Redis)
	assert.False(t, status.LastCheck.IsZero())
}

func TestIsOnlineRequiresBothDependencies(t *testing.T) {
	m := New(nil, nil, time.Second, nil)

	m.mu.Lock()
	m.status = Status{PostgreSQL: true, Redis: false, LastCheck: time.Now()}
	m.mu.Unlock()
	assert.False(t, m.IsOnline())

	m.mu.Lock()
	m.status = Status{PostgreSQL: true, Redis: true, LastCheck: time.Now()}
	m.mu.Unlock()
	assert.True(t, m.IsOnline())
}
