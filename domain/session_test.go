package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionIsExpired(t *testing.T) {
	now := time.Now()

	live := &Session{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, live.IsExpired(now))

	dead := &Session{ExpiresAt: now.Add(-time.Second)}
	assert.True(t, dead.IsExpired(now))

	// Expiry is exclusive: a session expiring exactly now is gone.
	boundary := &Session{ExpiresAt: now}
	assert.True(t, boundary.IsExpired(now))

	var nilSession *Session
	assert.True(t, nilSession.IsExpired(now))

	// Zero reference falls back to the wall clock.
	assert.False(t, live.IsExpired(time.Time{}))
}
