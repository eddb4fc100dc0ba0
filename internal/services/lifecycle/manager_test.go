package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownRunsHooksInReverseOrder(t *testing.T) {
	m := New(time.Second, nil)

	var order []string
	m.Register("database", func(context.Context) error {
		order = append(order, "database")
		return nil
	})
	m.Register("server", func(context.Context) error {
		order = append(order, "server")
		return nil
	})

	require.NoError(t, m.Shutdown(context.Background()))
	assert.Equal(t, []string{"server", "database"}, order)
}

func TestShutdownCollectsFailures(t *testing.T) {
	m := New(time.Second, nil)

	bad := errors.New("pool already closed")
	ran := false
	m.Register("first", func(context.Context) error {
		ran = true
		return nil
	})
	m.Register("second", func(context.Context) error { return bad })

	err := m.Shutdown(context.Background())
	assert.ErrorIs(t, err, bad)
	// A failing hook does not stop the remaining ones.
	assert.True(t, ran)
}

func TestRegisterIgnoresNil(t *testing.T) {
	m := New(time.Second, nil)
	m.Register("noop", nil)
	assert.NoError(t, m.Shutdown(context.Background()))
}
