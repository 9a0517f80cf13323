package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/volunteer-hub/internal/domain"
)

func TestMemoryRegistrySeedsOncePerSession(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	st, err := reg.Get(ctx, "session-a")
	require.NoError(t, err)
	_, err = st.CreateUser(domain.User{Email: "a@x.com"})
	require.NoError(t, err)

	// Re-resolving the same session returns the same store with its data;
	// seed rows are not duplicated.
	again, err := reg.Get(ctx, "session-a")
	require.NoError(t, err)
	assert.Same(t, st, again)
	assert.Len(t, again.Snapshot().Events, 3)
	_, found := again.UserByEmail("a@x.com")
	assert.True(t, found)
}

func TestMemoryRegistryIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	a, err := reg.Get(ctx, "session-a")
	require.NoError(t, err)
	_, err = a.CreateUser(domain.User{Email: "a@x.com"})
	require.NoError(t, err)

	b, err := reg.Get(ctx, "session-b")
	require.NoError(t, err)
	_, found := b.UserByEmail("a@x.com")
	assert.False(t, found)

	// Ids advance independently per session.
	user, err := b.CreateUser(domain.User{Email: "b@x.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
}
