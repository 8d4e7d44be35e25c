package memory

import (
	"context"
	"testing"

	"openbare/helpers"
	"openbare/registry/adapters/storetest"
	"openbare/registry/domain"
	"openbare/registry/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeStore_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) interfaces.NodeStore {
		return NewNodeStore()
	})
}

func TestNodeStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewNodeStore()
	now := helpers.TestNow()
	_, err := s.Upsert(ctx, domain.Registration{ID: "n1", URL: "http://a"}, now)
	require.NoError(t, err)
	require.NoError(t, s.Update(ctx, "n1", domain.NodePatch{LastHeartbeat: &now, UpdatedAt: now}))

	got, err := s.Get(ctx, "n1")
	require.NoError(t, err)
	got.URL = "http://mutated"
	*got.LastHeartbeat = now.AddDate(1, 0, 0)

	again, err := s.Get(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "http://a", again.URL)
	assert.True(t, now.Equal(*again.LastHeartbeat))
}
