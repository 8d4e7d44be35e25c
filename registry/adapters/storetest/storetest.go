// Package storetest holds the behaviour every interfaces.NodeStore implementation must share.
// Backends call Run from their own tests with a constructor for an empty store.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"openbare/helpers"
	"openbare/registry/domain"
	"openbare/registry/interfaces"
	"openbare/registry/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run executes the shared NodeStore contract. newStore must return an empty store.
func Run(t *testing.T, newStore func(t *testing.T) interfaces.NodeStore) {
	t.Helper()
	now := helpers.TestNow()

	t.Run("upsert_creates_unknown_node", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		got, err := s.Upsert(ctx, domain.Registration{ID: "n1", URL: "http://a:8080", Region: "eu", Owner: "ops", Version: "1.0.0"}, now)
		require.NoError(t, err)
		assert.Equal(t, "n1", got.ID)
		assert.Equal(t, "http://a:8080", got.URL)
		assert.Equal(t, "eu", got.Region)
		assert.Equal(t, "ops", got.Owner)
		assert.Equal(t, "1.0.0", got.Version)
		assert.Equal(t, domain.NodeStatusUnknown, got.Status)
		assert.Nil(t, got.LastHeartbeat)
		assert.True(t, now.Equal(got.CreatedAt))
		assert.True(t, now.Equal(got.UpdatedAt))
	})

	t.Run("reregistration_updates_in_place", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		_, err := s.Upsert(ctx, domain.Registration{ID: "n1", URL: "http://a:8080", Region: "eu", Version: "1.0.0"}, now)
		require.NoError(t, err)
		status := domain.NodeStatusHealthy
		require.NoError(t, s.Update(ctx, "n1", domain.NodePatch{Status: &status, UpdatedAt: now}))

		later := now.Add(time.Minute)
		got, err := s.Upsert(ctx, domain.Registration{ID: "n1", URL: "http://b:9090", Region: "us", Owner: "new", Version: "2.0.0"}, later)
		require.NoError(t, err)
		assert.Equal(t, "http://b:9090", got.URL)
		assert.Equal(t, "us", got.Region)
		assert.Equal(t, "new", got.Owner)
		assert.Equal(t, "2.0.0", got.Version)
		assert.Equal(t, domain.NodeStatusHealthy, got.Status)
		assert.True(t, now.Equal(got.CreatedAt))
		assert.True(t, later.Equal(got.UpdatedAt))

		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("get_absent_is_entity_not_found", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
		regErr := service.ToRegistryError(err)
		require.NotNil(t, regErr)
		assert.Equal(t, "missing", regErr.NodeID)
	})

	t.Run("list_empty_and_insertion_ordered", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		all, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		for i, id := range []string{"c", "a", "b"} {
			_, err := s.Upsert(ctx, domain.Registration{ID: id, URL: "http://" + id}, now.Add(time.Duration(i)*time.Second))
			require.NoError(t, err)
		}
		all, err = s.List(ctx)
		require.NoError(t, err)
		ids := make([]string, 0, len(all))
		for _, n := range all {
			ids = append(ids, n.ID)
		}
		assert.Equal(t, []string{"c", "a", "b"}, ids)
	})

	t.Run("update_applies_patch", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		_, err := s.Upsert(ctx, domain.Registration{ID: "n1", URL: "http://a"}, now)
		require.NoError(t, err)

		hb := now.Add(5 * time.Second)
		status := domain.NodeStatusUnhealthy
		require.NoError(t, s.Update(ctx, "n1", domain.NodePatch{
			Status:        &status,
			LatencyMs:     helpers.Ptr(int64(42)),
			LastHeartbeat: &hb,
			UpdatedAt:     hb,
		}))
		got, err := s.Get(ctx, "n1")
		require.NoError(t, err)
		assert.Equal(t, domain.NodeStatusUnhealthy, got.Status)
		assert.Equal(t, int64(42), got.LatencyMs)
		require.NotNil(t, got.LastHeartbeat)
		assert.True(t, hb.Equal(*got.LastHeartbeat))
		assert.True(t, hb.Equal(got.UpdatedAt))
		assert.True(t, now.Equal(got.CreatedAt))

		// nil fields are left untouched
		require.NoError(t, s.Update(ctx, "n1", domain.NodePatch{UpdatedAt: hb.Add(time.Second)}))
		got, err = s.Get(ctx, "n1")
		require.NoError(t, err)
		assert.Equal(t, domain.NodeStatusUnhealthy, got.Status)
		assert.Equal(t, int64(42), got.LatencyMs)
	})

	t.Run("update_absent_is_entity_not_found", func(t *testing.T) {
		s := newStore(t)
		err := s.Update(context.Background(), "missing", domain.NodePatch{UpdatedAt: now})
		assert.True(t, service.IsEntityNotFoundError(err))
	})

	t.Run("delete_is_terminal", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		for _, id := range []string{"a", "b"} {
			_, err := s.Upsert(ctx, domain.Registration{ID: id, URL: "http://" + id}, now)
			require.NoError(t, err)
		}
		require.NoError(t, s.Delete(ctx, "a"))

		_, err := s.Get(ctx, "a")
		assert.True(t, service.IsEntityNotFoundError(err))
		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "b", all[0].ID)

		err = s.Delete(ctx, "a")
		assert.True(t, service.IsEntityNotFoundError(err))
	})

	t.Run("concurrent_writes_to_distinct_keys", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		const n = 20
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				id := fmt.Sprintf("node-%02d", i)
				_, err := s.Upsert(ctx, domain.Registration{ID: id, URL: "http://" + id}, now)
				assert.NoError(t, err)
				status := domain.NodeStatusHealthy
				assert.NoError(t, s.Update(ctx, id, domain.NodePatch{Status: &status, UpdatedAt: now}))
			}(i)
		}
		wg.Wait()

		all, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, n)
		for _, node := range all {
			assert.Equal(t, domain.NodeStatusHealthy, node.Status)
		}
	})
}
