package myredis

import (
	"context"
	"testing"
	"time"

	"openbare/helpers"
	"openbare/registry/adapters/storetest"
	"openbare/registry/domain"
	"openbare/registry/interfaces"
	"openbare/registry/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrefix = "openbare"

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, redis.UniversalClient) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewRedisUniversalClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestNodeStore_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) interfaces.NodeStore {
		_, client := setupTestRedis(t)
		return NewNodeStore(client, testPrefix)
	})
}

func TestNodeStore_Layout(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	store := NewNodeStore(client, testPrefix)

	_, err := store.Upsert(ctx, domain.Registration{ID: "n1", URL: "http://a:8080"}, helpers.TestNow())
	require.NoError(t, err)

	assert.True(t, mr.Exists("openbare:node:n1"))
	members, err := mr.ZMembers("openbare:index")
	require.NoError(t, err)
	assert.Equal(t, []string{"n1"}, members)

	raw, err := mr.Get("openbare:node:n1")
	require.NoError(t, err)
	assert.Contains(t, raw, `"status":"unknown"`)
	assert.Contains(t, raw, `"url":"http://a:8080"`)
}

func TestNodeStore_IDsDoNotCollideWithIndexKeys(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewNodeStore(client, testPrefix)

	for _, id := range []string{"index", "seq"} {
		_, err := store.Upsert(ctx, domain.Registration{ID: id, URL: "http://" + id}, helpers.TestNow())
		require.NoError(t, err)
	}
	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "index", all[0].ID)
	assert.Equal(t, "seq", all[1].ID)
}

func TestNodeStore_ListSkipsVanishedRecords(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	store := NewNodeStore(client, testPrefix)

	for _, id := range []string{"a", "b"} {
		_, err := store.Upsert(ctx, domain.Registration{ID: id, URL: "http://" + id}, helpers.TestNow())
		require.NoError(t, err)
	}
	mr.Del("openbare:node:a")

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].ID)
}

func TestNodeStore_CorruptRecord(t *testing.T) {
	ctx := context.Background()
	mr, client := setupTestRedis(t)
	store := NewNodeStore(client, testPrefix)
	require.NoError(t, mr.Set("openbare:node:bad", "invalid json"))

	_, err := store.Get(ctx, "bad")
	require.Error(t, err)
	assert.True(t, service.IsInternalServerError(err))
}

func TestNodeStore_RedisUnavailable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	mr, client := setupTestRedis(t)
	store := NewNodeStore(client, testPrefix)
	mr.Close()

	_, err := store.Upsert(ctx, domain.Registration{ID: "n1", URL: "http://a"}, helpers.TestNow())
	require.Error(t, err)
	assert.True(t, service.IsInternalServerError(err))

	_, err = store.List(ctx)
	require.Error(t, err)
	assert.True(t, service.IsInternalServerError(err))
}
