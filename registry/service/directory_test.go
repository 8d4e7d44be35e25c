package service_test

import (
	"context"
	"testing"
	"time"

	"openbare/helpers"
	"openbare/registry/adapters/memory"
	"openbare/registry/domain"
	"openbare/registry/interfaces"
	"openbare/registry/interfaces/mock"
	"openbare/registry/service"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// steppingClock returns helpers.TestNow advanced by one second per call.
type steppingClock struct{ n int }

func (c *steppingClock) Now() time.Time {
	c.n++
	return helpers.TestNow().Add(time.Duration(c.n) * time.Second)
}

func newTestDirectory(t *testing.T) interfaces.Directory {
	t.Helper()
	return service.NewDirectory(memory.NewNodeStore(), service.NewTimeProvider(helpers.TestNow), log.NewNopLogger())
}

func TestNewDirectory_Panics(t *testing.T) {
	store := memory.NewNodeStore()
	tp := service.NewTimeProvider(helpers.TestNow)
	logger := log.NewNopLogger()

	t.Run("store_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.directory.go: store is required", func() {
			service.NewDirectory(nil, tp, logger)
		})
	})
	t.Run("clock_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.directory.go: time provider is required", func() {
			service.NewDirectory(store, nil, logger)
		})
	})
	t.Run("logger_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.directory.go: logger is required", func() {
			service.NewDirectory(store, tp, nil)
		})
	})
}

func TestDirectory_RegisterNode_Validation(t *testing.T) {
	tests := []struct {
		name      string
		reg       domain.Registration
		wantField string
	}{
		{name: "missing id", reg: domain.Registration{URL: "http://a:8080"}, wantField: "id"},
		{name: "blank id", reg: domain.Registration{ID: "   ", URL: "http://a:8080"}, wantField: "id"},
		{name: "missing url", reg: domain.Registration{ID: "n1"}, wantField: "url"},
		{name: "relative url", reg: domain.Registration{ID: "n1", URL: "node-a:8080/path"}, wantField: "url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			d := newTestDirectory(t)
			_, err := d.RegisterNode(ctx, tt.reg)
			require.Error(t, err)
			assert.True(t, service.IsBadParameterError(err))
			assert.Equal(t, tt.wantField, service.ToRegistryError(err).Field)

			all, err := d.GetAllNodes(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestDirectory_RegisterNode_Idempotent(t *testing.T) {
	ctx := context.Background()
	d := service.NewDirectory(memory.NewNodeStore(), &steppingClock{}, log.NewNopLogger())

	first, err := d.RegisterNode(ctx, domain.Registration{ID: "n1", URL: "http://a:8080/", Region: "eu", Version: "1.0.0"})
	require.NoError(t, err)
	assert.Equal(t, "http://a:8080", first.URL)
	assert.Equal(t, domain.NodeStatusUnknown, first.Status)

	second, err := d.RegisterNode(ctx, domain.Registration{ID: "n1", URL: "http://b:9090", Region: "us", Owner: "ops", Version: "1.1.0"})
	require.NoError(t, err)

	all, err := d.GetAllNodes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "http://b:9090", all[0].URL)
	assert.Equal(t, "us", all[0].Region)
	assert.Equal(t, "ops", all[0].Owner)
	assert.Equal(t, "1.1.0", all[0].Version)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestDirectory_GetNode(t *testing.T) {
	ctx := context.Background()
	d := newTestDirectory(t)
	_, err := d.RegisterNode(ctx, domain.Registration{ID: "n1", URL: "http://a"})
	require.NoError(t, err)

	got, err := d.GetNode(ctx, "n1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "n1", got.ID)

	missing, err := d.GetNode(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDirectory_Filtering(t *testing.T) {
	ctx := context.Background()
	d := newTestDirectory(t)
	for _, reg := range []domain.Registration{
		{ID: "a1", URL: "http://a1", Region: "A"},
		{ID: "a2", URL: "http://a2", Region: "A"},
		{ID: "b1", URL: "http://b1", Region: "B"},
	} {
		_, err := d.RegisterNode(ctx, reg)
		require.NoError(t, err)
	}

	byRegion, err := d.GetNodesByRegion(ctx, "A")
	require.NoError(t, err)
	require.Len(t, byRegion, 2)
	assert.Equal(t, "a1", byRegion[0].ID)
	assert.Equal(t, "a2", byRegion[1].ID)

	none, err := d.GetNodesByRegion(ctx, "C")
	require.NoError(t, err)
	assert.Empty(t, none)

	found, err := d.UpdateNodeStatus(ctx, "a2", domain.NodeStatusHealthy)
	require.NoError(t, err)
	assert.True(t, found)
	for _, id := range []string{"a1", "b1"} {
		_, err := d.UpdateNodeStatus(ctx, id, domain.NodeStatusUnhealthy)
		require.NoError(t, err)
	}

	healthy, err := d.GetHealthyNodes(ctx)
	require.NoError(t, err)
	require.Len(t, healthy, 1)
	assert.Equal(t, "a2", healthy[0].ID)
}

func TestDirectory_AbsentIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	d := newTestDirectory(t)
	_, err := d.RegisterNode(ctx, domain.Registration{ID: "n1", URL: "http://a"})
	require.NoError(t, err)

	ops := map[string]func() (bool, error){
		"status":    func() (bool, error) { return d.UpdateNodeStatus(ctx, "ghost", domain.NodeStatusHealthy) },
		"heartbeat": func() (bool, error) { return d.RecordHeartbeat(ctx, "ghost") },
		"latency":   func() (bool, error) { return d.RecordLatency(ctx, "ghost", 10) },
		"delete":    func() (bool, error) { return d.DeleteNode(ctx, "ghost") },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			found, err := op()
			require.NoError(t, err)
			assert.False(t, found)

			stats, err := d.GetStats(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, stats.Total)
		})
	}
}

func TestDirectory_UpdateNodeStatus_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	d := newTestDirectory(t)
	_, err := d.RegisterNode(ctx, domain.Registration{ID: "n1", URL: "http://a"})
	require.NoError(t, err)

	found, err := d.UpdateNodeStatus(ctx, "n1", domain.NodeStatus("degraded"))
	require.Error(t, err)
	assert.False(t, found)
	assert.True(t, service.IsBadParameterError(err))
	assert.Equal(t, "status", service.ToRegistryError(err).Field)
}

func TestDirectory_HeartbeatAndLatency(t *testing.T) {
	ctx := context.Background()
	d := newTestDirectory(t)
	_, err := d.RegisterNode(ctx, domain.Registration{ID: "n1", URL: "http://a"})
	require.NoError(t, err)

	found, err := d.RecordHeartbeat(ctx, "n1")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = d.RecordLatency(ctx, "n1", 150)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = d.RecordLatency(ctx, "n1", -5)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := d.GetNode(ctx, "n1")
	require.NoError(t, err)
	require.NotNil(t, got.LastHeartbeat)
	assert.Equal(t, helpers.TestNow(), *got.LastHeartbeat)
	assert.Equal(t, int64(150), got.LatencyMs)
}

func TestDirectory_DeleteIsTerminal(t *testing.T) {
	ctx := context.Background()
	d := newTestDirectory(t)
	_, err := d.RegisterNode(ctx, domain.Registration{ID: "n1", URL: "http://a"})
	require.NoError(t, err)

	found, err := d.DeleteNode(ctx, "n1")
	require.NoError(t, err)
	assert.True(t, found)

	got, err := d.GetNode(ctx, "n1")
	require.NoError(t, err)
	assert.Nil(t, got)
	all, err := d.GetAllNodes(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDirectory_StatsConsistency(t *testing.T) {
	ctx := context.Background()
	d := newTestDirectory(t)

	check := func(t *testing.T) {
		t.Helper()
		stats, err := d.GetStats(ctx)
		require.NoError(t, err)
		all, err := d.GetAllNodes(ctx)
		require.NoError(t, err)
		healthy, err := d.GetHealthyNodes(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(all), stats.Total)
		assert.Equal(t, len(healthy), stats.Healthy)
		assert.Equal(t, stats.Total, stats.Healthy+stats.Unhealthy+stats.Unknown)
	}

	steps := []func(){
		func() { _, _ = d.RegisterNode(ctx, domain.Registration{ID: "a", URL: "http://a"}) },
		func() { _, _ = d.RegisterNode(ctx, domain.Registration{ID: "b", URL: "http://b"}) },
		func() { _, _ = d.UpdateNodeStatus(ctx, "a", domain.NodeStatusHealthy) },
		func() { _, _ = d.RegisterNode(ctx, domain.Registration{ID: "c", URL: "http://c"}) },
		func() { _, _ = d.UpdateNodeStatus(ctx, "b", domain.NodeStatusUnhealthy) },
		func() { _, _ = d.RegisterNode(ctx, domain.Registration{ID: "a", URL: "http://a2"}) },
		func() { _, _ = d.DeleteNode(ctx, "a") },
		func() { _, _ = d.UpdateNodeStatus(ctx, "c", domain.NodeStatusHealthy) },
	}
	check(t)
	for _, step := range steps {
		step()
		check(t)
	}

	stats, err := d.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{Total: 2, Healthy: 1, Unhealthy: 1}, stats)
}

func TestDirectory_StoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	store := &mock.NodeStoreMock{
		ListFunc: func(ctx context.Context) ([]domain.Node, error) {
			return nil, service.NewInternalServerError("Redis read index error", assert.AnError)
		},
		GetFunc: func(ctx context.Context, id string) (domain.Node, error) {
			return domain.Node{}, service.NewInternalServerError("Redis read node error", assert.AnError)
		},
		UpdateFunc: func(ctx context.Context, id string, patch domain.NodePatch) error {
			return service.NewInternalServerError("Redis update node error", assert.AnError)
		},
	}
	d := service.NewDirectory(store, service.NewTimeProvider(helpers.TestNow), log.NewNopLogger())

	_, err := d.GetStats(ctx)
	assert.True(t, service.IsInternalServerError(err))
	_, err = d.GetNode(ctx, "n1")
	assert.True(t, service.IsInternalServerError(err))
	found, err := d.RecordHeartbeat(ctx, "n1")
	assert.False(t, found)
	assert.True(t, service.IsInternalServerError(err))

	require.Len(t, store.UpdateCalls(), 1)
	require.NotNil(t, store.UpdateCalls()[0].Patch.LastHeartbeat)
	assert.Equal(t, helpers.TestNow(), store.UpdateCalls()[0].Patch.UpdatedAt)
}
