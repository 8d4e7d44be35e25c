package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"openbare/client/domain"
	"openbare/client/service"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryHTTP_Panics(t *testing.T) {
	t.Run("empty_base_url", func(t *testing.T) {
		assert.PanicsWithValue(t, "adapters.registry.go: baseURL is required", func() {
			RegistryHTTP("", http.DefaultClient)
		})
	})
	t.Run("nil_client", func(t *testing.T) {
		assert.PanicsWithValue(t, "adapters.registry.go: http client is required", func() {
			RegistryHTTP("http://registry", nil)
		})
	})
}

func TestRegistryHTTP_ListNodes(t *testing.T) {
	const listing = `{"nodes":[
		{"id":"n1","url":"http://n1:8080","region":"eu","owner":"ops","version":"1.2.0","status":"healthy","latency_ms":12,
		 "last_heartbeat":"2026-02-11T12:00:00Z","created_at":"2026-02-11T11:00:00Z","updated_at":"2026-02-11T12:00:00Z"},
		{"id":"n2","url":"http://n2:8080","region":"","owner":"","version":"","status":"unknown","latency_ms":0,
		 "created_at":"2026-02-11T11:00:00Z","updated_at":"2026-02-11T11:00:00Z"}
	],"count":2}`

	tests := []struct {
		name        string
		healthyOnly bool
		status      int
		body        string
		wantPath    string
		wantLen     int
		wantErr     string
	}{
		{name: "all", status: http.StatusOK, body: listing, wantPath: "/v1/nodes", wantLen: 2},
		{name: "healthy_only", healthyOnly: true, status: http.StatusOK, body: `{"nodes":[],"count":0}`, wantPath: "/v1/nodes/healthy"},
		{name: "not_found", status: http.StatusNotFound, body: `{"error":{"code":"entity_not_found","message":"x"}}`, wantPath: "/v1/nodes", wantErr: "registry returned 404"},
		{name: "server_error", status: http.StatusInternalServerError, body: `{}`, wantPath: "/v1/nodes", wantErr: "registry returned 500"},
		{name: "missing_nodes_field", status: http.StatusOK, body: `{"count":0}`, wantPath: "/v1/nodes", wantErr: "missing nodes field"},
		{name: "invalid_json", status: http.StatusOK, body: `{"nodes":`, wantPath: "/v1/nodes", wantErr: "decode registry response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			nodes, err := RegistryHTTP(srv.URL, srv.Client()).ListNodes(context.Background(), tt.healthyOnly)
			assert.Equal(t, tt.wantPath, gotPath)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, nodes)
			assert.Len(t, nodes, tt.wantLen)
		})
	}
}

func TestRegistryHTTP_ListNodesMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"nodes":[{"id":"n1","url":"http://n1:8080","region":"eu","owner":"ops","version":"1.2.0",
			"status":"healthy","latency_ms":12,"last_heartbeat":"2026-02-11T12:00:00Z"}],"count":1}`))
	}))
	defer srv.Close()

	nodes, err := RegistryHTTP(srv.URL, srv.Client()).ListNodes(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	hb := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	n := nodes[0]
	assert.Equal(t, "n1", n.ID)
	assert.Equal(t, "http://n1:8080", n.URL)
	assert.Equal(t, "eu", n.Region)
	assert.Equal(t, "ops", n.Owner)
	assert.Equal(t, "1.2.0", n.Version)
	assert.Equal(t, domain.NodeStatusHealthy, n.Status)
	assert.EqualValues(t, 12, n.LatencyMs)
	require.NotNil(t, n.LastHeartbeat)
	assert.True(t, n.LastHeartbeat.Equal(hb))
}

func TestRegistryHTTP_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := RegistryHTTP(srv.URL, srv.Client()).ListNodes(ctx, false)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRegistryHTTP_NotFoundKeepsDiscoveryCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) > 1 {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":"entity_not_found","message":"no such route"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"nodes":[{"id":"n1","url":"http://n1:8080","status":"healthy","latency_ms":3,
			"created_at":"2026-02-11T11:00:00Z","updated_at":"2026-02-11T11:00:00Z"}],"count":1}`))
	}))
	defer srv.Close()

	d := service.NewDiscovery(RegistryHTTP(srv.URL, srv.Client()), service.DiscoveryConfig{}, log.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, d.Refresh(ctx))
	require.Len(t, d.GetNodes(), 1)

	err := d.Refresh(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registry returned 404")

	nodes := d.GetNodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, "n1", nodes[0].ID)
	stats := d.Stats()
	assert.EqualValues(t, 1, stats.Failures)
	assert.Equal(t, 1, stats.Nodes)
}
