package probe

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"openbare/registry/interfaces/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func TestHTTPProber(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no_content", status: http.StatusNoContent},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: true},
		{name: "not_found", status: http.StatusNotFound, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := HTTPProber(srv.Client(), "/health").Probe(context.Background(), srv.URL)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, "/health", gotPath)
		})
	}
}

func TestHTTPProber_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	err := HTTPProber(http.DefaultClient, "/health").Probe(context.Background(), addr)
	require.Error(t, err)
}

func TestHTTPProber_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := HTTPProber(srv.Client(), "/health").Probe(ctx, srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPProber_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "probe.http.go: http client is required", func() { HTTPProber(nil, "/health") })
	assert.PanicsWithValue(t, "probe.http.go: path is required", func() { HTTPProber(http.DefaultClient, "") })
}

func startHealthServer(t *testing.T, status grpc_health_v1.HealthCheckResponse_ServingStatus) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	hs := health.NewServer()
	hs.SetServingStatus("", status)
	grpc_health_v1.RegisterHealthServer(srv, hs)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)
	return "grpc://" + lis.Addr().String()
}

func TestGRPCProber(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("serving", func(t *testing.T) {
		addr := startHealthServer(t, grpc_health_v1.HealthCheckResponse_SERVING)
		require.NoError(t, GRPCProber().Probe(ctx, addr))
	})
	t.Run("not_serving", func(t *testing.T) {
		addr := startHealthServer(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		require.Error(t, GRPCProber().Probe(ctx, addr))
	})
	t.Run("no_host", func(t *testing.T) {
		require.Error(t, GRPCProber().Probe(ctx, "grpc://"))
	})
}

func TestSchemeProber(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantHTTP  int
		wantGRPC  int
		wantError bool
	}{
		{name: "http", url: "http://a:8080", wantHTTP: 1},
		{name: "https", url: "HTTPS://a:8443", wantHTTP: 1},
		{name: "grpc", url: "grpc://a:9090", wantGRPC: 1},
		{name: "unsupported", url: "ftp://a", wantError: true},
		{name: "unparsable", url: "http://a b:%zz", wantError: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpMock := &mock.ProberMock{}
			grpcMock := &mock.ProberMock{}
			err := SchemeProber(httpMock, grpcMock).Probe(context.Background(), tt.url)
			if tt.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Len(t, httpMock.ProbeCalls(), tt.wantHTTP)
			assert.Len(t, grpcMock.ProbeCalls(), tt.wantGRPC)
		})
	}
}
