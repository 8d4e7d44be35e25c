package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProber_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "adapters.prober.go: http client is required", func() {
		HTTPProber(nil, "/health")
	})
	assert.PanicsWithValue(t, "adapters.prober.go: path is required", func() {
		HTTPProber(http.DefaultClient, "")
	})
}

func TestHTTPProber_Probe(t *testing.T) {
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

			err := HTTPProber(srv.Client(), "/health").Probe(context.Background(), srv.URL+"/")
			assert.Equal(t, "/health", gotPath)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
