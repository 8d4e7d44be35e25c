package adapters

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"openbare/client/domain"
	"openbare/client/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransport_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "adapters.transport.go: http client is required", func() {
		HTTPTransport(nil)
	})
}

func TestHTTPTransport_Relay(t *testing.T) {
	var (
		gotMethod, gotPath, gotTarget, gotHeaders string
		gotBody                                   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotTarget = r.Header.Get(HeaderBareURL)
		gotHeaders = r.Header.Get(HeaderBareHeaders)
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set(HeaderBareStatus, "201")
		w.Header().Set(HeaderBareHeaders, `{"Content-Type":["text/plain"]}`)
		_, _ = w.Write([]byte("created"))
	}))
	defer srv.Close()

	req := domain.Request{
		Method: http.MethodPost,
		URL:    "https://example.com/items",
		Header: http.Header{"Accept": {"text/plain"}},
		Body:   []byte("payload"),
	}
	resp, err := HTTPTransport(srv.Client()).Do(context.Background(), srv.URL+"/", req)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v1/", gotPath)
	assert.Equal(t, "https://example.com/items", gotTarget)
	assert.JSONEq(t, `{"Accept":["text/plain"]}`, gotHeaders)
	assert.Equal(t, "payload", string(gotBody))

	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	assert.Equal(t, "created", string(resp.Body))
}

func TestHTTPTransport_RelayedErrorStatusIsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderBareStatus, "404")
		_, _ = w.Write([]byte("remote not found"))
	}))
	defer srv.Close()

	resp, err := HTTPTransport(srv.Client()).Do(context.Background(), srv.URL, domain.Request{URL: "https://example.com/missing"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Status)
}

func TestHTTPTransport_ServerErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		header      map[string]string
		body        string
		wantStatus  int
		wantMessage string
		retryable   bool
	}{
		{name: "json_message", status: http.StatusBadRequest, body: `{"message":"missing X-Bare-URL"}`, wantStatus: 400, wantMessage: "missing X-Bare-URL"},
		{name: "plain_text", status: http.StatusBadGateway, body: "upstream unreachable\n", wantStatus: 502, wantMessage: "upstream unreachable", retryable: true},
		{name: "empty_body", status: http.StatusServiceUnavailable, wantStatus: 503, wantMessage: "Service Unavailable", retryable: true},
		{name: "rate_limited", status: http.StatusTooManyRequests, wantStatus: 429, wantMessage: "Too Many Requests", retryable: true},
		{name: "invalid_relayed_status", status: http.StatusOK, header: map[string]string{HeaderBareStatus: "abc"}, wantStatus: 502, wantMessage: "invalid X-Bare-Status", retryable: true},
		{name: "invalid_relayed_headers", status: http.StatusOK, header: map[string]string{HeaderBareStatus: "200", HeaderBareHeaders: "{"}, wantStatus: 502, wantMessage: "invalid X-Bare-Headers", retryable: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := HTTPTransport(srv.Client()).Do(context.Background(), srv.URL, domain.Request{URL: "https://example.com/"})
			require.Error(t, err)
			be := service.ToBareError(err)
			require.NotNil(t, be)
			assert.Equal(t, tt.wantStatus, be.Status)
			assert.Contains(t, be.Message, tt.wantMessage)
			assert.Equal(t, "BareError", be.Name())
			assert.Equal(t, tt.retryable, service.IsRetryable(err))
		})
	}
}

func TestHTTPTransport_Unreachable(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	_, err = HTTPTransport(http.DefaultClient).Do(context.Background(), "http://"+addr, domain.Request{URL: "https://example.com/"})
	require.Error(t, err)
	assert.Nil(t, service.ToBareError(err))
	assert.True(t, service.IsRetryable(err))

	var opErr *net.OpError
	assert.True(t, errors.As(err, &opErr))
}
