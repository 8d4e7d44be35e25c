package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"openbare/helpers"
	"openbare/registry/interfaces"
)

// HTTPProber checks a node by GET {nodeURL}{path}. Any 2xx answer is healthy.
// Panics on empty path or nil client.
func HTTPProber(client *http.Client, path string) interfaces.Prober {
	return &httpProber{
		client: helpers.NilPanic(client, "probe.http.go: http client is required"),
		path:   helpers.StrPanic(path, "probe.http.go: path is required"),
	}
}

type httpProber struct {
	client *http.Client
	path   string
}

func (p *httpProber) Probe(ctx context.Context, nodeURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, nodeURL+p.path, nil)
	if err != nil {
		return fmt.Errorf("probe failed to build request for %q, err: %w", nodeURL, err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("node %q answered %d", nodeURL, resp.StatusCode)
	}
	return nil
}
