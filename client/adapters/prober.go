package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"openbare/client/interfaces"
	"openbare/helpers"
)

// HTTPProber creates an interfaces.Prober that GETs serverURL+path; any 2xx is healthy.
// Panics on nil client or empty path.
func HTTPProber(client *http.Client, path string) interfaces.Prober {
	return &httpProber{
		client: helpers.NilPanic(client, "adapters.prober.go: http client is required"),
		path:   helpers.StrPanic(path, "adapters.prober.go: path is required"),
	}
}

type httpProber struct {
	client *http.Client
	path   string
}

func (p *httpProber) Probe(ctx context.Context, serverURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(serverURL, "/")+p.path, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("health endpoint returned %d", resp.StatusCode)
	}
	return nil
}
