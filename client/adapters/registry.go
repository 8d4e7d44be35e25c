package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"openbare/client/domain"
	"openbare/client/interfaces"
	"openbare/helpers"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RegistryHTTP creates an interfaces.Registry that reads the registry REST API: GET baseURL/v1/nodes or
// baseURL/v1/nodes/healthy. Panics on empty baseURL or nil client.
//
// baseURL is the registry root (e.g. http://registry:8080) without a trailing slash.
//
// Returns: interfaces.Registry (*registryHTTP).
//
// Called from cmd/main when a registry url is configured.
func RegistryHTTP(baseURL string, client *http.Client) interfaces.Registry {
	return &registryHTTP{
		baseURL: helpers.StrPanic(baseURL, "adapters.registry.go: baseURL is required"),
		client:  helpers.NilPanic(client, "adapters.registry.go: http client is required"),
	}
}

type registryHTTP struct {
	baseURL string
	client  *http.Client
}

// nodesResponse is the JSON shape of the node listing: { "nodes": [ nodeInfo ], "count": n }.
type nodesResponse struct {
	Nodes []nodeInfo `json:"nodes"`
}

type nodeInfo struct {
	ID            string     `json:"id"`
	URL           string     `json:"url"`
	Region        string     `json:"region"`
	Owner         string     `json:"owner"`
	Version       string     `json:"version"`
	Status        string     `json:"status"`
	LatencyMs     int64      `json:"latency_ms"`
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
}

// ListNodes performs one listing request bounded by ctx. Only 200 counts as a listing; an empty
// registry answers 200 with an empty "nodes" array.
//
// Returns: ([]domain.Node, nil) on 200; (nil, error) on any other status, network error or a body
// without the "nodes" field.
//
// Called from service.Discovery.Refresh.
func (r *registryHTTP) ListNodes(ctx context.Context, healthyOnly bool) ([]domain.Node, error) {
	reqURL := r.baseURL + "/v1/nodes"
	if healthyOnly {
		reqURL += "/healthy"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("registry returned %d", resp.StatusCode)
	}

	var raw nodesResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode registry response: %w", err)
	}
	if raw.Nodes == nil {
		return nil, fmt.Errorf("registry response missing nodes field")
	}
	out := make([]domain.Node, 0, len(raw.Nodes))
	for _, n := range raw.Nodes {
		out = append(out, domain.Node{
			ID:            n.ID,
			URL:           n.URL,
			Region:        n.Region,
			Owner:         n.Owner,
			Version:       n.Version,
			Status:        domain.NodeStatus(n.Status),
			LatencyMs:     n.LatencyMs,
			LastHeartbeat: n.LastHeartbeat,
		})
	}
	return out, nil
}
