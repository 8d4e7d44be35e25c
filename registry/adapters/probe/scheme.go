package probe

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"openbare/helpers"
	"openbare/registry/interfaces"
)

// SchemeProber routes each probe by the node URL scheme: http and https go to httpProber,
// grpc goes to grpcProber. Other schemes fail the probe.
func SchemeProber(httpProber, grpcProber interfaces.Prober) interfaces.Prober {
	return &schemeProber{
		http: helpers.NilPanic(httpProber, "probe.scheme.go: http prober is required"),
		grpc: helpers.NilPanic(grpcProber, "probe.scheme.go: grpc prober is required"),
	}
}

type schemeProber struct {
	http interfaces.Prober
	grpc interfaces.Prober
}

func (p *schemeProber) Probe(ctx context.Context, nodeURL string) error {
	u, err := url.Parse(nodeURL)
	if err != nil {
		return fmt.Errorf("probe failed to parse %q, err: %w", nodeURL, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return p.http.Probe(ctx, nodeURL)
	case "grpc":
		return p.grpc.Probe(ctx, nodeURL)
	default:
		return fmt.Errorf("probe: unsupported scheme %q in %q", u.Scheme, nodeURL)
	}
}
