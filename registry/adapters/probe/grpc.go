package probe

import (
	"context"
	"fmt"
	"net/url"

	"openbare/registry/interfaces"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// GRPCProber checks a grpc://host:port node with the standard grpc.health.v1 Check call on the
// empty service name. Only SERVING is healthy. Without options the connection is plaintext.
func GRPCProber(opts ...grpc.DialOption) interfaces.Prober {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	return &grpcProber{opts: opts}
}

type grpcProber struct {
	opts []grpc.DialOption
}

func (p *grpcProber) Probe(ctx context.Context, nodeURL string) error {
	u, err := url.Parse(nodeURL)
	if err != nil {
		return fmt.Errorf("probe failed to parse %q, err: %w", nodeURL, err)
	}
	if u.Host == "" {
		return fmt.Errorf("probe: %q has no host", nodeURL)
	}

	conn, err := grpc.NewClient(u.Host, p.opts...)
	if err != nil {
		return fmt.Errorf("probe failed to create grpc client for %q, err: %w", nodeURL, err)
	}
	defer conn.Close()

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		return err
	}
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("node %q reports %s", nodeURL, resp.GetStatus())
	}
	return nil
}
