package interfaces

import (
	"context"

	"openbare/registry/domain"
)

// Directory is the registry's source of truth for fleet membership and last-known status.
// Absent ids are reported through return values (nil node, found=false), never as errors.
// Implemented by service.directory; used by handlers.HTTPServer and service.HealthChecker.
//
//go:generate moq -stub -out mock/directory.go -pkg mock . Directory
type Directory interface {
	// RegisterNode upserts a node by id. Missing id or url yields bad_parameter and nothing is written.
	RegisterNode(ctx context.Context, reg domain.Registration) (domain.Node, error)
	// GetNode returns (nil, nil) when the id is unknown.
	GetNode(ctx context.Context, id string) (*domain.Node, error)
	GetAllNodes(ctx context.Context) ([]domain.Node, error)
	GetNodesByRegion(ctx context.Context, region string) ([]domain.Node, error)
	GetHealthyNodes(ctx context.Context) ([]domain.Node, error)
	// UpdateNodeStatus sets status and bumps updated_at. Invalid status yields bad_parameter.
	UpdateNodeStatus(ctx context.Context, id string, status domain.NodeStatus) (found bool, err error)
	// RecordHeartbeat sets last_heartbeat to now.
	RecordHeartbeat(ctx context.Context, id string) (found bool, err error)
	// RecordLatency overwrites the node's last observed probe latency. Negative values are ignored.
	RecordLatency(ctx context.Context, id string, latencyMs int64) (found bool, err error)
	DeleteNode(ctx context.Context, id string) (found bool, err error)
	// GetStats counts nodes per status over the current snapshot.
	GetStats(ctx context.Context) (domain.Stats, error)
}
