package interfaces

import (
	"context"
	"time"

	"openbare/registry/domain"
)

// NodeStore is the storage backend behind the node directory. Implementations: adapters/memory
// (tests, single-process), adapters/myredis and adapters/mypostgres (durable). All of them expose
// identical semantics; the backend is chosen explicitly in cmd/main.
//
//go:generate moq -stub -out mock/node_store.go -pkg mock . NodeStore
type NodeStore interface {
	// Upsert inserts a node keyed by reg.ID or updates url/region/owner/version in place.
	// New nodes start with status unknown and CreatedAt = UpdatedAt = now; existing nodes keep
	// CreatedAt, Status, LatencyMs and LastHeartbeat.
	// Returns:
	// 1) (node, nil) with the stored record;
	// 2) (zero, internal_server_error) when the storage write fails.
	Upsert(ctx context.Context, reg domain.Registration, now time.Time) (domain.Node, error)

	// Get returns one node.
	// Returns:
	// 1) (node, nil) when present;
	// 2) (zero, entity_not_found) when absent;
	// 3) (zero, internal_server_error) on storage failure.
	Get(ctx context.Context, id string) (domain.Node, error)

	// List returns every node ordered by creation (oldest first). Empty directory yields (empty, nil).
	List(ctx context.Context) ([]domain.Node, error)

	// Update applies patch to one node atomically.
	// Returns nil on success, entity_not_found when absent, internal_server_error on storage failure.
	Update(ctx context.Context, id string, patch domain.NodePatch) error

	// Delete removes one node.
	// Returns nil on success, entity_not_found when absent, internal_server_error on storage failure.
	Delete(ctx context.Context, id string) error
}
