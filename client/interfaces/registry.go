package interfaces

import (
	"context"

	"openbare/client/domain"
)

// Registry lists the nodes known to the OpenBare registry.
//
// Implemented by adapters.RegistryHTTP. Called from service.Discovery on every refresh.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	// ListNodes returns every node, or only healthy ones when healthyOnly is set, in registration order.
	// An empty fleet is an empty slice and nil error. ctx bounds the whole fetch.
	ListNodes(ctx context.Context, healthyOnly bool) ([]domain.Node, error)
}
