package interfaces

import "context"

// Prober performs one liveness probe against a node address. The caller bounds ctx with the
// probe timeout and measures latency; a nil error means the node answered healthy.
//
//go:generate moq -stub -out mock/prober.go -pkg mock . Prober
type Prober interface {
	Probe(ctx context.Context, nodeURL string) error
}
