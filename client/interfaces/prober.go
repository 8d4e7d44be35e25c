package interfaces

import "context"

// Prober checks whether a pool server is alive. ctx carries the probe timeout.
//
// Implemented by adapters.HTTPProber. Called from service.PoolMonitor.
//
//go:generate moq -stub -out mock/prober.go -pkg mock . Prober
type Prober interface {
	Probe(ctx context.Context, serverURL string) error
}
