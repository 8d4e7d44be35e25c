package interfaces

import (
	"context"

	"openbare/client/domain"
)

// Transport sends one request through one pool server.
//
// Implemented by adapters.HTTPTransport. Called from service.Client.Fetch once per attempt.
//
//go:generate moq -stub -out mock/transport.go -pkg mock . Transport
type Transport interface {
	// Do relays req via the server at serverURL. A failure reported by the server is a *service.BareError
	// carrying its status; network failures are returned as is.
	Do(ctx context.Context, serverURL string, req domain.Request) (domain.Response, error)
}
