// Package api embeds the registry OpenAPI document.
package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed registry.openapi.yaml
var registrySpec []byte

// Spec returns the raw registry OpenAPI document.
func Spec() []byte {
	return registrySpec
}

// Load parses and validates the embedded document. Servers are cleared so request validation
// matches on path only, whatever host the registry is served from.
func Load() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(registrySpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry openapi document, err: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid registry openapi document, err: %w", err)
	}
	doc.Servers = nil
	return doc, nil
}
