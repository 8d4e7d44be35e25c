package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)

	for _, path := range []string{
		"/health",
		"/v1/nodes",
		"/v1/nodes/healthy",
		"/v1/nodes/{node_id}",
		"/v1/nodes/{node_id}/status",
		"/v1/nodes/{node_id}/heartbeat",
		"/v1/stats",
		"/v1/health-check/stats",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
	assert.Empty(t, doc.Servers)
}
