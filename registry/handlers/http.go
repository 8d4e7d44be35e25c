// Package handlers contains the registry REST handlers.
//
//go:generate oapi-codegen -config openapi-api.config.yaml ../api/registry.openapi.yaml
//go:generate oapi-codegen -config openapi-types.config.yaml ../api/registry.openapi.yaml
package handlers

import (
	"fmt"
	"net/http"

	"openbare/helpers"
	"openbare/registry/domain"
	"openbare/registry/interfaces"
	"openbare/registry/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface on top of the node directory.
type HTTPServer struct {
	directory interfaces.Directory
	health    interfaces.HealthReporter
	logger    log.Logger
}

// NewHTTPServer creates a new HTTPServer. Panics on nil directory, health reporter or logger.
func NewHTTPServer(directory interfaces.Directory, health interfaces.HealthReporter, logger log.Logger) *HTTPServer {
	return &HTTPServer{
		directory: helpers.NilPanic(directory, "handlers.http.go: directory is required"),
		health:    helpers.NilPanic(health, "handlers.http.go: health reporter is required"),
		logger:    log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer"),
	}
}

// GetHealth (GET /health) reports the registry process as up.
func (h *HTTPServer) GetHealth(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// RegisterNode (POST /v1/nodes) upserts a node and returns the stored record.
func (h *HTTPServer) RegisterNode(ectx echo.Context) error {
	var req RegisterNodeJSONRequestBody
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("body", "invalid request body", err)
	}

	ctx := ectx.Request().Context()
	node, err := h.directory.RegisterNode(ctx, fromRegisterNodeRequest(req))
	if err != nil {
		return fmt.Errorf("registerNode failed to register node %q, err: %w", req.Id, err)
	}
	return ectx.JSON(http.StatusOK, toNode(node))
}

// ListNodes (GET /v1/nodes) returns every node, or only those of ?region=.
func (h *HTTPServer) ListNodes(ectx echo.Context, params ListNodesParams) error {
	ctx := ectx.Request().Context()

	var (
		nodes []domain.Node
		err   error
	)
	if params.Region != nil {
		nodes, err = h.directory.GetNodesByRegion(ctx, *params.Region)
	} else {
		nodes, err = h.directory.GetAllNodes(ctx)
	}
	if err != nil {
		return fmt.Errorf("listNodes failed to list nodes, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toNodesResponse(nodes))
}

// ListHealthyNodes (GET /v1/nodes/healthy) returns nodes whose status is healthy.
func (h *HTTPServer) ListHealthyNodes(ectx echo.Context) error {
	nodes, err := h.directory.GetHealthyNodes(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("listHealthyNodes failed to list nodes, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toNodesResponse(nodes))
}

// GetNode (GET /v1/nodes/{node_id}) returns 404 when the id is unknown.
func (h *HTTPServer) GetNode(ectx echo.Context, nodeId NodeID) error {
	node, err := h.directory.GetNode(ectx.Request().Context(), nodeId)
	if err != nil {
		return fmt.Errorf("getNode failed to read node %q, err: %w", nodeId, err)
	}
	if node == nil {
		return service.NewNodeNotFoundError(nodeId)
	}
	return ectx.JSON(http.StatusOK, toNode(*node))
}

// DeleteNode (DELETE /v1/nodes/{node_id}).
func (h *HTTPServer) DeleteNode(ectx echo.Context, nodeId NodeID) error {
	found, err := h.directory.DeleteNode(ectx.Request().Context(), nodeId)
	if err != nil {
		return fmt.Errorf("deleteNode failed to delete node %q, err: %w", nodeId, err)
	}
	if !found {
		return service.NewNodeNotFoundError(nodeId)
	}
	return ectx.NoContent(http.StatusNoContent)
}

// UpdateNodeStatus (PUT /v1/nodes/{node_id}/status) overwrites the status set by the health checker.
func (h *HTTPServer) UpdateNodeStatus(ectx echo.Context, nodeId NodeID) error {
	var req UpdateNodeStatusJSONRequestBody
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("body", "invalid request body", err)
	}

	found, err := h.directory.UpdateNodeStatus(ectx.Request().Context(), nodeId, domain.NodeStatus(req.Status))
	if err != nil {
		return fmt.Errorf("updateNodeStatus failed to update node %q, err: %w", nodeId, err)
	}
	if !found {
		return service.NewNodeNotFoundError(nodeId)
	}
	return ectx.NoContent(http.StatusNoContent)
}

// RecordHeartbeat (POST /v1/nodes/{node_id}/heartbeat) lets a node report itself alive.
func (h *HTTPServer) RecordHeartbeat(ectx echo.Context, nodeId NodeID) error {
	found, err := h.directory.RecordHeartbeat(ectx.Request().Context(), nodeId)
	if err != nil {
		return fmt.Errorf("recordHeartbeat failed for node %q, err: %w", nodeId, err)
	}
	if !found {
		return service.NewNodeNotFoundError(nodeId)
	}
	return ectx.NoContent(http.StatusNoContent)
}

// GetStats (GET /v1/stats).
func (h *HTTPServer) GetStats(ectx echo.Context) error {
	stats, err := h.directory.GetStats(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("getStats failed to count nodes, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toStatsResponse(stats))
}

// GetHealthCheckStats (GET /v1/health-check/stats).
func (h *HTTPServer) GetHealthCheckStats(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toHealthCheckStatsResponse(h.health.Stats()))
}
