package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"openbare/helpers"
	"openbare/registry/domain"
	"openbare/registry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// directory implements interfaces.Directory on top of a NodeStore. It owns validation and the
// "absent is not an error" translation; the store owns atomicity of single-record writes.
type directory struct {
	store  interfaces.NodeStore
	clock  interfaces.TimeProvider
	logger log.Logger
}

// NewDirectory creates the node directory. Panics on nil store, time provider or logger.
func NewDirectory(store interfaces.NodeStore, clock interfaces.TimeProvider, logger log.Logger) interfaces.Directory {
	return &directory{
		store:  helpers.NilPanic(store, "service.directory.go: store is required"),
		clock:  helpers.NilPanic(clock, "service.directory.go: time provider is required"),
		logger: log.With(helpers.NilPanic(logger, "service.directory.go: logger is required"), "component", "directory"),
	}
}

// validateRegistration trims the registration and rejects missing id/url or a url without scheme and host.
func validateRegistration(reg domain.Registration) (domain.Registration, error) {
	reg.ID = strings.TrimSpace(reg.ID)
	reg.URL = strings.TrimRight(strings.TrimSpace(reg.URL), "/")
	reg.Region = strings.TrimSpace(reg.Region)
	reg.Owner = strings.TrimSpace(reg.Owner)
	reg.Version = strings.TrimSpace(reg.Version)

	if reg.ID == "" {
		return reg, NewBadParameterError("id", "id is required", nil)
	}
	if reg.URL == "" {
		return reg, NewBadParameterError("url", "url is required", nil)
	}
	u, err := url.Parse(reg.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return reg, NewBadParameterError("url", fmt.Sprintf("url %q must be absolute", reg.URL), err)
	}
	return reg, nil
}

func (d *directory) RegisterNode(ctx context.Context, reg domain.Registration) (domain.Node, error) {
	reg, err := validateRegistration(reg)
	if err != nil {
		return domain.Node{}, err
	}
	node, err := d.store.Upsert(ctx, reg, d.clock.Now())
	if err != nil {
		return domain.Node{}, fmt.Errorf("registerNode failed to upsert node %q, err: %w", reg.ID, err)
	}
	level.Info(d.logger).Log("msg", "node registered", "node_id", node.ID, "url", node.URL, "region", node.Region)
	return node, nil
}

func (d *directory) GetNode(ctx context.Context, id string) (*domain.Node, error) {
	node, err := d.store.Get(ctx, id)
	if IsEntityNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getNode failed to read node %q, err: %w", id, err)
	}
	return &node, nil
}

func (d *directory) GetAllNodes(ctx context.Context) ([]domain.Node, error) {
	nodes, err := d.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("getAllNodes failed to list nodes, err: %w", err)
	}
	return nodes, nil
}

func (d *directory) GetNodesByRegion(ctx context.Context, region string) ([]domain.Node, error) {
	return d.filter(ctx, func(n domain.Node) bool { return n.Region == region })
}

func (d *directory) GetHealthyNodes(ctx context.Context) ([]domain.Node, error) {
	return d.filter(ctx, func(n domain.Node) bool { return n.Status == domain.NodeStatusHealthy })
}

func (d *directory) filter(ctx context.Context, keep func(domain.Node) bool) ([]domain.Node, error) {
	nodes, err := d.GetAllNodes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Node, 0, len(nodes))
	for _, n := range nodes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (d *directory) UpdateNodeStatus(ctx context.Context, id string, status domain.NodeStatus) (bool, error) {
	if !status.Valid() {
		return false, NewBadParameterError("status", fmt.Sprintf("status %q must be unknown|healthy|unhealthy", status), nil)
	}
	return d.update(ctx, id, domain.NodePatch{Status: &status})
}

func (d *directory) RecordHeartbeat(ctx context.Context, id string) (bool, error) {
	now := d.clock.Now()
	return d.update(ctx, id, domain.NodePatch{LastHeartbeat: &now})
}

func (d *directory) RecordLatency(ctx context.Context, id string, latencyMs int64) (bool, error) {
	if latencyMs < 0 {
		return d.exists(ctx, id)
	}
	return d.update(ctx, id, domain.NodePatch{LatencyMs: &latencyMs})
}

func (d *directory) DeleteNode(ctx context.Context, id string) (bool, error) {
	err := d.store.Delete(ctx, id)
	if IsEntityNotFoundError(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("deleteNode failed to delete node %q, err: %w", id, err)
	}
	level.Info(d.logger).Log("msg", "node deleted", "node_id", id)
	return true, nil
}

func (d *directory) GetStats(ctx context.Context) (domain.Stats, error) {
	nodes, err := d.GetAllNodes(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.CountStats(nodes), nil
}

// update stamps patch with the current time and applies it; an absent id is reported as found=false.
func (d *directory) update(ctx context.Context, id string, patch domain.NodePatch) (bool, error) {
	patch.UpdatedAt = d.clock.Now()
	err := d.store.Update(ctx, id, patch)
	if IsEntityNotFoundError(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to update node %q, err: %w", id, err)
	}
	return true, nil
}

func (d *directory) exists(ctx context.Context, id string) (bool, error) {
	node, err := d.GetNode(ctx, id)
	if err != nil {
		return false, err
	}
	return node != nil, nil
}
