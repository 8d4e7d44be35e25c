// Package memory provides an in-process NodeStore used for tests and single-instance deployments.
package memory

import (
	"context"
	"sync"
	"time"

	"openbare/registry/domain"
	"openbare/registry/service"
)

// nodeStore keeps nodes in a map plus an insertion-order slice under one RWMutex. Reads return
// copies so callers never observe a record while it is being written.
type nodeStore struct {
	mu    sync.RWMutex
	nodes map[string]*domain.Node
	order []string
}

// NewNodeStore creates an empty in-memory store.
func NewNodeStore() *nodeStore {
	return &nodeStore{nodes: make(map[string]*domain.Node)}
}

func (s *nodeStore) Upsert(_ context.Context, reg domain.Registration, now time.Time) (domain.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n, ok := s.nodes[reg.ID]; ok {
		n.URL = reg.URL
		n.Region = reg.Region
		n.Owner = reg.Owner
		n.Version = reg.Version
		n.UpdatedAt = now
		return copyNode(n), nil
	}

	n := &domain.Node{
		ID:        reg.ID,
		URL:       reg.URL,
		Region:    reg.Region,
		Owner:     reg.Owner,
		Version:   reg.Version,
		Status:    domain.NodeStatusUnknown,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nodes[reg.ID] = n
	s.order = append(s.order, reg.ID)
	return copyNode(n), nil
}

func (s *nodeStore) Get(_ context.Context, id string) (domain.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]
	if !ok {
		return domain.Node{}, service.NewNodeNotFoundError(id)
	}
	return copyNode(n), nil
}

func (s *nodeStore) List(_ context.Context) ([]domain.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Node, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyNode(s.nodes[id]))
	}
	return out, nil
}

func (s *nodeStore) Update(_ context.Context, id string, patch domain.NodePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		return service.NewNodeNotFoundError(id)
	}
	patch.Apply(n)
	return nil
}

func (s *nodeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[id]; !ok {
		return service.NewNodeNotFoundError(id)
	}
	delete(s.nodes, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func copyNode(n *domain.Node) domain.Node {
	out := *n
	if n.LastHeartbeat != nil {
		hb := *n.LastHeartbeat
		out.LastHeartbeat = &hb
	}
	return out
}
