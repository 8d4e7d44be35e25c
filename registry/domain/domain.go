// Package domain holds the registry's node model.
package domain

import "time"

// NodeStatus is the tri-state liveness classification of a node.
type NodeStatus string

const (
	NodeStatusUnknown   NodeStatus = "unknown"
	NodeStatusHealthy   NodeStatus = "healthy"
	NodeStatusUnhealthy NodeStatus = "unhealthy"
)

// Valid reports whether s is one of the three known statuses.
func (s NodeStatus) Valid() bool {
	switch s {
	case NodeStatusUnknown, NodeStatusHealthy, NodeStatusUnhealthy:
		return true
	default:
		return false
	}
}

// Node represents a fleet member stored by the registry.
// ID is caller-supplied and immutable; CreatedAt survives re-registration.
type Node struct {
	ID            string
	URL           string
	Region        string
	Owner         string
	Version       string
	Status        NodeStatus
	LatencyMs     int64
	LastHeartbeat *time.Time // nil until the node is first observed alive
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Registration is the caller-supplied part of a Node.
type Registration struct {
	ID      string
	URL     string
	Region  string
	Owner   string
	Version string
}

// NodePatch is a partial update applied by NodeStore.Update. Nil fields are left untouched.
// UpdatedAt is always written.
type NodePatch struct {
	Status        *NodeStatus
	LatencyMs     *int64
	LastHeartbeat *time.Time
	UpdatedAt     time.Time
}

// Apply writes the non-nil fields of p onto n.
func (p NodePatch) Apply(n *Node) {
	if p.Status != nil {
		n.Status = *p.Status
	}
	if p.LatencyMs != nil {
		n.LatencyMs = *p.LatencyMs
	}
	if p.LastHeartbeat != nil {
		hb := *p.LastHeartbeat
		n.LastHeartbeat = &hb
	}
	n.UpdatedAt = p.UpdatedAt
}

// Stats are aggregate directory counts computed at call time.
type Stats struct {
	Total     int
	Healthy   int
	Unhealthy int
	Unknown   int
}

// CountStats folds nodes into Stats.
func CountStats(nodes []Node) Stats {
	s := Stats{Total: len(nodes)}
	for _, n := range nodes {
		switch n.Status {
		case NodeStatusHealthy:
			s.Healthy++
		case NodeStatusUnhealthy:
			s.Unhealthy++
		default:
			s.Unknown++
		}
	}
	return s
}
