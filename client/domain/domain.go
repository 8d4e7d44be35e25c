// Package domain holds the client-side model: pool entries, registry nodes and the client configuration.
package domain

import (
	"net/http"
	"time"
)

// DefaultPriority is assigned to servers added without an explicit priority. Lower is better.
const DefaultPriority = 1

// ServerEntry is a snapshot of one pool server. URL is unique within a pool.
type ServerEntry struct {
	URL       string
	Healthy   bool
	LatencyMs int64
	Priority  int
}

// NodeStatus mirrors the registry's tri-state node status.
type NodeStatus string

const (
	NodeStatusUnknown   NodeStatus = "unknown"
	NodeStatusHealthy   NodeStatus = "healthy"
	NodeStatusUnhealthy NodeStatus = "unhealthy"
)

// Node is a registry node as seen by Discovery.
type Node struct {
	ID            string
	URL           string
	Region        string
	Owner         string
	Version       string
	Status        NodeStatus
	LatencyMs     int64
	LastHeartbeat *time.Time
}

// Request is one outgoing request sent through a pool server.
type Request struct {
	Method string
	// URL is the remote resource the server fetches on the caller's behalf.
	URL    string
	Header http.Header
	Body   []byte
}

// Response is what the pool server relayed back. Server is the pool url that answered.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
	Server string
}
