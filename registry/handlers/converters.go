package handlers

import (
	"openbare/helpers"
	"openbare/registry/domain"
)

// fromRegisterNodeRequest converts the request body. Validation happens in the directory.
func fromRegisterNodeRequest(req RegisterNodeRequest) domain.Registration {
	return domain.Registration{
		ID:      req.Id,
		URL:     req.Url,
		Region:  helpers.Value(req.Region),
		Owner:   helpers.Value(req.Owner),
		Version: helpers.Value(req.Version),
	}
}

func toNode(n domain.Node) Node {
	return Node{
		Id:            n.ID,
		Url:           n.URL,
		Region:        n.Region,
		Owner:         n.Owner,
		Version:       n.Version,
		Status:        NodeStatus(n.Status),
		LatencyMs:     n.LatencyMs,
		LastHeartbeat: n.LastHeartbeat,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

// toNodesResponse keeps the nodes array non-nil so an empty directory encodes as [].
func toNodesResponse(nodes []domain.Node) NodesResponse {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toNode(n))
	}
	return NodesResponse{Nodes: out, Count: len(out)}
}

func toStatsResponse(s domain.Stats) StatsResponse {
	return StatsResponse{
		Total:     s.Total,
		Healthy:   s.Healthy,
		Unhealthy: s.Unhealthy,
		Unknown:   s.Unknown,
	}
}

func toHealthCheckStatsResponse(s domain.HealthCheckStats) HealthCheckStatsResponse {
	return HealthCheckStatsResponse{
		State:            HealthCheckStatsResponseState(s.State),
		IntervalMs:       s.Interval.Milliseconds(),
		TimeoutMs:        s.Timeout.Milliseconds(),
		FailureThreshold: s.FailureThreshold,
		Runs:             s.Runs,
		Checks:           s.Checks,
		Failures:         s.Failures,
		LastRunAt:        s.LastRunAt,
		TrackedFailures:  s.TrackedFailures,
	}
}
