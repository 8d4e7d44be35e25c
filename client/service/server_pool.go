package service

import (
	"errors"
	"sync"

	"openbare/client/domain"
	"openbare/helpers"
)

// ErrEmptyServerURL is returned by AddServer for an empty url.
var ErrEmptyServerURL = errors.New("server url is required")

// poolEntry is a ServerEntry plus its origin. Discovered entries are owned by SyncDiscovered;
// manually added ones are never removed by it.
type poolEntry struct {
	domain.ServerEntry
	discovered bool
}

// ServerPool holds candidate servers in insertion order and selects one per request under a fixed
// Strategy. It does no I/O. Mutations for unknown urls are no-ops so stale reports from Discovery or the
// monitor are harmless. Safe for concurrent use; readers get copies.
type ServerPool struct {
	strategy Strategy

	mu      sync.Mutex
	entries []poolEntry
}

// ServerOption configures a server at AddServer time.
type ServerOption func(*domain.ServerEntry)

// WithPriority sets the server priority used by the priority strategy. Lower is better.
func WithPriority(p int) ServerOption {
	return func(e *domain.ServerEntry) {
		e.Priority = p
	}
}

// NewServerPool creates an empty pool. Panics on nil strategy.
func NewServerPool(strategy Strategy) *ServerPool {
	return &ServerPool{
		strategy: helpers.NilPanic(strategy, "service.server_pool.go: strategy is required"),
	}
}

// Strategy returns the name of the pool's selection strategy.
func (p *ServerPool) Strategy() domain.StrategyName {
	return p.strategy.Name()
}

// indexLocked returns the position of url or -1. Caller must hold p.mu.
func (p *ServerPool) indexLocked(url string) int {
	for i := range p.entries {
		if p.entries[i].URL == url {
			return i
		}
	}
	return -1
}

func newServerEntry(url string) domain.ServerEntry {
	return domain.ServerEntry{URL: url, Healthy: true, Priority: domain.DefaultPriority}
}

// AddServer inserts url as healthy with zero latency. Adding a url already present leaves the
// existing entry untouched.
func (p *ServerPool) AddServer(url string, opts ...ServerOption) error {
	return p.add(url, false, opts...)
}

func (p *ServerPool) add(url string, discovered bool, opts ...ServerOption) error {
	if url == "" {
		return ErrEmptyServerURL
	}
	entry := newServerEntry(url)
	for _, opt := range opts {
		opt(&entry)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.indexLocked(url) >= 0 {
		return nil
	}
	p.entries = append(p.entries, poolEntry{ServerEntry: entry, discovered: discovered})
	return nil
}

// RemoveServer drops url if present.
func (p *ServerPool) RemoveServer(url string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i := p.indexLocked(url); i >= 0 {
		p.entries = append(p.entries[:i], p.entries[i+1:]...)
	}
}

// GetServer selects one healthy server. ok is false when the pool is empty or nothing is healthy.
func (p *ServerPool) GetServer() (entry domain.ServerEntry, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	healthy := p.healthyLocked()
	if len(healthy) == 0 {
		return domain.ServerEntry{}, false
	}
	return healthy[p.strategy.pick(healthy)], true
}

// GetFallbackServer selects among all servers regardless of health. Used when GetServer yields nothing,
// so a server marked unhealthy by a transient failure still gets traffic and can recover.
// ok is false only when the pool is empty.
func (p *ServerPool) GetFallbackServer() (entry domain.ServerEntry, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.entries) == 0 {
		return domain.ServerEntry{}, false
	}
	all := make([]domain.ServerEntry, 0, len(p.entries))
	for _, e := range p.entries {
		all = append(all, e.ServerEntry)
	}
	return all[p.strategy.pick(all)], true
}

func (p *ServerPool) healthyLocked() []domain.ServerEntry {
	out := make([]domain.ServerEntry, 0, len(p.entries))
	for _, e := range p.entries {
		if e.Healthy {
			out = append(out, e.ServerEntry)
		}
	}
	return out
}

// update applies fn to the entry for url. Unknown urls are ignored.
func (p *ServerPool) update(url string, fn func(e *domain.ServerEntry)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i := p.indexLocked(url); i >= 0 {
		fn(&p.entries[i].ServerEntry)
	}
}

// MarkHealthy makes url selectable by GetServer again. Unknown urls are ignored.
func (p *ServerPool) MarkHealthy(url string) {
	p.update(url, func(e *domain.ServerEntry) { e.Healthy = true })
}

// MarkUnhealthy excludes url from GetServer until it is marked healthy. Unknown urls are ignored.
func (p *ServerPool) MarkUnhealthy(url string) {
	p.update(url, func(e *domain.ServerEntry) { e.Healthy = false })
}

// UpdateLatency overwrites the latency of url. Negative values are ignored.
func (p *ServerPool) UpdateLatency(url string, latencyMs int64) {
	if latencyMs < 0 {
		return
	}
	p.update(url, func(e *domain.ServerEntry) { e.LatencyMs = latencyMs })
}

// GetAllServers returns every entry in insertion order.
func (p *ServerPool) GetAllServers() []domain.ServerEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.ServerEntry, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, e.ServerEntry)
	}
	return out
}

// GetHealthyServers returns the healthy entries in insertion order.
func (p *ServerPool) GetHealthyServers() []domain.ServerEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.healthyLocked()
}

// SyncDiscovered makes the discovered part of the pool match urls: missing urls are added as
// healthy, discovered entries no longer listed are removed. Manual entries and the state of
// entries that stay are untouched.
func (p *ServerPool) SyncDiscovered(urls []string) (added, removed int) {
	want := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		if u != "" {
			want[u] = struct{}{}
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	kept := p.entries[:0]
	for _, e := range p.entries {
		if _, ok := want[e.URL]; e.discovered && !ok {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	p.entries = kept

	for _, u := range urls {
		if u == "" || p.indexLocked(u) >= 0 {
			continue
		}
		p.entries = append(p.entries, poolEntry{ServerEntry: newServerEntry(u), discovered: true})
		added++
	}
	return added, removed
}
