package domain

import "fmt"

// StrategyName names a server selection strategy.
type StrategyName string

const (
	StrategyRoundRobin StrategyName = "round-robin"
	StrategyFastest    StrategyName = "fastest"
	StrategyPriority   StrategyName = "priority"
	StrategyRandom     StrategyName = "random"
)

// Valid reports whether n is one of the four known strategies.
func (n StrategyName) Valid() bool {
	switch n {
	case StrategyRoundRobin, StrategyFastest, StrategyPriority, StrategyRandom:
		return true
	default:
		return false
	}
}

// ParseStrategyName validates a strategy name read from configuration. Empty means round-robin.
func ParseStrategyName(s string) (StrategyName, error) {
	if s == "" {
		return StrategyRoundRobin, nil
	}
	n := StrategyName(s)
	if !n.Valid() {
		return "", fmt.Errorf("unknown strategy %q: want round-robin, fastest, priority or random", s)
	}
	return n, nil
}
