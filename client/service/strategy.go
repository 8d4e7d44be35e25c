package service

import (
	"fmt"
	"math/rand/v2"

	"openbare/client/domain"
)

// Strategy picks one server out of the healthy candidates. The set is closed: the four
// implementations live in this package and are built with NewStrategy.
//
// pick receives a non-empty slice in insertion order and returns an index into it. The pool calls it
// under its write lock, so implementations may keep unsynchronized state.
type Strategy interface {
	Name() domain.StrategyName
	pick(candidates []domain.ServerEntry) int
}

// NewStrategy builds a fresh strategy instance. Each pool must own its instance since round-robin is stateful.
func NewStrategy(name domain.StrategyName) (Strategy, error) {
	switch name {
	case domain.StrategyRoundRobin, "":
		return &roundRobin{}, nil
	case domain.StrategyFastest:
		return fastest{}, nil
	case domain.StrategyPriority:
		return priority{}, nil
	case domain.StrategyRandom:
		return random{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// roundRobin advances one position per call over the healthy candidates and wraps.
type roundRobin struct {
	next int
}

func (*roundRobin) Name() domain.StrategyName { return domain.StrategyRoundRobin }

func (s *roundRobin) pick(candidates []domain.ServerEntry) int {
	idx := s.next % len(candidates)
	s.next = idx + 1
	return idx
}

// fastest picks the lowest latency; the first added wins ties.
type fastest struct{}

func (fastest) Name() domain.StrategyName { return domain.StrategyFastest }

func (fastest) pick(candidates []domain.ServerEntry) int {
	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].LatencyMs < candidates[best].LatencyMs {
			best = i
		}
	}
	return best
}

// priority picks the numerically lowest priority, then the lowest latency, then the first added.
type priority struct{}

func (priority) Name() domain.StrategyName { return domain.StrategyPriority }

func (priority) pick(candidates []domain.ServerEntry) int {
	best := 0
	for i := 1; i < len(candidates); i++ {
		c, b := candidates[i], candidates[best]
		if c.Priority < b.Priority || (c.Priority == b.Priority && c.LatencyMs < b.LatencyMs) {
			best = i
		}
	}
	return best
}

type random struct{}

func (random) Name() domain.StrategyName { return domain.StrategyRandom }

func (random) pick(candidates []domain.ServerEntry) int {
	return rand.IntN(len(candidates))
}
