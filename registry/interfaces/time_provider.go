package interfaces

import "time"

// TimeProvider supplies the current time for node timestamps (created_at, updated_at, last_heartbeat).
// Injected so tests can use a fixed clock instead of time.Now().
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	Now() time.Time
}
