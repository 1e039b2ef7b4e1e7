// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/finance-ledger/core/internal/application/adapter"
)

// systemClock implements adapter.Clock with the wall clock, truncated to
// seconds to match the precision the store encodes.
type systemClock struct{}

// NewSystemClock creates a new system clock instance.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current UTC time at second precision.
func (systemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
