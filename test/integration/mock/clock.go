// Package mock provides test doubles for the integration suite.
package mock

import (
	"time"

	"github.com/finance-ledger/core/internal/application/adapter"
)

// Clock is a deterministic clock for scenarios. Every Now call moves it
// forward by one second so consecutive writes carry distinct timestamps.
type Clock struct {
	current time.Time
}

var _ adapter.Clock = (*Clock)(nil)

func NewClock(start time.Time) *Clock {
	return &Clock{current: start}
}

func (c *Clock) Now() time.Time {
	c.current = c.current.Add(time.Second)
	return c.current
}
