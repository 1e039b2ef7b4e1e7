// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time. Use cases take it as a dependency so
// creation timestamps are controllable in tests.
type Clock interface {
	Now() time.Time
}
