package ports

import "time"

// Clock supplies the current time. Injected so the store is testable
// without depending on the wall clock.
type Clock interface {
	Now() time.Time
}
