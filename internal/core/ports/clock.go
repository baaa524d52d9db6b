package ports

import "time"

// Clock abstracts wall-clock time so command handlers and jobs can stamp
// timeline entries deterministically in tests.
type Clock interface {
	Now() time.Time
}
