package clock

import "time"

// Clock stamps name lists with their creation time.
type Clock interface {
	Now() time.Time
}
