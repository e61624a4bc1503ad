package clock

import (
	"time"

	clockport "github.com/Overland-East-Bay/name-sorter/internal/ports/out/clock"
)

var _ clockport.Clock = SystemClock{}

// SystemClock reads wall-clock time in UTC, truncated to microseconds so
// values survive a round trip through a Postgres timestamptz unchanged.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
