package query

import (
	"fmt"
	"time"
)

// TimestampRange bounds the fragments a query reads, in milliseconds since
// the Unix epoch. Both ends are inclusive.
type TimestampRange struct {
	Start uint64
	End   uint64
}

// NewTimestampRange builds a range from one or two time points.
// One point yields [0, t]; two points yield [t0, t1].
func NewTimestampRange(ts ...time.Time) (TimestampRange, error) {
	switch len(ts) {
	case 1:
		return TimestampRange{Start: 0, End: toMillis(ts[0])}, nil
	case 2:
		start, end := toMillis(ts[0]), toMillis(ts[1])
		if start > end {
			return TimestampRange{}, fmt.Errorf("%w: start %d after end %d", ErrInvalidTimestampRange, start, end)
		}
		return TimestampRange{Start: start, End: end}, nil
	}
	return TimestampRange{}, fmt.Errorf("%w: got %d", ErrInvalidTimestampRange, len(ts))
}

// String formats the range as "[start, end]" in milliseconds.
func (r TimestampRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Start, r.End)
}

// toMillis clamps pre-epoch times to 0.
func toMillis(t time.Time) uint64 {
	ms := t.UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}
