package query

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hugr-lab/soma-go/dimension"
)

// Query is an in-memory ManagedQuery that records installed predicates.
// Not safe for concurrent mutation.
type Query struct {
	id         uuid.UUID
	registry   dimension.Registry
	predicates []Predicate
	timestamp  *TimestampRange
}

// Option configures a Query.
type Option func(*Query)

// WithTimestampRange restricts the query to fragments written within r.
func WithTimestampRange(r TimestampRange) Option {
	return func(q *Query) {
		q.timestamp = &r
	}
}

// New creates an empty query over the dimensions of reg.
// Every installed predicate is checked against reg; a nil reg disables
// checking.
func New(reg dimension.Registry, opts ...Option) *Query {
	q := &Query{
		id:         uuid.New(),
		registry:   reg,
		predicates: make([]Predicate, 0),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// ID returns the query identifier, unique per Query.
func (q *Query) ID() uuid.UUID { return q.id }

// TimestampRange returns the configured timestamp range, if any.
func (q *Query) TimestampRange() (TimestampRange, bool) {
	if q.timestamp == nil {
		return TimestampRange{}, false
	}
	return *q.timestamp, true
}

// SelectPoint implements ManagedQuery.
func (q *Query) SelectPoint(dim string, value any) error {
	if err := q.check(dim, value); err != nil {
		return err
	}
	q.predicates = append(q.predicates, &PointPredicate{Dim: dim, Value: value})
	return nil
}

// SelectRanges implements ManagedQuery.
// Either all ranges are recorded or, on a type error, none.
func (q *Query) SelectRanges(dim string, ranges []Range) error {
	for i, r := range ranges {
		if err := q.check(dim, r.Lo); err != nil {
			return fmt.Errorf("range %d lower bound: %w", i, err)
		}
		if err := q.check(dim, r.Hi); err != nil {
			return fmt.Errorf("range %d upper bound: %w", i, err)
		}
	}
	for _, r := range ranges {
		q.predicates = append(q.predicates, &RangePredicate{Dim: dim, Lo: r.Lo, Hi: r.Hi})
	}
	return nil
}

// check verifies dim exists and value has the dimension's Go type.
func (q *Query) check(dim string, value any) error {
	if q.registry == nil {
		return nil
	}
	d, err := q.registry.Dimension(dim)
	if err != nil {
		return err
	}
	if !matchesType(d.Type(), value) {
		return fmt.Errorf("%w: dimension '%s' is %s, got %T", ErrTypeMismatch, dim, d.Type(), value)
	}
	return nil
}

func matchesType(t dimension.ScalarType, value any) bool {
	var ok bool
	switch t {
	case dimension.Int8:
		_, ok = value.(int8)
	case dimension.Int16:
		_, ok = value.(int16)
	case dimension.Int32:
		_, ok = value.(int32)
	case dimension.Int64, dimension.Datetime:
		_, ok = value.(int64)
	case dimension.Uint8:
		_, ok = value.(uint8)
	case dimension.Uint16:
		_, ok = value.(uint16)
	case dimension.Uint32:
		_, ok = value.(uint32)
	case dimension.Uint64:
		_, ok = value.(uint64)
	case dimension.Float32:
		_, ok = value.(float32)
	case dimension.Float64:
		_, ok = value.(float64)
	case dimension.StringASCII:
		_, ok = value.(string)
	}
	return ok
}

// Predicates returns installed predicates in installation order.
func (q *Query) Predicates() []Predicate {
	out := make([]Predicate, len(q.predicates))
	copy(out, q.predicates)
	return out
}

// Len returns the number of installed predicates.
func (q *Query) Len() int {
	return len(q.predicates)
}

// Dimensions returns the constrained dimension names in order of first
// appearance.
func (q *Query) Dimensions() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range q.predicates {
		if !seen[p.Dimension()] {
			seen[p.Dimension()] = true
			names = append(names, p.Dimension())
		}
	}
	return names
}

// Reset removes all predicates. The ID and timestamp range are kept.
func (q *Query) Reset() {
	q.predicates = q.predicates[:0]
}

// Points returns the point values installed on dim that have type T.
func Points[T any](q *Query, dim string) []T {
	var out []T
	for _, p := range q.predicates {
		pp, ok := p.(*PointPredicate)
		if !ok || pp.Dim != dim {
			continue
		}
		if v, ok := pp.Value.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// Ranges returns the ranges installed on dim whose bounds have type T.
func Ranges[T any](q *Query, dim string) [][2]T {
	var out [][2]T
	for _, p := range q.predicates {
		rp, ok := p.(*RangePredicate)
		if !ok || rp.Dim != dim {
			continue
		}
		lo, okLo := rp.Lo.(T)
		hi, okHi := rp.Hi.(T)
		if okLo && okHi {
			out = append(out, [2]T{lo, hi})
		}
	}
	return out
}
