package query

import (
	"errors"
	"fmt"
)

// ManagedQuery accumulates selection predicates on dimensions.
// Implementations wrap the storage engine's query object.
type ManagedQuery interface {
	// SelectPoint appends an equality predicate on dim.
	// value carries the dimension's Go scalar type.
	SelectPoint(dim string, value any) error

	// SelectRanges appends a batch of closed range predicates on dim.
	// Bounds carry the dimension's Go scalar type.
	SelectRanges(dim string, ranges []Range) error
}

// Range is a closed interval [Lo, Hi] on one dimension.
// A range with Lo > Hi selects nothing.
type Range struct {
	Lo any
	Hi any
}

// Predicate is an installed selection constraint.
// Use a type switch to access *PointPredicate or *RangePredicate.
type Predicate interface {
	// Dimension returns the constrained dimension name.
	Dimension() string

	// String returns a readable form such as "Point(x, 50)".
	String() string

	predicateMarker()
}

// PointPredicate restricts a dimension to a single value.
type PointPredicate struct {
	Dim   string
	Value any
}

// Dimension implements Predicate.
func (p *PointPredicate) Dimension() string { return p.Dim }

func (p *PointPredicate) String() string {
	return fmt.Sprintf("Point(%s, %v)", p.Dim, p.Value)
}

func (p *PointPredicate) predicateMarker() {}

// RangePredicate restricts a dimension to the closed interval [Lo, Hi].
type RangePredicate struct {
	Dim string
	Lo  any
	Hi  any
}

// Dimension implements Predicate.
func (r *RangePredicate) Dimension() string { return r.Dim }

func (r *RangePredicate) String() string {
	return fmt.Sprintf("Range(%s, %v, %v)", r.Dim, r.Lo, r.Hi)
}

func (r *RangePredicate) predicateMarker() {}

var (
	// ErrTypeMismatch indicates a value whose Go type does not match the
	// dimension's scalar type.
	ErrTypeMismatch = errors.New("value type does not match dimension type")

	// ErrInvalidTimestampRange indicates a timestamp range built from other
	// than one or two time points.
	ErrInvalidTimestampRange = errors.New("timestamp range must be a one or two-element vector")
)
