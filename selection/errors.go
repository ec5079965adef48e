package selection

import (
	"errors"
	"fmt"

	"github.com/hugr-lab/soma-go/dimension"
)

var (
	// ErrUnsupportedType indicates a dimension whose scalar type cannot be
	// selected on.
	ErrUnsupportedType = errors.New("unsupported dimension type")

	// ErrUnsuitableSelection indicates that no supplied point or range
	// produced an in-domain predicate on a dimension.
	ErrUnsuitableSelection = errors.New("unsuitable selection")

	// ErrInvalidValue indicates a request value that cannot be represented in
	// the dimension's scalar type.
	ErrInvalidValue = errors.New("invalid selection value")
)

// Operation names reported in Error.Op.
const (
	OpPoints = "points"
	OpRanges = "ranges"
)

// Error describes a failed applicator call.
// Err holds the cause; use errors.Is against the package sentinels or
// dimension.ErrUnknownDimension.
type Error struct {
	// Op is OpPoints or OpRanges.
	Op string

	// Dim is the offending dimension name.
	Dim string

	// Type is the dimension's scalar type, Invalid if lookup failed.
	Type dimension.ScalarType

	// Domain is the human-readable domain, empty if lookup failed.
	Domain string

	Err error
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnsuitableSelection):
		return fmt.Sprintf("unsuitable dim %s on dimension '%s' with domain %s", e.Op, e.Dim, e.Domain)
	case errors.Is(e.Err, ErrUnsupportedType):
		return fmt.Sprintf("currently unsupported type: %s (dimension '%s')", e.Type, e.Dim)
	}
	return fmt.Sprintf("apply dim %s on dimension '%s': %v", e.Op, e.Dim, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op string, d dimension.Dimension, err error) *Error {
	return &Error{
		Op:     op,
		Dim:    d.Name(),
		Type:   d.Type(),
		Domain: d.DomainString(),
		Err:    err,
	}
}
