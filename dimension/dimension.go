package dimension

import (
	"fmt"
)

// Domain is the closed interval [Min, Max] of legal values for a dimension.
type Domain[T Number] struct {
	Min T
	Max T
}

// Contains reports whether Min <= v <= Max.
func (d Domain[T]) Contains(v T) bool {
	return v >= d.Min && v <= d.Max
}

// Clamp narrows [lo, hi] to the domain bounds.
// The result may be empty (lo > hi) when the interval lies outside the domain.
func (d Domain[T]) Clamp(lo, hi T) (T, T) {
	return max(lo, d.Min), min(hi, d.Max)
}

// Overlaps reports whether lo < Max and hi > Min.
// Both comparisons are strict: an interval touching only a domain endpoint
// does not overlap.
func (d Domain[T]) Overlaps(lo, hi T) bool {
	return lo < d.Max && hi > d.Min
}

// String formats the domain as "[min, max]".
func (d Domain[T]) String() string {
	return fmt.Sprintf("[%v, %v]", d.Min, d.Max)
}

// Dimension is a named axis of an array.
// The zero value is not usable; construct with New, NewDatetime or NewString.
type Dimension struct {
	name   string
	typ    ScalarType
	domain any // Domain[T] for numeric and datetime dimensions, nil otherwise
}

// New creates a numeric dimension whose scalar type is inferred from T.
//
// Example:
//
//	x, err := dimension.New[int32]("x", 0, 100)
func New[T Number](name string, min, max T) (Dimension, error) {
	return newNumeric(name, TypeOf[T](), Domain[T]{Min: min, Max: max})
}

// NewDatetime creates a DATETIME_MS dimension with an int64 millisecond domain.
func NewDatetime(name string, min, max int64) (Dimension, error) {
	return newNumeric(name, Datetime, Domain[int64]{Min: min, Max: max})
}

// NewString creates a STRING_ASCII dimension. String dimensions have no
// numeric domain.
func NewString(name string) (Dimension, error) {
	if name == "" {
		return Dimension{}, fmt.Errorf("dimension name cannot be empty")
	}
	return Dimension{name: name, typ: StringASCII}, nil
}

func newNumeric[T Number](name string, typ ScalarType, dom Domain[T]) (Dimension, error) {
	if name == "" {
		return Dimension{}, fmt.Errorf("dimension name cannot be empty")
	}
	// NaN compares unequal to itself
	if dom.Min != dom.Min || dom.Max != dom.Max {
		return Dimension{}, fmt.Errorf("%w: dimension '%s' has NaN bound", ErrInvalidDomain, name)
	}
	if dom.Min > dom.Max {
		return Dimension{}, fmt.Errorf("%w: dimension '%s' has min > max %s", ErrInvalidDomain, name, dom)
	}
	return Dimension{name: name, typ: typ, domain: dom}, nil
}

// Name returns the dimension name.
func (d Dimension) Name() string { return d.name }

// Type returns the declared scalar type.
func (d Dimension) Type() ScalarType { return d.typ }

// DomainString returns a human-readable domain, e.g. "[0, 100]".
// Dimensions without a numeric domain return "[]".
func (d Dimension) DomainString() string {
	if s, ok := d.domain.(fmt.Stringer); ok {
		return s.String()
	}
	return "[]"
}

// String implements fmt.Stringer.
func (d Dimension) String() string {
	return fmt.Sprintf("%s %s %s", d.name, d.typ, d.DomainString())
}

// DomainOf returns the dimension's domain typed as T.
// Returns ErrTypeMismatch when T is not the dimension's storage type.
func DomainOf[T Number](d Dimension) (Domain[T], error) {
	dom, ok := d.domain.(Domain[T])
	if !ok {
		var zero T
		return Domain[T]{}, fmt.Errorf("%w: dimension '%s' is %s, requested %T", ErrTypeMismatch, d.name, d.typ, zero)
	}
	return dom, nil
}
