package dimension

import "errors"

var (
	// ErrUnknownDimension is returned by a Registry for names it does not hold.
	ErrUnknownDimension = errors.New("unknown dimension")

	// ErrInvalidDomain indicates a domain with min > max or a NaN bound.
	ErrInvalidDomain = errors.New("invalid dimension domain")

	// ErrTypeMismatch indicates a domain was requested in a type other than
	// the dimension's declared scalar type.
	ErrTypeMismatch = errors.New("dimension type mismatch")

	// ErrUnsupportedDatatype indicates a datatype name or Arrow type that has
	// no ScalarType counterpart.
	ErrUnsupportedDatatype = errors.New("unsupported datatype")

	// ErrDuplicateDimension indicates two dimensions share a name.
	ErrDuplicateDimension = errors.New("duplicate dimension")
)
