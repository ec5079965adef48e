package dimension

import (
	"fmt"
)

// Registry resolves dimension names to their declared type and domain.
// Implementations MUST be goroutine-safe for readers.
type Registry interface {
	// Dimension returns the dimension with the given name.
	// Returns an error wrapping ErrUnknownDimension if the name is not present.
	Dimension(name string) (Dimension, error)
}

// StaticRegistry is an immutable Registry.
type StaticRegistry struct {
	dims  map[string]Dimension
	names []string
}

// NewRegistry builds a StaticRegistry from the given dimensions.
// Names MUST be non-empty and unique.
func NewRegistry(dims ...Dimension) (*StaticRegistry, error) {
	r := &StaticRegistry{
		dims:  make(map[string]Dimension, len(dims)),
		names: make([]string, 0, len(dims)),
	}
	for _, d := range dims {
		if d.name == "" {
			return nil, fmt.Errorf("dimension name cannot be empty")
		}
		if _, exists := r.dims[d.name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDimension, d.name)
		}
		r.dims[d.name] = d
		r.names = append(r.names, d.name)
	}
	return r, nil
}

// Dimension implements Registry.
func (r *StaticRegistry) Dimension(name string) (Dimension, error) {
	d, ok := r.dims[name]
	if !ok {
		return Dimension{}, fmt.Errorf("%w: '%s'", ErrUnknownDimension, name)
	}
	return d, nil
}

// Names returns dimension names in declaration order.
func (r *StaticRegistry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of dimensions.
func (r *StaticRegistry) Len() int {
	return len(r.names)
}
