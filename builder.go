package soma

import (
	"errors"
	"fmt"

	"github.com/hugr-lab/soma-go/dimension"
)

// RegistryBuilder builds static dimension registries using fluent API.
// Not thread-safe - use only during initialization.
type RegistryBuilder struct {
	dims  []dimension.Dimension
	errs  []error
	built bool
}

// NewRegistryBuilder creates a new fluent registry builder.
//
// Example:
//
//	reg, err := soma.NewRegistryBuilder().
//	    Int64("soma_joinid", 0, 999).
//	    Float64("score", 0, 1).
//	    String("label").
//	    Build()
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{
		dims: make([]dimension.Dimension, 0),
	}
}

// Int32 adds an INT32 dimension with domain [min, max].
func (b *RegistryBuilder) Int32(name string, min, max int32) *RegistryBuilder {
	return add(b, name, min, max)
}

// Int64 adds an INT64 dimension with domain [min, max].
func (b *RegistryBuilder) Int64(name string, min, max int64) *RegistryBuilder {
	return add(b, name, min, max)
}

// Uint64 adds a UINT64 dimension with domain [min, max].
func (b *RegistryBuilder) Uint64(name string, min, max uint64) *RegistryBuilder {
	return add(b, name, min, max)
}

// Float32 adds a FLOAT32 dimension with domain [min, max].
func (b *RegistryBuilder) Float32(name string, min, max float32) *RegistryBuilder {
	return add(b, name, min, max)
}

// Float64 adds a FLOAT64 dimension with domain [min, max].
func (b *RegistryBuilder) Float64(name string, min, max float64) *RegistryBuilder {
	return add(b, name, min, max)
}

// Datetime adds a DATETIME_MS dimension with domain [min, max] in
// milliseconds. Selections on it fail with ErrUnsupportedType.
func (b *RegistryBuilder) Datetime(name string, min, max int64) *RegistryBuilder {
	d, err := dimension.NewDatetime(name, min, max)
	return b.append(d, err)
}

// String adds a STRING_ASCII dimension. Selections on it fail with
// ErrUnsupportedType.
func (b *RegistryBuilder) String(name string) *RegistryBuilder {
	d, err := dimension.NewString(name)
	return b.append(d, err)
}

// Dimension adds a prebuilt dimension.
func (b *RegistryBuilder) Dimension(d dimension.Dimension) *RegistryBuilder {
	return b.append(d, nil)
}

func add[T dimension.Number](b *RegistryBuilder, name string, min, max T) *RegistryBuilder {
	d, err := dimension.New(name, min, max)
	return b.append(d, err)
}

func (b *RegistryBuilder) append(d dimension.Dimension, err error) *RegistryBuilder {
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.dims = append(b.dims, d)
	return b
}

// Build finalizes the registry.
// Can only be called once. Returns every dimension definition error joined,
// or the registry's own validation error (e.g. duplicate names).
func (b *RegistryBuilder) Build() (*dimension.StaticRegistry, error) {
	if b.built {
		return nil, fmt.Errorf("registry already built")
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	reg, err := dimension.NewRegistry(b.dims...)
	if err != nil {
		return nil, err
	}
	b.built = true
	return reg, nil
}
