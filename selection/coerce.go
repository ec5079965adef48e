package selection

import (
	"fmt"
	"math"

	"github.com/apache/arrow-go/v18/arrow"
)

// selectable is the closed set of scalar types the applicators dispatch to.
type selectable interface {
	int32 | int64 | uint64 | float32 | float64
}

// scalar is the set of Go numeric types accepted at the request boundary.
type scalar interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// coerceValues converts a point payload to []T.
// A bare scalar is treated as a one-element list.
func coerceValues[T selectable](src any) ([]T, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []T:
		return v, nil
	case []int:
		return convertSlice[int, T](v)
	case []int8:
		return convertSlice[int8, T](v)
	case []int16:
		return convertSlice[int16, T](v)
	case []int32:
		return convertSlice[int32, T](v)
	case []int64:
		return convertSlice[int64, T](v)
	case []uint:
		return convertSlice[uint, T](v)
	case []uint8:
		return convertSlice[uint8, T](v)
	case []uint16:
		return convertSlice[uint16, T](v)
	case []uint32:
		return convertSlice[uint32, T](v)
	case []uint64:
		return convertSlice[uint64, T](v)
	case []float32:
		return convertSlice[float32, T](v)
	case []float64:
		return convertSlice[float64, T](v)
	case []any:
		out := make([]T, len(v))
		for i, x := range v {
			c, err := convertScalar[T](x)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = c
		}
		return out, nil
	case arrow.Array:
		return fromArrow[T](v)
	}

	c, err := convertScalar[T](src)
	if err != nil {
		return nil, err
	}
	return []T{c}, nil
}

// coercePairs converts a range payload to [][2]T.
func coercePairs[T selectable](src any) ([][2]T, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case [][2]T:
		return v, nil
	case [][2]int:
		return convertPairs[int, T](v)
	case [][2]int32:
		return convertPairs[int32, T](v)
	case [][2]int64:
		return convertPairs[int64, T](v)
	case [][2]uint64:
		return convertPairs[uint64, T](v)
	case [][2]float32:
		return convertPairs[float32, T](v)
	case [][2]float64:
		return convertPairs[float64, T](v)
	case [][]T:
		return pairsFrom[[]T, T](v)
	case [][]int:
		return pairsFrom[[]int, T](v)
	case [][]int64:
		return pairsFrom[[]int64, T](v)
	case [][]float64:
		return pairsFrom[[]float64, T](v)
	case [][]any:
		return pairsFrom[[]any, T](v)
	case []any:
		return pairsFrom[any, T](v)
	case arrow.Array:
		return pairsFromArrow[T](v)
	}
	return nil, fmt.Errorf("%w: unsupported range payload %T", ErrInvalidValue, src)
}

func convertSlice[S scalar, T selectable](src []S) ([]T, error) {
	out := make([]T, len(src))
	for i, x := range src {
		c, err := convertScalar[T](x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}

func convertPairs[S scalar, T selectable](src [][2]S) ([][2]T, error) {
	out := make([][2]T, len(src))
	for i, p := range src {
		lo, err := convertScalar[T](p[0])
		if err != nil {
			return nil, fmt.Errorf("pair %d lower bound: %w", i, err)
		}
		hi, err := convertScalar[T](p[1])
		if err != nil {
			return nil, fmt.Errorf("pair %d upper bound: %w", i, err)
		}
		out[i] = [2]T{lo, hi}
	}
	return out, nil
}

// pairsFrom converts a list whose elements are themselves two-element lists.
func pairsFrom[E any, T selectable](src []E) ([][2]T, error) {
	out := make([][2]T, len(src))
	for i, elem := range src {
		vals, err := coerceValues[T](any(elem))
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		if len(vals) != 2 {
			return nil, fmt.Errorf("%w: pair %d has %d elements, want 2", ErrInvalidValue, i, len(vals))
		}
		out[i] = [2]T{vals[0], vals[1]}
	}
	return out, nil
}

// convertScalar converts one boundary value to T.
// Integer targets reject non-integral and out-of-range values.
func convertScalar[T selectable](v any) (T, error) {
	switch x := v.(type) {
	case T:
		return x, nil
	case int:
		return fromInt64[T](int64(x))
	case int8:
		return fromInt64[T](int64(x))
	case int16:
		return fromInt64[T](int64(x))
	case int32:
		return fromInt64[T](int64(x))
	case int64:
		return fromInt64[T](x)
	case uint:
		return fromUint64[T](uint64(x))
	case uint8:
		return fromUint64[T](uint64(x))
	case uint16:
		return fromUint64[T](uint64(x))
	case uint32:
		return fromUint64[T](uint64(x))
	case uint64:
		return fromUint64[T](x)
	case float32:
		return fromFloat64[T](float64(x))
	case float64:
		return fromFloat64[T](x)
	}
	var zero T
	return zero, fmt.Errorf("%w: cannot use %T as %T", ErrInvalidValue, v, zero)
}

func fromInt64[T selectable](v int64) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int32:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return zero, fmt.Errorf("%w: %d overflows int32", ErrInvalidValue, v)
		}
	case uint64:
		if v < 0 {
			return zero, fmt.Errorf("%w: %d is negative for uint64", ErrInvalidValue, v)
		}
	}
	return T(v), nil
}

func fromUint64[T selectable](v uint64) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int32:
		if v > math.MaxInt32 {
			return zero, fmt.Errorf("%w: %d overflows int32", ErrInvalidValue, v)
		}
	case int64:
		if v > math.MaxInt64 {
			return zero, fmt.Errorf("%w: %d overflows int64", ErrInvalidValue, v)
		}
	}
	return T(v), nil
}

// Bounds of float64 values that convert exactly to 64-bit integers.
const (
	minInt64Float  = -9223372036854775808.0
	maxInt64Float  = 9223372036854775808.0  // exclusive
	maxUint64Float = 18446744073709551616.0 // exclusive
)

func fromFloat64[T selectable](v float64) (T, error) {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return T(v), nil
	}

	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
		return zero, fmt.Errorf("%w: %v is not an integer", ErrInvalidValue, v)
	}
	switch any(zero).(type) {
	case int32:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return zero, fmt.Errorf("%w: %v overflows int32", ErrInvalidValue, v)
		}
	case int64:
		if v < minInt64Float || v >= maxInt64Float {
			return zero, fmt.Errorf("%w: %v overflows int64", ErrInvalidValue, v)
		}
	case uint64:
		if v < 0 || v >= maxUint64Float {
			return zero, fmt.Errorf("%w: %v overflows uint64", ErrInvalidValue, v)
		}
	}
	return T(v), nil
}

// Int64sFromFloat64s converts doubles carrying integer values, as produced
// by hosts without a native 64-bit integer type.
func Int64sFromFloat64s(src []float64) ([]int64, error) {
	return convertSlice[float64, int64](src)
}
