package selection

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// fromArrow converts a primitive Arrow array to []T. Nulls are rejected.
func fromArrow[T selectable](arr arrow.Array) ([]T, error) {
	if arr.NullN() > 0 {
		return nil, fmt.Errorf("%w: arrow array has %d null values", ErrInvalidValue, arr.NullN())
	}
	switch a := arr.(type) {
	case *array.Int8:
		return convertSlice[int8, T](a.Int8Values())
	case *array.Int16:
		return convertSlice[int16, T](a.Int16Values())
	case *array.Int32:
		return convertSlice[int32, T](a.Int32Values())
	case *array.Int64:
		return convertSlice[int64, T](a.Int64Values())
	case *array.Uint8:
		return convertSlice[uint8, T](a.Uint8Values())
	case *array.Uint16:
		return convertSlice[uint16, T](a.Uint16Values())
	case *array.Uint32:
		return convertSlice[uint32, T](a.Uint32Values())
	case *array.Uint64:
		return convertSlice[uint64, T](a.Uint64Values())
	case *array.Float32:
		return convertSlice[float32, T](a.Float32Values())
	case *array.Float64:
		return convertSlice[float64, T](a.Float64Values())
	}
	return nil, fmt.Errorf("%w: unsupported arrow type %s", ErrInvalidValue, arr.DataType())
}

// pairsFromArrow converts a FixedSizeList<2> array of primitives to [][2]T.
func pairsFromArrow[T selectable](arr arrow.Array) ([][2]T, error) {
	list, ok := arr.(*array.FixedSizeList)
	if !ok {
		return nil, fmt.Errorf("%w: range payload must be a fixed_size_list<2>, got %s", ErrInvalidValue, arr.DataType())
	}
	if n := list.DataType().(*arrow.FixedSizeListType).Len(); n != 2 {
		return nil, fmt.Errorf("%w: range payload list size %d, want 2", ErrInvalidValue, n)
	}
	if list.NullN() > 0 {
		return nil, fmt.Errorf("%w: arrow array has %d null pairs", ErrInvalidValue, list.NullN())
	}

	if list.Len() == 0 {
		return [][2]T{}, nil
	}

	// Only the child values covered by this (possibly sliced) list are read.
	start, _ := list.ValueOffsets(0)
	_, end := list.ValueOffsets(list.Len() - 1)
	child := array.NewSlice(list.ListValues(), start, end)
	defer child.Release()

	values, err := fromArrow[T](child)
	if err != nil {
		return nil, err
	}

	out := make([][2]T, list.Len())
	for i := range out {
		out[i] = [2]T{values[2*i], values[2*i+1]}
	}
	return out, nil
}
