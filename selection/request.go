package selection

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/hugr-lab/soma-go/internal/wire"
)

// Points lists candidate point values for one dimension.
type Points struct {
	// Dim is the dimension name.
	// REQUIRED: MUST exist in the registry.
	Dim string

	// Values holds the candidates: a Go numeric slice, []any of numeric
	// scalars, an Arrow primitive array, or a single numeric scalar.
	Values any
}

// PointRequest is an ordered collection of point selections.
// Dimensions are processed in slice order.
type PointRequest []Points

// Ranges lists (low, high) interval pairs for one dimension.
type Ranges struct {
	// Dim is the dimension name.
	// REQUIRED: MUST exist in the registry.
	Dim string

	// Pairs holds the intervals: [][2]T or [][]T of a Go numeric type,
	// []any of two-element []any, or an Arrow fixed_size_list<2> array.
	Pairs any
}

// RangeRequest is an ordered collection of range selections.
// Dimensions are processed in slice order.
type RangeRequest []Ranges

// EncodeMsgpack encodes the request as a map keeping dimension order.
func (r PointRequest) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(r)); err != nil {
		return err
	}
	for _, p := range r {
		if err := enc.EncodeString(p.Dim); err != nil {
			return err
		}
		if err := enc.Encode(p.Values); err != nil {
			return fmt.Errorf("dimension %s: %w", p.Dim, err)
		}
	}
	return nil
}

// DecodeMsgpack decodes a map of dimension name to value array in wire order.
func (r *PointRequest) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	if n < 0 {
		*r = nil
		return nil
	}

	out := make(PointRequest, 0, n)
	for i := 0; i < n; i++ {
		name, err := dec.DecodeString()
		if err != nil {
			return fmt.Errorf("entry %d name: %w", i, err)
		}
		values, err := dec.DecodeInterface()
		if err != nil {
			return fmt.Errorf("dimension %s: %w", name, err)
		}
		out = append(out, Points{Dim: name, Values: values})
	}
	*r = out
	return nil
}

// EncodeMsgpack encodes the request as a map keeping dimension order.
func (r RangeRequest) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(r)); err != nil {
		return err
	}
	for _, p := range r {
		if err := enc.EncodeString(p.Dim); err != nil {
			return err
		}
		if err := enc.Encode(p.Pairs); err != nil {
			return fmt.Errorf("dimension %s: %w", p.Dim, err)
		}
	}
	return nil
}

// DecodeMsgpack decodes a map of dimension name to an array of pairs in wire
// order.
func (r *RangeRequest) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	if n < 0 {
		*r = nil
		return nil
	}

	out := make(RangeRequest, 0, n)
	for i := 0; i < n; i++ {
		name, err := dec.DecodeString()
		if err != nil {
			return fmt.Errorf("entry %d name: %w", i, err)
		}
		pairs, err := dec.DecodeInterface()
		if err != nil {
			return fmt.Errorf("dimension %s: %w", name, err)
		}
		out = append(out, Ranges{Dim: name, Pairs: pairs})
	}
	*r = out
	return nil
}

// DecodePointRequest decodes a MessagePack point request, optionally
// zstd-compressed.
func DecodePointRequest(data []byte) (PointRequest, error) {
	var req PointRequest
	if err := wire.Decode(data, &req); err != nil {
		return nil, err
	}
	return req, nil
}

// DecodeRangeRequest decodes a MessagePack range request, optionally
// zstd-compressed.
func DecodeRangeRequest(data []byte) (RangeRequest, error) {
	var req RangeRequest
	if err := wire.Decode(data, &req); err != nil {
		return nil, err
	}
	return req, nil
}

// EncodePointRequest encodes a point request as MessagePack.
func EncodePointRequest(req PointRequest, compress bool) ([]byte, error) {
	return wire.Encode(req, compress)
}

// EncodeRangeRequest encodes a range request as MessagePack.
func EncodeRangeRequest(req RangeRequest, compress bool) ([]byte, error) {
	return wire.Encode(req, compress)
}
