package dimension

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Field metadata keys read by FromArrowSchema.
const (
	MetadataDomainMin = "domain_min"
	MetadataDomainMax = "domain_max"
)

// ScalarTypeFromArrow maps an Arrow data type to a ScalarType.
// Only millisecond timestamps map to Datetime; other units are unsupported.
func ScalarTypeFromArrow(dt arrow.DataType) (ScalarType, error) {
	if dt == nil {
		return Invalid, fmt.Errorf("%w: nil arrow type", ErrUnsupportedDatatype)
	}
	switch dt.ID() {
	case arrow.INT8:
		return Int8, nil
	case arrow.INT16:
		return Int16, nil
	case arrow.INT32:
		return Int32, nil
	case arrow.INT64:
		return Int64, nil
	case arrow.UINT8:
		return Uint8, nil
	case arrow.UINT16:
		return Uint16, nil
	case arrow.UINT32:
		return Uint32, nil
	case arrow.UINT64:
		return Uint64, nil
	case arrow.FLOAT32:
		return Float32, nil
	case arrow.FLOAT64:
		return Float64, nil
	case arrow.STRING, arrow.LARGE_STRING:
		return StringASCII, nil
	case arrow.TIMESTAMP:
		if ts, ok := dt.(*arrow.TimestampType); ok && ts.Unit == arrow.Millisecond {
			return Datetime, nil
		}
	}
	return Invalid, fmt.Errorf("%w: arrow type %s", ErrUnsupportedDatatype, dt)
}

// FromArrowSchema builds a registry from an Arrow schema.
// Every numeric or timestamp field MUST carry "domain_min" and "domain_max"
// metadata holding the bounds in decimal notation. String fields need none.
//
// Example:
//
//	md := arrow.NewMetadata([]string{"domain_min", "domain_max"}, []string{"0", "99"})
//	schema := arrow.NewSchema([]arrow.Field{
//	    {Name: "soma_joinid", Type: arrow.PrimitiveTypes.Int64, Metadata: md},
//	}, nil)
//	reg, err := dimension.FromArrowSchema(schema)
func FromArrowSchema(schema *arrow.Schema) (*StaticRegistry, error) {
	if schema == nil {
		return nil, fmt.Errorf("schema cannot be nil")
	}

	dims := make([]Dimension, 0, schema.NumFields())
	for _, field := range schema.Fields() {
		typ, err := ScalarTypeFromArrow(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		if typ == StringASCII {
			d, err := NewString(field.Name)
			if err != nil {
				return nil, err
			}
			dims = append(dims, d)
			continue
		}

		lo, okLo := metadataValue(field.Metadata, MetadataDomainMin)
		hi, okHi := metadataValue(field.Metadata, MetadataDomainMax)
		if !okLo || !okHi {
			return nil, fmt.Errorf("field %s: missing %s/%s metadata", field.Name, MetadataDomainMin, MetadataDomainMax)
		}
		d, err := parseDimension(field.Name, typ, lo, hi)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		dims = append(dims, d)
	}
	return NewRegistry(dims...)
}

func metadataValue(md arrow.Metadata, key string) (string, bool) {
	if md.Len() == 0 {
		return "", false
	}
	idx := md.FindKey(key)
	if idx < 0 {
		return "", false
	}
	return md.Values()[idx], true
}

// parseDimension creates a dimension from textual bounds.
func parseDimension(name string, typ ScalarType, lo, hi string) (Dimension, error) {
	switch typ {
	case Int8:
		return parseInts[int8](name, lo, hi, 8)
	case Int16:
		return parseInts[int16](name, lo, hi, 16)
	case Int32:
		return parseInts[int32](name, lo, hi, 32)
	case Int64:
		return parseInts[int64](name, lo, hi, 64)
	case Datetime:
		l, err := strconv.ParseInt(lo, 10, 64)
		if err != nil {
			return Dimension{}, err
		}
		h, err := strconv.ParseInt(hi, 10, 64)
		if err != nil {
			return Dimension{}, err
		}
		return NewDatetime(name, l, h)
	case Uint8:
		return parseUints[uint8](name, lo, hi, 8)
	case Uint16:
		return parseUints[uint16](name, lo, hi, 16)
	case Uint32:
		return parseUints[uint32](name, lo, hi, 32)
	case Uint64:
		return parseUints[uint64](name, lo, hi, 64)
	case Float32:
		return parseFloats[float32](name, lo, hi, 32)
	case Float64:
		return parseFloats[float64](name, lo, hi, 64)
	}
	return Dimension{}, fmt.Errorf("%w: %s", ErrUnsupportedDatatype, typ)
}

// ParseDimension creates a dimension of the given type from decimal bounds.
// String dimensions ignore the bounds.
func ParseDimension(name string, typ ScalarType, lo, hi string) (Dimension, error) {
	if typ == StringASCII {
		return NewString(name)
	}
	return parseDimension(name, typ, lo, hi)
}

func parseInts[T int8 | int16 | int32 | int64](name, lo, hi string, bits int) (Dimension, error) {
	l, err := strconv.ParseInt(lo, 10, bits)
	if err != nil {
		return Dimension{}, err
	}
	h, err := strconv.ParseInt(hi, 10, bits)
	if err != nil {
		return Dimension{}, err
	}
	return New(name, T(l), T(h))
}

func parseUints[T uint8 | uint16 | uint32 | uint64](name, lo, hi string, bits int) (Dimension, error) {
	l, err := strconv.ParseUint(lo, 10, bits)
	if err != nil {
		return Dimension{}, err
	}
	h, err := strconv.ParseUint(hi, 10, bits)
	if err != nil {
		return Dimension{}, err
	}
	return New(name, T(l), T(h))
}

func parseFloats[T float32 | float64](name, lo, hi string, bits int) (Dimension, error) {
	l, err := strconv.ParseFloat(lo, bits)
	if err != nil {
		return Dimension{}, err
	}
	h, err := strconv.ParseFloat(hi, bits)
	if err != nil {
		return Dimension{}, err
	}
	return New(name, T(l), T(h))
}

// FromDomainRecord builds a registry from a "domainish" record: one column per
// dimension, exactly two rows holding the lower and upper bound.
// Each column is logged at info level on logger (slog.Default() if nil).
func FromDomainRecord(rec arrow.RecordBatch, logger *slog.Logger) (*StaticRegistry, error) {
	if rec == nil {
		return nil, fmt.Errorf("record cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	dims := make([]Dimension, 0, rec.NumCols())
	for i := 0; i < int(rec.NumCols()); i++ {
		name := rec.ColumnName(i)
		col := rec.Column(i)
		if col.Len() != 2 {
			return nil, fmt.Errorf("domain column %s: expected 2 rows, got %d", name, col.Len())
		}
		if col.NullN() > 0 {
			return nil, fmt.Errorf("domain column %s: bounds cannot be null", name)
		}

		var (
			d   Dimension
			err error
		)
		switch arr := col.(type) {
		case *array.Int8:
			d, err = New(name, arr.Value(0), arr.Value(1))
		case *array.Int16:
			d, err = New(name, arr.Value(0), arr.Value(1))
		case *array.Int32:
			d, err = New(name, arr.Value(0), arr.Value(1))
		case *array.Int64:
			d, err = New(name, arr.Value(0), arr.Value(1))
		case *array.Uint8:
			d, err = New(name, arr.Value(0), arr.Value(1))
		case *array.Uint16:
			d, err = New(name, arr.Value(0), arr.Value(1))
		case *array.Uint32:
			d, err = New(name, arr.Value(0), arr.Value(1))
		case *array.Uint64:
			d, err = New(name, arr.Value(0), arr.Value(1))
		case *array.Float32:
			d, err = New(name, arr.Value(0), arr.Value(1))
		case *array.Float64:
			d, err = New(name, arr.Value(0), arr.Value(1))
		case *array.Timestamp:
			if _, terr := ScalarTypeFromArrow(arr.DataType()); terr != nil {
				return nil, fmt.Errorf("domain column %s: %w", name, terr)
			}
			d, err = NewDatetime(name, int64(arr.Value(0)), int64(arr.Value(1)))
		case *array.String:
			logger.Info("Domain column",
				"name", name,
				"type", arr.DataType().String(),
				"length", arr.Len(),
				"lo", arr.Value(0),
				"hi", arr.Value(1),
			)
			d, err = NewString(name)
			if err != nil {
				return nil, err
			}
			dims = append(dims, d)
			continue
		default:
			return nil, fmt.Errorf("domain column %s: %w: %s", name, ErrUnsupportedDatatype, col.DataType())
		}
		if err != nil {
			return nil, fmt.Errorf("domain column %s: %w", name, err)
		}

		logger.Info("Domain column",
			"name", name,
			"type", col.DataType().String(),
			"length", col.Len(),
			"domain", d.DomainString(),
		)
		dims = append(dims, d)
	}
	return NewRegistry(dims...)
}

// arrowFormatCodes maps R-side Arrow type names to Arrow C data interface
// format codes.
var arrowFormatCodes = map[string]string{
	"int8":       "c",
	"int16":      "s",
	"int32":      "i",
	"int64":      "l",
	"uint8":      "C",
	"uint16":     "S",
	"uint32":     "I",
	"uint64":     "L",
	"utf8":       "u",
	"large_utf8": "U",
	"bool":       "b",
	"float":      "f",
	"double":     "g",
}

// ArrowFormatCode returns the Arrow C format code for a type name such as
// "int32" or "double". Unknown names are returned unchanged.
func ArrowFormatCode(name string) string {
	if code, ok := arrowFormatCodes[name]; ok {
		return code
	}
	return name
}
