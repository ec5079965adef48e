package dimension

import (
	"fmt"
	"strings"
)

// ScalarType identifies the value type of a dimension.
type ScalarType uint8

const (
	Invalid ScalarType = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	StringASCII
	Datetime
)

var scalarTypeNames = map[ScalarType]string{
	Invalid:     "INVALID",
	Int8:        "INT8",
	Int16:       "INT16",
	Int32:       "INT32",
	Int64:       "INT64",
	Uint8:       "UINT8",
	Uint16:      "UINT16",
	Uint32:      "UINT32",
	Uint64:      "UINT64",
	Float32:     "FLOAT32",
	Float64:     "FLOAT64",
	StringASCII: "STRING_ASCII",
	Datetime:    "DATETIME_MS",
}

// scalarTypeAliases maps accepted spellings to scalar types.
// Canonical names are added in init.
var scalarTypeAliases = map[string]ScalarType{
	"INT":     Int32,
	"INTEGER": Int32,
	"BIGINT":  Int64,
	"UINT":    Uint32,
	"UBIGINT": Uint64,
	"FLOAT":   Float32,
	"REAL":    Float32,
	"DOUBLE":  Float64,
	"STRING":  StringASCII,
	"ASCII":   StringASCII,
}

func init() {
	for t, name := range scalarTypeNames {
		if t != Invalid {
			scalarTypeAliases[name] = t
		}
	}
}

// String returns the TileDB datatype name.
func (t ScalarType) String() string {
	if name, ok := scalarTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ScalarType(%d)", uint8(t))
}

// Numeric reports whether the type has a numeric domain.
func (t ScalarType) Numeric() bool {
	return t >= Int8 && t <= Float64
}

// ParseScalarType resolves a datatype name. Matching is case-insensitive.
func ParseScalarType(name string) (ScalarType, error) {
	if t, ok := scalarTypeAliases[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnsupportedDatatype, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t ScalarType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ScalarType) UnmarshalText(text []byte) error {
	parsed, err := ParseScalarType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Number is the set of Go types a numeric dimension domain can be expressed in.
type Number interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// TypeOf returns the scalar type matching T.
func TypeOf[T Number]() ScalarType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	}
	return Invalid
}
