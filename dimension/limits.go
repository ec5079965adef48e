package dimension

import (
	"fmt"
	"math"
	"strings"
)

// MaxValue returns the largest value representable by an integer datatype.
// Accepts INT8 through UINT64 (case-insensitive); other names return
// ErrUnsupportedDatatype.
func MaxValue(datatype string) (uint64, error) {
	switch strings.ToUpper(datatype) {
	case "INT8":
		return math.MaxInt8, nil
	case "UINT8":
		return math.MaxUint8, nil
	case "INT16":
		return math.MaxInt16, nil
	case "UINT16":
		return math.MaxUint16, nil
	case "INT32":
		return math.MaxInt32, nil
	case "UINT32":
		return math.MaxUint32, nil
	case "INT64":
		return math.MaxInt64, nil
	case "UINT64":
		return math.MaxUint64, nil
	}
	return 0, fmt.Errorf("%w: currently unsupported datatype (%s)", ErrUnsupportedDatatype, datatype)
}
