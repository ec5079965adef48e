package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DuckDBEncoder renders query predicates in DuckDB SQL syntax.
//
// Predicates on one dimension are OR'ed; dimensions are AND'ed:
//
//	(x IN (1, 5) OR x BETWEEN 10 AND 20) AND (y BETWEEN 0.5 AND 1)
type DuckDBEncoder struct {
	opts *EncoderOptions
}

// NewDuckDBEncoder creates a new DuckDB SQL encoder.
// If opts is nil, default options are used.
func NewDuckDBEncoder(opts *EncoderOptions) *DuckDBEncoder {
	if opts == nil {
		opts = &EncoderOptions{}
	}
	return &DuckDBEncoder{opts: opts}
}

// Encode implements Encoder.
// Returns empty string if any predicate value cannot be rendered, so the
// caller never receives a narrower condition than the query describes.
func (e *DuckDBEncoder) Encode(q *Query) string {
	if q == nil || q.Len() == 0 {
		return ""
	}

	var parts []string
	for _, dim := range q.Dimensions() {
		part, ok := e.encodeDimension(dim, q.predicates)
		if !ok {
			return ""
		}
		parts = append(parts, part)
	}

	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, ") AND (") + ")"
}

// encodeDimension renders all predicates of one dimension as a disjunction.
// Points collapse into a single IN list placed first.
func (e *DuckDBEncoder) encodeDimension(dim string, predicates []Predicate) (string, bool) {
	col := e.column(dim)

	var points, terms []string
	for _, p := range predicates {
		if p.Dimension() != dim {
			continue
		}
		switch pr := p.(type) {
		case *PointPredicate:
			v, ok := formatValue(pr.Value)
			if !ok {
				return "", false
			}
			points = append(points, v)
		case *RangePredicate:
			lo, okLo := formatValue(pr.Lo)
			hi, okHi := formatValue(pr.Hi)
			if !okLo || !okHi {
				return "", false
			}
			terms = append(terms, col+" BETWEEN "+lo+" AND "+hi)
		}
	}

	if len(points) > 0 {
		terms = append([]string{col + " IN (" + strings.Join(points, ", ") + ")"}, terms...)
	}
	return strings.Join(terms, " OR "), true
}

func (e *DuckDBEncoder) column(dim string) string {
	if e.opts.ColumnMapping != nil {
		if mapped, ok := e.opts.ColumnMapping[dim]; ok {
			dim = mapped
		}
	}
	return quoteIdentifier(dim)
}

// formatValue renders a scalar literal.
func formatValue(v any) (string, bool) {
	switch x := v.(type) {
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float32:
		return formatFloat(float64(x), 32), true
	case float64:
		return formatFloat(x, 64), true
	case string:
		return quoteLiteral(x), true
	}
	return "", false
}

func formatFloat(f float64, bits int) string {
	typ := "DOUBLE"
	if bits == 32 {
		typ = "FLOAT"
	}
	switch {
	case math.IsNaN(f):
		return fmt.Sprintf("'nan'::%s", typ)
	case math.IsInf(f, 1):
		return fmt.Sprintf("'inf'::%s", typ)
	case math.IsInf(f, -1):
		return fmt.Sprintf("'-inf'::%s", typ)
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}
