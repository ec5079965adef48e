// Package query defines the Managed Query capability the selection
// applicators install predicates into, and an in-memory implementation.
//
// A ManagedQuery accumulates point and range predicates ahead of execution.
// The storage engine combines predicates with OR semantics within a dimension
// and AND semantics across dimensions. Executing the query is out of scope for
// this package; Query records predicates so they can be inspected, handed to an
// engine, or rendered as SQL with DuckDBEncoder:
//
//	q := query.New(reg)
//	_ = q.SelectPoint("x", int32(50))
//	_ = q.SelectRanges("y", []query.Range{{Lo: 0.5, Hi: 1.0}})
//	where := query.NewDuckDBEncoder(nil).Encode(q)
//	// "(x IN (50)) AND (y BETWEEN 0.5 AND 1)"
//
// # Value Types
//
// Point values and range bounds carry the Go type matching the dimension's
// scalar type: int32 for INT32, uint64 for UINT64, float64 for FLOAT64, and so
// on. DATETIME_MS dimensions use int64 milliseconds, STRING_ASCII dimensions
// use string.
//
// # Concurrency
//
// A Query is not safe for concurrent mutation. Callers building one query from
// several goroutines must serialize access; distinct queries are independent.
package query
