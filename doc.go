// Package soma installs point and range selections on the dimensions of a
// sparse-array query.
//
// A selection request names dimensions and supplies candidate values (for
// points) or interval pairs (for ranges). Each value is converted to the
// dimension's scalar type, checked or clamped against the dimension's
// domain, and installed on a query.ManagedQuery:
//   - Points outside the domain are skipped; a dimension with no surviving
//     point fails with ErrUnsuitableSelection
//   - Range pairs are clamped to the domain and installed as a single batch;
//     the overlap test of the last pair decides whether the batch is accepted
//   - Only INT32, INT64, UINT64, FLOAT32 and FLOAT64 dimensions are selectable
//
// Predicates installed before a failure stay on the query.
//
// # Quick Start
//
//	reg, err := soma.NewRegistryBuilder().
//	    Int32("x", 0, 100).
//	    Float64("y", 0, 0.5).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sel, err := soma.NewSelector(soma.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	q := query.New(reg)
//	err = sel.ApplyRanges(q, reg, selection.RangeRequest{
//	    {Dim: "x", Pairs: [][2]int32{{90, 150}}},
//	})
//	// q now holds Range(x, 90, 100)
//
//	where := query.NewDuckDBEncoder(nil).Encode(q)
//	// "x BETWEEN 90 AND 100"
//
// # Requests on the Wire
//
// selection.DecodePointRequest and selection.DecodeRangeRequest read a
// MessagePack map of dimension name to values. Payloads may be zstd
// compressed. Map order is preserved.
//
// # Dimensions from Arrow
//
// dimension.FromArrowSchema reads field types and "domain_min"/"domain_max"
// metadata. dimension.FromDomainRecord reads a two-row record holding the
// lower and upper bound of every column.
//
// # Errors
//
// Selector calls return *Error wrapping one of the package sentinels. Use
// errors.Is to test for them and Status to convert to a gRPC status.
//
// # Statistics
//
// Selection counters are recorded in stats.Default unless Config says
// otherwise. See package stats.
package soma
