// Package selection installs per-dimension point and range selections on a
// ManagedQuery after validating them against each dimension's domain.
//
// Two applicators are provided:
//
//   - ApplyPoints filters candidate points to those inside the domain and
//     installs each survivor as an equality predicate.
//   - ApplyRanges clamps intervals to the domain and installs them as one
//     batch of range predicates per dimension.
//
// Both resolve dimension names through a dimension.Registry and dispatch on
// the dimension's scalar type. Only INT32, INT64, UINT64, FLOAT32 and FLOAT64
// dimensions are selectable; any other type fails with ErrUnsupportedType.
//
// # Suitability
//
// A dimension is suitable when the request produced at least one in-domain
// predicate for it. Unsuitable dimensions fail the whole call with
// ErrUnsuitableSelection.
//
// For points, every in-domain value counts and is installed as soon as it is
// seen. For ranges, each pair is clamped to the domain, but only the overlap
// test of the LAST pair (lo < max && hi > min) decides suitability; when it
// fails, no range of that dimension is installed even if earlier pairs
// overlapped. The overlap test is strict, so a pair touching only a domain
// endpoint is not suitable although clamping would retain it.
//
// # Failure
//
// Applicators stop at the first failing dimension. Predicates installed for
// earlier dimensions remain on the query; callers should discard a query
// after any error.
//
// # Request Values
//
// Request payloads are converted to the dimension's Go type before any
// domain test. Go numeric slices, []any (as decoded from MessagePack) and
// Arrow arrays are accepted. Values that cannot be represented in the target
// type fail with ErrInvalidValue.
package selection
