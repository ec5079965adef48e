// Package dimension describes the named axes of a multi-dimensional array and
// resolves them for the selection applicators.
//
// A Dimension carries a scalar type and, for numeric types, a closed domain
// [Min, Max] expressed in that type. Dimensions are grouped in a Registry which
// is read-only once built:
//
//	x, _ := dimension.New[int32]("soma_dim_0", 0, 100)
//	y, _ := dimension.New[float64]("soma_dim_1", -1, 1)
//	reg, err := dimension.NewRegistry(x, y)
//
// Registries can also be read from Arrow metadata:
//   - FromArrowSchema reads "domain_min"/"domain_max" field metadata
//   - FromDomainRecord reads a two-row record holding lower and upper bounds
//
// # Supported Types
//
// The registry can describe every TileDB numeric type plus string dimensions.
// Only INT32, INT64, UINT64, FLOAT32 and FLOAT64 dimensions can be selected on;
// see the selection package.
package dimension
