package soma

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hugr-lab/soma-go/dimension"
)

// Status converts a selector error into a gRPC status error.
//
//	unknown dimension                         -> NotFound
//	unsupported type or datatype              -> Unimplemented
//	unsuitable selection, invalid value/input -> InvalidArgument
//	existing status errors                    -> unchanged code
//	anything else                             -> Internal
//
// Returns nil for a nil error.
func Status(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrUnknownDimension):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrUnsupportedType), errors.Is(err, dimension.ErrUnsupportedDatatype):
		return status.Error(codes.Unimplemented, err.Error())
	case errors.Is(err, ErrUnsuitableSelection),
		errors.Is(err, ErrInvalidValue),
		errors.Is(err, ErrTypeMismatch),
		errors.Is(err, ErrInvalidConfig),
		errors.Is(err, dimension.ErrInvalidDomain):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	if st, ok := status.FromError(err); ok {
		return st.Err()
	}
	return status.Error(codes.Internal, err.Error())
}
