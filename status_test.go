package soma

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hugr-lab/soma-go/dimension"
	"github.com/hugr-lab/soma-go/selection"
)

// TestStatus tests the gRPC code assigned to each error class.
func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"unknown dimension", &selection.Error{Op: selection.OpPoints, Dim: "z", Err: fmt.Errorf("%w: 'z'", dimension.ErrUnknownDimension)}, codes.NotFound},
		{"unsupported type", &selection.Error{Op: selection.OpRanges, Dim: "s", Err: ErrUnsupportedType}, codes.Unimplemented},
		{"unsupported datatype", dimension.ErrUnsupportedDatatype, codes.Unimplemented},
		{"unsuitable", &selection.Error{Op: selection.OpPoints, Dim: "x", Err: ErrUnsuitableSelection}, codes.InvalidArgument},
		{"invalid value", fmt.Errorf("wrapped: %w", ErrInvalidValue), codes.InvalidArgument},
		{"invalid config", ErrInvalidConfig, codes.InvalidArgument},
		{"existing status", fmt.Errorf("wrapped: %w", status.Error(codes.Unavailable, "down")), codes.Unavailable},
		{"other", errors.New("boom"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Status(tt.err)
			if code := status.Code(got); code != tt.want {
				t.Errorf("Expected %s, got %s (%v)", tt.want, code, got)
			}
		})
	}
}

// TestStatusNil tests that nil stays nil.
func TestStatusNil(t *testing.T) {
	if err := Status(nil); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
}
