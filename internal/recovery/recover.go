// Package recovery converts panics raised by external ManagedQuery
// implementations into errors so a misbehaving engine binding does not take
// down the caller.
package recovery

import (
	"log/slog"
	"runtime/debug"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecoverToError wraps a function call with panic recovery.
// If the function panics, the panic is logged with its stack and returned as
// a codes.Internal status error.
//
// Example:
//
//	err := recovery.RecoverToError(logger, "SelectPoint", func() error {
//	    return mq.SelectPoint(dim, value)
//	})
func RecoverToError(logger *slog.Logger, operation string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic recovered",
				"operation", operation,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			err = status.Errorf(codes.Internal, "%s panicked: %v", operation, r)
		}
	}()

	return fn()
}
