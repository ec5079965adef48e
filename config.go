package soma

import (
	"errors"
	"log/slog"

	"github.com/hugr-lab/soma-go/dimension"
	"github.com/hugr-lab/soma-go/query"
	"github.com/hugr-lab/soma-go/selection"
	"github.com/hugr-lab/soma-go/stats"
)

// Config contains configuration for a selector.
type Config struct {
	// Logger for per-value selection diagnostics.
	// OPTIONAL: Uses slog.Default() if nil.
	// Note: If LogLevel is specified, a new logger will be created with that level.
	Logger *slog.Logger

	// LogLevel sets the logging level.
	// OPTIONAL: If nil, the logger is used as is.
	// Valid values: slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError
	// If Logger is also provided, LogLevel is ignored (use pre-configured logger).
	LogLevel *slog.Level

	// Stats receives selection counters.
	// OPTIONAL: Uses stats.Default if nil.
	Stats *stats.Collector

	// DisableStats turns off statistics for this selector.
	// OPTIONAL: Defaults to false.
	DisableStats bool
}

// Standard errors returned by the soma packages.
// All of them match with errors.Is through the wrapping selection.Error.
var (
	// ErrInvalidConfig indicates Config validation failed.
	ErrInvalidConfig = errors.New("invalid selector config")

	// ErrUnknownDimension indicates a requested dimension name is not in the
	// registry.
	ErrUnknownDimension = dimension.ErrUnknownDimension

	// ErrUnsupportedType indicates a dimension whose type cannot be selected on.
	ErrUnsupportedType = selection.ErrUnsupportedType

	// ErrUnsuitableSelection indicates no supplied point or range yielded an
	// in-domain predicate.
	ErrUnsuitableSelection = selection.ErrUnsuitableSelection

	// ErrInvalidValue indicates a value not representable in the dimension type.
	ErrInvalidValue = selection.ErrInvalidValue

	// ErrTypeMismatch indicates a predicate value of the wrong Go type for
	// its dimension.
	ErrTypeMismatch = query.ErrTypeMismatch
)

// Error is the error type returned by selector calls.
type Error = selection.Error
