package soma

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hugr-lab/soma-go/selection"
	"github.com/hugr-lab/soma-go/stats"
)

// NewSelector creates a point/range selection applicator.
// This is the main entry point for the soma package.
//
// Returns error if config is invalid (e.g., an unknown LogLevel).
//
// Example:
//
//	sel, err := soma.NewSelector(soma.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg, _ := soma.NewRegistryBuilder().
//	    Int32("x", 0, 100).
//	    Build()
//	q := query.New(reg)
//	err = sel.ApplyPoints(q, reg, selection.PointRequest{
//	    {Dim: "x", Values: []int32{50, 200}},
//	})
func NewSelector(config Config) (*selection.Applicator, error) {
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
		if config.LogLevel != nil {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: *config.LogLevel,
			}))
		}
	}

	var rec selection.Recorder
	if !config.DisableStats {
		collector := config.Stats
		if collector == nil {
			collector = stats.Default
		}
		rec = collector
	}

	logger.Debug("Selector created",
		"stats", rec != nil,
	)

	return selection.New(selection.Options{
		Logger:   logger,
		Recorder: rec,
	}), nil
}

// validateConfig checks that Config fields are valid.
func validateConfig(config Config) error {
	if config.LogLevel != nil {
		switch *config.LogLevel {
		case slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError:
		default:
			return fmt.Errorf("unsupported log level %d", int(*config.LogLevel))
		}
	}
	return nil
}
