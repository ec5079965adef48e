package selection

import (
	"log/slog"

	"github.com/hugr-lab/soma-go/dimension"
	"github.com/hugr-lab/soma-go/internal/recovery"
	"github.com/hugr-lab/soma-go/query"
)

// Recorder receives selection statistics.
// stats.Collector implements it.
type Recorder interface {
	PointSelected(t dimension.ScalarType)
	PointSkipped(t dimension.ScalarType)
	RangesSelected(t dimension.ScalarType, n int)
	SelectionFailed(op, reason string)
}

type nopRecorder struct{}

func (nopRecorder) PointSelected(dimension.ScalarType)       {}
func (nopRecorder) PointSkipped(dimension.ScalarType)        {}
func (nopRecorder) RangesSelected(dimension.ScalarType, int) {}
func (nopRecorder) SelectionFailed(string, string)           {}

// Failure reasons passed to Recorder.SelectionFailed.
const (
	ReasonUnknownDimension = "unknown_dimension"
	ReasonUnsupportedType  = "unsupported_type"
	ReasonInvalidValue     = "invalid_value"
	ReasonUnsuitable       = "unsuitable"
	ReasonQuery            = "query"
)

// Options configures an Applicator.
type Options struct {
	// Logger for per-value diagnostics.
	// OPTIONAL: Uses slog.Default() if nil.
	Logger *slog.Logger

	// Recorder receives selection statistics.
	// OPTIONAL: Statistics are discarded if nil.
	Recorder Recorder
}

// Applicator installs point and range selections on managed queries.
// An Applicator holds no per-call state and is safe for concurrent use as
// long as each call targets a different ManagedQuery.
type Applicator struct {
	logger   *slog.Logger
	recorder Recorder
}

// New creates an Applicator.
func New(opts Options) *Applicator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var rec Recorder = nopRecorder{}
	if opts.Recorder != nil {
		rec = opts.Recorder
	}
	return &Applicator{logger: logger, recorder: rec}
}

// ApplyPoints installs point selections using an Applicator with default
// options.
func ApplyPoints(mq query.ManagedQuery, reg dimension.Registry, req PointRequest) error {
	return New(Options{}).ApplyPoints(mq, reg, req)
}

// ApplyRanges installs range selections using an Applicator with default
// options.
func ApplyRanges(mq query.ManagedQuery, reg dimension.Registry, req RangeRequest) error {
	return New(Options{}).ApplyRanges(mq, reg, req)
}

// ApplyPoints installs, for every dimension in req, each candidate value that
// lies inside the dimension's domain as a point predicate on mq.
//
// Out-of-domain values are skipped. The call fails with ErrUnsuitableSelection
// as soon as a dimension ends with no installed point, with ErrUnsupportedType
// for a dimension outside the selectable types, and with the registry's error
// for unknown names. Predicates installed before a failure stay on mq.
func (a *Applicator) ApplyPoints(mq query.ManagedQuery, reg dimension.Registry, req PointRequest) error {
	for _, sel := range req {
		d, err := reg.Dimension(sel.Dim)
		if err != nil {
			a.recorder.SelectionFailed(OpPoints, ReasonUnknownDimension)
			return &Error{Op: OpPoints, Dim: sel.Dim, Err: err}
		}

		switch d.Type() {
		case dimension.Uint64:
			err = applyPoints[uint64](a, mq, d, sel.Values)
		case dimension.Int64:
			err = applyPoints[int64](a, mq, d, sel.Values)
		case dimension.Float32:
			err = applyPoints[float32](a, mq, d, sel.Values)
		case dimension.Float64:
			err = applyPoints[float64](a, mq, d, sel.Values)
		case dimension.Int32:
			err = applyPoints[int32](a, mq, d, sel.Values)
		default:
			a.recorder.SelectionFailed(OpPoints, ReasonUnsupportedType)
			err = newError(OpPoints, d, ErrUnsupportedType)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ApplyRanges installs, for every dimension in req, its interval pairs
// clamped to the dimension's domain as one batch of range predicates on mq.
//
// The overlap test of the last pair decides whether the dimension's batch is
// installed; if it fails the call returns ErrUnsuitableSelection. Other
// failures and the no-rollback policy match ApplyPoints.
func (a *Applicator) ApplyRanges(mq query.ManagedQuery, reg dimension.Registry, req RangeRequest) error {
	for _, sel := range req {
		d, err := reg.Dimension(sel.Dim)
		if err != nil {
			a.recorder.SelectionFailed(OpRanges, ReasonUnknownDimension)
			return &Error{Op: OpRanges, Dim: sel.Dim, Err: err}
		}

		switch d.Type() {
		case dimension.Uint64:
			err = applyRanges[uint64](a, mq, d, sel.Pairs)
		case dimension.Int64:
			err = applyRanges[int64](a, mq, d, sel.Pairs)
		case dimension.Float32:
			err = applyRanges[float32](a, mq, d, sel.Pairs)
		case dimension.Float64:
			err = applyRanges[float64](a, mq, d, sel.Pairs)
		case dimension.Int32:
			err = applyRanges[int32](a, mq, d, sel.Pairs)
		default:
			a.recorder.SelectionFailed(OpRanges, ReasonUnsupportedType)
			err = newError(OpRanges, d, ErrUnsupportedType)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func applyPoints[T selectable](a *Applicator, mq query.ManagedQuery, d dimension.Dimension, payload any) error {
	dom, err := dimension.DomainOf[T](d)
	if err != nil {
		a.recorder.SelectionFailed(OpPoints, ReasonUnsupportedType)
		return newError(OpPoints, d, err)
	}
	values, err := coerceValues[T](payload)
	if err != nil {
		a.recorder.SelectionFailed(OpPoints, ReasonInvalidValue)
		return newError(OpPoints, d, err)
	}

	suitable := false
	for _, v := range values {
		if !dom.Contains(v) {
			a.logger.Info("Skipping dim point outside domain",
				"dim", d.Name(),
				"value", v,
				"domain", dom.String(),
			)
			a.recorder.PointSkipped(d.Type())
			continue
		}

		err := recovery.RecoverToError(a.logger, "SelectPoint", func() error {
			return mq.SelectPoint(d.Name(), v)
		})
		if err != nil {
			a.recorder.SelectionFailed(OpPoints, ReasonQuery)
			return newError(OpPoints, d, err)
		}
		a.logger.Debug("Applying dim point", "dim", d.Name(), "value", v)
		a.recorder.PointSelected(d.Type())
		suitable = true
	}

	if !suitable {
		a.recorder.SelectionFailed(OpPoints, ReasonUnsuitable)
		return newError(OpPoints, d, ErrUnsuitableSelection)
	}
	return nil
}

func applyRanges[T selectable](a *Applicator, mq query.ManagedQuery, d dimension.Dimension, payload any) error {
	dom, err := dimension.DomainOf[T](d)
	if err != nil {
		a.recorder.SelectionFailed(OpRanges, ReasonUnsupportedType)
		return newError(OpRanges, d, err)
	}
	pairs, err := coercePairs[T](payload)
	if err != nil {
		a.recorder.SelectionFailed(OpRanges, ReasonInvalidValue)
		return newError(OpRanges, d, err)
	}

	// Every pair is staged; only the last overlap test decides suitability.
	staged := make([]query.Range, len(pairs))
	suitable := false
	for i, p := range pairs {
		lo, hi := dom.Clamp(p[0], p[1])
		staged[i] = query.Range{Lo: lo, Hi: hi}
		a.logger.Debug("Applying dim range",
			"index", i,
			"dim", d.Name(),
			"lo", p[0],
			"hi", p[1],
		)
		suitable = dom.Overlaps(p[0], p[1])
	}

	if !suitable {
		a.recorder.SelectionFailed(OpRanges, ReasonUnsuitable)
		return newError(OpRanges, d, ErrUnsuitableSelection)
	}

	err = recovery.RecoverToError(a.logger, "SelectRanges", func() error {
		return mq.SelectRanges(d.Name(), staged)
	})
	if err != nil {
		a.recorder.SelectionFailed(OpRanges, ReasonQuery)
		return newError(OpRanges, d, err)
	}
	a.recorder.RangesSelected(d.Type(), len(staged))
	return nil
}
