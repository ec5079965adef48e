package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hugr-lab/soma-go/dimension"
	"github.com/hugr-lab/soma-go/query"
	"github.com/hugr-lab/soma-go/selection"
)

// selectOptions holds flags shared by the points and ranges commands.
type selectOptions struct {
	dims    string
	request string
}

func (o *selectOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.dims, "dims", "d", "", "YAML file declaring the dimensions")
	cmd.Flags().StringVarP(&o.request, "request", "r", "", "request file (YAML, or MessagePack with .msgpack/.mpk/.zst extension)")
	_ = cmd.MarkFlagRequired("dims")
	_ = cmd.MarkFlagRequired("request")
}

// NewPointsCommand creates the points command.
func NewPointsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &selectOptions{}
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Install point selections",
		Long: `Install point selections on the declared dimensions.

Each request entry maps a dimension name to a list of candidate values.
Values outside the dimension domain are skipped; a dimension left without
any point fails the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(rootOpts, opts, cmd, func(a *selection.Applicator, q *query.Query, reg dimension.Registry) error {
				req, err := LoadPointRequest(opts.request)
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to load request", err)
				}
				return a.ApplyPoints(q, reg, req)
			})
		},
	}
	opts.bind(cmd)
	return cmd
}

// NewRangesCommand creates the ranges command.
func NewRangesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &selectOptions{}
	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "Install range selections",
		Long: `Install range selections on the declared dimensions.

Each request entry maps a dimension name to a list of [low, high] pairs.
Pairs are clamped to the dimension domain; the last pair must overlap the
domain for the dimension to be accepted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(rootOpts, opts, cmd, func(a *selection.Applicator, q *query.Query, reg dimension.Registry) error {
				req, err := LoadRangeRequest(opts.request)
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to load request", err)
				}
				return a.ApplyRanges(q, reg, req)
			})
		},
	}
	opts.bind(cmd)
	return cmd
}

type applyFunc func(a *selection.Applicator, q *query.Query, reg dimension.Registry) error

func runSelect(rootOpts *RootOptions, opts *selectOptions, cmd *cobra.Command, apply applyFunc) error {
	formatter := &OutputFormatter{
		Format: rootOpts.Format,
		Writer: cmd.OutOrStdout(),
	}

	reg, err := LoadDimensions(opts.dims)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load dimensions", err)
	}

	logger := rootOpts.logger(cmd)
	applicator := selection.New(selection.Options{Logger: logger})
	q := query.New(reg)

	if err := apply(applicator, q, reg); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr
		}
		// Predicates installed before the failure are still reported.
		_ = formatter.Result(NewResult(q))
		return WrapExitError(ExitFailure, "selection failed", err)
	}

	return formatter.Result(NewResult(q))
}
