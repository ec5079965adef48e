package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hugr-lab/soma-go/query"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Selection rejected by the applicator
	ExitCommandError = 2 // Command error (unreadable files, bad YAML, etc.)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Result is the output of a points or ranges command.
type Result struct {
	QueryID    string   `json:"query_id"`
	Predicates []string `json:"predicates"`
	Where      string   `json:"where"`
}

// NewResult summarizes the predicates installed on q.
func NewResult(q *query.Query) *Result {
	preds := q.Predicates()
	out := &Result{
		QueryID:    q.ID().String(),
		Predicates: make([]string, len(preds)),
		Where:      query.NewDuckDBEncoder(nil).Encode(q),
	}
	for i, p := range preds {
		out.Predicates[i] = p.String()
	}
	return out
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Result writes r in the configured format.
func (f *OutputFormatter) Result(r *Result) error {
	if f.Format == "json" {
		return f.json(r)
	}
	for _, p := range r.Predicates {
		if _, err := fmt.Fprintln(f.Writer, p); err != nil {
			return err
		}
	}
	if r.Where != "" {
		_, err := fmt.Fprintf(f.Writer, "WHERE %s\n", r.Where)
		return err
	}
	return nil
}

func (f *OutputFormatter) json(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
