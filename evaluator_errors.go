package rdfopts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoEvaluator indicates that no query engine could be resolved.
	ErrNoEvaluator = errors.New("rdfopts: evaluator not configured")
	// ErrUnknownEngine indicates an engine name NewEvaluator does not know.
	ErrUnknownEngine = errors.New("rdfopts: unknown query engine")
	// ErrQueryResult indicates a query expression that did not yield a boolean.
	ErrQueryResult = errors.New("rdfopts: query must evaluate to a boolean")
)

// EvaluationError captures evaluator metadata alongside the originating error.
type EvaluationError struct {
	Engine string
	Expr   string
	Area   string
	Err    error
}

func (e *EvaluationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("rdfopts: %s evaluator %s area=%s: %v", e.Engine, describeExpression(e.Expr), e.Area, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeExpression(expr string) string {
	if expr == "" {
		return "expr=<empty>"
	}
	return fmt.Sprintf("expr=%q", expr)
}

func wrapEvaluatorError(engine string, err error) error {
	if err == nil {
		return nil
	}

	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		return err
	}

	if strings.HasPrefix(err.Error(), "rdfopts:") {
		return err
	}
	return fmt.Errorf("rdfopts: %s evaluator: %w", engine, err)
}

func wrapEvaluationError(engine, expr, area string, err error) error {
	if err == nil {
		return nil
	}

	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		if evalErr.Engine == "" {
			evalErr.Engine = engine
		}
		if evalErr.Expr == "" {
			evalErr.Expr = expr
		}
		if evalErr.Area == "" {
			evalErr.Area = area
		}
		return evalErr
	}

	return &EvaluationError{
		Engine: engine,
		Expr:   expr,
		Area:   area,
		Err:    err,
	}
}
