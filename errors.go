package golisp

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	UnboundSymbol ErrorKind = iota
	TypeMismatch
	ArityMismatch
	NotCallable
	CannotEvalCallable
	UnknownSpecialForm
	RecursionLimitExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case UnboundSymbol:
		return "UnboundSymbol"
	case TypeMismatch:
		return "TypeMismatch"
	case ArityMismatch:
		return "ArityMismatch"
	case NotCallable:
		return "NotCallable"
	case CannotEvalCallable:
		return "CannotEvalCallable"
	case UnknownSpecialForm:
		return "UnknownSpecialForm"
	case RecursionLimitExceeded:
		return "RecursionLimitExceeded"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// EvalError is a recoverable evaluation error. Name holds the offending
// symbol, form name, expected shape or rendered value depending on Kind.
// Expected and Actual are only set for ArityMismatch, and Expected doubles
// as the limit for RecursionLimitExceeded.
type EvalError struct {
	Kind     ErrorKind
	Name     string
	Expected int
	Actual   int
	// Got is the rendering of the value that failed a TypeMismatch.
	Got string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case UnboundSymbol:
		return fmt.Sprintf("unbound symbol: %s", e.Name)
	case TypeMismatch:
		return fmt.Sprintf("expected %s, got %s", e.Name, e.Got)
	case ArityMismatch:
		return fmt.Sprintf("wrong number of args (%d) passed to %s, expected %d", e.Actual, e.Name, e.Expected)
	case NotCallable:
		return fmt.Sprintf("expected callable, got %s", e.Name)
	case CannotEvalCallable:
		return fmt.Sprintf("cannot eval callable %s", e.Name)
	case UnknownSpecialForm:
		return fmt.Sprintf("unknown special form: %s", e.Name)
	case RecursionLimitExceeded:
		return fmt.Sprintf("recursion limit (%d) exceeded", e.Expected)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Name)
	}
}

func unboundSymbol(name string) error {
	return &EvalError{Kind: UnboundSymbol, Name: name}
}

func typeMismatch(expected string, got Value) error {
	return &EvalError{Kind: TypeMismatch, Name: expected, Got: Print(got)}
}

func arityMismatch(name string, expected, actual int) error {
	return &EvalError{Kind: ArityMismatch, Name: name, Expected: expected, Actual: actual}
}

// SyntaxError is returned by Parse for malformed program text. Incomplete
// is set when the text ended inside an open list, so more input could fix it.
type SyntaxError struct {
	Msg        string
	Incomplete bool
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}

// IsIncomplete reports whether err is a syntax error caused by input that
// ended before every list was closed.
func IsIncomplete(err error) bool {
	var syntaxErr *SyntaxError
	return errors.As(err, &syntaxErr) && syntaxErr.Incomplete
}

// Fault is a runtime fault that aborted an evaluation, such as integer
// division by zero. It is never a normal result.
type Fault struct {
	Cause any
}

func (f *Fault) Error() string {
	return fmt.Sprintf("internal fault: %v", f.Cause)
}
