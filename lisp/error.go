package lisp

import (
	"fmt"

	"github.com/bmatsuo/subscheme/symbol"
)

// UnboundVariableError indicates that no frame in an environment chain binds
// the named variable.
type UnboundVariableError struct {
	Name symbol.ID
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %v", e.Name)
}

// NotAProcedureError indicates that a value in operator position is neither
// a primitive nor a compound procedure.
type NotAProcedureError struct {
	Value LVal
}

func (e *NotAProcedureError) Error() string {
	return fmt.Sprintf("not a procedure: %s", FormatString(e.Value, symbol.DefaultGlobalTable))
}

// UnknownExpressionTypeError indicates that the evaluator could not classify
// an expression.
type UnknownExpressionTypeError struct {
	Expr LVal
}

func (e *UnknownExpressionTypeError) Error() string {
	return fmt.Sprintf("unknown expression type: %v", e.Expr.Type())
}

// MalformedSyntaxError indicates that a special form or derived form was
// given an invalid shape.
type MalformedSyntaxError struct {
	Form   symbol.ID
	Detail string
}

func (e *MalformedSyntaxError) Error() string {
	if e.Form == 0 {
		return e.Detail
	}
	return fmt.Sprintf("%v: %s", e.Form, e.Detail)
}

// ArityMismatchError indicates that the number of arguments supplied to a
// procedure does not match its parameter count.
type ArityMismatchError struct {
	Expected int
	Got      int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("wrong number of arguments: expected %d (got %d)", e.Expected, e.Got)
}
