// File: interp/errors.go
// Author: momentics <momentics@gmail.com>
//
// Script runtime errors (spec.md §7 "type mismatch, missing symbol,
// arity mismatch, division by zero, index out of range. Reported
// through the job's error buffer; unwind until caught or job
// termination"). Grounded on api/errors.go's ErrorCode taxonomy.
package interp

import (
	"fmt"

	"github.com/reedcode/corelang/api"
)

// Runtime error codes specific to the interpreter, layered on top of
// api.ErrorCode's existing reactor-facing codes.
const (
	ErrTypeMismatch   api.ErrorCode = 100 + iota
	ErrMissingSymbol
	ErrArityMismatch
	ErrDivisionByZero
	ErrIndexOutOfRange
	ErrUncaught
)

// raisef unwinds job's evaluation stack with a formatted runtime error.
// This language has no AST-level catch construct (spec.md §4.3
// "Errors"), so every raised error destroys the job once the unwind
// reaches the empty stack.
func raisef(j *Job, code api.ErrorCode, format string, args ...any) *unwindSignal {
	err := api.NewError(code, fmt.Sprintf(format, args...))
	j.Err = err
	return &unwindSignal{kind: unwindError, err: err}
}
