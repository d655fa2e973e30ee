// File: value/function.go
// Author: momentics <momentics@gmail.com>
//
// FuncDetail is either an INTERNAL (host-implemented) or EXTERNAL
// (scripted) callable (spec.md §3 "Function detail"). The EXTERNAL case's
// statement list is typed as []ast.Stmt to avoid an import cycle with the
// ast package (evalstack, not value, walks it); value only needs to carry
// and refcount it.

package value

import "github.com/reedcode/corelang/ast"

// FuncKind distinguishes host-implemented from scripted callables.
type FuncKind int

const (
	FuncInternal FuncKind = iota
	FuncExternal
)

// InternalFn is a host-implemented callable: it receives the already
// bound argument variables and produces a ReturnExpr synchronously,
// bypassing the call protocol's scope/stack-push steps (spec.md §4.3
// "INTERNAL functions bypass steps (c)–(e)").
type InternalFn func(args []*Variable) (*ReturnExpr, error)

// Arg is one formal parameter: a name and an optional default-value
// expression supplied when the actual argument list is shorter.
type Arg struct {
	Name    string
	Default *Value // nil if this argument has no default
}

// FuncDetail is spec.md's "Function detail".
type FuncDetail struct {
	Kind FuncKind

	Args  []Arg
	NArgs int

	Internal InternalFn
	Body     []ast.Stmt // EXTERNAL only

	ref uint32
}

// NewInternalFunc creates an INTERNAL function detail at refcount 1.
func NewInternalFunc(args []Arg, fn InternalFn) *FuncDetail {
	return &FuncDetail{Kind: FuncInternal, Args: args, NArgs: len(args), Internal: fn, ref: 1}
}

// NewExternalFunc creates an EXTERNAL function detail at refcount 1.
func NewExternalFunc(args []Arg, body []ast.Stmt) *FuncDetail {
	return &FuncDetail{Kind: FuncExternal, Args: args, NArgs: len(args), Body: body, ref: 1}
}

// Ref increments the function detail's refcount.
func (f *FuncDetail) Ref() *FuncDetail {
	if f == nil {
		return f
	}
	f.ref++
	return f
}

func (f *FuncDetail) release() {
	f.ref--
	if f.ref > 0 {
		return
	}
	for _, a := range f.Args {
		a.Default.Unref()
	}
}

// FuncallVal is a not-yet-invoked callable capture: the callee name,
// resolved prototype, an optional bound object (for set-method calls,
// recovering the original's mln_lang_funccall_val_addObject — see
// SPEC_FULL.md §C.7), and the actual argument list already evaluated into
// variables.
type FuncallVal struct {
	Name        string
	Prototype   *FuncDetail
	BoundObject *Object
	Args        []*Variable
}
