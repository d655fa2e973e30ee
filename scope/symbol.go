// File: scope/symbol.go
// Author: momentics <momentics@gmail.com>
//
// Symbol is the one namespace shared by variables, sets, and labels
// (spec.md §4.4 "Sets and labels share the symbol namespace with
// variables but are distinguished by their type tag"; recovered in
// full from the original header's VAR/SET/LABEL union, SPEC_FULL.md
// §C.4).

package scope

import "github.com/reedcode/corelang/value"

// SymKind distinguishes the three binding forms sharing one namespace.
type SymKind int

const (
	SymVar SymKind = iota
	SymSet
	SymLabel
)

// Label names a statement position a break/continue/goto-like construct
// may target. The evaluation stack, not scope, owns the actual resume
// mechanics; a Label binding only records the name→target association.
type Label struct {
	Name   string
	Target interface{} // AST statement node the label marks
}

// Symbol is one scope-table entry: exactly one of Var/Set/Label is
// populated, selected by Kind.
type Symbol struct {
	Kind SymKind
	Name string

	Var   *value.Variable
	Set   *value.SetDetail
	Label *Label
}

// NewVarSymbol wraps a variable binding.
func NewVarSymbol(v *value.Variable) *Symbol {
	return &Symbol{Kind: SymVar, Name: v.Name, Var: v}
}

// NewSetSymbol wraps a set-detail binding.
func NewSetSymbol(s *value.SetDetail) *Symbol {
	return &Symbol{Kind: SymSet, Name: s.Name, Set: s}
}

// NewLabelSymbol wraps a label binding.
func NewLabelSymbol(l *Label) *Symbol {
	return &Symbol{Kind: SymLabel, Name: l.Name, Label: l}
}
