// File: value/variable.go
// Author: momentics <momentics@gmail.com>
//
// Variable binds a name to a value cell. NORMAL variables own their
// current binding; REFER variables alias another variable's cell so every
// alias observes the same value (spec.md §3 "Variable", §4.2 "Variable
// kinds").

package value

// VarKind distinguishes a NORMAL owning binding from a REFER alias.
type VarKind int

const (
	VarNormal VarKind = iota
	VarRefer
)

// Variable is spec.md's "Variable": kind, name, value pointer, containing
// set back-pointer, and list-style containment links.
type Variable struct {
	Kind VarKind
	Name string

	val *Value

	// refer, when Kind == VarRefer, is the variable this one aliases; all
	// reads/writes go through refer's cell instead of val.
	refer *Variable

	InSet *SetDetail

	Prev *Variable
	Next *Variable
}

// NewVariable creates a NORMAL variable bound to val. The binding itself
// takes a reference: NewVariable calls val.Ref(), so the caller does not.
func NewVariable(name string, val *Value) *Variable {
	return &Variable{Kind: VarNormal, Name: name, val: val.Ref()}
}

// NewReferVariable creates a REFER variable aliasing target's cell.
func NewReferVariable(name string, target *Variable) *Variable {
	return &Variable{Kind: VarRefer, Name: name, refer: target}
}

// Value returns the variable's current bound value, following a REFER
// alias to its target.
func (v *Variable) Value() *Value {
	if v.Kind == VarRefer && v.refer != nil {
		return v.refer.Value()
	}
	return v.val
}

// cell returns the Variable actually holding the value slot: itself for
// NORMAL, or the aliased target (recursively) for REFER.
func (v *Variable) cell() *Variable {
	if v.Kind == VarRefer && v.refer != nil {
		return v.refer.cell()
	}
	return v
}

// Assign rebinds the variable's value cell to newVal: the previous
// binding is unreffed, the new one reffed (spec.md §3 "Assigning a value
// decrements the previous value's refcount and increments the new one").
// For a REFER variable this updates the shared cell, so every alias
// observes it.
func (v *Variable) Assign(newVal *Value) {
	target := v.cell()
	old := target.val
	target.val = newVal.Ref()
	old.Unref()
}

// SetFrom copies src's current value into dest, respecting dest's own
// NORMAL/REFER semantics (spec.md §4.2 "Setting a variable from another").
func (dest *Variable) SetFrom(src *Variable) {
	dest.Assign(src.Value())
}

// Release unbinds the variable's value cell (NORMAL only — REFER
// variables don't own a cell to release) and drops the binding's refcount.
func (v *Variable) Release() {
	if v.Kind == VarRefer {
		v.refer = nil
		return
	}
	if v.val != nil {
		v.val.Unref()
		v.val = nil
	}
}
