// File: value/value.go
// Author: momentics <momentics@gmail.com>

package value

// Kind tags a Value's active member. Order matches the original mln_lang.h
// M_LANG_VAL_TYPE_* constants (see SPEC_FULL.md §C.1).
type Kind int32

const (
	KindNil Kind = iota
	KindInt
	KindBool
	KindReal
	KindString
	KindObject
	KindFunc
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindFunc:
		return "func"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a refcounted tagged union over {NIL, INT, BOOL, REAL, STRING,
// OBJECT, FUNC, ARRAY} (spec.md §3 "Value"). Exactly one of the typed
// fields is meaningful, selected by Kind; the rest are zero.
type Value struct {
	Kind Kind

	I   int64
	B   bool
	F   float64
	S   string // immutable, shared by value (Go strings already are)
	Obj *Object
	Fn  *FuncDetail
	Arr *Array

	ref uint32
}

// NewNil returns a fresh refcount-1 nil value.
func NewNil() *Value { return &Value{Kind: KindNil, ref: 1} }

// NewInt returns a fresh refcount-1 int value.
func NewInt(i int64) *Value { return &Value{Kind: KindInt, I: i, ref: 1} }

// NewBool returns a fresh refcount-1 bool value.
func NewBool(b bool) *Value { return &Value{Kind: KindBool, B: b, ref: 1} }

// NewReal returns a fresh refcount-1 real value.
func NewReal(f float64) *Value { return &Value{Kind: KindReal, F: f, ref: 1} }

// NewString returns a fresh refcount-1 string value.
func NewString(s string) *Value { return &Value{Kind: KindString, S: s, ref: 1} }

// NewObjectVal returns a fresh refcount-1 value wrapping object instance obj.
func NewObjectVal(obj *Object) *Value { return &Value{Kind: KindObject, Obj: obj, ref: 1} }

// NewFunc returns a fresh refcount-1 function value.
func NewFunc(fn *FuncDetail) *Value { return &Value{Kind: KindFunc, Fn: fn, ref: 1} }

// NewArrayVal returns a fresh refcount-1 value wrapping array arr.
func NewArrayVal(arr *Array) *Value { return &Value{Kind: KindArray, Arr: arr, ref: 1} }

// Ref increments the refcount and returns the same value, for chaining
// at bind sites.
func (v *Value) Ref() *Value {
	if v == nil {
		return v
	}
	v.ref++
	return v
}

// Unref decrements the refcount, releasing interior owned state and
// returning true once it reaches zero (spec.md §4.2 "Refcount rules").
func (v *Value) Unref() bool {
	if v == nil {
		return false
	}
	v.ref--
	if v.ref > 0 {
		return false
	}
	v.release()
	return true
}

// RefCount reports the current refcount, for the invariant in spec.md §8
// ("refcount equals the number of live holders").
func (v *Value) RefCount() uint32 { return v.ref }

func (v *Value) release() {
	switch v.Kind {
	case KindObject:
		if v.Obj != nil {
			v.Obj.release()
		}
	case KindArray:
		if v.Arr != nil {
			v.Arr.release()
		}
	case KindFunc:
		if v.Fn != nil {
			v.Fn.release()
		}
	}
}
