// File: value/coerce.go
// Author: momentics <momentics@gmail.com>
//
// Truthiness and the to_int/to_real/to_string coercions (spec.md §4.2
// "Truthiness"/"Coercions"). OBJECT and FUNC have no natural falsy case,
// so both are always truthy (DESIGN.md Open Question decision); arrays
// follow the same rule.

package value

import "strconv"

// Truthy implements spec.md's truthiness rule: NIL, BOOL(false), INT(0),
// REAL(0), and the empty STRING are false; everything else, including
// every OBJECT/FUNC/ARRAY value, is true.
func (v *Value) Truthy() bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBool:
		return v.B
	case KindInt:
		return v.I != 0
	case KindReal:
		return v.F != 0
	case KindString:
		return v.S != ""
	default:
		return true
	}
}

// ToInt coerces v to an int per spec.md §4.2: bool maps to 0/1, strings
// parse as base-10 (unparseable text yields 0), real truncates toward
// zero, object/func/array coerce to 0.
func (v *Value) ToInt() int64 {
	switch v.Kind {
	case KindNil:
		return 0
	case KindInt:
		return v.I
	case KindBool:
		if v.B {
			return 1
		}
		return 0
	case KindReal:
		return int64(v.F)
	case KindString:
		n, err := strconv.ParseInt(v.S, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// ToReal coerces v to a real per spec.md §4.2.
func (v *Value) ToReal() float64 {
	switch v.Kind {
	case KindNil:
		return 0
	case KindInt:
		return float64(v.I)
	case KindBool:
		if v.B {
			return 1
		}
		return 0
	case KindReal:
		return v.F
	case KindString:
		f, err := strconv.ParseFloat(v.S, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ToStr coerces v to a string per spec.md §4.2: object/func/array
// coerce to "".
func (v *Value) ToStr() string {
	switch v.Kind {
	case KindNil:
		return ""
	case KindInt:
		return strconv.FormatInt(v.I, 10)
	case KindBool:
		if v.B {
			return "1"
		}
		return "0"
	case KindReal:
		return strconv.FormatFloat(v.F, 'g', -1, 64)
	case KindString:
		return v.S
	default:
		return ""
	}
}
