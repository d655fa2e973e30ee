package value

import "testing"

func TestRefcountRoundtrip(t *testing.T) {
	v := NewInt(42)
	if v.RefCount() != 1 {
		t.Fatalf("fresh value refcount = %d, want 1", v.RefCount())
	}
	v.Ref()
	if v.RefCount() != 2 {
		t.Fatalf("after Ref refcount = %d, want 2", v.RefCount())
	}
	if v.Unref() {
		t.Fatalf("Unref reported released at refcount 2")
	}
	if !v.Unref() {
		t.Fatalf("Unref reported still alive at refcount 0")
	}
}

func TestTruthiness(t *testing.T) {
	cases := []struct {
		v    *Value
		want bool
	}{
		{NewNil(), false},
		{NewBool(false), false},
		{NewBool(true), true},
		{NewInt(0), false},
		{NewInt(1), true},
		{NewReal(0), false},
		{NewReal(0.5), true},
		{NewString(""), false},
		{NewString("x"), true},
		{NewArrayVal(NewArray()), true},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", c.v.Kind, got, c.want)
		}
	}
}

func TestCoercions(t *testing.T) {
	if got := NewBool(true).ToInt(); got != 1 {
		t.Errorf("ToInt(true) = %d, want 1", got)
	}
	if got := NewString("42").ToInt(); got != 42 {
		t.Errorf("ToInt(\"42\") = %d, want 42", got)
	}
	if got := NewString("nope").ToInt(); got != 0 {
		t.Errorf("ToInt(\"nope\") = %d, want 0", got)
	}
	if got := NewReal(3.9).ToInt(); got != 3 {
		t.Errorf("ToInt(3.9) = %d, want 3 (truncate toward zero)", got)
	}
	if got := NewReal(-3.9).ToInt(); got != -3 {
		t.Errorf("ToInt(-3.9) = %d, want -3 (truncate toward zero)", got)
	}
	obj := NewObject(NewSetDetail("anon"))
	v := NewObjectVal(obj)
	if got := v.ToInt(); got != 0 {
		t.Errorf("ToInt(object) = %d, want 0", got)
	}
	if got := v.ToStr(); got != "" {
		t.Errorf("ToStr(object) = %q, want \"\"", got)
	}
}

func TestVariableReferAliasing(t *testing.T) {
	owner := NewVariable("x", NewInt(1))
	alias := NewReferVariable("y", owner)

	alias.Assign(NewInt(99))
	if got := owner.Value().I; got != 99 {
		t.Fatalf("owner value after alias assign = %d, want 99 (REFER must share the cell)", got)
	}
}

func TestRealIntPromotion(t *testing.T) {
	l := NewVarReturn(NewVariable("", NewInt(2)))
	r := NewVarReturn(NewVariable("", NewReal(3)))
	res, err := Apply(nil, OpAdd, l, r)
	if err != nil {
		t.Fatalf("Apply(+, int, real) error: %v", err)
	}
	if res.Value().Kind != KindReal {
		t.Fatalf("int+real result kind = %v, want real", res.Value().Kind)
	}
	if res.Value().F != 5 {
		t.Fatalf("int+real result = %v, want 5", res.Value().F)
	}
}

func TestDivisionByZeroIsTypedError(t *testing.T) {
	l := NewVarReturn(NewVariable("", NewInt(1)))
	r := NewVarReturn(NewVariable("", NewInt(0)))
	if _, err := Apply(nil, OpDiv, l, r); err == nil {
		t.Fatalf("Apply(/, 1, 0) returned no error")
	}
}

func TestMissingOperatorEntryIsError(t *testing.T) {
	l := NewVarReturn(NewVariable("", NewString("a")))
	r := NewVarReturn(NewVariable("", NewInt(1)))
	if _, err := Apply(nil, OpSub, l, r); err == nil {
		t.Fatalf("Apply(-, string, int) returned no error, want typed dispatch error")
	}
}
