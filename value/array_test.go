package value

import "testing"

func TestArrayAppendPreservesInsertionOrder(t *testing.T) {
	a := NewArray()
	a.Append(NewInt(10))
	a.Append(NewInt(20))
	a.Append(NewInt(30))

	var got []int64
	a.Each(func(_ ArrayKey, v *Variable) bool {
		got = append(got, v.Value().I)
		return true
	})
	want := []int64{10, 20, 30}
	if len(got) != len(want) {
		t.Fatalf("Each visited %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestArrayKeyLookupMatchesInsertionIndex(t *testing.T) {
	a := NewArray()
	k0 := a.Append(NewInt(100))
	k1 := a.Append(NewInt(200))

	if v := a.Get(k0); v == nil || v.Value().I != 100 {
		t.Fatalf("Get(k0) = %v, want 100", v)
	}
	if v := a.Get(k1); v == nil || v.Value().I != 200 {
		t.Fatalf("Get(k1) = %v, want 200", v)
	}
}

func TestArrayIndexNeverReusedAfterDelete(t *testing.T) {
	a := NewArray()
	k0 := a.Append(NewInt(1))
	a.Append(NewInt(2))

	a.Delete(k0)
	k2 := a.Append(NewInt(3))

	if k2.I == k0.I {
		t.Fatalf("new element reused deleted index %d", k0.I)
	}
	if a.Get(k0) != nil {
		t.Fatalf("Get(k0) after delete returned a live variable")
	}
}

func TestArraySetOverwritesInPlace(t *testing.T) {
	a := NewArray()
	k := a.Append(NewInt(1))
	a.Set(k, NewInt(2))

	if got := a.Get(k).Value().I; got != 2 {
		t.Fatalf("Get(k) after Set = %d, want 2", got)
	}
	if a.Len() != 1 {
		t.Fatalf("Len() after overwrite = %d, want 1 (no duplicate entry)", a.Len())
	}
}

func TestArrayStringKeyLookup(t *testing.T) {
	a := NewArray()
	key := ArrayKey{Kind: ArrayKeyString, S: "name"}
	a.Set(key, NewString("corelang"))

	v := a.Get(key)
	if v == nil {
		t.Fatalf("Get(%q) returned nil", key.S)
	}
	if got := v.Value().S; got != "corelang" {
		t.Fatalf("Get(%q) = %q, want %q", key.S, got, "corelang")
	}
}
