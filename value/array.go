// File: value/array.go
// Author: momentics <momentics@gmail.com>
//
// Array is spec.md's dual-indexed array: elements keep both insertion
// order and key lookup. Insertion order is kept in a container/list and
// the key index in a map, since the corpus carries no ordered-map/tree
// library; the auto-assigned integer index increments monotonically and is never reused after a
// deletion, recovering the original header's array.index counter
// (SPEC_FULL.md §C.8).

package value

import "container/list"

// ArrayKeyKind distinguishes a string key from an integer key. Integer
// indices assigned by Append use ArrayKeyInt; nothing in this package
// assigns ArrayKeyAuto.
type ArrayKeyKind int

const (
	ArrayKeyAuto ArrayKeyKind = iota
	ArrayKeyString
	ArrayKeyInt
)

// ArrayKey is an array element's lookup key: a string, or an integer
// (given explicitly to Set, or the insertion-order index Append assigns).
type ArrayKey struct {
	Kind ArrayKeyKind
	S    string
	I    int64
}

type arrayElem struct {
	key ArrayKey
	v   *Variable
}

// Array is a refcounted, dual-indexed collection: elements are kept in
// insertion order via a doubly-linked list, and separately indexed by
// key for O(1) lookup. nextIndex increments monotonically and is never
// reused, even after deletions.
type Array struct {
	order     *list.List
	byKey     map[ArrayKey]*list.Element
	nextIndex int64

	ref uint32
}

// NewArray returns a fresh, empty, refcount-1 array.
func NewArray() *Array {
	return &Array{
		order: list.New(),
		byKey: make(map[ArrayKey]*list.Element),
		ref:   1,
	}
}

// Ref increments the array's refcount.
func (a *Array) Ref() *Array {
	if a == nil {
		return a
	}
	a.ref++
	return a
}

func (a *Array) release() {
	a.ref--
	if a.ref > 0 {
		return
	}
	for e := a.order.Front(); e != nil; e = e.Next() {
		e.Value.(*arrayElem).v.Release()
	}
	a.order.Init()
	a.byKey = nil
}

// Len reports the number of live elements.
func (a *Array) Len() int { return a.order.Len() }

// Append inserts val at the end under an auto-assigned integer key,
// returning the key it was assigned.
func (a *Array) Append(val *Value) ArrayKey {
	key := ArrayKey{Kind: ArrayKeyInt, I: a.nextIndex}
	a.nextIndex++
	a.insertAt(a.order.PushBack, key, val)
	return key
}

// Set inserts or overwrites the element at key. An existing element's
// prior value is released before rebinding in place (insertion order
// preserved); a new key is appended at the end.
func (a *Array) Set(key ArrayKey, val *Value) {
	if e, ok := a.byKey[key]; ok {
		e.Value.(*arrayElem).v.Assign(val)
		return
	}
	if key.Kind == ArrayKeyInt && key.I >= a.nextIndex {
		a.nextIndex = key.I + 1
	}
	a.insertAt(a.order.PushBack, key, val)
}

func (a *Array) insertAt(push func(any) *list.Element, key ArrayKey, val *Value) {
	v := NewVariable(keyName(key), val)
	e := push(&arrayElem{key: key, v: v})
	a.byKey[key] = e
}

// Get returns the variable bound at key, or nil if absent.
func (a *Array) Get(key ArrayKey) *Variable {
	e, ok := a.byKey[key]
	if !ok {
		return nil
	}
	return e.Value.(*arrayElem).v
}

// Delete removes the element at key if present; the key is never
// reassigned afterward (nextIndex only ever increases).
func (a *Array) Delete(key ArrayKey) bool {
	e, ok := a.byKey[key]
	if !ok {
		return false
	}
	e.Value.(*arrayElem).v.Release()
	a.order.Remove(e)
	delete(a.byKey, key)
	return true
}

// Each walks elements in insertion order, stopping early if fn returns
// false.
func (a *Array) Each(fn func(key ArrayKey, v *Variable) bool) {
	for e := a.order.Front(); e != nil; e = e.Next() {
		el := e.Value.(*arrayElem)
		if !fn(el.key, el.v) {
			return
		}
	}
}

func keyName(k ArrayKey) string {
	switch k.Kind {
	case ArrayKeyString:
		return k.S
	default:
		return ""
	}
}
