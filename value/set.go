// File: value/set.go
// Author: momentics <momentics@gmail.com>
//
// SetDetail is spec.md's class-like template ("Set"); Object is an
// instance of one. A set detail dies when all objects and symbol bindings
// release it (spec.md §3 "Lifecycles").

package value

// SetDetail is a class-like definition: name, member table, refcount.
type SetDetail struct {
	Name    string
	Members map[string]*Variable
	ref     uint32
}

// NewSetDetail creates a fresh refcount-1 set detail.
func NewSetDetail(name string) *SetDetail {
	return &SetDetail{Name: name, Members: make(map[string]*Variable), ref: 1}
}

// Ref increments the set detail's refcount.
func (s *SetDetail) Ref() *SetDetail {
	if s == nil {
		return s
	}
	s.ref++
	return s
}

// Unref decrements the refcount, releasing member variables once it
// reaches zero.
func (s *SetDetail) Unref() bool {
	if s == nil {
		return false
	}
	s.ref--
	if s.ref > 0 {
		return false
	}
	for _, m := range s.Members {
		m.Release()
	}
	s.Members = nil
	return true
}

// AddMember inserts var into the set's member table under its own name.
func (s *SetDetail) AddMember(v *Variable) {
	v.InSet = s
	s.Members[v.Name] = v
}

// MemberSearch finds a declared member variable by name, or nil.
func (s *SetDetail) MemberSearch(name string) *Variable {
	return s.Members[name]
}

// Object is an instance of a SetDetail: it owns a per-instance member
// table seeded from (but independent of) the set's declared members.
type Object struct {
	InSet   *SetDetail
	Members map[string]*Variable
}

// NewObject instantiates obj from detail, giving each declared member a
// fresh per-instance Variable bound to the member's current value. The
// value itself is shared (its refcount is incremented), not copied.
func NewObject(detail *SetDetail) *Object {
	detail.Ref()
	obj := &Object{InSet: detail, Members: make(map[string]*Variable, len(detail.Members))}
	for name, m := range detail.Members {
		obj.Members[name] = NewVariable(name, m.Value())
	}
	return obj
}

// MemberSearch finds an instance member variable by name, or nil.
func (o *Object) MemberSearch(name string) *Variable {
	return o.Members[name]
}

func (o *Object) release() {
	for _, m := range o.Members {
		m.Release()
	}
	o.Members = nil
	o.InSet.Unref()
	o.InSet = nil
}
