// File: scope/scope.go
// Author: momentics <momentics@gmail.com>
//
// Scope is spec.md §3's "Scope": kind, optional owning name, symbol
// table, a top-of-stack slot, and prev/next chain links. A Scope holds
// no pointer back to the job that owns it. Grounded on the teacher's
// internal/session/store.go map-backed store, stripped of sharding and
// locking since a job's scope chain is only ever touched from the
// single thread running its own steps (spec.md §5 "No locks are
// required inside a reactor").
package scope

// Kind distinguishes a SET scope (a set-detail body being evaluated) from
// a FUNC scope (a function-call activation).
type Kind int

const (
	KindSet Kind = iota
	KindFunc
)

// StackNode is satisfied by evalstack.StackNode; scope only needs to
// hold a pointer to the job's top activation, not walk it, so the
// dependency is an interface to avoid an import cycle.
type StackNode interface{}

// Scope is one link in a job's scope chain.
type Scope struct {
	Kind Kind
	Name string // owning set/function name, "" for anonymous

	symbols map[string]*Symbol

	// CurStack is a slot for the job's evaluation-stack top. Nothing in
	// this module assigns it, so it stays nil unless the host sets it;
	// the interpreter does not keep it in step with the stack.
	CurStack StackNode

	Prev *Scope
	Next *Scope
}

// New creates a scope of the given kind and name, unlinked.
func New(kind Kind, name string) *Scope {
	return &Scope{Kind: kind, Name: name, symbols: make(map[string]*Symbol)}
}

// Declare inserts sym into this scope's own symbol table, always the
// innermost scope relative to lookups that start here (spec.md §4.4
// "Joining a binding always inserts into the innermost scope; shadowing
// is permitted").
func (s *Scope) Declare(sym *Symbol) {
	s.symbols[sym.Name] = sym
}

// Local looks up name in this scope only.
func (s *Scope) Local(name string) *Symbol {
	return s.symbols[name]
}

// Each walks this scope's own symbol table, not its Prev chain. fn must
// not mutate the table.
func (s *Scope) Each(fn func(*Symbol)) {
	for _, sym := range s.symbols {
		fn(sym)
	}
}

// Lookup searches from this scope outward through Prev links, returning
// the first binding whose name matches, or nil. If local is true, the
// search is restricted to this scope (spec.md §4.4 "unless a local flag
// restricts the search to the innermost scope").
func (s *Scope) Lookup(name string, local bool) *Symbol {
	for cur := s; cur != nil; cur = cur.Prev {
		if sym, ok := cur.symbols[name]; ok {
			return sym
		}
		if local {
			return nil
		}
	}
	return nil
}

// Push links child after s in the chain (child becomes innermost).
func (s *Scope) Push(child *Scope) {
	child.Prev = s
	if s != nil {
		s.Next = child
	}
}

// Pop unlinks s from its chain and returns its previous (now-innermost)
// scope.
func (s *Scope) Pop() *Scope {
	prev := s.Prev
	if prev != nil {
		prev.Next = nil
	}
	s.Prev = nil
	return prev
}
