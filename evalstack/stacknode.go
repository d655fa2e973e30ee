// File: evalstack/stacknode.go
// Author: momentics <momentics@gmail.com>
//
// StackNode reifies one partially-evaluated AST node as a heap
// activation frame (spec.md §3 "Stack node"), so a tree walk can suspend
// and resume at any node without a native call stack. Grounded on
// xirelogy-go-flux's VM frame shape, generalized from a fixed bytecode
// frame to a tag-dispatched AST-node frame, plus the original header's
// call-in-progress bit (SPEC_FULL.md §C.3).
package evalstack

import (
	"github.com/reedcode/corelang/ast"
	"github.com/reedcode/corelang/value"
)

// StackNode is one activation frame on a job's evaluation stack.
type StackNode struct {
	Tag  ast.Tag
	Node ast.Node

	// Step is the sub-step counter (0..N, N depends on the form): e.g.
	// a While frame's Step distinguishes "about to evaluate condition"
	// from "about to evaluate body".
	Step int

	// Resume is an opaque resume position meaningful only to the
	// step-handler for Tag: which child is next, which switch arm is
	// being tried, the loop-local binding snapshot, etc.
	Resume any

	// ChildResult is the partial return-expression being built: the
	// return-expression most recently handed up by a child frame that
	// was pushed by this frame and has since completed (spec.md §3
	// "the partial return-expression being built"). The step-handler
	// for Tag reads and clears it as needed between sub-steps.
	ChildResult *value.ReturnExpr

	// CallInProgress marks a frame that has pushed a callee's body and
	// is waiting on it to finish (spec.md §4.3 "Function call
	// protocol" steps (c)-(e)); the driver must not re-enter step (a).
	CallInProgress bool
}

// New allocates a fresh frame for node at step 0.
func New(tag ast.Tag, node ast.Node) *StackNode {
	return &StackNode{Tag: tag, Node: node}
}
