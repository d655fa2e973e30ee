package evalstack

import (
	"testing"

	"github.com/reedcode/corelang/ast"
)

func TestPushPopOrder(t *testing.T) {
	s := NewStack()
	a := New(ast.TagWhile, &ast.While{})
	b := New(ast.TagIf, &ast.If{})

	s.Push(a)
	s.Push(b)

	if top := s.Top(); top != b {
		t.Fatalf("Top() = %v, want the last-pushed frame", top)
	}
	if got := s.Pop(); got != b {
		t.Fatalf("Pop() = %v, want b", got)
	}
	if got := s.Pop(); got != a {
		t.Fatalf("Pop() = %v, want a", got)
	}
	if !s.Empty() {
		t.Fatalf("stack not empty after popping all frames")
	}
}

func TestFindEnclosingLoop(t *testing.T) {
	s := NewStack()
	s.Push(New(ast.TagWhile, &ast.While{}))
	s.Push(New(ast.TagBlock, &ast.Block{}))
	s.Push(New(ast.TagIf, &ast.If{}))

	depth := s.FindEnclosingLoop(func(n *StackNode) bool {
		return n.Tag == ast.TagWhile || n.Tag == ast.TagFor
	})
	if depth != 0 {
		t.Fatalf("FindEnclosingLoop depth = %d, want 0", depth)
	}
}

func TestTruncateTo(t *testing.T) {
	s := NewStack()
	s.Push(New(ast.TagWhile, &ast.While{}))
	s.Push(New(ast.TagBlock, &ast.Block{}))
	s.Push(New(ast.TagIf, &ast.If{}))

	s.TruncateTo(1)
	if s.Len() != 1 {
		t.Fatalf("Len() after TruncateTo(1) = %d, want 1", s.Len())
	}
}
