package interp

import (
	"testing"

	"github.com/reedcode/corelang/ast"
)

func runToCompletion(t *testing.T, rt *Runtime, job *Job) {
	t.Helper()
	for job.State != StateDestroyed {
		rt.Advance(job, -1)
	}
	if job.Err != nil {
		t.Fatalf("job failed: %v", job.Err)
	}
}

func TestSwitchFallsThroughToDefaultArm(t *testing.T) {
	rt := newTestRuntime()
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.Switch{
			X: &ast.Factor{Kind: ast.LitInt, I: 9},
			Cases: []*ast.SwitchCase{
				{Match: &ast.Factor{Kind: ast.LitInt, I: 1}, Body: &ast.ReturnStmt{X: &ast.Factor{Kind: ast.LitInt, I: 111}}},
				{Match: nil, Body: &ast.ReturnStmt{X: &ast.Factor{Kind: ast.LitInt, I: 999}}},
				{Match: &ast.Factor{Kind: ast.LitInt, I: 2}, Body: &ast.ReturnStmt{X: &ast.Factor{Kind: ast.LitInt, I: 222}}},
			},
		},
	}}

	job := spawnTest(rt, prog)
	runToCompletion(t, rt, job)
	if job.CurrentReturn == nil || job.CurrentReturn.Value().I != 999 {
		t.Fatalf("got return %+v, want the default arm's 999", job.CurrentReturn)
	}
}

func TestSwitchMatchingArmSkipsDefault(t *testing.T) {
	rt := newTestRuntime()
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.Switch{
			X: &ast.Factor{Kind: ast.LitInt, I: 2},
			Cases: []*ast.SwitchCase{
				{Match: nil, Body: &ast.ReturnStmt{X: &ast.Factor{Kind: ast.LitInt, I: 999}}},
				{Match: &ast.Factor{Kind: ast.LitInt, I: 2}, Body: &ast.ReturnStmt{X: &ast.Factor{Kind: ast.LitInt, I: 222}}},
			},
		},
	}}

	job := spawnTest(rt, prog)
	runToCompletion(t, rt, job)
	if job.CurrentReturn == nil || job.CurrentReturn.Value().I != 222 {
		t.Fatalf("got return %+v, want the matching arm's 222", job.CurrentReturn)
	}
}

func TestArrayLiteralThenSubscript(t *testing.T) {
	rt := newTestRuntime()
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.ExprStmt{X: &ast.Assign{
			Op:  ast.OpAssign,
			Lhs: xRef(),
			Rhs: &ast.ElemList{Entries: []ast.ElemListEntry{
				{Value: &ast.Factor{Kind: ast.LitInt, I: 10}},
				{Value: &ast.Factor{Kind: ast.LitInt, I: 20}},
				{Value: &ast.Factor{Kind: ast.LitInt, I: 30}},
			}},
		}},
		&ast.ReturnStmt{X: &ast.Locate{Steps: []ast.LocateStep{
			{Name: "x"},
			{Index: &ast.Factor{Kind: ast.LitInt, I: 1}},
		}}},
	}}

	job := spawnTest(rt, prog)
	runToCompletion(t, rt, job)
	if job.CurrentReturn == nil || job.CurrentReturn.Value().I != 20 {
		t.Fatalf("got return %+v, want array[1] == 20", job.CurrentReturn)
	}
}

func TestForLoopUpdateRunsEachIteration(t *testing.T) {
	rt := newTestRuntime()
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.ExprStmt{X: &ast.Assign{Op: ast.OpAssign, Lhs: xRef(), Rhs: &ast.Factor{Kind: ast.LitInt, I: 0}}},
		&ast.For{
			Init: &ast.ExprStmt{X: &ast.Assign{Op: ast.OpAssign, Lhs: &ast.Factor{Kind: ast.LitIdent, S: "i"}, Rhs: &ast.Factor{Kind: ast.LitInt, I: 0}}},
			Cond: &ast.Binary{Tag: ast.TagRelativeHigh, Op: ast.OpLt, Left: &ast.Factor{Kind: ast.LitIdent, S: "i"}, Right: &ast.Factor{Kind: ast.LitInt, I: 4}},
			Update: &ast.ExprStmt{X: &ast.Suffix{X: &ast.Factor{Kind: ast.LitIdent, S: "i"}, Op: ast.OpSuffixInc}},
			Body: &ast.Block{Stmts: []ast.Stmt{
				&ast.ExprStmt{X: &ast.Assign{
					Op: ast.OpAssign, Lhs: xRef(),
					Rhs: &ast.Binary{Tag: ast.TagAddSub, Op: ast.OpAdd, Left: xRef(), Right: &ast.Factor{Kind: ast.LitInt, I: 1}},
				}},
			}},
		},
		&ast.ReturnStmt{X: xRef()},
	}}

	job := spawnTest(rt, prog)
	runToCompletion(t, rt, job)
	if job.CurrentReturn == nil || job.CurrentReturn.Value().I != 4 {
		t.Fatalf("got return %+v, want 4 loop iterations to have incremented x", job.CurrentReturn)
	}
}
