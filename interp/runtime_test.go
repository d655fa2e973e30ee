package interp

import (
	"testing"

	"github.com/reedcode/corelang/ast"
	"github.com/reedcode/corelang/control"
)

func xRef() *ast.Factor { return &ast.Factor{Kind: ast.LitIdent, S: "x"} }

func newTestRuntime() *Runtime {
	cfg := control.DefaultConfig()
	return &Runtime{
		RunQ:     NewJobQueue(),
		BlockedQ: NewJobQueue(),
		WaitQ:    NewJobQueue(),
		Cfg:      cfg,
		Dispatch: registerHandlers(),
	}
}

// spawnTest mirrors Runtime.Spawn without requiring a live reactor.
func spawnTest(rt *Runtime, root *ast.Program) *Job {
	rt.nextJobID++
	j := NewJob(rt.nextJobID, "test.lang", root, rt.Cfg.MaxOpenFiles)
	rt.RunQ.PushBack(j)
	return j
}

func TestWhileLoopCountsToBound(t *testing.T) {
	rt := newTestRuntime()
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.ExprStmt{X: &ast.Assign{Op: ast.OpAssign, Lhs: xRef(), Rhs: &ast.Factor{Kind: ast.LitInt, I: 0}}},
		&ast.While{
			Cond: &ast.Binary{Tag: ast.TagRelativeHigh, Op: ast.OpLt, Left: xRef(), Right: &ast.Factor{Kind: ast.LitInt, I: 5}},
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
	for job.State != StateDestroyed {
		rt.Advance(job, -1)
	}
	if job.Err != nil {
		t.Fatalf("job failed: %v", job.Err)
	}
	if job.CurrentReturn == nil || job.CurrentReturn.Value().I != 5 {
		t.Fatalf("got return %+v, want int 5", job.CurrentReturn)
	}
}

func TestBreakExitsEnclosingLoop(t *testing.T) {
	rt := newTestRuntime()
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.ExprStmt{X: &ast.Assign{Op: ast.OpAssign, Lhs: xRef(), Rhs: &ast.Factor{Kind: ast.LitInt, I: 0}}},
		&ast.While{
			Cond: &ast.Factor{Kind: ast.LitBool, B: true},
			Body: &ast.Block{Stmts: []ast.Stmt{
				&ast.ExprStmt{X: &ast.Assign{
					Op: ast.OpAssign, Lhs: xRef(),
					Rhs: &ast.Binary{Tag: ast.TagAddSub, Op: ast.OpAdd, Left: xRef(), Right: &ast.Factor{Kind: ast.LitInt, I: 1}},
				}},
				&ast.If{
					Cond: &ast.Binary{Tag: ast.TagRelativeHigh, Op: ast.OpGe, Left: xRef(), Right: &ast.Factor{Kind: ast.LitInt, I: 3}},
					Then: &ast.BreakStmt{},
				},
			}},
		},
		&ast.ReturnStmt{X: xRef()},
	}}

	job := spawnTest(rt, prog)
	for job.State != StateDestroyed {
		rt.Advance(job, -1)
	}
	if job.Err != nil {
		t.Fatalf("job failed: %v", job.Err)
	}
	if job.CurrentReturn == nil || job.CurrentReturn.Value().I != 3 {
		t.Fatalf("got return %+v, want int 3", job.CurrentReturn)
	}
}

func TestStepBudgetYieldsBeforeLoopFinishes(t *testing.T) {
	rt := newTestRuntime()
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.ExprStmt{X: &ast.Assign{Op: ast.OpAssign, Lhs: xRef(), Rhs: &ast.Factor{Kind: ast.LitInt, I: 0}}},
		&ast.While{
			Cond: &ast.Binary{Tag: ast.TagRelativeHigh, Op: ast.OpLt, Left: xRef(), Right: &ast.Factor{Kind: ast.LitInt, I: 1000}},
			Body: &ast.Block{Stmts: []ast.Stmt{
				&ast.ExprStmt{X: &ast.Assign{
					Op: ast.OpAssign, Lhs: xRef(),
					Rhs: &ast.Binary{Tag: ast.TagAddSub, Op: ast.OpAdd, Left: xRef(), Right: &ast.Factor{Kind: ast.LitInt, I: 1}},
				}},
			}},
		},
	}}

	job := spawnTest(rt, prog)
	rt.Advance(job, 8)
	if job.State == StateDestroyed {
		t.Fatalf("job finished within a budget of 8 steps; loop of 1000 iterations should not complete")
	}
	if job.TotalSteps != 8 {
		t.Fatalf("TotalSteps = %d, want exactly the 8-step budget spent", job.TotalSteps)
	}
}

func TestDivisionByZeroDestroysJobWithTypedError(t *testing.T) {
	rt := newTestRuntime()
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.ExprStmt{X: &ast.Binary{
			Tag: ast.TagMulDiv, Op: ast.OpDiv,
			Left:  &ast.Factor{Kind: ast.LitInt, I: 1},
			Right: &ast.Factor{Kind: ast.LitInt, I: 0},
		}},
	}}

	job := spawnTest(rt, prog)
	for job.State != StateDestroyed {
		rt.Advance(job, -1)
	}
	if job.Err == nil {
		t.Fatalf("expected division-by-zero to destroy the job with a typed error")
	}
}

func TestUserFunctionCallBindsArgsAndReturns(t *testing.T) {
	rt := newTestRuntime()
	double := &ast.FuncDef{
		Name: "double",
		Args: []ast.ArgDecl{{Name: "n"}},
		Body: []ast.Stmt{
			&ast.ReturnStmt{X: &ast.Binary{
				Tag: ast.TagAddSub, Op: ast.OpAdd,
				Left:  &ast.Factor{Kind: ast.LitIdent, S: "n"},
				Right: &ast.Factor{Kind: ast.LitIdent, S: "n"},
			}},
		},
	}
	prog := &ast.Program{Stmts: []ast.Stmt{
		double,
		&ast.ReturnStmt{X: &ast.FuncCall{
			Callee: &ast.Factor{Kind: ast.LitIdent, S: "double"},
			Args:   []ast.Expr{&ast.Factor{Kind: ast.LitInt, I: 21}},
		}},
	}}

	job := spawnTest(rt, prog)
	for job.State != StateDestroyed {
		rt.Advance(job, -1)
	}
	if job.Err != nil {
		t.Fatalf("job failed: %v", job.Err)
	}
	if job.CurrentReturn == nil || job.CurrentReturn.Value().I != 42 {
		t.Fatalf("got return %+v, want int 42", job.CurrentReturn)
	}
}

func TestDefaultArgumentFillsOmittedTailArg(t *testing.T) {
	rt := newTestRuntime()
	greet := &ast.FuncDef{
		Name: "bump",
		Args: []ast.ArgDecl{
			{Name: "n"},
			{Name: "step", Default: &ast.Factor{Kind: ast.LitInt, I: 10}},
		},
		Body: []ast.Stmt{
			&ast.ReturnStmt{X: &ast.Binary{
				Tag: ast.TagAddSub, Op: ast.OpAdd,
				Left:  &ast.Factor{Kind: ast.LitIdent, S: "n"},
				Right: &ast.Factor{Kind: ast.LitIdent, S: "step"},
			}},
		},
	}
	prog := &ast.Program{Stmts: []ast.Stmt{
		greet,
		&ast.ReturnStmt{X: &ast.FuncCall{
			Callee: &ast.Factor{Kind: ast.LitIdent, S: "bump"},
			Args:   []ast.Expr{&ast.Factor{Kind: ast.LitInt, I: 5}},
		}},
	}}

	job := spawnTest(rt, prog)
	for job.State != StateDestroyed {
		rt.Advance(job, -1)
	}
	if job.Err != nil {
		t.Fatalf("job failed: %v", job.Err)
	}
	if job.CurrentReturn == nil || job.CurrentReturn.Value().I != 15 {
		t.Fatalf("got return %+v, want int 15", job.CurrentReturn)
	}
}

func TestUndefinedSymbolIsTypedError(t *testing.T) {
	rt := newTestRuntime()
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.ExprStmt{X: &ast.Factor{Kind: ast.LitIdent, S: "nope"}},
	}}

	job := spawnTest(rt, prog)
	for job.State != StateDestroyed {
		rt.Advance(job, -1)
	}
	if job.Err == nil {
		t.Fatalf("expected undefined symbol reference to destroy the job with a typed error")
	}
}
