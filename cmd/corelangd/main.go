// Command corelangd wires a reactor and a script runtime together and
// runs one sample job to completion, demonstrating the pieces a host
// embedding this module assembles itself (spec.md §4 "Host embedding").
// There is no lexer/parser in this module (spec.md §1, out of scope):
// the sample program below is built directly as an AST, the way a test
// harness or an embedding host with its own front end would.
package main

import (
	"fmt"
	"os"

	"github.com/reedcode/corelang/ast"
	"github.com/reedcode/corelang/control"
	"github.com/reedcode/corelang/interp"
	"github.com/reedcode/corelang/reactor"
)

// loggingHandler prints every value a script posts on its "out" channel.
// It is the api.Handler a host supplies per spec.md §4.5.
type loggingHandler struct{}

func (loggingHandler) Handle(data any) error {
	fmt.Println("corelangd: script posted:", data)
	return nil
}

// sampleProgram builds:
//
//	set x = 0
//	while (x < 5) {
//	    x = x + 1
//	}
//	return x
func sampleProgram() *ast.Program {
	xRef := func() ast.Expr {
		return &ast.Factor{Kind: ast.LitIdent, S: "x"}
	}
	initX := &ast.ExprStmt{X: &ast.Assign{
		Op:  ast.OpAssign,
		Lhs: xRef(),
		Rhs: &ast.Factor{Kind: ast.LitInt, I: 0},
	}}
	loop := &ast.While{
		Cond: &ast.Binary{
			Tag:   ast.TagRelativeHigh,
			Op:    ast.OpLt,
			Left:  xRef(),
			Right: &ast.Factor{Kind: ast.LitInt, I: 5},
		},
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{X: &ast.Assign{
				Op:  ast.OpAssign,
				Lhs: xRef(),
				Rhs: &ast.Binary{
					Tag:   ast.TagAddSub,
					Op:    ast.OpAdd,
					Left:  xRef(),
					Right: &ast.Factor{Kind: ast.LitInt, I: 1},
				},
			}},
		}},
	}
	ret := &ast.ReturnStmt{X: xRef()}
	return &ast.Program{Stmts: []ast.Stmt{initX, loop, ret}}
}

func main() {
	cfg := control.DefaultConfig()
	r, err := reactor.New(true, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "corelangd: reactor init:", err)
		os.Exit(1)
	}
	defer r.Destroy()

	rt := interp.NewRuntime(r, cfg, control.NewMetricsRegistry())
	job := rt.Spawn("sample.lang", sampleProgram())
	job.Channel("out").Handler = loggingHandler{}

	// Run the job to completion inline rather than through the reactor's
	// fd-readiness loop, since this sample has no fds or timers to wait
	// on; a host driving real I/O would call rt.Run() instead and let the
	// reactor's loop hook pump every runnable job each iteration.
	for job.State != interp.StateDestroyed {
		rt.Advance(job, cfg.Step)
	}

	if job.Err != nil {
		fmt.Fprintln(os.Stderr, "corelangd: job failed:", job.Err)
		os.Exit(1)
	}
	fmt.Println("corelangd: job finished, steps:", job.TotalSteps)
}
