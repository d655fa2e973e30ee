// File: interp/handlers.go
// Author: momentics <momentics@gmail.com>
//
// Step-handlers for every stack-node tag (spec.md §4.3 "Model",
// "Control flow", "Function call protocol"). Grounded on
// xirelogy-go-flux/internal/vm's opcode-dispatch loop, generalized from
// bytecode opcodes to AST-node tags, and on
// MongooseMoo-barn__compiler.go / RobertP-SyndicateLabs-SIC-lang__runtime.go
// for the push-child/pop-self frame-threading idiom.
package interp

import (
	"errors"

	"github.com/reedcode/corelang/api"
	"github.com/reedcode/corelang/ast"
	"github.com/reedcode/corelang/evalstack"
	"github.com/reedcode/corelang/scope"
	"github.com/reedcode/corelang/value"
)

// applyErrorCode maps an error from value.Apply to the runtime error code
// it should surface as, distinguishing division/modulo by zero (spec.md
// §7) from the generic type-mismatch case.
func applyErrorCode(err error) api.ErrorCode {
	if errors.Is(err, value.ErrDivByZero) {
		return ErrDivisionByZero
	}
	return ErrTypeMismatch
}

// --- frame-threading helpers ---------------------------------------

func toFrame(n ast.Node) *evalstack.StackNode {
	return evalstack.New(n.Type(), n)
}

func pushChild(job *Job, n ast.Node) {
	job.Stack.Push(toFrame(n))
}

// popSelfWithResult pops the stack's current top frame and hands result
// to the frame now exposed, if any (spec.md §3 "pops itself, returning
// its return-expression to the parent").
func popSelfWithResult(job *Job, result *value.ReturnExpr) {
	job.Stack.Pop()
	if top := job.Stack.Top(); top != nil {
		top.ChildResult = result
	} else {
		job.CurrentReturn = result
	}
}

func isLoopFrame(n *evalstack.StackNode) bool {
	return n.Tag == ast.TagWhile || n.Tag == ast.TagFor
}

func isCallFrame(n *evalstack.StackNode) bool {
	return n.Tag == ast.TagFuncCall && n.CallInProgress
}

// constEvalDefault resolves a formal parameter's default-value
// expression once, at declaration time, not at call time. A literal
// factor yields its value; an identifier factor yields NIL without
// being looked up; any other expression, or none, yields no default.
func constEvalDefault(e ast.Expr) *value.Value {
	f, ok := e.(*ast.Factor)
	if !ok {
		return nil
	}
	switch f.Kind {
	case ast.LitInt:
		return value.NewInt(f.I)
	case ast.LitBool:
		return value.NewBool(f.B)
	case ast.LitReal:
		return value.NewReal(f.F)
	case ast.LitString:
		return value.NewString(f.S)
	default:
		return value.NewNil()
	}
}

func mapAssignOp(op ast.AssignOp) value.Op {
	switch op {
	case ast.OpPlusEq:
		return value.OpAddEq
	case ast.OpSubEq:
		return value.OpSubEq
	case ast.OpLShiftEq:
		return value.OpLShiftEq
	case ast.OpRShiftEq:
		return value.OpRShiftEq
	case ast.OpMulEq:
		return value.OpMulEq
	case ast.OpDivEq:
		return value.OpDivEq
	case ast.OpOrEq:
		return value.OpOrEq
	case ast.OpAndEq:
		return value.OpAndEq
	case ast.OpXorEq:
		return value.OpXorEq
	case ast.OpModEq:
		return value.OpModEq
	default:
		return value.OpAssign
	}
}

func mapBinOp(op ast.BinOp) value.Op {
	switch op {
	case ast.OpLogOr:
		return value.OpLogOr
	case ast.OpLogAnd:
		return value.OpLogAnd
	case ast.OpLogXor:
		return value.OpLogXor
	case ast.OpEq:
		return value.OpEq
	case ast.OpNeq:
		return value.OpNeq
	case ast.OpLt:
		return value.OpLt
	case ast.OpLe:
		return value.OpLe
	case ast.OpGt:
		return value.OpGt
	case ast.OpGe:
		return value.OpGe
	case ast.OpLShift:
		return value.OpLShift
	case ast.OpRShift:
		return value.OpRShift
	case ast.OpAdd:
		return value.OpAdd
	case ast.OpSub:
		return value.OpSub
	case ast.OpMul:
		return value.OpMul
	case ast.OpDiv:
		return value.OpDiv
	default:
		return value.OpMod
	}
}

// --- registration ----------------------------------------------------

func registerHandlers() map[ast.Tag]StepHandler {
	return map[ast.Tag]StepHandler{
		ast.TagStatement:    statementStep,
		ast.TagBlock:        blockStep,
		ast.TagExpression:   exprStmtStep,
		ast.TagWhile:        whileStep,
		ast.TagFor:          forStep,
		ast.TagIf:           ifStep,
		ast.TagSwitch:       switchStep,
		ast.TagSwitchStm:    notDirectlyInvocable,
		ast.TagAssign:       assignStep,
		ast.TagLogicLow:     binaryStep,
		ast.TagLogicHigh:    binaryStep,
		ast.TagRelativeLow:  binaryStep,
		ast.TagRelativeHigh: binaryStep,
		ast.TagMove:         binaryStep,
		ast.TagAddSub:       binaryStep,
		ast.TagMulDiv:       binaryStep,
		ast.TagSuffix:       suffixStep,
		ast.TagLocate:       locateStep,
		ast.TagSpec:         specStep,
		ast.TagFactor:       factorStep,
		ast.TagElemList:     elemListStep,
		ast.TagFuncSuffix:   notDirectlyInvocable,
		ast.TagFuncCall:     funcCallStep,
		ast.TagFuncDef:      funcDefStep,
		ast.TagSetDef:       setDefStep,
		ast.TagSetBodyStmt:  notDirectlyInvocable,
	}
}

func notDirectlyInvocable(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	return raisef(job, ErrTypeMismatch, "stack node tag %v is not directly invocable", frame.Tag)
}

// --- statements --------------------------------------------------------

func statementStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	switch n := frame.Node.(type) {
	case *ast.BreakStmt:
		job.Stack.Pop()
		return &unwindSignal{kind: unwindBreak, label: n.Label}
	case *ast.ContinueStmt:
		job.Stack.Pop()
		return &unwindSignal{kind: unwindContinue, label: n.Label}
	case *ast.ReturnStmt:
		if n.X != nil && frame.Step == 0 {
			frame.Step = 1
			pushChild(job, n.X)
			return nil
		}
		var ret *value.ReturnExpr
		if n.X != nil {
			ret = frame.ChildResult
		} else {
			ret = value.NewVarReturn(value.NewVariable("", value.NewNil()))
		}
		job.Stack.Pop()
		return &unwindSignal{kind: unwindReturn, val: ret}
	default:
		return raisef(job, ErrTypeMismatch, "unhandled statement node %T", n)
	}
}

func blockStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	b := frame.Node.(*ast.Block)
	idx := frame.Step
	if idx >= len(b.Stmts) {
		popSelfWithResult(job, frame.ChildResult)
		return nil
	}
	frame.Step = idx + 1
	pushChild(job, b.Stmts[idx])
	return nil
}

func exprStmtStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	e := frame.Node.(*ast.ExprStmt)
	if frame.Step == 0 {
		frame.Step = 1
		pushChild(job, e.X)
		return nil
	}
	popSelfWithResult(job, nil)
	return nil
}

// --- control flow --------------------------------------------------------

func whileStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	w := frame.Node.(*ast.While)
	switch frame.Step {
	case 0, 2:
		frame.Step = 1
		pushChild(job, w.Cond)
	case 1:
		cond := frame.ChildResult
		if cond != nil && cond.Value().Truthy() {
			frame.Step = 2
			pushChild(job, w.Body)
		} else {
			popSelfWithResult(job, nil)
		}
	}
	return nil
}

const (
	forInit = iota
	forCondPush
	forCondCheck
	forBodyDone
	forUpdateDone
)

func forStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	f := frame.Node.(*ast.For)
	switch frame.Step {
	case forInit:
		frame.Step = forCondPush
		if f.Init != nil {
			pushChild(job, f.Init)
		}
	case forCondPush:
		frame.Step = forCondCheck
		if f.Cond != nil {
			pushChild(job, f.Cond)
		}
	case forCondCheck:
		cond := frame.ChildResult
		if f.Cond == nil || (cond != nil && cond.Value().Truthy()) {
			frame.Step = forBodyDone
			pushChild(job, f.Body)
		} else {
			popSelfWithResult(job, nil)
		}
	case forBodyDone:
		frame.Step = forUpdateDone
		if f.Update != nil {
			pushChild(job, f.Update)
		}
	case forUpdateDone:
		frame.Step = forCondPush
	}
	return nil
}

func ifStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	n := frame.Node.(*ast.If)
	switch frame.Step {
	case 0:
		frame.Step = 1
		pushChild(job, n.Cond)
	case 1:
		cond := frame.ChildResult
		frame.Step = 2
		switch {
		case cond != nil && cond.Value().Truthy():
			pushChild(job, n.Then)
		case n.Else != nil:
			pushChild(job, n.Else)
		default:
			popSelfWithResult(job, nil)
		}
	default:
		popSelfWithResult(job, frame.ChildResult)
	}
	return nil
}

type switchState struct {
	idx        int
	xVal       *value.ReturnExpr
	defaultIdx int
	matching   bool
}

func switchStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	sw := frame.Node.(*ast.Switch)
	switch frame.Step {
	case 0:
		frame.Step = 1
		pushChild(job, sw.X)
		return nil
	case 1:
		frame.Resume = &switchState{xVal: frame.ChildResult, defaultIdx: -1}
		frame.Step = 2
		return nil
	case 3:
		popSelfWithResult(job, frame.ChildResult)
		return nil
	}

	st := frame.Resume.(*switchState)
	for st.idx < len(sw.Cases) {
		c := sw.Cases[st.idx]
		if c.Match == nil {
			if st.defaultIdx < 0 {
				st.defaultIdx = st.idx
			}
			st.idx++
			continue
		}
		if !st.matching {
			st.matching = true
			pushChild(job, c.Match)
			return nil
		}
		matchVal := frame.ChildResult
		st.matching = false
		eq, err := value.Apply(nil, value.OpEq, st.xVal, matchVal)
		if err != nil {
			return raisef(job, ErrTypeMismatch, "%v", err)
		}
		if eq.Value().Truthy() {
			frame.Step = 3
			pushChild(job, c.Body)
			return nil
		}
		st.idx++
	}
	if st.defaultIdx >= 0 {
		frame.Step = 3
		pushChild(job, sw.Cases[st.defaultIdx].Body)
		return nil
	}
	popSelfWithResult(job, nil)
	return nil
}

// --- expressions --------------------------------------------------------

func assignStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	n := frame.Node.(*ast.Assign)
	switch frame.Step {
	case 0:
		// A bare identifier target is resolved here rather than by pushing
		// it through factorStep's read path: an unresolved name joins a
		// new binding into the innermost scope instead of erroring (spec.md
		// §4.4 "Joining a binding always inserts into the innermost scope").
		// Subscript/property targets (Locate chains) still evaluate as
		// reads, since indexing into a nonexistent array or object has no
		// join semantics.
		if ident, ok := n.Lhs.(*ast.Factor); ok && ident.Kind == ast.LitIdent {
			sym := job.Scope.Lookup(ident.S, false)
			if sym == nil {
				sym = scope.NewVarSymbol(value.NewVariable(ident.S, value.NewNil()))
				job.Scope.Declare(sym)
			} else if sym.Kind != scope.SymVar {
				return raisef(job, ErrTypeMismatch, "%q is not a variable", ident.S)
			}
			frame.Resume = value.NewVarReturn(sym.Var)
			frame.Step = 2
			pushChild(job, n.Rhs)
			return nil
		}
		frame.Step = 1
		pushChild(job, n.Lhs)
	case 1:
		frame.Resume = frame.ChildResult
		frame.Step = 2
		pushChild(job, n.Rhs)
	case 2:
		lhs := frame.Resume.(*value.ReturnExpr)
		rhs := frame.ChildResult
		res, err := value.Apply(nil, mapAssignOp(n.Op), lhs, rhs)
		if err != nil {
			return raisef(job, applyErrorCode(err), "%v", err)
		}
		popSelfWithResult(job, res)
	}
	return nil
}

func binaryStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	n := frame.Node.(*ast.Binary)
	switch frame.Step {
	case 0:
		frame.Step = 1
		pushChild(job, n.Left)
	case 1:
		frame.Resume = frame.ChildResult
		frame.Step = 2
		pushChild(job, n.Right)
	case 2:
		left := frame.Resume.(*value.ReturnExpr)
		right := frame.ChildResult
		res, err := value.Apply(nil, mapBinOp(n.Op), left, right)
		if err != nil {
			return raisef(job, applyErrorCode(err), "%v", err)
		}
		popSelfWithResult(job, res)
	}
	return nil
}

func suffixStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	n := frame.Node.(*ast.Suffix)
	switch frame.Step {
	case 0:
		frame.Step = 1
		pushChild(job, n.X)
	case 1:
		op := value.OpSuffixInc
		if n.Op == ast.OpSuffixDec {
			op = value.OpSuffixDec
		}
		res, err := value.Apply(nil, op, frame.ChildResult, nil)
		if err != nil {
			return raisef(job, ErrTypeMismatch, "%v", err)
		}
		popSelfWithResult(job, res)
	}
	return nil
}

func specStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	n := frame.Node.(*ast.Spec)
	switch frame.Step {
	case 0:
		frame.Step = 1
		pushChild(job, n.X)
	case 1:
		x := frame.ChildResult
		var res *value.ReturnExpr
		var err error
		switch n.Op {
		case ast.OpNone:
			res = x
		case ast.OpNegative:
			res, err = value.Apply(nil, value.OpUnaryNeg, x, nil)
		case ast.OpReverse:
			res, err = value.Apply(nil, value.OpBitNot, x, nil)
		case ast.OpNot:
			res, err = value.Apply(nil, value.OpLogNot, x, nil)
		case ast.OpPreInc:
			res, err = value.Apply(nil, value.OpPrefixInc, x, nil)
		case ast.OpPreDec:
			res, err = value.Apply(nil, value.OpPrefixDec, x, nil)
		}
		if err != nil {
			return raisef(job, ErrTypeMismatch, "%v", err)
		}
		popSelfWithResult(job, res)
	}
	return nil
}

func factorStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	n := frame.Node.(*ast.Factor)
	if n.Kind == ast.LitIdent {
		sym := job.Scope.Lookup(n.S, false)
		if sym == nil || sym.Kind != scope.SymVar {
			return raisef(job, ErrMissingSymbol, "undefined symbol %q", n.S)
		}
		popSelfWithResult(job, value.NewVarReturn(sym.Var))
		return nil
	}
	var v *value.Value
	switch n.Kind {
	case ast.LitInt:
		v = value.NewInt(n.I)
	case ast.LitBool:
		v = value.NewBool(n.B)
	case ast.LitReal:
		v = value.NewReal(n.F)
	case ast.LitString:
		v = value.NewString(n.S)
	default:
		v = value.NewNil()
	}
	popSelfWithResult(job, value.NewVarReturn(value.NewVariable("", v)))
	return nil
}

type elemListState struct {
	idx   int
	arr   *value.Array
	stage int
	key   *value.ReturnExpr
}

func elemListStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	n := frame.Node.(*ast.ElemList)
	if frame.Resume == nil {
		frame.Resume = &elemListState{arr: value.NewArray()}
	}
	st := frame.Resume.(*elemListState)
	if st.idx >= len(n.Entries) {
		popSelfWithResult(job, value.NewVarReturn(value.NewVariable("", value.NewArrayVal(st.arr))))
		return nil
	}
	entry := n.Entries[st.idx]
	switch st.stage {
	case 0:
		if entry.Key != nil {
			st.stage = 1
			pushChild(job, entry.Key)
			return nil
		}
		st.stage = 2
		pushChild(job, entry.Value)
	case 1:
		st.key = frame.ChildResult
		st.stage = 2
		pushChild(job, entry.Value)
	case 2:
		val := frame.ChildResult.Value()
		if st.key != nil {
			kv := st.key.Value()
			var ak value.ArrayKey
			if kv.Kind == value.KindString {
				ak = value.ArrayKey{Kind: value.ArrayKeyString, S: kv.S}
			} else {
				ak = value.ArrayKey{Kind: value.ArrayKeyInt, I: kv.ToInt()}
			}
			st.arr.Set(ak, val)
		} else {
			st.arr.Append(val)
		}
		st.idx++
		st.stage = 0
		st.key = nil
	}
	return nil
}

type locateState struct {
	idx int
	cur *value.ReturnExpr
}

func locateStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	n := frame.Node.(*ast.Locate)
	if frame.Resume == nil {
		frame.Resume = &locateState{}
	}
	st := frame.Resume.(*locateState)
	if st.idx >= len(n.Steps) {
		popSelfWithResult(job, st.cur)
		return nil
	}
	step := n.Steps[st.idx]
	switch {
	case step.Index != nil:
		if frame.Step == 0 {
			frame.Step = 1
			pushChild(job, step.Index)
			return nil
		}
		res, err := value.Apply(nil, value.OpSubscript, st.cur, frame.ChildResult)
		if err != nil {
			return raisef(job, ErrIndexOutOfRange, "%v", err)
		}
		st.cur = res
		st.idx++
		frame.Step = 0
	case step.Property:
		// A terminal property step resolving to a FUNC member is a set
		// method call: the receiving object rides along as the callee's
		// BoundObject (spec.md's mln_lang_funccall_val_addObject, see
		// SPEC_FULL.md §C.7) so the call protocol can bind it as the
		// method body's implicit receiver.
		if recv := st.cur.Value(); recv.Kind == value.KindObject && st.idx == len(n.Steps)-1 {
			if m := recv.Obj.MemberSearch(step.Name); m != nil && m.Value().Kind == value.KindFunc {
				popSelfWithResult(job, value.NewFuncReturn(&value.FuncallVal{
					Name:        step.Name,
					Prototype:   m.Value().Fn,
					BoundObject: recv.Obj,
				}))
				return nil
			}
		}
		nameVal := value.NewVarReturn(value.NewVariable("", value.NewString(step.Name)))
		res, err := value.Apply(nil, value.OpProperty, st.cur, nameVal)
		if err != nil {
			return raisef(job, ErrMissingSymbol, "%v", err)
		}
		st.cur = res
		st.idx++
	default:
		sym := job.Scope.Lookup(step.Name, false)
		if sym == nil {
			return raisef(job, ErrMissingSymbol, "undefined symbol %q", step.Name)
		}
		if sym.Kind != scope.SymVar {
			return raisef(job, ErrTypeMismatch, "%q is not a variable", step.Name)
		}
		st.cur = value.NewVarReturn(sym.Var)
		st.idx++
	}
	return nil
}

// --- function calls --------------------------------------------------------

type callState struct {
	callee *value.ReturnExpr
	argIdx int
	args   []*value.Variable
}

func funcCallStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	n := frame.Node.(*ast.FuncCall)
	switch frame.Step {
	case 0:
		frame.Step = 1
		pushChild(job, n.Callee)
	case 1:
		frame.Resume = &callState{callee: frame.ChildResult}
		frame.Step = 2
	case 2:
		st := frame.Resume.(*callState)
		if st.argIdx < len(n.Args) {
			frame.Step = 3
			pushChild(job, n.Args[st.argIdx])
			return nil
		}
		return beginInvoke(rt, job, frame, st)
	case 3:
		st := frame.Resume.(*callState)
		st.args = append(st.args, value.NewVariable("", frame.ChildResult.Value()))
		st.argIdx++
		frame.Step = 2
	case 4:
		job.Scope = job.Scope.Pop()
		ret := frame.ChildResult
		if ret == nil {
			ret = value.NewVarReturn(value.NewVariable("", value.NewNil()))
		}
		popSelfWithResult(job, ret)
	}
	return nil
}

func beginInvoke(rt *Runtime, job *Job, frame *evalstack.StackNode, st *callState) *unwindSignal {
	var fn *value.FuncDetail
	var boundObject *value.Object
	switch {
	case st.callee.IsFunc():
		fn = st.callee.Call.Prototype
		boundObject = st.callee.Call.BoundObject
	case st.callee.Value().Kind == value.KindFunc:
		fn = st.callee.Value().Fn
	default:
		return raisef(job, ErrTypeMismatch, "call target is not a function")
	}

	// An actual argument beyond the formal list, or a missing formal with
	// no default, is an arity mismatch (spec.md §4.3 "default values
	// supplied for omitted tail arguments" implies no default means the
	// tail argument is mandatory).
	if len(st.args) > fn.NArgs {
		return raisef(job, ErrArityMismatch, "want at most %d arguments, got %d", fn.NArgs, len(st.args))
	}
	for i := len(st.args); i < fn.NArgs; i++ {
		if fn.Args[i].Default == nil {
			return raisef(job, ErrArityMismatch, "missing required argument %q", fn.Args[i].Name)
		}
	}

	if fn.Kind == value.FuncInternal {
		ret, err := fn.Internal(st.args)
		if err != nil {
			return raisef(job, ErrTypeMismatch, "%v", err)
		}
		popSelfWithResult(job, ret)
		return nil
	}

	fscope := scope.New(scope.KindFunc, "")
	job.Scope.Push(fscope)
	job.Scope = fscope
	if boundObject != nil {
		fscope.Declare(scope.NewVarSymbol(value.NewVariable("self", value.NewObjectVal(boundObject))))
	}
	for i, a := range fn.Args {
		var v *value.Variable
		switch {
		case i < len(st.args):
			v = st.args[i]
			v.Name = a.Name
		case a.Default != nil:
			v = value.NewVariable(a.Name, a.Default)
		default:
			v = value.NewVariable(a.Name, value.NewNil())
		}
		fscope.Declare(scope.NewVarSymbol(v))
	}

	frame.CallInProgress = true
	frame.Step = 4
	job.Stack.Push(evalstack.New(ast.TagBlock, &ast.Block{Stmts: fn.Body}))
	return nil
}

// --- declarations --------------------------------------------------------

func funcDefStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	n := frame.Node.(*ast.FuncDef)
	args := make([]value.Arg, len(n.Args))
	for i, a := range n.Args {
		args[i] = value.Arg{Name: a.Name, Default: constEvalDefault(a.Default)}
	}
	fn := value.NewExternalFunc(args, n.Body)
	fnVal := value.NewFunc(fn)
	if n.Name != "" {
		job.Scope.Declare(scope.NewVarSymbol(value.NewVariable(n.Name, fnVal)))
	}
	popSelfWithResult(job, value.NewVarReturn(value.NewVariable("", fnVal)))
	return nil
}

func setDefStep(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal {
	n := frame.Node.(*ast.SetDef)
	detail := value.NewSetDetail(n.Name)
	for _, m := range n.Body {
		if m.Fn != nil {
			args := make([]value.Arg, len(m.Fn.Args))
			for i, a := range m.Fn.Args {
				args[i] = value.Arg{Name: a.Name, Default: constEvalDefault(a.Default)}
			}
			fn := value.NewExternalFunc(args, m.Fn.Body)
			detail.AddMember(value.NewVariable(m.Name, value.NewFunc(fn)))
			continue
		}
		def := value.NewNil()
		if v := constEvalDefault(m.Init); v != nil {
			def = v
		}
		detail.AddMember(value.NewVariable(m.Name, def))
	}
	job.Scope.Declare(scope.NewSetSymbol(detail))
	popSelfWithResult(job, nil)
	return nil
}
