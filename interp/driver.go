// File: interp/driver.go
// Author: momentics <momentics@gmail.com>
//
// The bounded-step pump: advances one job by a fixed budget of stack
// steps per call (spec.md §4.3 "Driver" / "A job never monopolizes the
// reactor: each activation executes at most step_budget units of work
// before yielding"). Grounded on the teacher's reactor.go Dispatch loop
// shape, wired in as the loop hook so the reactor and the interpreter
// share one thread without either blocking the other (spec.md §5 "No
// locks are required inside a reactor").
package interp

import (
	"github.com/reedcode/corelang/ast"
	"github.com/reedcode/corelang/control"
	"github.com/reedcode/corelang/evalstack"
)

// Advance runs job for up to budget stack-steps, returning once the job
// blocks, waits, is destroyed, or the budget is exhausted. It is the unit
// the run queue's round-robin scheduler repeats over every job currently
// on RunQ.
//
// budget < 0 is treated as unbounded (run until the job yields or its
// stack empties) rather than as a misuse error; a deliberate,
// revisitable reading since spec.md leaves the sign's meaning
// undocumented (see DESIGN.md's Open Question decisions).
func (rt *Runtime) Advance(job *Job, budget int) {
	for budget < 0 || budget > 0 {
		frame := job.Stack.Top()
		if frame == nil {
			rt.finish(job)
			return
		}

		handler, ok := rt.Dispatch[frame.Tag]
		if !ok {
			rt.finish(job)
			return
		}

		sig := handler(rt, job, frame)
		job.TotalSteps++
		if rt.Metrics != nil {
			rt.Metrics.Incr(control.MetricStepsExecuted, 1)
		}

		if sig != nil {
			if !rt.resolveSignal(job, sig) {
				return
			}
		}

		if budget > 0 {
			budget--
		}
	}
}

// resolveSignal applies an unwind signal produced by a step-handler,
// returning false if the job stopped running (destroyed, blocked, or
// waiting) as a result and the caller should stop pumping it.
func (rt *Runtime) resolveSignal(job *Job, sig *unwindSignal) bool {
	switch sig.kind {
	case unwindBreak:
		idx := job.Stack.FindEnclosingLoop(isLoopFrame)
		if idx < 0 {
			raisef(job, ErrUncaught, "break outside an enclosing loop")
			rt.fail(job, job.Err)
			return false
		}
		job.Stack.TruncateTo(idx)
		return true

	case unwindContinue:
		idx := job.Stack.FindEnclosingLoop(isLoopFrame)
		if idx < 0 {
			raisef(job, ErrUncaught, "continue outside an enclosing loop")
			rt.fail(job, job.Err)
			return false
		}
		job.Stack.TruncateTo(idx + 1)
		loop := job.Stack.Top()
		loop.Step = continueResumeStep(loop)
		return true

	case unwindReturn:
		idx := job.Stack.FindEnclosingLoop(isCallFrame)
		if idx < 0 {
			// Bare top-level return: terminate the job with this as its
			// final value.
			job.CurrentReturn = sig.val
			rt.finish(job)
			return false
		}
		job.Stack.TruncateTo(idx + 1)
		call := job.Stack.Top()
		call.ChildResult = sig.val
		return true

	case unwindError:
		rt.fail(job, sig.err)
		return false
	}
	return true
}

// continueResumeStep picks the sub-step a loop frame resumes at after a
// continue unwinds to it: back to the post-body update for For, back to
// the condition re-check for While.
func continueResumeStep(loop *evalstack.StackNode) int {
	if loop.Tag == ast.TagFor {
		return forBodyDone
	}
	return 2
}

func (rt *Runtime) finish(job *Job) {
	rt.transition(job, StateDestroyed)
}

func (rt *Runtime) fail(job *Job, err error) {
	job.Err = err
	rt.finish(job)
}

// Run wires the runtime into r as its per-iteration loop hook (spec.md
// §4.1 "the loop hook lets a host pump other work once per dispatch
// iteration") and runs the reactor until SetBreak is called or a fatal
// readiness error occurs. Every job currently on RunQ gets one Advance
// call per reactor iteration, each bounded by Cfg.Step, so no single job
// can starve fd readiness delivery or other jobs.
func (rt *Runtime) Run() error {
	rt.Reactor.SetCallback(func(any) { rt.pumpRunnable() }, nil)
	return rt.Reactor.Dispatch()
}

func (rt *Runtime) pumpRunnable() {
	job := rt.RunQ.Front()
	for job != nil {
		next := job.Next
		rt.Advance(job, rt.Cfg.Step)
		job = next
	}
}
