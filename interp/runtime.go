// File: interp/runtime.go
// Author: momentics <momentics@gmail.com>
//
// Runtime is spec.md §3's "Runtime": the reactor reference, memory pool,
// three job queues, the currently-running job, in-use fds, the last
// heartbeat timestamp, and the stack-node-tag→step-handler dispatch
// table. Grounded on the teacher's core eventloop shape (reactor.go's
// Dispatch loop), generalized from one fd-multiplexing loop to one that
// also pumps a scripted job between reactor iterations.
package interp

import (
	"github.com/reedcode/corelang/ast"
	"github.com/reedcode/corelang/control"
	"github.com/reedcode/corelang/evalstack"
	"github.com/reedcode/corelang/pool"
	"github.com/reedcode/corelang/reactor"
)

// StepHandler advances one stack frame by exactly one unit of work
// (spec.md §4.3 "performs one unit of work"). It returns the control
// signal to apply, if any (nil means "no transition, keep running").
type StepHandler func(rt *Runtime, job *Job, frame *evalstack.StackNode) *unwindSignal

// Runtime owns the job queues and drives them between reactor
// iterations.
type Runtime struct {
	Reactor *reactor.Reactor
	Pool    *pool.BytePool

	RunQ     *JobQueue
	BlockedQ *JobQueue
	WaitQ    *JobQueue

	Current *Job

	InUseFDs  map[uintptr]bool
	SignalFDs map[int]bool

	LastHeartbeatMicros int64

	Dispatch map[ast.Tag]StepHandler

	Cfg     control.Config
	Metrics *control.MetricsRegistry

	nextJobID int
}

// NewRuntime builds a Runtime bound to r, seeded with cfg's tunables,
// with the default step-handler table installed.
func NewRuntime(r *reactor.Reactor, cfg control.Config, metrics *control.MetricsRegistry) *Runtime {
	rt := &Runtime{
		Reactor:   r,
		Pool:      pool.NewBytePool(4096),
		RunQ:      NewJobQueue(),
		BlockedQ:  NewJobQueue(),
		WaitQ:     NewJobQueue(),
		InUseFDs:  make(map[uintptr]bool),
		SignalFDs: make(map[int]bool),
		Cfg:       cfg,
		Metrics:   metrics,
	}
	rt.Dispatch = registerHandlers()
	return rt
}

// Spawn creates a job for root and places it on the run queue (spec.md
// §3 "A job is born via job-creation, lives on the run queue while it
// has work").
func (rt *Runtime) Spawn(filename string, root *ast.Program) *Job {
	rt.nextJobID++
	j := NewJob(rt.nextJobID, filename, root, rt.Cfg.MaxOpenFiles)
	rt.RunQ.PushBack(j)
	if rt.Metrics != nil {
		rt.Metrics.Incr(control.MetricJobsCreated, 1)
	}
	return j
}

// transition moves job from its current queue to dst, updating State.
func (rt *Runtime) transition(j *Job, dst State) {
	switch j.State {
	case StateRun:
		rt.RunQ.Remove(j)
	case StateBlocked:
		rt.BlockedQ.Remove(j)
	case StateWait:
		rt.WaitQ.Remove(j)
	}
	j.State = dst
	switch dst {
	case StateRun:
		rt.RunQ.PushBack(j)
	case StateBlocked:
		rt.BlockedQ.PushBack(j)
	case StateWait:
		rt.WaitQ.PushBack(j)
	case StateDestroyed:
		if rt.Metrics != nil {
			rt.Metrics.Incr(control.MetricJobsDestroyed, 1)
		}
	}
}

// Wake moves a blocked job back to run (spec.md §3 "blocked → run: when
// the awaited event fires").
func (rt *Runtime) Wake(j *Job) {
	if j.State == StateBlocked {
		rt.transition(j, StateRun)
	}
}

// Release moves j from the wait queue back to run if j is waiting. It
// moves exactly the job passed in: it does not consult WaitQ's order,
// so it does not by itself release waiters in FIFO order.
func (rt *Runtime) Release(j *Job) {
	if j.State == StateWait {
		rt.transition(j, StateRun)
	}
}
