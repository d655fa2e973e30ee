// File: interp/job.go
// Author: momentics <momentics@gmail.com>
//
// Job is spec.md §3's "Job context": a bounded file-set, the AST root,
// evaluation stack, scope chain, step counter, filename, message-channel
// map, current return-expression, and queue-membership links. A Job has
// no memory pool of its own; the only pool is the Runtime's BytePool. Grounded on the teacher's internal/session sessionImpl shape
// (an owned-resource context with lifecycle hooks), generalized from a
// network session to a scripted execution context.
package interp

import (
	"github.com/reedcode/corelang/ast"
	"github.com/reedcode/corelang/evalstack"
	"github.com/reedcode/corelang/msgchannel"
	"github.com/reedcode/corelang/scope"
	"github.com/reedcode/corelang/value"
)

// State is the job's current queue membership (spec.md §3 "Lifecycles").
type State int

const (
	StateRun State = iota
	StateBlocked
	StateWait
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateRun:
		return "run"
	case StateBlocked:
		return "blocked"
	case StateWait:
		return "wait"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// unwindKind distinguishes the stack-unwind control signals: break,
// continue, return, and runtime error (unwindNone marks no signal).
type unwindKind int

const (
	unwindNone unwindKind = iota
	unwindBreak
	unwindContinue
	unwindReturn
	unwindError
)

// unwindSignal carries a pending stack unwind from a break/continue/
// return statement or an uncaught runtime error up to the frame that
// must absorb it.
type unwindSignal struct {
	kind  unwindKind
	label string
	val   *value.ReturnExpr // unwindReturn
	err   error              // unwindError
}

// Job is one scripted execution context.
type Job struct {
	ID int

	Filename string

	AST   *ast.Program
	Stack *evalstack.Stack
	Scope *scope.Scope

	// OpenFiles is bounded by Cfg.MaxOpenFiles (spec.md §3 "a file-set
	// for open-file tracking bounded by M_LANG_MAX_OPENFILE").
	OpenFiles []int

	Channels map[string]*msgchannel.Channel

	// CurrentReturn is the most recently produced top-level
	// return-expression, kept for host inspection after the job blocks
	// or finishes.
	CurrentReturn *value.ReturnExpr

	// TotalSteps counts every step unit ever executed for this job
	// (spec.md §3 "a step budget counter").
	TotalSteps int64

	State State
	Err   error

	pending *unwindSignal

	Prev *Job
	Next *Job
}

// NewJob creates a job at StateRun with a single top-level SET scope and
// root's statements already pushed onto its stack, first statement on top.
func NewJob(id int, filename string, root *ast.Program, maxOpenFiles int) *Job {
	j := &Job{
		ID:        id,
		Filename:  filename,
		AST:       root,
		Stack:     evalstack.NewStack(),
		Scope:     scope.New(scope.KindSet, ""),
		OpenFiles: make([]int, 0, maxOpenFiles),
		Channels:  make(map[string]*msgchannel.Channel),
		State:     StateRun,
	}
	for i := len(root.Stmts) - 1; i >= 0; i-- {
		j.Stack.Push(toFrame(root.Stmts[i]))
	}
	return j
}

// Channel returns (creating if absent) the named message channel.
func (j *Job) Channel(name string) *msgchannel.Channel {
	if c, ok := j.Channels[name]; ok {
		return c
	}
	c := msgchannel.New(name, nil)
	j.Channels[name] = c
	return c
}
