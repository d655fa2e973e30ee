// File: interp/dump.go
// Author: momentics <momentics@gmail.com>
//
// Runtime.Dump is the supplemented analogue of the original's
// mln_lang_dump diagnostic entry point (SPEC_FULL.md §C.6): a read-only
// snapshot of every queued job and its scope chain, walked in the same
// no-mutation spirit as control.MetricsRegistry's counters.
package interp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reedcode/corelang/scope"
)

// Dump returns a formatted, read-only snapshot of every job currently on
// the run/blocked/wait queues, and each one's scope chain, for host-side
// diagnostics.
func (rt *Runtime) Dump() string {
	var b strings.Builder
	rt.dumpQueue(&b, "run", rt.RunQ)
	rt.dumpQueue(&b, "blocked", rt.BlockedQ)
	rt.dumpQueue(&b, "wait", rt.WaitQ)
	return b.String()
}

func (rt *Runtime) dumpQueue(b *strings.Builder, name string, q *JobQueue) {
	fmt.Fprintf(b, "%s (%d):\n", name, q.Len())
	q.Each(func(j *Job) {
		fmt.Fprintf(b, "  job %d %q state=%s steps=%d err=%v\n", j.ID, j.Filename, j.State, j.TotalSteps, j.Err)
		depth := 0
		for s := j.Scope; s != nil; s = s.Prev {
			fmt.Fprintf(b, "    scope[%d] kind=%s name=%q: %s\n", depth, scopeKindName(s.Kind), s.Name, symbolList(s))
			depth++
		}
	})
}

func symbolList(s *scope.Scope) string {
	var names []string
	s.Each(func(sym *scope.Symbol) {
		names = append(names, fmt.Sprintf("%s(%s)", sym.Name, symbolKindName(sym.Kind)))
	})
	if len(names) == 0 {
		return "(empty)"
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func scopeKindName(k scope.Kind) string {
	if k == scope.KindFunc {
		return "func"
	}
	return "set"
}

func symbolKindName(k scope.SymKind) string {
	switch k {
	case scope.SymVar:
		return "var"
	case scope.SymSet:
		return "set"
	case scope.SymLabel:
		return "label"
	default:
		return "?"
	}
}
