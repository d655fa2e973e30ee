// File: reactor/heap.go
// Author: momentics <momentics@gmail.com>
//
// Timeout Heap: a monotonic min-heap keyed by absolute deadline in
// microseconds, holding timer and fd-timeout entries (spec.md §2.1, §3).
//
// Grounded on container/heap, which the teacher itself reaches for in
// internal/concurrency/scheduler.go's taskHeap (a stub left mid-written in
// the teacher; see DESIGN.md). No third-party priority-queue library
// appears anywhere in the retrieved corpus.

package reactor

import "container/heap"

type timerKind int

const (
	timerOneshot timerKind = iota
	timerFDTimeout
	timerHeartbeat
)

// timerEntry is spec.md's "Timer record".
type timerEntry struct {
	deadline int64 // absolute microseconds
	kind     timerKind
	seq      uint64 // insertion order, for stable tie-break at equal deadlines
	data     any
	handler  func(data any)
	fd       uintptr // owner fd, for fd-timeout entries; 0 otherwise
	index    int     // heap.Interface bookkeeping
}

// timerHeap implements heap.Interface over *timerEntry, min ordered by
// (deadline, seq).
type timerHeap []*timerEntry

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline != h[j].deadline {
		return h[i].deadline < h[j].deadline
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	e := x.(*timerEntry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// timeoutHeap wraps timerHeap with the insertion-sequence counter and the
// remove-by-reference operation the fd table and one-shot timers need.
type timeoutHeap struct {
	h       timerHeap
	nextSeq uint64
}

func newTimeoutHeap() *timeoutHeap {
	return &timeoutHeap{}
}

// insert adds e to the heap, stamping its sequence number.
func (t *timeoutHeap) insert(e *timerEntry) {
	e.seq = t.nextSeq
	t.nextSeq++
	heap.Push(&t.h, e)
}

// remove removes e from the heap if it is still present (index >= 0).
func (t *timeoutHeap) remove(e *timerEntry) {
	if e == nil || e.index < 0 || e.index >= len(t.h) {
		return
	}
	heap.Remove(&t.h, e.index)
	e.index = -1
}

// timerHandle is the api.Cancelable SetTimer hands back: Cancel removes
// the entry from the heap before it fires, per spec.md §3's "Timer
// record" being removed on fire or on explicit cancellation.
type timerHandle struct {
	heap  *timeoutHeap
	entry *timerEntry
}

// Cancel removes the timer if it is still pending, reporting false if it
// already fired (popExpired clears entry.index to -1) or was already
// canceled.
func (h *timerHandle) Cancel() bool {
	if h.entry.index < 0 {
		return false
	}
	h.heap.remove(h.entry)
	return true
}

// rootDeadline returns the minimum pending deadline and whether the heap
// is non-empty.
func (t *timeoutHeap) rootDeadline() (int64, bool) {
	if len(t.h) == 0 {
		return 0, false
	}
	return t.h[0].deadline, true
}

// popExpired pops and returns every entry whose deadline <= now, in
// deadline order with insertion-time tie-break (spec.md §5 "Ordering
// guarantees").
func (t *timeoutHeap) popExpired(now int64) []*timerEntry {
	var expired []*timerEntry
	for len(t.h) > 0 && t.h[0].deadline <= now {
		e := heap.Pop(&t.h).(*timerEntry)
		expired = append(expired, e)
	}
	return expired
}
