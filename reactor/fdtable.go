// File: reactor/fdtable.go
// Author: momentics <momentics@gmail.com>
//
// FD Table: maps a descriptor to its current interest, handlers, and
// timeout deadline. The reactor is single-threaded (spec.md §5), so this
// is a plain map rather than the teacher's sync.Map-backed callback table
// in reactor/epoll_reactor.go.

package reactor

import "github.com/reedcode/corelang/api"

// ReadyHandler is invoked once per readiness/error event. events names
// exactly which condition fired (READ, WRITE, or ERROR); data is ReadData
// or WriteData depending on which side triggered.
type ReadyHandler func(fd uintptr, events api.FDEventType, data any)

// TimeoutHandler is invoked when an fd's deadline expires without the fd
// being CLEARed; the fd interest is left untouched (spec.md §4.1).
type TimeoutHandler func(fd uintptr, data any)

// fdRecord is spec.md's "Event descriptor record".
type fdRecord struct {
	fd       uintptr
	interest api.FDEventType
	readData any
	writeData any

	ready ReadyHandler

	timeoutHandler TimeoutHandler
	timeoutData    any

	deadline int64 // absolute microseconds, TimeoutUnlimited if none
	timer    *timerEntry
}

// Timeout sentinels (spec.md §6).
const (
	TimeoutUnlimited  int64 = -1 // "no deadline"
	TimeoutUnmodified int64 = -2 // "preserve prior"
)

// fdTable owns the live fd → record mapping.
type fdTable struct {
	records map[uintptr]*fdRecord
}

func newFDTable() *fdTable {
	return &fdTable{records: make(map[uintptr]*fdRecord)}
}

func (t *fdTable) get(fd uintptr) (*fdRecord, bool) {
	r, ok := t.records[fd]
	return r, ok
}

func (t *fdTable) set(r *fdRecord) {
	t.records[r.fd] = r
}

func (t *fdTable) remove(fd uintptr) {
	delete(t.records, fd)
}
