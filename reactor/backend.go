// File: reactor/backend.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral readiness-multiplexing backend. Grounded on the
// teacher's reactor/reactor.go EventReactor interface (Register/Wait/
// Close), generalized with modify/unregister and a readiness-flag
// parameter so CLEAR/APPEND (spec.md §4.1) can be expressed without
// re-registering from scratch.

package reactor

import (
	"time"

	"github.com/reedcode/corelang/api"
)

// backend is selected at build time in priority order: edge/level-triggered
// epoll-class → kqueue-class → portable readiness-scan fallback
// (spec.md §4.1 "Backend selection"). Only the Linux epoll backend and the
// portable fallback are implemented; see DESIGN.md for the dropped
// Windows/IOCP backend.
type backend interface {
	// registerFD starts watching fd for the given interest (READ/WRITE only).
	registerFD(fd uintptr, interest api.FDEventType) error
	// modifyFD changes fd's watched interest.
	modifyFD(fd uintptr, interest api.FDEventType) error
	// unregisterFD stops watching fd entirely.
	unregisterFD(fd uintptr) error
	// wait blocks up to timeout (or indefinitely if timeout < 0) and
	// appends ready events to out, returning the number appended.
	wait(timeout time.Duration, out []api.FDEvent) (int, error)
	// close releases backend resources.
	close() error
}
