// File: api/events.go
// Package api defines core event types for the corelang core.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// FDEventType is a bitmask of fd readiness/registration flags, per
// spec.md §6 (bit positions are not normative, only orthogonality/
// combinability is).
type FDEventType uint32

const (
	EventRead     FDEventType = 1 << iota // READ
	EventWrite                            // WRITE
	EventError                            // ERROR
	EventOneshot                          // ONESHOT
	EventNonblock                         // NONBLOCK
	EventBlock                            // BLOCK
	EventAppend                           // APPEND
	EventClear                            // CLEAR, takes precedence over all others
)

// FDEvent is emitted by a backend when a watched descriptor becomes ready.
type FDEvent struct {
	Fd     uintptr
	Events FDEventType
}

// SignalEvent is emitted once per signal delivery the reactor's signal
// bridge receives from os/signal, naming the signal number that arrived.
type SignalEvent struct {
	Signo int
}
