// File: reactor/signal.go
// Author: momentics <momentics@gmail.com>
//
// Signal Bridge: a table mapping signal number to a list of registered
// handlers (spec.md §4.1 "Signal ordering"). Each Reactor has its own
// bridge and table; only processSignalMu is shared process-wide.
//
// Arrivals come from os/signal.Notify (Go does not expose raw sigaction):
// a pump goroutine moves each one into a pending queue, and the reactor
// thread, the only drainer, empties that queue after each readiness wait.
// There is no self-pipe: an arriving signal does not wake a blocked wait
// and is handled once the wait returns, at the latest after a heartbeat.

package reactor

import (
	"os"
	"os/signal"
	"sync"

	"github.com/eapache/queue"

	"github.com/reedcode/corelang/api"
)

// SignalHandler is invoked once per signal arrival, in registration order
// among handlers registered for that signal number.
type SignalHandler func(signo int, data any)

// SignalFlag selects add vs. remove semantics for SetSignal (spec.md §6).
type SignalFlag int

const (
	SignalSet   SignalFlag = iota // add
	SignalUnset                   // remove
)

type signalHandlerEntry struct {
	handler SignalHandler
	data    any
}

// signalBridge belongs to one Reactor. POSIX signals are a process
// resource (spec.md §9), so registration on every bridge is serialized
// through the process-wide processSignalMu, and only the owning reactor
// drains its pending queue.
type signalBridge struct {
	mu       sync.Mutex
	handlers map[int][]*signalHandlerEntry
	pending  *queue.Queue
	ch       chan os.Signal
	watched  map[int]struct{}
}

var processSignalMu sync.Mutex

func newSignalBridge() *signalBridge {
	return &signalBridge{
		handlers: make(map[int][]*signalHandlerEntry),
		pending:  queue.New(),
		ch:       make(chan os.Signal, 64),
		watched:  make(map[int]struct{}),
	}
}

// register adds or removes a (handler, data) pair for signo.
func (b *signalBridge) register(flags SignalFlag, signo int, data any, h SignalHandler) error {
	processSignalMu.Lock()
	defer processSignalMu.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	switch flags {
	case SignalSet:
		b.handlers[signo] = append(b.handlers[signo], &signalHandlerEntry{handler: h, data: data})
		if _, ok := b.watched[signo]; !ok {
			b.watched[signo] = struct{}{}
			signal.Notify(b.ch, os.Signal(syscallSignal(signo)))
			go b.pump()
		}
		return nil
	case SignalUnset:
		list := b.handlers[signo]
		for i, e := range list {
			if sameFunc(e.handler, h) && e.data == data {
				b.handlers[signo] = append(list[:i], list[i+1:]...)
				return nil
			}
		}
		return nil
	default:
		return nil
	}
}

// pump runs in a background goroutine purely to translate the Go runtime's
// os/signal delivery into queued entries the reactor thread can drain
// without itself blocking on a channel receive from multiple sources; the
// reactor never does its own signal.Notify reads concurrently with a
// drain, so each bridge has exactly one drainage path.
func (b *signalBridge) pump() {
	for s := range b.ch {
		ev := api.SignalEvent{Signo: signalNumber(s)}
		b.mu.Lock()
		b.pending.Add(ev)
		b.mu.Unlock()
	}
}

// drain pops every pending signal event and returns them in arrival
// order; the caller (Reactor.Dispatch) invokes each registered handler for
// each one's signal number.
func (b *signalBridge) drain() []api.SignalEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []api.SignalEvent
	for b.pending.Length() > 0 {
		out = append(out, b.pending.Remove().(api.SignalEvent))
	}
	return out
}

func (b *signalBridge) handlersFor(signo int) []*signalHandlerEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*signalHandlerEntry, len(b.handlers[signo]))
	copy(out, b.handlers[signo])
	return out
}

func sameFunc(a, b SignalHandler) bool {
	return fnPtr(a) == fnPtr(b)
}
