// File: reactor/reactor.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral event reactor: the dispatch loop and its public
// contract (spec.md §4.1). Grounded on the teacher's reactor/reactor.go
// EventReactor interface shape and on core/concurrency/eventloop.go's
// drain-then-block-with-deadline loop (deleted package; see DESIGN.md).

package reactor

import (
	"time"

	"github.com/reedcode/corelang/api"
	"github.com/reedcode/corelang/control"
)

// maxEventsPerWait bounds how many ready fd events a single backend.wait
// call returns; the dispatch loop drains all of them before moving on to
// signals and timers, mirroring the teacher's batch-drain idiom.
const maxEventsPerWait = 128

// Reactor is the single-threaded dispatch loop described in spec.md §4.1.
// Callbacks for a single Reactor never execute concurrently: Dispatch must
// only ever be called from one goroutine, and handlers must not call
// Dispatch recursively (spec.md §5).
type Reactor struct {
	backend backend
	fds     *fdTable
	timers  *timeoutHeap
	signals *signalBridge

	cfg     control.Config
	metrics *control.MetricsRegistry

	loopHook     func(data any)
	loopHookData any

	breaking bool
	isMain   bool
}

// New constructs a Reactor. isMain marks the reactor that owns the
// process-wide signal bridge's registration lock usage pattern (spec.md
// §4.1 "init(is_main)"); every Reactor may register signals, but only the
// main one is expected to outlive per-thread workers.
func New(isMain bool, cfg control.Config) (*Reactor, error) {
	be, err := newBackend()
	if err != nil {
		return nil, err
	}
	return &Reactor{
		backend: be,
		fds:     newFDTable(),
		timers:  newTimeoutHeap(),
		signals: newSignalBridge(),
		cfg:     cfg,
		metrics: control.NewMetricsRegistry(),
		isMain:  isMain,
	}, nil
}

// Metrics exposes the reactor's counters for host introspection.
func (r *Reactor) Metrics() *control.MetricsRegistry { return r.metrics }

// Destroy releases the backend.
func (r *Reactor) Destroy() error {
	return r.backend.close()
}

// SetCallback installs a hook invoked once at the top of every dispatch
// iteration, before the readiness wait (spec.md §4.1 step 1).
func (r *Reactor) SetCallback(hook func(data any), data any) {
	r.loopHook = hook
	r.loopHookData = data
}

// SetBreak latches a request to return from Dispatch. The latch is
// checked once per dispatch iteration, after that iteration's fd, signal
// and timer handlers have all run; the calling handler runs to completion.
func (r *Reactor) SetBreak() {
	r.breaking = true
}

// SetFD registers or updates interest in fd. timeoutMs is either
// TimeoutUnlimited, TimeoutUnmodified, or a positive relative millisecond
// value scheduling a new absolute deadline. Returns 0 on success, -1 on
// error (spec.md §6).
func (r *Reactor) SetFD(fd uintptr, flags api.FDEventType, timeoutMs int64, data any, handler ReadyHandler) (int, error) {
	rec, existed := r.fds.get(fd)

	if flags&api.EventClear != 0 {
		if existed {
			r.timers.remove(rec.timer)
			if err := r.backend.unregisterFD(fd); err != nil {
				return -1, err
			}
			r.fds.remove(fd)
		}
		return 0, nil
	}

	if !existed {
		rec = &fdRecord{fd: fd, deadline: TimeoutUnlimited}
	}

	newInterest := flags &^ (api.EventAppend | api.EventOneshot | api.EventNonblock | api.EventBlock | api.EventError)
	if flags&api.EventAppend != 0 {
		newInterest |= rec.interest
	}
	if flags&api.EventOneshot != 0 {
		newInterest |= api.EventOneshot
	}

	if flags&api.EventRead != 0 {
		rec.readData = data
	}
	if flags&api.EventWrite != 0 {
		rec.writeData = data
	}
	if handler != nil {
		rec.ready = handler
	}

	var err error
	if existed {
		err = r.backend.modifyFD(fd, newInterest&(api.EventRead|api.EventWrite))
	} else {
		err = r.backend.registerFD(fd, newInterest&(api.EventRead|api.EventWrite))
	}
	if err != nil {
		return -1, err
	}
	rec.interest = newInterest
	r.fds.set(rec)

	r.applyTimeout(rec, timeoutMs)
	return 0, nil
}

// SetFDTimeoutHandler sets the handler invoked when fd's registered
// timeout expires, independent of the ready handler (spec.md §4.1).
func (r *Reactor) SetFDTimeoutHandler(fd uintptr, data any, handler TimeoutHandler) (int, error) {
	rec, ok := r.fds.get(fd)
	if !ok {
		return -1, api.ErrNotFound
	}
	rec.timeoutHandler = handler
	rec.timeoutData = data
	return 0, nil
}

// applyTimeout resolves the timeout_ms sentinel semantics from spec.md
// §4.1 "fd-timeout discipline".
func (r *Reactor) applyTimeout(rec *fdRecord, timeoutMs int64) {
	switch {
	case timeoutMs == TimeoutUnmodified:
		return
	case timeoutMs == TimeoutUnlimited:
		r.timers.remove(rec.timer)
		rec.timer = nil
		rec.deadline = TimeoutUnlimited
	case timeoutMs >= 0:
		r.timers.remove(rec.timer)
		deadline := nowMicros() + timeoutMs*1000
		entry := &timerEntry{
			deadline: deadline,
			kind:     timerFDTimeout,
			fd:       rec.fd,
			handler: func(data any) {
				if rec.timeoutHandler != nil {
					rec.timeoutHandler(rec.fd, rec.timeoutData)
				}
			},
		}
		r.timers.insert(entry)
		rec.timer = entry
		rec.deadline = deadline
	}
}

// SetTimer schedules a one-shot timer firing no earlier than ms
// milliseconds from now. The entry is removed from the heap before the
// handler runs (spec.md §3 "Timer record"); the returned Cancelable
// removes it early instead, reporting false if the timer already fired.
func (r *Reactor) SetTimer(ms int64, data any, handler func(data any)) (api.Cancelable, error) {
	if ms < 0 {
		return nil, api.ErrInvalidArgument
	}
	entry := &timerEntry{
		deadline: nowMicros() + ms*1000,
		kind:     timerOneshot,
		data:     data,
		handler:  handler,
	}
	r.timers.insert(entry)
	return &timerHandle{heap: r.timers, entry: entry}, nil
}

// SetSignal adds or removes a (handler, data) registration for signo
// (spec.md §6 "Signal registration flags").
func (r *Reactor) SetSignal(flags SignalFlag, signo int, data any, handler SignalHandler) (int, error) {
	if err := r.signals.register(flags, signo, data, handler); err != nil {
		return -1, err
	}
	return 0, nil
}

// Dispatch runs the reactor loop until SetBreak is called or a fatal
// readiness-primitive error occurs (spec.md §4.1 "Dispatch loop").
func (r *Reactor) Dispatch() error {
	events := make([]api.FDEvent, maxEventsPerWait)

	for {
		if r.loopHook != nil {
			r.loopHook(r.loopHookData)
		}

		deadline := r.nextDeadline()
		n, err := r.backend.wait(deadline, events)
		if err != nil {
			return err
		}
		r.metrics.Incr(control.MetricDispatchIterations, 1)

		for i := 0; i < n; i++ {
			r.dispatchFDEvent(events[i])
		}

		for _, ev := range r.signals.drain() {
			for _, entry := range r.signals.handlersFor(ev.Signo) {
				entry.handler(ev.Signo, entry.data)
			}
			r.metrics.Incr(control.MetricSignalsDelivered, 1)
		}

		for _, entry := range r.timers.popExpired(nowMicros()) {
			entry.handler(entry.data)
			r.metrics.Incr(control.MetricTimersFired, 1)
		}

		if r.breaking {
			r.breaking = false
			return nil
		}
	}
}

// nextDeadline computes the minimum of the timeout heap's root deadline
// and the heartbeat period (spec.md §4.1 step 2), returned as a duration
// relative to now. A negative duration signals "block indefinitely".
func (r *Reactor) nextDeadline() time.Duration {
	heartbeat := r.cfg.Heartbeat
	if heartbeat <= 0 {
		heartbeat = control.DefaultHeartbeat
	}

	root, ok := r.timers.rootDeadline()
	if !ok {
		return heartbeat
	}
	untilRoot := time.Duration(root-nowMicros()) * time.Microsecond
	if untilRoot < 0 {
		untilRoot = 0
	}
	if untilRoot < heartbeat {
		return untilRoot
	}
	return heartbeat
}

// dispatchFDEvent delivers one readiness/error notification, applying the
// stale-readiness and ONESHOT/ERROR rules of spec.md §4.1 step 4.
func (r *Reactor) dispatchFDEvent(ev api.FDEvent) {
	rec, ok := r.fds.get(ev.Fd)
	if !ok {
		return // stale: record removed since the wait started
	}
	if rec.interest&(ev.Events&(api.EventRead|api.EventWrite)) == 0 && ev.Events&api.EventError == 0 {
		return // stale: interest cleared since the wait started
	}

	oneshot := rec.interest&api.EventOneshot != 0
	if oneshot {
		r.timers.remove(rec.timer)
		r.backend.unregisterFD(rec.fd)
		r.fds.remove(rec.fd)
	}

	if ev.Events&api.EventRead != 0 {
		rec.ready(rec.fd, api.EventRead, rec.readData)
		r.metrics.Incr(control.MetricFDEventsDelivered, 1)
	}
	if ev.Events&api.EventWrite != 0 {
		rec.ready(rec.fd, api.EventWrite, rec.writeData)
		r.metrics.Incr(control.MetricFDEventsDelivered, 1)
	}
	if ev.Events&api.EventError != 0 {
		data := rec.readData
		if rec.interest&api.EventRead == 0 {
			data = rec.writeData
		}
		rec.ready(rec.fd, api.EventError, data)
		r.metrics.Incr(control.MetricFDEventsDelivered, 1)
	}
}

func nowMicros() int64 {
	return time.Now().UnixMicro()
}
