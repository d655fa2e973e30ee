//go:build unix && !linux
// +build unix,!linux

// File: reactor/backend_poll.go
// Author: momentics <momentics@gmail.com>
//
// Portable readiness-scan fallback for non-epoll POSIX platforms
// (spec.md §4.1 "Backend selection": edge/level-triggered epoll-class →
// kqueue-class → portable readiness-scan fallback). The teacher's own
// reactor/reactor_stub.go simply returned "unsupported"; spec.md requires
// the same external behavior on every backend, so this is a real
// select(2)-based scan instead. No third-party portable-poll library
// appears anywhere in the retrieved corpus, so golang.org/x/sys/unix.Select
// (stdlib-adjacent, already the corpus's choice for raw syscalls) is used
// directly.

package reactor

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/reedcode/corelang/api"
)

type pollBackend struct {
	interest map[uintptr]api.FDEventType
}

// fdSetBit and fdSetIsSet implement the FD_SET/FD_ISSET macros, which
// golang.org/x/sys/unix exposes only as the bare Bits array. BSD-family
// FdSet.Bits is an array of 32-bit words.
const fdSetWordBits = 32

func fdSetBit(set *unix.FdSet, fd int) {
	set.Bits[fd/fdSetWordBits] |= 1 << (uint(fd) % fdSetWordBits)
}

func fdSetIsSet(set *unix.FdSet, fd int) bool {
	return set.Bits[fd/fdSetWordBits]&(1<<(uint(fd)%fdSetWordBits)) != 0
}

func newBackend() (backend, error) {
	return &pollBackend{interest: make(map[uintptr]api.FDEventType)}, nil
}

func (b *pollBackend) registerFD(fd uintptr, interest api.FDEventType) error {
	b.interest[fd] = interest
	return nil
}

func (b *pollBackend) modifyFD(fd uintptr, interest api.FDEventType) error {
	b.interest[fd] = interest
	return nil
}

func (b *pollBackend) unregisterFD(fd uintptr) error {
	delete(b.interest, fd)
	return nil
}

func (b *pollBackend) wait(timeout time.Duration, out []api.FDEvent) (int, error) {
	var readFDs, writeFDs unix.FdSet
	var maxFD int
	any := false
	for fd, interest := range b.interest {
		if interest&api.EventRead != 0 {
			fdSetBit(&readFDs, int(fd))
			any = true
		}
		if interest&api.EventWrite != 0 {
			fdSetBit(&writeFDs, int(fd))
			any = true
		}
		if int(fd) > maxFD {
			maxFD = int(fd)
		}
	}
	if !any {
		if timeout > 0 {
			time.Sleep(timeout)
		}
		return 0, nil
	}

	var tv *unix.Timeval
	if timeout >= 0 {
		t := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &t
	}

	n, err := unix.Select(maxFD+1, &readFDs, &writeFDs, nil, tv)
	if err != nil {
		if err == unix.EINTR {
			return 0, nil
		}
		return 0, err
	}
	if n <= 0 {
		return 0, nil
	}

	count := 0
	for fd, interest := range b.interest {
		if count >= len(out) {
			break
		}
		var events api.FDEventType
		if interest&api.EventRead != 0 && fdSetIsSet(&readFDs, int(fd)) {
			events |= api.EventRead
		}
		if interest&api.EventWrite != 0 && fdSetIsSet(&writeFDs, int(fd)) {
			events |= api.EventWrite
		}
		if events != 0 {
			out[count] = api.FDEvent{Fd: fd, Events: events}
			count++
		}
	}
	return count, nil
}

func (b *pollBackend) close() error {
	b.interest = nil
	return nil
}
