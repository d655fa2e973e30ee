//go:build linux
// +build linux

// File: reactor/backend_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux epoll(7) backend. Merges the teacher's two competing epoll
// wrappers (reactor/epoll_reactor.go and reactor/reactor_linux.go) into
// one, switched from raw syscall to golang.org/x/sys/unix (the teacher's
// own choice in reactor_linux.go).

package reactor

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/reedcode/corelang/api"
)

type epollBackend struct {
	epfd int
}

func newBackend() (backend, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, err
	}
	return &epollBackend{epfd: epfd}, nil
}

func toEpollEvents(interest api.FDEventType) uint32 {
	var ev uint32
	if interest&api.EventRead != 0 {
		ev |= unix.EPOLLIN
	}
	if interest&api.EventWrite != 0 {
		ev |= unix.EPOLLOUT
	}
	return ev
}

func (b *epollBackend) registerFD(fd uintptr, interest api.FDEventType) error {
	ev := &unix.EpollEvent{Events: toEpollEvents(interest), Fd: int32(fd)}
	return unix.EpollCtl(b.epfd, unix.EPOLL_CTL_ADD, int(fd), ev)
}

func (b *epollBackend) modifyFD(fd uintptr, interest api.FDEventType) error {
	ev := &unix.EpollEvent{Events: toEpollEvents(interest), Fd: int32(fd)}
	return unix.EpollCtl(b.epfd, unix.EPOLL_CTL_MOD, int(fd), ev)
}

func (b *epollBackend) unregisterFD(fd uintptr) error {
	return unix.EpollCtl(b.epfd, unix.EPOLL_CTL_DEL, int(fd), nil)
}

func (b *epollBackend) wait(timeout time.Duration, out []api.FDEvent) (int, error) {
	ms := -1
	if timeout >= 0 {
		ms = int(timeout / time.Millisecond)
	}
	raw := make([]unix.EpollEvent, len(out))
	n, err := unix.EpollWait(b.epfd, raw, ms)
	if err != nil {
		if err == unix.EINTR {
			return 0, nil
		}
		return 0, err
	}
	for i := 0; i < n; i++ {
		var events api.FDEventType
		if raw[i].Events&unix.EPOLLIN != 0 {
			events |= api.EventRead
		}
		if raw[i].Events&unix.EPOLLOUT != 0 {
			events |= api.EventWrite
		}
		if raw[i].Events&(unix.EPOLLERR|unix.EPOLLHUP) != 0 {
			events |= api.EventError
		}
		out[i] = api.FDEvent{Fd: uintptr(raw[i].Fd), Events: events}
	}
	return n, nil
}

func (b *epollBackend) close() error {
	return unix.Close(b.epfd)
}
