// File: reactor/signal_util.go
// Author: momentics <momentics@gmail.com>
//
// Small helpers bridging Go's os.Signal/syscall.Signal to spec.md's plain
// signal-number identity, and comparing handler funcs by pointer identity
// for SignalUnset's "(handler, user-data) pair" match (spec.md §3).

package reactor

import (
	"os"
	"reflect"
	"syscall"
)

func syscallSignal(signo int) syscall.Signal {
	return syscall.Signal(signo)
}

func signalNumber(s os.Signal) int {
	if sig, ok := s.(syscall.Signal); ok {
		return int(sig)
	}
	return 0
}

// fnPtr returns a comparable identity for a function value. Two handlers
// registered from the same function literal/reference compare equal; two
// distinct closures never do, even with identical bodies.
func fnPtr(f SignalHandler) uintptr {
	if f == nil {
		return 0
	}
	return reflect.ValueOf(f).Pointer()
}
