// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package reactor provides the single-threaded event reactor: fd readiness
// multiplexing over the best available kernel primitive, a monotonic
// timeout heap, and a POSIX signal bridge fed by os/signal and drained
// once per dispatch iteration. See reactor.go for the public Dispatch
// contract.
package reactor
