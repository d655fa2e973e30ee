// Package pool
// Author: momentics <momentics@gmail.com>
//
// Generic object and byte-slice pooling. The interpreter Runtime holds one
// BytePool (interp.Runtime.Pool); jobs have no pool of their own, and the
// value package does not draw buffers from it. See objpool.go and
// bytepool.go.
package pool
