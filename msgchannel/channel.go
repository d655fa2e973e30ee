// File: msgchannel/channel.go
// Author: momentics <momentics@gmail.com>
//
// Channel is spec.md §4.5's cross-job message channel: a named rendezvous
// with two one-slot buffers (script→host, host→script), a host handler,
// and read-pending flags. Grounded on api/handler.go's Handler contract
// and the original header's msg struct three-bit-flag layout
// (script_read/c_read/script_wait — SPEC_FULL.md §C.5).
package msgchannel

import (
	"fmt"

	"github.com/reedcode/corelang/api"
	"github.com/reedcode/corelang/value"
)

// Channel is one named rendezvous object bound to a job.
type Channel struct {
	Name string

	Handler api.Handler

	scriptToHost *value.Value // posted by script, read by host
	hostToScript *value.Value // posted by host, read by script

	// ScriptRead is set once the script side has consumed hostToScript
	// and is waiting for a new value (recovers script_read).
	ScriptRead bool
	// HostRead is set once the host side has consumed scriptToHost
	// (recovers c_read).
	HostRead bool
	// ScriptWaiting marks the owning job blocked on this channel
	// (recovers script_wait).
	ScriptWaiting bool
}

// New creates an empty, fully-read channel named name.
func New(name string, h api.Handler) *Channel {
	return &Channel{Name: name, Handler: h, ScriptRead: true, HostRead: true}
}

// ScriptSend posts val from the script side to the host's inbound slot.
// Posting into an already-full, unread slot is host-integration
// misuse (spec.md §7 "message-channel protocol misuse (double-send
// before read)") and is reported as an error rather than silently
// overwriting.
func (c *Channel) ScriptSend(val *value.Value) error {
	if !c.HostRead {
		return fmt.Errorf("msgchannel %q: script send before host read", c.Name)
	}
	c.scriptToHost = val.Ref()
	c.HostRead = false
	if c.Handler != nil {
		return c.Handler.Handle(val)
	}
	return nil
}

// HostRecv consumes and clears the script→host slot.
func (c *Channel) HostRecv() (*value.Value, bool) {
	if c.scriptToHost == nil {
		return nil, false
	}
	v := c.scriptToHost
	c.scriptToHost = nil
	c.HostRead = true
	return v, true
}

// HostSend posts val from the host side to the script's inbound slot,
// clearing ScriptWaiting so the owning job can be re-queued to run.
func (c *Channel) HostSend(val *value.Value) error {
	if !c.ScriptRead {
		return fmt.Errorf("msgchannel %q: host send before script read", c.Name)
	}
	c.hostToScript = val.Ref()
	c.ScriptRead = false
	c.ScriptWaiting = false
	return nil
}

// ScriptRecv consumes and clears the host→script slot. If the slot is
// empty, ok is false and ScriptRecv sets ScriptWaiting; moving the job
// to blocked is left to the caller.
func (c *Channel) ScriptRecv() (val *value.Value, ok bool) {
	if c.hostToScript == nil {
		c.ScriptWaiting = true
		return nil, false
	}
	v := c.hostToScript
	c.hostToScript = nil
	c.ScriptRead = true
	return v, true
}
