package msgchannel

import (
	"testing"

	"github.com/reedcode/corelang/value"
)

type recordingHandler struct {
	got []any
}

func (h *recordingHandler) Handle(data any) error {
	h.got = append(h.got, data)
	return nil
}

func TestScriptSendInvokesHostHandler(t *testing.T) {
	h := &recordingHandler{}
	c := New("ch1", h)

	if err := c.ScriptSend(value.NewInt(42)); err != nil {
		t.Fatalf("ScriptSend: %v", err)
	}
	if len(h.got) != 1 {
		t.Fatalf("handler invoked %d times, want 1", len(h.got))
	}
}

func TestDoubleScriptSendBeforeHostReadIsError(t *testing.T) {
	c := New("ch1", nil)
	if err := c.ScriptSend(value.NewInt(1)); err != nil {
		t.Fatalf("first ScriptSend: %v", err)
	}
	if err := c.ScriptSend(value.NewInt(2)); err == nil {
		t.Fatalf("second ScriptSend before host read did not error")
	}
}

func TestHostRecvClearsSlot(t *testing.T) {
	c := New("ch1", nil)
	c.ScriptSend(value.NewInt(7))

	v, ok := c.HostRecv()
	if !ok || v.I != 7 {
		t.Fatalf("HostRecv = (%v, %v), want (7, true)", v, ok)
	}
	if _, ok := c.HostRecv(); ok {
		t.Fatalf("second HostRecv on empty slot returned ok=true")
	}
}

func TestScriptRecvOnEmptySlotSetsWaiting(t *testing.T) {
	c := New("ch1", nil)
	_, ok := c.ScriptRecv()
	if ok {
		t.Fatalf("ScriptRecv on empty channel returned ok=true")
	}
	if !c.ScriptWaiting {
		t.Fatalf("ScriptWaiting not set after a read on an empty channel")
	}
}

func TestHostSendClearsWaitingAndDeliversValue(t *testing.T) {
	c := New("ch1", nil)
	c.ScriptRecv() // marks ScriptWaiting
	if err := c.HostSend(value.NewInt(99)); err != nil {
		t.Fatalf("HostSend: %v", err)
	}
	if c.ScriptWaiting {
		t.Fatalf("ScriptWaiting still set after HostSend")
	}
	v, ok := c.ScriptRecv()
	if !ok || v.I != 99 {
		t.Fatalf("ScriptRecv = (%v, %v), want (99, true)", v, ok)
	}
}
