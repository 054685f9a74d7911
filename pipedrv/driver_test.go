package pipedrv

import (
	"errors"
	"strings"
	"testing"

	"gitlab.com/gomidi/midi"
)

func TestOuts(t *testing.T) {
	d := New()

	outs, err := d.outs(strings.NewReader(`{"in":{"0":"keys"},"out":{"1":"synth","0":"Midi Through"}}`))
	if err != nil {
		t.Fatal(err)
	}

	if len(outs) != 2 {
		t.Fatalf("got %d outs, want 2", len(outs))
	}
	if outs[0].Number() != 0 || outs[0].String() != "Midi Through" {
		t.Errorf("outs[0] = %d %q", outs[0].Number(), outs[0].String())
	}
	if outs[1].Number() != 1 || outs[1].String() != "synth" {
		t.Errorf("outs[1] = %d %q", outs[1].Number(), outs[1].String())
	}
}

func TestOutsInvalidJSON(t *testing.T) {
	if _, err := New().outs(strings.NewReader("# MIDI IN\n")); err == nil {
		t.Error("expected error")
	}
}

func TestIns(t *testing.T) {
	ins, err := New().Ins()
	if err != nil || len(ins) != 0 {
		t.Errorf("Ins() = %v, %v", ins, err)
	}
}

func TestWriteClosed(t *testing.T) {
	o := newOut(New(), 0, "synth")

	if o.IsOpen() {
		t.Fatal("new port is open")
	}
	if _, err := o.Write([]byte{0xF8}); err != midi.ErrPortClosed {
		t.Errorf("err = %v, want %v", err, midi.ErrPortClosed)
	}
	if err := o.Close(); err != nil {
		t.Errorf("Close() on closed port: %v", err)
	}
}

func TestWriteInvalid(t *testing.T) {
	o := newOut(New(), 0, "synth")

	for _, b := range [][]byte{nil, {0x40}, {0x90, 0x40}, {0xF0, 0x01}} {
		if _, err := o.Write(b); !errors.Is(err, ErrInvalidMessage) {
			t.Errorf("Write(% X) err = %v, want %v", b, err, ErrInvalidMessage)
		}
	}
}
