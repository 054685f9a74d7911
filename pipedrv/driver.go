// Package pipedrv is a midi.Driver for programs that must not depend on
// cgo. It lists ports by running "midiports --json" and writes to an out
// port by piping text lines into a "midisend <port-number>" process.
//
// In ports are not supported.
package pipedrv

import (
	"bytes"
	"io"
	"sync"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi"
	"gitlab.com/gomidi/midiutil/port"
)

// Driver runs the midiutil commands to reach the MIDI ports.
type Driver struct {
	// PortsCommand is run with "--json" appended to list the ports.
	PortsCommand []string

	// SendCommand is run with the port number appended for every opened out port.
	SendCommand []string

	sync.Mutex
	opened []midi.Port
}

// New returns a driver using midiports and midisend from the PATH.
func New() *Driver {
	return &Driver{
		PortsCommand: []string{"midiports"},
		SendCommand:  []string{"midisend"},
	}
}

func (d *Driver) String() string {
	return "pipedrv"
}

// Ins returns no ports.
func (d *Driver) Ins() ([]midi.In, error) {
	return nil, nil
}

// Outs runs the ports command and returns its out ports.
func (d *Driver) Outs() ([]midi.Out, error) {
	var stdout, stderr bytes.Buffer

	cmd := execCommand(d.PortsCommand, "--json")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, "could not list ports: %s", bytes.TrimSpace(stderr.Bytes()))
	}

	return d.outs(&stdout)
}

func (d *Driver) outs(r io.Reader) ([]midi.Out, error) {
	l, err := port.ReadJSON(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read port list")
	}

	outs := make([]midi.Out, 0, len(l.Outs))
	for _, e := range l.Outs {
		outs = append(outs, newOut(d, e.Number, e.Name))
	}

	return outs, nil
}

// Close closes all ports opened through the driver.
func (d *Driver) Close() (err error) {
	d.Lock()
	opened := d.opened
	d.opened = nil
	d.Unlock()

	for _, p := range opened {
		if cerr := p.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}
