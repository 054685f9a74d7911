package pipedrv

import (
	"io"
	"os/exec"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi"
	"gitlab.com/gomidi/midiutil/message"
)

// ErrInvalidMessage is returned by Write for bytes that are not exactly
// one MIDI message.
var ErrInvalidMessage = errors.New("invalid MIDI message")

func newOut(driver *Driver, number int, name string) midi.Out {
	return &out{driver: driver, number: number, name: name}
}

// out is one MIDI out port backed by a midisend process while open.
type out struct {
	sync.Mutex
	driver *Driver
	number int
	name   string

	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// start runs the send command for the port. The caller holds the lock.
func (o *out) start() error {
	cmd := execCommand(o.driver.SendCommand, strconv.Itoa(o.number))

	// an OS pipe, so that writes fail with EPIPE once the child is gone
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}

	// the child gets its own process group, so that an interrupt meant for
	// the main program does not kill it before pending messages are sent
	detach(cmd)

	if err := cmd.Start(); err != nil {
		stdin.Close()
		return err
	}

	o.cmd, o.stdin = cmd, stdin
	return nil
}

// IsOpen reports whether the midisend process of the port is running.
func (o *out) IsOpen() bool {
	o.Lock()
	defer o.Unlock()
	return o.cmd != nil
}

// Write sends one MIDI message as a line of hex bytes to the midisend process.
// It returns midi.ErrPortClosed if the port is not open and an error
// wrapping the pipe failure if the process has exited.
func (o *out) Write(b []byte) (int, error) {
	if !message.Valid(b) {
		return 0, errors.Wrapf(ErrInvalidMessage, "% X", b)
	}

	o.Lock()
	defer o.Unlock()

	if o.cmd == nil {
		return 0, midi.ErrPortClosed
	}

	if _, err := io.WriteString(o.stdin, message.Message(b).String()+"\n"); err != nil {
		return 0, errors.Wrapf(err, "could not send % X to %q", b, o.name)
	}

	return len(b), nil
}

// Underlying returns the midisend process, or nil if the port is closed.
func (o *out) Underlying() interface{} {
	o.Lock()
	defer o.Unlock()
	if o.cmd == nil {
		return nil
	}
	return o.cmd
}

// Number is the port number passed to midisend.
func (o *out) Number() int {
	return o.number
}

// String is the port name reported by midiports.
func (o *out) String() string {
	return o.name
}

// Close ends the input of the midisend process and waits for it to exit.
// A failed midisend is reported as its exit error.
func (o *out) Close() error {
	o.Lock()
	defer o.Unlock()

	if o.cmd == nil {
		return nil
	}

	o.stdin.Close()
	err := o.cmd.Wait()
	o.cmd, o.stdin = nil, nil
	return err
}

// Open starts the midisend process for the port and registers the port
// with the driver. Opening an open port does nothing.
func (o *out) Open() error {
	o.Lock()
	defer o.Unlock()

	if o.cmd != nil {
		return nil
	}

	if err := o.start(); err != nil {
		return errors.Wrapf(err, "could not start midisend for %q", o.name)
	}

	o.driver.Lock()
	o.driver.opened = append(o.driver.opened, o)
	o.driver.Unlock()

	return nil
}
