package port

import (
	"errors"
	"sync"

	"gitlab.com/gomidi/midi"
)

type fakePort struct {
	number int
	name   string
	open   bool
}

func (p *fakePort) Open() error             { p.open = true; return nil }
func (p *fakePort) Close() error            { p.open = false; return nil }
func (p *fakePort) IsOpen() bool            { return p.open }
func (p *fakePort) Number() int             { return p.number }
func (p *fakePort) String() string          { return p.name }
func (p *fakePort) Underlying() interface{} { return nil }

type fakeIn struct {
	fakePort

	mu       sync.Mutex
	listener func([]byte, int64)
	stopped  bool
	ready    chan struct{}

	// called from SetListener with the registered listener
	onListen  func(func([]byte, int64))
	listenErr error
}

func newFakeIn() *fakeIn {
	return &fakeIn{ready: make(chan struct{})}
}

func (in *fakeIn) SetListener(fn func([]byte, int64)) error {
	if in.listenErr != nil {
		return in.listenErr
	}
	in.mu.Lock()
	in.listener = fn
	in.mu.Unlock()
	if in.onListen != nil {
		in.onListen(fn)
	}
	close(in.ready)
	return nil
}

func (in *fakeIn) StopListening() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.listener = nil
	in.stopped = true
	return nil
}

func (in *fakeIn) send(data []byte) {
	in.mu.Lock()
	fn := in.listener
	in.mu.Unlock()
	if fn != nil {
		fn(data, 0)
	}
}

type fakeOut struct {
	fakePort
	writes [][]byte
	err    error
}

func (o *fakeOut) Write(b []byte) (int, error) {
	if o.err != nil {
		return 0, o.err
	}
	o.writes = append(o.writes, append([]byte{}, b...))
	return len(b), nil
}

type fakeDriver struct {
	ins  []midi.In
	outs []midi.Out
	err  error
}

func (d *fakeDriver) Ins() ([]midi.In, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.ins, nil
}

func (d *fakeDriver) Outs() ([]midi.Out, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.outs, nil
}

func (d *fakeDriver) String() string { return "fake" }
func (d *fakeDriver) Close() error   { return nil }

var errFake = errors.New("fake failure")
