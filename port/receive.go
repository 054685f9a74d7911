package port

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi"
	"gitlab.com/gomidi/midiutil/message"
)

// QueueSize is the number of received messages held between the driver
// callback and the writer before messages are dropped.
const QueueSize = 1024

type received struct {
	data              []byte
	deltaMicroseconds int64
}

// Receive listens on in and writes every message as one line of hex
// bytes to w until ctx is done. Messages already queued when ctx is
// done are still written.
//
// The listener runs on the driver's goroutine and never blocks: when the
// queue is full the message is dropped with a warning.
func Receive(ctx context.Context, in midi.In, w io.Writer, log *logrus.Logger) error {
	msgs := make(chan received, QueueSize)

	err := in.SetListener(func(data []byte, deltaMicroseconds int64) {
		b := make([]byte, len(data))
		copy(b, data)

		select {
		case msgs <- received{data: b, deltaMicroseconds: deltaMicroseconds}:
		default:
			log.Warnf("queue full, dropped %s", message.Message(b))
		}
	})

	if err != nil {
		return errors.Wrap(err, "could not start listener")
	}

	for {
		select {
		case m := <-msgs:
			if err := write(w, m, log); err != nil {
				in.StopListening()
				return err
			}
		case <-ctx.Done():
			serr := in.StopListening()
			if err := flush(w, msgs, log); err != nil {
				return err
			}
			return errors.Wrap(serr, "could not stop listener")
		}
	}
}

func flush(w io.Writer, msgs <-chan received, log *logrus.Logger) error {
	for {
		select {
		case m := <-msgs:
			if err := write(w, m, log); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func write(w io.Writer, m received, log *logrus.Logger) error {
	if len(m.data) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, message.Message(m.data)); err != nil {
		return errors.Wrap(err, "could not write")
	}

	if log.IsLevelEnabled(logrus.DebugLevel) {
		log.Debugf("received %s (+%dµs)", Describe(m.data), m.deltaMicroseconds)
	}

	return nil
}
