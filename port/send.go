package port

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midiutil/message"
	"gitlab.com/gomidi/midiutil/token"
)

// Send reads lines from r until EOF. Every line that holds exactly one
// valid MIDI message is written to out with a single Write call; other
// non-blank lines are reported to log and skipped. Send only fails if
// reading or writing fails.
func Send(r io.Reader, out io.Writer, log *logrus.Logger) error {
	rd := bufio.NewReader(r)

	for {
		line, err := rd.ReadString('\n')

		if len(line) > 0 {
			if werr := sendLine(out, strings.TrimRight(line, "\r\n"), log); werr != nil {
				return werr
			}
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return errors.Wrap(err, "could not read input")
		}
	}
}

func sendLine(out io.Writer, line string, log *logrus.Logger) error {
	b, err := token.Parse(line)

	if err == nil && len(b) == 0 {
		return nil
	}

	if err != nil || !message.Valid(b) {
		log.Errorf("Invalid MIDI message: %s", line)
		return nil
	}

	if _, err := out.Write(b); err != nil {
		return errors.Wrapf(err, "could not write % X", b)
	}

	if log.IsLevelEnabled(logrus.DebugLevel) {
		log.Debugf("sent %s", Describe(b))
	}

	return nil
}
