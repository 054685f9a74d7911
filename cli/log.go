package cli

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"
)

// Formatter writes entries as "<program>: <message>", followed by any
// fields as key=value pairs.
type Formatter struct {
	Program string
}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	b.WriteString(f.Program)
	b.WriteString(": ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// NewLogger returns a logger for diagnostics of program, written to w.
func NewLogger(program string, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &Formatter{Program: program}
	log.Level = logrus.InfoLevel
	return log
}
