// midisend reads MIDI messages as text from stdin and sends them to a
// MIDI out port. Every line holds one message as decimal or 0x prefixed
// hex bytes:
//
//	0x90 0x40 0x7F
//	0xC0 5
//	0xF0 0x7E 0x7F 0x06 0x01 0xF7
//
// Lines that are not exactly one valid message are reported and skipped.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi"
	"gitlab.com/gomidi/midiutil/cli"
	"gitlab.com/gomidi/midiutil/port"
	"gitlab.com/gomidi/rtmididrv"
)

const version = "1.0.1"

func main() {
	tool := cli.New(cli.ProgramName(os.Args[0]), version, "port-number")
	logMessages := tool.Flags.Bool("log", false, "log the decoded messages to stderr")

	os.Exit(tool.Main(os.Args[1:], func(args []string) error {
		if *logMessages {
			tool.Log.SetLevel(logrus.DebugLevel)
		}
		return run(tool, args[0])
	}))
}

func run(tool *cli.Tool, arg string) error {
	n, err := cli.PortNumber(arg)
	if err != nil {
		return err
	}

	drv, err := rtmididrv.New()
	if err != nil {
		return err
	}
	defer drv.Close()

	out, err := midi.OpenOut(drv, n, "")
	if err != nil {
		return err
	}

	err = port.Send(os.Stdin, out, tool.Log)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
