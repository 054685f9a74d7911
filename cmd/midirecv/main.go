// midirecv prints the messages arriving at a MIDI in port, one line of
// hex bytes per message, until it is interrupted.
//
//	midirecv 1
//	0x90 0x40 0x7F
//	0x80 0x40 0x00
package main

import (
	"context"
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

	ctx, stop := cli.InterruptContext(context.Background())
	defer stop()

	drv, err := rtmididrv.New()
	if err != nil {
		return err
	}
	defer drv.Close()

	in, err := midi.OpenIn(drv, n, "")
	if err != nil {
		return err
	}

	err = port.Receive(ctx, in, tool.Stdout, tool.Log)
	if cerr := in.Close(); err == nil {
		err = cerr
	}
	return err
}
