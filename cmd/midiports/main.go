// midiports lists the available MIDI in and out ports.
//
//	# MIDI IN
//	0	Midi Through:Midi Through Port-0 14:0
//
//	# MIDI OUT
//	0	Midi Through:Midi Through Port-0 14:0
//
// With --json the listing is printed as {"in":{"0":"<name>"},"out":{...}}.
package main

import (
	"os"

	"gitlab.com/gomidi/midiutil/cli"
	"gitlab.com/gomidi/midiutil/port"
	"gitlab.com/gomidi/rtmididrv"
)

const version = "1.0.0"

func main() {
	tool := cli.New(cli.ProgramName(os.Args[0]), version, "")
	asJSON := tool.Flags.Bool("json", false, "print the ports in JSON format")

	os.Exit(tool.Main(os.Args[1:], func([]string) error {
		return run(tool, *asJSON)
	}))
}

func run(tool *cli.Tool, asJSON bool) error {
	drv, err := rtmididrv.New()
	if err != nil {
		return err
	}
	defer drv.Close()

	l, err := port.List(drv)
	if err != nil {
		return err
	}

	if asJSON {
		return l.WriteJSON(tool.Stdout)
	}
	return l.WriteText(tool.Stdout)
}
