// Package cli holds the conventions shared by the midiutil commands:
// argument parsing, usage and version output, diagnostics and exit codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gitlab.com/gomidi/midiutil/token"
)

// ErrHelp is returned by Parse after help or version output has been
// printed and the command should exit successfully.
var ErrHelp = pflag.ErrHelp

// UsageError is a malformed or missing command line argument.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// ProgramName returns the name the program was invoked as.
func ProgramName(arg0 string) string {
	return filepath.Base(arg0)
}

// Tool is one command line program.
type Tool struct {
	Name    string
	Version string

	// Positional names the single required positional argument.
	// Tools without one reject any positional argument.
	Positional string

	Flags  *pflag.FlagSet
	Log    *logrus.Logger
	Stdout io.Writer
	Stderr io.Writer

	help    bool
	version bool
}

// New returns a tool writing to the process' standard streams.
func New(name, version, positional string) *Tool {
	t := &Tool{
		Name:       name,
		Version:    version,
		Positional: positional,
		Flags:      pflag.NewFlagSet(name, pflag.ContinueOnError),
		Log:        NewLogger(name, os.Stderr),
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}

	t.Flags.SetOutput(io.Discard)
	t.Flags.Usage = func() {}
	t.Flags.SetInterspersed(false)
	t.Flags.BoolVarP(&t.help, "help", "h", false, "print this help and exit")
	t.Flags.BoolVarP(&t.version, "version", "v", false, "print the version and exit")

	return t
}

// UsageLine returns e.g. "usage: midisend [-hv] [--log] <port-number>".
func (t *Tool) UsageLine() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "usage: %s [-hv]", t.Name)

	t.Flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" || f.Name == "version" {
			return
		}
		fmt.Fprintf(&sb, " [--%s]", f.Name)
	})

	if t.Positional != "" {
		fmt.Fprintf(&sb, " <%s>", t.Positional)
	}

	return sb.String()
}

// Parse parses the arguments following the program name and returns
// the positional arguments.
func (t *Tool) Parse(args []string) ([]string, error) {
	err := t.Flags.Parse(args)
	if err != nil {
		return nil, &UsageError{Msg: err.Error()}
	}

	if t.help {
		fmt.Fprintln(t.Stdout, t.UsageLine())
		fmt.Fprint(t.Stdout, t.Flags.FlagUsages())
		return nil, ErrHelp
	}

	if t.version {
		fmt.Fprintf(t.Stdout, "%s %s\n", t.Name, t.Version)
		return nil, ErrHelp
	}

	rest := t.Flags.Args()

	switch {
	case t.Positional == "" && len(rest) != 0:
		return nil, &UsageError{Msg: fmt.Sprintf("unexpected argument: %q", rest[0])}
	case t.Positional != "" && len(rest) != 1:
		return nil, &UsageError{Msg: fmt.Sprintf("expected exactly one <%s>", t.Positional)}
	}

	return rest, nil
}

// Main parses args, calls run with the positional arguments and returns
// the process exit code. Usage errors print the usage line to stderr,
// any other error is logged as a single diagnostic line.
func (t *Tool) Main(args []string, run func(args []string) error) int {
	rest, err := t.Parse(args)
	if err == nil {
		err = run(rest)
	}

	var uerr *UsageError

	switch {
	case err == nil, errors.Is(err, ErrHelp):
		return 0
	case errors.As(err, &uerr):
		fmt.Fprintln(t.Stderr, t.UsageLine())
		return 1
	default:
		t.Log.Error(err)
		return 1
	}
}

// PortNumber parses the port number argument of a tool.
func PortNumber(arg string) (int, error) {
	n, err := token.ParsePortNumber(arg)
	if err != nil {
		return 0, errors.New("Invalid port number: " + arg)
	}
	return n, nil
}
