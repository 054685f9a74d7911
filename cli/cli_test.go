package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func newTestTool(positional string) (*Tool, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	t := New("midisend", "1.0.1", positional)
	t.Stdout = &stdout
	t.Stderr = &stderr
	t.Log = NewLogger("midisend", &stderr)
	return t, &stdout, &stderr
}

func TestProgramName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"midisend", "midisend"},
		{"/usr/local/bin/midisend", "midisend"},
		{"./bin/midirecv/", "midirecv"},
		{"/", "/"},
		{"", "."},
	}

	for _, tt := range tests {
		if got := ProgramName(tt.in); got != tt.want {
			t.Errorf("ProgramName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUsageLine(t *testing.T) {
	tool, _, _ := newTestTool("port-number")
	if got, want := tool.UsageLine(), "usage: midisend [-hv] <port-number>"; got != want {
		t.Errorf("UsageLine() = %q, want %q", got, want)
	}

	tool.Flags.Bool("log", false, "log decoded messages")
	if got, want := tool.UsageLine(), "usage: midisend [-hv] [--log] <port-number>"; got != want {
		t.Errorf("UsageLine() = %q, want %q", got, want)
	}
}

func TestToolMain(t *testing.T) {
	tests := []struct {
		name       string
		positional string
		args       []string
		code       int
		ran        bool
		stdout     string
		stderr     string
	}{
		{"help short", "port-number", []string{"-h"}, 0, false, "usage: midisend [-hv] <port-number>\n", ""},
		{"help long", "port-number", []string{"--help"}, 0, false, "usage: midisend [-hv] <port-number>\n", ""},
		{"version short", "port-number", []string{"-v"}, 0, false, "midisend 1.0.1\n", ""},
		{"version long", "port-number", []string{"--version"}, 0, false, "midisend 1.0.1\n", ""},
		{"unknown flag", "port-number", []string{"-x"}, 1, false, "", "usage: midisend [-hv] <port-number>\n"},
		{"unknown long flag", "port-number", []string{"--verbose", "1"}, 1, false, "", "usage: midisend [-hv] <port-number>\n"},
		{"missing positional", "port-number", nil, 1, false, "", "usage: midisend [-hv] <port-number>\n"},
		{"extra positional", "port-number", []string{"1", "2"}, 1, false, "", "usage: midisend [-hv] <port-number>\n"},
		{"flag after positional", "port-number", []string{"1", "-h"}, 1, false, "", "usage: midisend [-hv] <port-number>\n"},
		{"double dash", "port-number", []string{"--", "1"}, 0, true, "", ""},
		{"positional", "port-number", []string{"0x01"}, 0, true, "", ""},
		{"no positional wanted", "", nil, 0, true, "", ""},
		{"no positional given one", "", []string{"1"}, 1, false, "", "usage: midisend [-hv]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, stdout, stderr := newTestTool(tt.positional)
			ran := false

			code := tool.Main(tt.args, func(args []string) error {
				ran = true
				return nil
			})

			if code != tt.code {
				t.Errorf("exit code = %d, want %d", code, tt.code)
			}
			if ran != tt.ran {
				t.Errorf("ran = %v, want %v", ran, tt.ran)
			}
			if !strings.HasPrefix(stdout.String(), tt.stdout) {
				t.Errorf("stdout = %q, want prefix %q", stdout.String(), tt.stdout)
			}
			if stderr.String() != tt.stderr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.stderr)
			}
		})
	}
}

func TestToolMainPassesPositional(t *testing.T) {
	tool, _, _ := newTestTool("port-number")
	var got []string
	tool.Main([]string{"7"}, func(args []string) error {
		got = args
		return nil
	})
	if len(got) != 1 || got[0] != "7" {
		t.Errorf("args = %q, want [7]", got)
	}
}

func TestToolMainRuntimeError(t *testing.T) {
	tool, _, stderr := newTestTool("port-number")

	code := tool.Main([]string{"1"}, func(args []string) error {
		return errors.New("can't open MIDI out port 1")
	})

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if got, want := stderr.String(), "midisend: can't open MIDI out port 1\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestToolMainRunUsageError(t *testing.T) {
	tool, _, stderr := newTestTool("port-number")

	code := tool.Main([]string{"1"}, func(args []string) error {
		return &UsageError{Msg: "bad"}
	})

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if got, want := stderr.String(), "usage: midisend [-hv] <port-number>\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestFormatter(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("midirecv", &buf)

	log.Error("Invalid port number: 1x")
	log.WithField("port", 2).Warn("queue full")
	log.Debug("hidden")

	want := "midirecv: Invalid port number: 1x\nmidirecv: queue full port=2\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestToolMainLogsAtErrorLevel(t *testing.T) {
	tool, _, _ := newTestTool("port-number")
	log, hook := test.NewNullLogger()
	tool.Log = log

	tool.Main([]string{"1"}, func(args []string) error {
		return errors.New("boom")
	})

	if len(hook.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(hook.Entries))
	}
	if e := hook.LastEntry(); e.Level != logrus.ErrorLevel || e.Message != "boom" {
		t.Errorf("entry = %v %q", e.Level, e.Message)
	}
}

func TestPortNumber(t *testing.T) {
	if n, err := PortNumber("0x02"); err != nil || n != 2 {
		t.Errorf("PortNumber(0x02) = %d, %v", n, err)
	}

	_, err := PortNumber("1x")
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "Invalid port number: 1x"; got != want {
		t.Errorf("err = %q, want %q", got, want)
	}
}
