// Package message classifies raw byte sequences as MIDI 1.0 messages.
//
// A line of bytes is either a fixed length channel or system message,
// a complete System Exclusive block, or invalid. There is no partial
// validity and no running status.
package message

import (
	"fmt"
	"strings"
)

// Category is the kind of message a status byte starts.
// Channel categories carry the status byte's high nibble with the
// channel bits cleared, system categories carry the whole byte.
type Category uint8

const (
	// channel messages
	NoteOff           Category = 0x80
	NoteOn            Category = 0x90
	PolyAftertouch    Category = 0xA0
	ControlChange     Category = 0xB0
	ProgramChange     Category = 0xC0
	ChannelAftertouch Category = 0xD0
	PitchWheel        Category = 0xE0

	// system messages
	SysEx           Category = 0xF0
	MTCQuarterFrame Category = 0xF1
	SongPosition    Category = 0xF2
	SongSelect      Category = 0xF3
	Undefined1      Category = 0xF4
	Undefined2      Category = 0xF5
	TuneRequest     Category = 0xF6
	EOX             Category = 0xF7
	TimingClock     Category = 0xF8
	Undefined3      Category = 0xF9
	Start           Category = 0xFA
	Continue        Category = 0xFB
	Stop            Category = 0xFC
	Undefined4      Category = 0xFD
	ActiveSense     Category = 0xFE
	SystemReset     Category = 0xFF
)

var categoryNames = map[Category]string{
	NoteOff:           "NOTE_OFF",
	NoteOn:            "NOTE_ON",
	PolyAftertouch:    "POLY_AFTERTOUCH",
	ControlChange:     "CONTROL_CHANGE",
	ProgramChange:     "PROGRAM_CHANGE",
	ChannelAftertouch: "CHANNEL_AFTERTOUCH",
	PitchWheel:        "PITCH_WHEEL",
	SysEx:             "SYSEX",
	MTCQuarterFrame:   "MTC_QUARTER_FRAME",
	SongPosition:      "SONG_POSITION",
	SongSelect:        "SONG_SELECT",
	Undefined1:        "UNDEFINED_1",
	Undefined2:        "UNDEFINED_2",
	TuneRequest:       "TUNE_REQUEST",
	EOX:               "EOX",
	TimingClock:       "TIMING_CLOCK",
	Undefined3:        "UNDEFINED_3",
	Start:             "START",
	Continue:          "CONTINUE",
	Stop:              "STOP",
	Undefined4:        "UNDEFINED_4",
	ActiveSense:       "ACTIVE_SENSE",
	SystemReset:       "SYSTEM_RESET",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(0x%02X)", uint8(c))
}

// IsStatus reports whether b has its high bit set.
func IsStatus(b byte) bool {
	return b&0x80 != 0
}

// IsData reports whether b has its high bit clear.
func IsData(b byte) bool {
	return !IsStatus(b)
}

// CategoryOf returns the category of the status byte b.
// The result is meaningless for data bytes.
func CategoryOf(b byte) Category {
	if b >= 0xF0 {
		return Category(b)
	}
	return Category(b & 0xF0)
}

// ExpectedLength returns the total length in bytes, status byte
// included, of a message of category c. It returns 0 for SysEx, whose
// length is governed by its framing instead.
func ExpectedLength(c Category) int {
	switch c {
	case NoteOff, NoteOn, PolyAftertouch, ControlChange, PitchWheel:
		return 3
	case ProgramChange, ChannelAftertouch:
		return 2
	case SysEx:
		return 0
	case MTCQuarterFrame, SongSelect:
		return 2
	case SongPosition:
		return 3
	default:
		return 1
	}
}

// Shape is the result of classifying a byte sequence.
type Shape int

const (
	Invalid Shape = iota
	// Fixed is a channel or system message whose length is fixed by its status byte.
	Fixed
	// Exclusive is a complete System Exclusive block, 0xF0 ... 0xF7.
	Exclusive
)

func (s Shape) String() string {
	switch s {
	case Fixed:
		return "fixed"
	case Exclusive:
		return "sysex"
	default:
		return "invalid"
	}
}

// Classify decides whether b is exactly one well formed MIDI message.
func Classify(b []byte) Shape {
	switch {
	case len(b) == 0:
		return Invalid
	case IsData(b[0]):
		return Invalid
	case Category(b[0]) == SysEx:
		if IsSysEx(b) {
			return Exclusive
		}
		return Invalid
	case len(b) != ExpectedLength(CategoryOf(b[0])):
		return Invalid
	case hasStatus(b[1:]):
		return Invalid
	}
	return Fixed
}

// Valid reports whether b is a single complete MIDI message.
func Valid(b []byte) bool {
	return Classify(b) != Invalid
}

// IsSysEx reports whether b is a complete System Exclusive block:
// 0xF0, any number of data bytes, 0xF7.
// Realtime bytes interleaved before the terminator are rejected.
func IsSysEx(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	if Category(b[0]) != SysEx || Category(b[len(b)-1]) != EOX {
		return false
	}
	return !hasStatus(b[1 : len(b)-1])
}

func hasStatus(b []byte) bool {
	for _, c := range b {
		if IsStatus(c) {
			return true
		}
	}
	return false
}

// Message is one MIDI message as raw bytes.
type Message []byte

// String formats m as space separated uppercase hex bytes, e.g. "0x90 0x40 0x7F".
func (m Message) String() string {
	var sb strings.Builder
	for i, b := range m {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "0x%02X", b)
	}
	return sb.String()
}
