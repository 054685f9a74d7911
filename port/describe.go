package port

import (
	"bytes"

	"gitlab.com/gomidi/midi/midimessage/realtime"
	"gitlab.com/gomidi/midi/midireader"
	"gitlab.com/gomidi/midiutil/message"
)

// Describe returns a human readable form of the message b.
// Undefined system messages and bytes the midi reader does not
// understand are shown as hex.
func Describe(b []byte) string {
	if len(b) == 0 || undefined(message.CategoryOf(b[0])) {
		return message.Message(b).String()
	}

	var rt realtime.Message

	msg, err := midireader.New(bytes.NewReader(b), func(m realtime.Message) {
		rt = m
	}).Read()

	switch {
	case rt != nil:
		return rt.String()
	case err != nil || msg == nil:
		return message.Message(b).String()
	}

	return msg.String()
}

func undefined(c message.Category) bool {
	switch c {
	case message.Undefined1, message.Undefined2, message.Undefined3, message.Undefined4:
		return true
	}
	return false
}
