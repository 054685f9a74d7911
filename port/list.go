// Package port moves MIDI messages between driver ports and text streams.
package port

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gitlab.com/gomidi/midi"
)

// Entry is one port as seen at enumeration time.
type Entry struct {
	Number int
	Name   string
}

// Listing holds the in and out ports of a driver.
type Listing struct {
	Ins  []Entry
	Outs []Entry
}

// List queries the driver for its current ports. Nothing is cached:
// numbers are only stable within one run of the driver.
func List(drv midi.Driver) (*Listing, error) {
	ins, err := drv.Ins()
	if err != nil {
		return nil, err
	}

	outs, err := drv.Outs()
	if err != nil {
		return nil, err
	}

	l := &Listing{
		Ins:  make([]Entry, 0, len(ins)),
		Outs: make([]Entry, 0, len(outs)),
	}

	for _, in := range ins {
		l.Ins = append(l.Ins, Entry{Number: in.Number(), Name: in.String()})
	}

	for _, out := range outs {
		l.Outs = append(l.Outs, Entry{Number: out.Number(), Name: out.String()})
	}

	return l, nil
}

// WriteText writes the listing as
//
//	# MIDI IN
//	0	<name>
//
//	# MIDI OUT
//	0	<name>
func (l *Listing) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "# MIDI IN"); err != nil {
		return err
	}
	if err := writeEntries(w, l.Ins); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\n# MIDI OUT"); err != nil {
		return err
	}
	return writeEntries(w, l.Outs)
}

func writeEntries(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", e.Number, e.Name); err != nil {
			return err
		}
	}
	return nil
}

type jsonListing struct {
	In  map[int]string `json:"in"`
	Out map[int]string `json:"out"`
}

func toMap(entries []Entry) map[int]string {
	m := make(map[int]string, len(entries))
	for _, e := range entries {
		m[e.Number] = e.Name
	}
	return m
}

func fromMap(m map[int]string) []Entry {
	entries := make([]Entry, 0, len(m))
	for n, name := range m {
		entries = append(entries, Entry{Number: n, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Number < entries[j].Number
	})
	return entries
}

// WriteJSON writes the listing as {"in":{"0":"<name>"},"out":{...}}.
func (l *Listing) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(jsonListing{In: toMap(l.Ins), Out: toMap(l.Outs)})
}

// ReadJSON parses the output of WriteJSON.
func ReadJSON(r io.Reader) (*Listing, error) {
	var jl jsonListing
	if err := json.NewDecoder(r).Decode(&jl); err != nil {
		return nil, err
	}
	return &Listing{Ins: fromMap(jl.In), Outs: fromMap(jl.Out)}, nil
}
