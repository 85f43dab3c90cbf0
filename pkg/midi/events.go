// Package midi provides the MIDI event buffer handed to processors per
// audio block.
package midi

import (
	"fmt"
)

// EventType identifies a MIDI event kind.
type EventType uint8

// Event types.
const (
	EventTypeNoteOff EventType = iota
	EventTypeNoteOn
	EventTypeControlChange
	EventTypeProgramChange
	EventTypeChannelPressure
	EventTypePitchBend
)

// Event is one timestamped MIDI event. It is a plain value so buffers of
// events stay allocation-free on the audio thread.
type Event struct {
	Type         EventType
	Channel      uint8
	Data1        uint8 // note number / controller / program
	Data2        uint8 // velocity / controller value
	SampleOffset int32 // position within the current block
}

func (e Event) String() string {
	switch e.Type {
	case EventTypeNoteOn:
		return fmt.Sprintf("NoteOn{ch:%d, note:%d, vel:%d, offset:%d}", e.Channel, e.Data1, e.Data2, e.SampleOffset)
	case EventTypeNoteOff:
		return fmt.Sprintf("NoteOff{ch:%d, note:%d, vel:%d, offset:%d}", e.Channel, e.Data1, e.Data2, e.SampleOffset)
	case EventTypeControlChange:
		return fmt.Sprintf("CC{ch:%d, cc:%d, val:%d, offset:%d}", e.Channel, e.Data1, e.Data2, e.SampleOffset)
	case EventTypePitchBend:
		return fmt.Sprintf("PitchBend{ch:%d, value:%d, offset:%d}", e.Channel, int(e.Data2)<<7|int(e.Data1), e.SampleOffset)
	default:
		return fmt.Sprintf("Event{type:%d, ch:%d, offset:%d}", e.Type, e.Channel, e.SampleOffset)
	}
}

// Decode parses a raw MIDI message (as delivered by a MIDI driver) into an
// Event at the given sample offset. It reports false for messages this layer
// does not forward (sysex, realtime).
func Decode(raw []byte, sampleOffset int32) (Event, bool) {
	if len(raw) < 2 || raw[0] < 0x80 || raw[0] >= 0xF0 {
		return Event{}, false
	}

	status := raw[0] & 0xF0
	channel := raw[0] & 0x0F
	e := Event{Channel: channel, Data1: raw[1] & 0x7F, SampleOffset: sampleOffset}
	if len(raw) > 2 {
		e.Data2 = raw[2] & 0x7F
	}

	switch status {
	case 0x80:
		e.Type = EventTypeNoteOff
	case 0x90:
		if e.Data2 == 0 {
			// running-status note-off
			e.Type = EventTypeNoteOff
		} else {
			e.Type = EventTypeNoteOn
		}
	case 0xB0:
		e.Type = EventTypeControlChange
	case 0xC0:
		e.Type = EventTypeProgramChange
	case 0xD0:
		e.Type = EventTypeChannelPressure
	case 0xE0:
		e.Type = EventTypePitchBend
	default:
		return Event{}, false
	}
	return e, true
}
