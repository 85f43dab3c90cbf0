package midi

import (
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want Event
		ok   bool
	}{
		{"NoteOn", []byte{0x90, 60, 100}, Event{Type: EventTypeNoteOn, Channel: 0, Data1: 60, Data2: 100}, true},
		{"NoteOnChannel3", []byte{0x93, 64, 1}, Event{Type: EventTypeNoteOn, Channel: 3, Data1: 64, Data2: 1}, true},
		{"NoteOff", []byte{0x80, 60, 0}, Event{Type: EventTypeNoteOff, Channel: 0, Data1: 60}, true},
		{"NoteOnZeroVelocityIsNoteOff", []byte{0x90, 60, 0}, Event{Type: EventTypeNoteOff, Channel: 0, Data1: 60}, true},
		{"ControlChange", []byte{0xB1, 1, 64}, Event{Type: EventTypeControlChange, Channel: 1, Data1: 1, Data2: 64}, true},
		{"ProgramChange", []byte{0xC0, 5}, Event{Type: EventTypeProgramChange, Channel: 0, Data1: 5}, true},
		{"PitchBend", []byte{0xE0, 0x00, 0x40}, Event{Type: EventTypePitchBend, Channel: 0, Data1: 0, Data2: 0x40}, true},
		{"Sysex", []byte{0xF0, 0x7E, 0xF7}, Event{}, false},
		{"TooShort", []byte{0x90}, Event{}, false},
		{"RunningData", []byte{0x40, 0x40}, Event{}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := Decode(test.raw, 0)
			if ok != test.ok {
				t.Fatalf("Decode ok = %v, want %v", ok, test.ok)
			}
			if ok && got != test.want {
				t.Errorf("Decode = %+v, want %+v", got, test.want)
			}
		})
	}
}

func TestDecodeKeepsOffset(t *testing.T) {
	e, ok := Decode([]byte{0x90, 60, 100}, 128)
	if !ok || e.SampleOffset != 128 {
		t.Errorf("SampleOffset = %d, want 128", e.SampleOffset)
	}
}
