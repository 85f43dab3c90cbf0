package midi

import (
	"testing"
)

func TestBufferOrdering(t *testing.T) {
	b := NewBuffer(8)
	b.Add(Event{Type: EventTypeNoteOn, SampleOffset: 100})
	b.Add(Event{Type: EventTypeNoteOn, SampleOffset: 10})
	b.Add(Event{Type: EventTypeNoteOn, SampleOffset: 50})

	events := b.Events()
	if len(events) != 3 {
		t.Fatalf("Len = %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].SampleOffset < events[i-1].SampleOffset {
			t.Fatalf("events out of order: %v", events)
		}
	}
}

func TestBufferStableForEqualOffsets(t *testing.T) {
	b := NewBuffer(4)
	b.Add(Event{Type: EventTypeNoteOff, Data1: 60, SampleOffset: 0})
	b.Add(Event{Type: EventTypeNoteOn, Data1: 60, SampleOffset: 0})

	events := b.Events()
	if events[0].Type != EventTypeNoteOff || events[1].Type != EventTypeNoteOn {
		t.Error("equal offsets should keep insertion order")
	}
}

func TestBufferCapacity(t *testing.T) {
	b := NewBuffer(2)
	if !b.Add(Event{SampleOffset: 0}) || !b.Add(Event{SampleOffset: 1}) {
		t.Fatal("adds within capacity should succeed")
	}
	if b.Add(Event{SampleOffset: 2}) {
		t.Error("add past capacity should report false")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBufferClearRetainsCapacity(t *testing.T) {
	b := NewBuffer(4)
	b.Add(Event{SampleOffset: 3})
	b.Clear()

	if b.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", b.Len())
	}
	if !b.Add(Event{SampleOffset: 0}) {
		t.Error("Add after Clear should succeed")
	}
}
