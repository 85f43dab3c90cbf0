package midi

// Buffer is a fixed-capacity event list reused across blocks. Events are
// kept ordered by sample offset; Add uses an in-place insertion so the
// buffer never allocates after construction.
//
// A Buffer is not synchronized. The host fills it before handing it to
// ProcessBlock and clears it after; when the producer is another goroutine
// (a MIDI driver callback), it goes through a queue that drains into the
// buffer at block boundaries.
type Buffer struct {
	events []Event
}

// NewBuffer creates a buffer that holds up to capacity events per block.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{events: make([]Event, 0, capacity)}
}

// Add inserts an event in sample-offset order. It reports false and drops
// the event when the buffer is full.
func (b *Buffer) Add(e Event) bool {
	if len(b.events) == cap(b.events) {
		return false
	}
	b.events = append(b.events, e)
	// keep ordered; events usually arrive in order so this is one compare
	for i := len(b.events) - 1; i > 0 && b.events[i].SampleOffset < b.events[i-1].SampleOffset; i-- {
		b.events[i], b.events[i-1] = b.events[i-1], b.events[i]
	}
	return true
}

// Events returns the buffered events in sample-offset order. The slice is
// valid until the next Add or Clear.
func (b *Buffer) Events() []Event {
	return b.events
}

// Len returns the number of buffered events.
func (b *Buffer) Len() int {
	return len(b.events)
}

// Clear empties the buffer, retaining capacity.
func (b *Buffer) Clear() {
	b.events = b.events[:0]
}
