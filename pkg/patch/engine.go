// Package patch defines the boundary to a generated DSP engine.
//
// A generated engine is the native output of a visual-patching compiler
// (RNBO-style export). This layer treats it as opaque: it only reads the
// engine's static parameter metadata at construction time and drives its
// block-processing call per audio block. Everything else - graph execution,
// parameter interpolation, voice handling - is the engine's business.
package patch

// ParameterInfo describes one exported patch parameter. The table of
// ParameterInfo values is fixed when the patch is compiled; engines must
// return the same metadata for the lifetime of the instance.
type ParameterInfo struct {
	Index       int     // position in the patch's parameter table
	ID          string  // stable identifier from the patch source (e.g. "gain")
	DisplayName string  // human-readable name
	Min         float64 // plain-value range
	Max         float64
	Steps       int    // number of discrete steps, 0 = continuous
	EnumValues  bool   // values are an enumeration (Steps labels)
	Unit        string // display unit, may be empty
	Default     float64
}

// Engine is the call surface a generated patch exposes to its host adapter.
//
// Metadata accessors (channel counts, parameter count, ParameterInfo) must be
// constant and callable before Prepare. Process and the parameter value
// accessors are called on the host's real-time audio thread and must not
// allocate, lock, or block.
//
// Engine metadata is trusted: it comes from a code generator, and a malformed
// table (Max < Min, out-of-range index) is a precondition violation, not a
// runtime error this layer detects.
type Engine interface {
	// NumInputChannels reports the patch's input channel count.
	NumInputChannels() int

	// NumOutputChannels reports the patch's output channel count.
	NumOutputChannels() int

	// NumParameters reports the number of exported parameters.
	NumParameters() int

	// ParameterInfo returns the metadata for the parameter at index.
	// Index must be in [0, NumParameters).
	ParameterInfo(index int) ParameterInfo

	// Prepare fixes the sample rate and maximum block size. Called before
	// the first Process and again whenever the host reconfigures.
	Prepare(sampleRate float64, maxBlockSize int)

	// Process renders one block. inputs and outputs hold one slice per
	// channel; frames is the number of samples valid in each. Buffer
	// shapes are fixed between Prepare calls.
	Process(inputs, outputs [][]float32, frames int)

	// SetParameterValue pushes a plain (denormalized) value into the
	// engine. The engine applies its own smoothing.
	SetParameterValue(index int, plain float64)

	// ParameterValue reads the engine's current plain value. Engines may
	// move parameters themselves (internal modulation, preset recall);
	// hosts poll this after each block to mirror such changes.
	ParameterValue(index int) float64
}

// EventReceiver is implemented by engines whose patch consumes MIDI-style
// events. Hosts discover it by type assertion once at prepare time.
type EventReceiver interface {
	// NoteOn delivers a note-on at the given sample offset within the
	// current block.
	NoteOn(channel, note, velocity uint8, sampleOffset int32)

	// NoteOff delivers a note-off.
	NoteOff(channel, note, velocity uint8, sampleOffset int32)

	// ControlChange delivers a controller change.
	ControlChange(channel, controller, value uint8, sampleOffset int32)
}
