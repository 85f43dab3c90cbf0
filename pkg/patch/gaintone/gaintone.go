// Package gaintone is a small hand-written stand-in for compiler-generated
// patch code. It implements patch.Engine with the three parameter shapes a
// generated patch can export (continuous, stepped, enumerated) so the adapter
// layer, the preview host, and the tests have a real engine to run against.
package gaintone

import (
	"math"

	"github.com/rnbogo/rnbogo/pkg/patch"
)

// Parameter table indices.
const (
	ParamGain = iota
	ParamTone
	ParamMode
	numParams
)

// Filter modes for ParamMode.
const (
	ModeBypass = iota
	ModeLowpass
	ModeHighpass
)

const (
	minGainDB = -24.0
	maxGainDB = 24.0
	toneSteps = 5
)

var paramTable = [numParams]patch.ParameterInfo{
	{Index: ParamGain, ID: "gain", DisplayName: "Gain", Min: minGainDB, Max: maxGainDB, Unit: "dB", Default: 0},
	{Index: ParamTone, ID: "tone", DisplayName: "Tone", Min: 0, Max: 100, Steps: toneSteps, Unit: "%", Default: 100},
	{Index: ParamMode, ID: "mode", DisplayName: "Mode", Min: 0, Max: 2, Steps: 3, EnumValues: true, Default: ModeBypass},
}

// Engine is a stereo gain + one-pole tone filter patch.
type Engine struct {
	sampleRate float64

	values [numParams]float64

	// one-pole filter state, one per channel
	z [2]float32

	// velocity-scaled level from the last note-on, 1.0 when idle
	velLevel float32
}

var _ patch.Engine = (*Engine)(nil)
var _ patch.EventReceiver = (*Engine)(nil)

// New creates the patch with every parameter at its default.
func New() *Engine {
	e := &Engine{velLevel: 1}
	for i, info := range paramTable {
		e.values[i] = info.Default
	}
	return e
}

func (e *Engine) NumInputChannels() int  { return 2 }
func (e *Engine) NumOutputChannels() int { return 2 }
func (e *Engine) NumParameters() int     { return numParams }

func (e *Engine) ParameterInfo(index int) patch.ParameterInfo {
	return paramTable[index]
}

// Prepare fixes the sample rate and clears filter state.
func (e *Engine) Prepare(sampleRate float64, maxBlockSize int) {
	e.sampleRate = sampleRate
	e.z[0] = 0
	e.z[1] = 0
}

func (e *Engine) SetParameterValue(index int, plain float64) {
	info := paramTable[index]
	if plain < info.Min {
		plain = info.Min
	} else if plain > info.Max {
		plain = info.Max
	}
	e.values[index] = plain
}

func (e *Engine) ParameterValue(index int) float64 {
	return e.values[index]
}

// Process renders one block in place-compatible fashion: inputs and outputs
// may alias. No allocation.
func (e *Engine) Process(inputs, outputs [][]float32, frames int) {
	amp := dbToLinear(float32(e.values[ParamGain])) * e.velLevel
	mode := int(e.values[ParamMode])

	// tone maps 0..100% onto a one-pole coefficient; at 100% the filter
	// is fully open and the signal passes unshaped
	coeff := float32(e.values[ParamTone]) / 100

	for ch := 0; ch < len(outputs); ch++ {
		var in []float32
		if ch < len(inputs) {
			in = inputs[ch]
		}
		out := outputs[ch]
		z := e.z[ch&1]
		for i := 0; i < frames; i++ {
			var x float32
			if in != nil {
				x = in[i]
			}
			switch mode {
			case ModeLowpass:
				z += coeff * (x - z)
				x = z
			case ModeHighpass:
				z += coeff * (x - z)
				x = x - z
			}
			out[i] = x * amp
		}
		e.z[ch&1] = z
	}
}

// NoteOn scales the output level by velocity.
func (e *Engine) NoteOn(channel, note, velocity uint8, sampleOffset int32) {
	e.velLevel = float32(velocity) / 127
}

// NoteOff restores the idle level.
func (e *Engine) NoteOff(channel, note, velocity uint8, sampleOffset int32) {
	e.velLevel = 1
}

// ControlChange maps the mod wheel onto the tone parameter. The moved value
// is visible through ParameterValue, so the host adapter mirrors it back into
// its own parameter objects after the block.
func (e *Engine) ControlChange(channel, controller, value uint8, sampleOffset int32) {
	if controller == 1 {
		e.values[ParamTone] = float64(value) / 127 * 100
	}
}

func dbToLinear(db float32) float32 {
	return float32(math.Pow(10, float64(db)/20))
}
