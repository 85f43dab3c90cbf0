// Package plugin binds a generated DSP patch to the host framework: it
// exposes the patch's parameters as host parameters, forwards audio blocks
// into the engine, and builds the editor over the resulting layout.
package plugin

import (
	"io"

	"github.com/rnbogo/rnbogo/pkg/framework/bus"
	"github.com/rnbogo/rnbogo/pkg/framework/param"
	fwplugin "github.com/rnbogo/rnbogo/pkg/framework/plugin"
	"github.com/rnbogo/rnbogo/pkg/framework/process"
	"github.com/rnbogo/rnbogo/pkg/framework/state"
	"github.com/rnbogo/rnbogo/pkg/midi"
	"github.com/rnbogo/rnbogo/pkg/patch"
	"github.com/rnbogo/rnbogo/pkg/ui"
)

// PatchProcessor adapts a patch.Engine to the host Processor contract.
//
// Construction enumerates the engine's parameter table once and builds the
// host parameter layout from it; the descriptor count equals the engine's
// parameter count and is never resized. Parameter values flow both ways on
// every block: host-side changes are pushed into the engine before
// processing, and engine-side movement is mirrored back afterwards.
type PatchProcessor struct {
	info   fwplugin.Info
	engine patch.Engine
	events patch.EventReceiver // nil when the engine ignores events

	layout *param.Layout
	params *param.Registry
	buses  *bus.Configuration
	state  *state.Manager

	// EditorDefaults sets the drag sensitivity editors use for parameters
	// without step metadata. Adjust before the first CreateEditor call.
	EditorDefaults ui.ControlDefaults

	sampleRate float64
	blockSize  int32

	// engine-facing channel views, re-pointed at host buffers each block
	engineIn  [][]float32
	engineOut [][]float32

	// plain values last pushed to the engine, for change detection in
	// both directions
	lastParamVals []float64
}

var _ fwplugin.Processor = (*PatchProcessor)(nil)
var _ fwplugin.EditorHost = (*PatchProcessor)(nil)

// NewPatchProcessor builds the adapter for an engine. The engine's metadata
// table is read here, once; it is trusted to be well-formed.
func NewPatchProcessor(info fwplugin.Info, engine patch.Engine) *PatchProcessor {
	p := &PatchProcessor{
		info:           info,
		engine:         engine,
		buses:          bus.FromEngine(engine),
		EditorDefaults: ui.DefaultControlDefaults(),
	}
	p.events, _ = engine.(patch.EventReceiver)
	p.layout, p.params = param.LayoutFromEngine(engine)
	p.state = state.NewManager(p.params)
	return p
}

// Info returns the plugin metadata.
func (p *PatchProcessor) Info() fwplugin.Info {
	return p.info
}

// Engine returns the wrapped engine.
func (p *PatchProcessor) Engine() patch.Engine {
	return p.engine
}

// Layout returns the parameter layout built at construction.
func (p *PatchProcessor) Layout() *param.Layout {
	return p.layout
}

// GetParameters implements fwplugin.Processor.
func (p *PatchProcessor) GetParameters() *param.Registry {
	return p.params
}

// GetBuses implements fwplugin.Processor.
func (p *PatchProcessor) GetBuses() *bus.Configuration {
	return p.buses
}

// Initialize prepares the engine and allocates everything the audio path
// needs, so ProcessBlock itself stays allocation-free.
func (p *PatchProcessor) Initialize(sampleRate float64, maxBlockSize int32) error {
	p.sampleRate = sampleRate
	p.blockSize = maxBlockSize

	p.engine.Prepare(sampleRate, int(maxBlockSize))

	p.engineIn = make([][]float32, p.engine.NumInputChannels())
	p.engineOut = make([][]float32, p.engine.NumOutputChannels())

	n := p.layout.Count()
	p.lastParamVals = make([]float64, n)
	for i, d := range p.layout.Descriptors() {
		plain := d.Value.GetPlainValue()
		p.engine.SetParameterValue(i, plain)
		p.lastParamVals[i] = plain
	}
	return nil
}

// ProcessBlock renders one block on the host's real-time audio thread.
// Sequence per invocation: push host parameter changes into the engine,
// deliver pending MIDI events, run the engine over the host buffers, then
// mirror engine-side parameter movement back into the host parameters.
func (p *PatchProcessor) ProcessBlock(ctx *process.Context, events *midi.Buffer) {
	frames := ctx.NumSamples()
	descs := p.layout.Descriptors()

	for i, d := range descs {
		plain := d.Value.GetPlainValue()
		if plain != p.lastParamVals[i] {
			p.engine.SetParameterValue(i, plain)
			p.lastParamVals[i] = plain
		}
	}

	if p.events != nil && events != nil {
		for _, e := range events.Events() {
			switch e.Type {
			case midi.EventTypeNoteOn:
				p.events.NoteOn(e.Channel, e.Data1, e.Data2, e.SampleOffset)
			case midi.EventTypeNoteOff:
				p.events.NoteOff(e.Channel, e.Data1, e.Data2, e.SampleOffset)
			case midi.EventTypeControlChange:
				p.events.ControlChange(e.Channel, e.Data1, e.Data2, e.SampleOffset)
			}
		}
	}

	// The engine views alias the host buffers directly; missing input
	// channels are passed as nil and engines treat them as silence.
	for ch := range p.engineIn {
		if ch < len(ctx.Input) {
			p.engineIn[ch] = ctx.Input[ch][:frames]
		} else {
			p.engineIn[ch] = nil
		}
	}
	for ch := range p.engineOut {
		p.engineOut[ch] = ctx.Output[ch][:frames]
	}

	p.engine.Process(p.engineIn, p.engineOut, frames)

	for i, d := range descs {
		plain := p.engine.ParameterValue(i)
		if plain != p.lastParamVals[i] {
			d.Value.SetPlainValue(plain)
			p.lastParamVals[i] = plain
		}
	}
}

// SetActive implements fwplugin.Processor.
func (p *PatchProcessor) SetActive(active bool) error {
	return nil
}

// GetLatencySamples implements fwplugin.Processor; patches report none.
func (p *PatchProcessor) GetLatencySamples() int32 {
	return 0
}

// GetTailSamples implements fwplugin.Processor.
func (p *PatchProcessor) GetTailSamples() int32 {
	return 0
}

// HasEditor implements fwplugin.EditorHost.
func (p *PatchProcessor) HasEditor() bool {
	return true
}

// CreateEditor builds a fresh editor over the current layout. Each call
// returns an independent instance; editors never outlive their own Close and
// never touch the layout itself.
func (p *PatchProcessor) CreateEditor() fwplugin.Editor {
	return ui.NewEditor(p.layout, p.EditorDefaults)
}

// SaveState writes the parameter values through the state manager.
func (p *PatchProcessor) SaveState(w io.Writer) error {
	return p.state.Save(w)
}

// LoadState restores parameter values written by SaveState.
func (p *PatchProcessor) LoadState(r io.Reader) error {
	return p.state.Load(r)
}
