package bus

import (
	"testing"

	"github.com/rnbogo/rnbogo/pkg/patch"
)

type stubEngine struct {
	inputs, outputs int
	wantsEvents     bool
}

func (e *stubEngine) NumInputChannels() int                        { return e.inputs }
func (e *stubEngine) NumOutputChannels() int                       { return e.outputs }
func (e *stubEngine) NumParameters() int                           { return 0 }
func (e *stubEngine) ParameterInfo(i int) patch.ParameterInfo      { return patch.ParameterInfo{} }
func (e *stubEngine) Prepare(sampleRate float64, maxBlockSize int) {}
func (e *stubEngine) Process(in, out [][]float32, frames int)      {}
func (e *stubEngine) SetParameterValue(i int, plain float64)       {}
func (e *stubEngine) ParameterValue(i int) float64                 { return 0 }

type eventStubEngine struct {
	stubEngine
}

func (e *eventStubEngine) NoteOn(channel, note, velocity uint8, sampleOffset int32)           {}
func (e *eventStubEngine) NoteOff(channel, note, velocity uint8, sampleOffset int32)          {}
func (e *eventStubEngine) ControlChange(channel, controller, value uint8, sampleOffset int32) {}

func TestFromEngine(t *testing.T) {
	config := FromEngine(&stubEngine{inputs: 2, outputs: 4})

	if got := config.GetBusCount(MediaTypeAudio, DirectionInput); got != 2 {
		t.Errorf("Expected 2 input buses, got %d", got)
	}
	if got := config.GetBusCount(MediaTypeAudio, DirectionOutput); got != 4 {
		t.Errorf("Expected 4 output buses, got %d", got)
	}

	// one mono bus per channel, numbered from 1
	in := config.GetBusInfo(MediaTypeAudio, DirectionInput, 0)
	if in.ChannelCount != 1 || in.Name != "In 1" {
		t.Errorf("first input bus = %d channels, name %q", in.ChannelCount, in.Name)
	}
	out := config.GetBusInfo(MediaTypeAudio, DirectionOutput, 3)
	if out.Name != "Out 4" {
		t.Errorf("last output bus name = %q, want Out 4", out.Name)
	}

	if got := config.GetBusCount(MediaTypeEvent, DirectionInput); got != 0 {
		t.Errorf("plain engine should get no event bus, got %d", got)
	}
}

func TestFromEngineWithEvents(t *testing.T) {
	config := FromEngine(&eventStubEngine{stubEngine{inputs: 0, outputs: 2}})

	if got := config.GetBusCount(MediaTypeEvent, DirectionInput); got != 1 {
		t.Errorf("event-consuming engine should get a MIDI bus, got %d", got)
	}
	if got := config.GetBusCount(MediaTypeAudio, DirectionInput); got != 0 {
		t.Errorf("zero-input engine should get no input buses, got %d", got)
	}
}
