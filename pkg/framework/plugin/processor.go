// Package plugin defines the host-framework surface a patch processor
// implements: lifecycle hooks, parameter supply, bus declaration, and the
// editor factory.
package plugin

import (
	"github.com/rnbogo/rnbogo/pkg/framework/bus"
	"github.com/rnbogo/rnbogo/pkg/framework/param"
	"github.com/rnbogo/rnbogo/pkg/framework/process"
	"github.com/rnbogo/rnbogo/pkg/midi"
)

// Processor is the lifecycle and processing contract a host drives.
//
// Initialize corresponds to the host's prepareToPlay: it fixes the sample
// rate and maximum block size, and every subsequent ProcessBlock uses buffers
// of at most that size until the next Initialize. ProcessBlock runs on the
// host's real-time audio thread and must not allocate, lock, or block.
type Processor interface {
	// Initialize prepares the processor for playback.
	Initialize(sampleRate float64, maxBlockSize int32) error

	// ProcessBlock renders one audio block, consuming any MIDI events
	// that fall inside it. events may be nil.
	ProcessBlock(ctx *process.Context, events *midi.Buffer)

	// GetParameters returns the processor's parameter registry.
	GetParameters() *param.Registry

	// GetBuses returns the processor's bus configuration.
	GetBuses() *bus.Configuration

	// SetActive is called when the host starts or stops the processor.
	SetActive(active bool) error

	// GetLatencySamples reports processing latency.
	GetLatencySamples() int32

	// GetTailSamples reports the processing tail length.
	GetTailSamples() int32
}

// View is the object an editor hands to the host UI container. Concrete view
// types live in the ui package; the host only needs ordered access to them.
type View interface {
	// Name identifies the view for the container's paging UI.
	Name() string
}

// Editor is a UI surface the host may display for a processor. Editors have
// their own lifetime: the host may create and destroy several of them while
// the processor persists.
type Editor interface {
	// Views returns the editor's views in the order they were added.
	Views() []View

	// ActiveView returns the currently displayed view, or nil.
	ActiveView() View

	// SetView makes the index-th view active.
	SetView(index int)

	// Close releases the editor. The underlying processor is unaffected.
	Close()
}

// EditorHost is implemented by processors that can build an editor.
type EditorHost interface {
	// HasEditor reports whether CreateEditor returns a usable editor.
	HasEditor() bool

	// CreateEditor builds a new editor over the processor's current
	// parameters. Each call returns an independent instance.
	CreateEditor() Editor
}
