// Package process provides the audio processing context handed to
// processors on each block.
package process

import (
	"github.com/rnbogo/rnbogo/pkg/framework/param"
)

// Context carries one block's buffers and parameter access. All buffers are
// pre-allocated; nothing here allocates on the audio thread.
type Context struct {
	Input      [][]float32
	Output     [][]float32
	SampleRate float64

	workBuffer []float32

	params *param.Registry
}

// NewContext creates a process context with pre-allocated work buffers.
func NewContext(maxBlockSize int, params *param.Registry) *Context {
	return &Context{
		workBuffer: make([]float32, maxBlockSize),
		params:     params,
	}
}

// Param returns a parameter's current normalized value (0-1).
func (c *Context) Param(id uint32) float64 {
	if p := c.params.Get(id); p != nil {
		return p.GetValue()
	}
	return 0
}

// ParamPlain returns a parameter's current plain value.
func (c *Context) ParamPlain(id uint32) float64 {
	if p := c.params.Get(id); p != nil {
		return p.GetPlainValue()
	}
	return 0
}

// NumSamples returns the number of samples in the current block.
func (c *Context) NumSamples() int {
	if len(c.Input) > 0 && len(c.Input[0]) > 0 {
		return len(c.Input[0])
	}
	if len(c.Output) > 0 && len(c.Output[0]) > 0 {
		return len(c.Output[0])
	}
	return 0
}

// NumInputChannels returns the number of input channels.
func (c *Context) NumInputChannels() int {
	return len(c.Input)
}

// NumOutputChannels returns the number of output channels.
func (c *Context) NumOutputChannels() int {
	return len(c.Output)
}

// WorkBuffer returns the pre-allocated scratch buffer sized to the current
// block.
func (c *Context) WorkBuffer() []float32 {
	return c.workBuffer[:c.NumSamples()]
}

// PassThrough copies input to output.
func (c *Context) PassThrough() {
	numChannels := c.NumInputChannels()
	if c.NumOutputChannels() < numChannels {
		numChannels = c.NumOutputChannels()
	}
	for ch := 0; ch < numChannels; ch++ {
		copy(c.Output[ch], c.Input[ch])
	}
}

// Clear zeros the output buffers.
func (c *Context) Clear() {
	for ch := range c.Output {
		for i := range c.Output[ch] {
			c.Output[ch][i] = 0
		}
	}
}
