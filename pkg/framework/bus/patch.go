package bus

import (
	"fmt"

	"github.com/rnbogo/rnbogo/pkg/patch"
)

// FromEngine derives a bus configuration from a patch's channel counts: one
// mono main bus per channel, named "In 1".."In n" / "Out 1".."Out n", the
// layout modular hosts expect. Engines that also consume events get a MIDI
// input bus.
func FromEngine(e patch.Engine) *Configuration {
	c := &Configuration{}

	for i := 0; i < e.NumInputChannels(); i++ {
		c.audioBuses = append(c.audioBuses, Info{
			MediaType:    MediaTypeAudio,
			Direction:    DirectionInput,
			ChannelCount: 1,
			Name:         InputBusName(i),
			IsActive:     true,
		})
	}
	for i := 0; i < e.NumOutputChannels(); i++ {
		c.audioBuses = append(c.audioBuses, Info{
			MediaType:    MediaTypeAudio,
			Direction:    DirectionOutput,
			ChannelCount: 1,
			Name:         OutputBusName(i),
			IsActive:     true,
		})
	}
	if _, ok := e.(patch.EventReceiver); ok {
		c.AddEventBus(DirectionInput, "MIDI In")
	}
	return c
}

// InputBusName returns the display name for an input channel index.
func InputBusName(channelIndex int) string {
	return fmt.Sprintf("In %d", channelIndex+1)
}

// OutputBusName returns the display name for an output channel index.
func OutputBusName(channelIndex int) string {
	return fmt.Sprintf("Out %d", channelIndex+1)
}
