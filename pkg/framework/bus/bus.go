// Package bus provides audio bus configuration for patch processors.
package bus

// MediaType represents the kind of data a bus carries.
type MediaType int32

const (
	// MediaTypeAudio represents an audio bus.
	MediaTypeAudio MediaType = 0
	// MediaTypeEvent represents an event/MIDI bus.
	MediaTypeEvent MediaType = 1
)

// Direction represents the bus direction.
type Direction int32

const (
	// DirectionInput represents an input bus.
	DirectionInput Direction = 0
	// DirectionOutput represents an output bus.
	DirectionOutput Direction = 1
)

// Info describes one bus.
type Info struct {
	MediaType    MediaType
	Direction    Direction
	ChannelCount int32
	Name         string
	IsActive     bool
}

// Configuration manages a processor's audio and event buses.
type Configuration struct {
	audioBuses []Info
	eventBuses []Info
}

// NewStereoConfiguration creates a standard stereo I/O configuration.
func NewStereoConfiguration() *Configuration {
	return &Configuration{
		audioBuses: []Info{
			{MediaType: MediaTypeAudio, Direction: DirectionInput, ChannelCount: 2, Name: "Stereo In", IsActive: true},
			{MediaType: MediaTypeAudio, Direction: DirectionOutput, ChannelCount: 2, Name: "Stereo Out", IsActive: true},
		},
	}
}

// GetBusCount returns the number of buses for a media type and direction.
func (c *Configuration) GetBusCount(mediaType MediaType, direction Direction) int32 {
	count := int32(0)
	for _, b := range c.buses(mediaType) {
		if b.Direction == direction {
			count++
		}
	}
	return count
}

// GetBusInfo returns the index-th bus of the given media type and direction,
// or nil.
func (c *Configuration) GetBusInfo(mediaType MediaType, direction Direction, index int32) *Info {
	buses := c.buses(mediaType)
	busIndex := int32(0)
	for i := range buses {
		if buses[i].Direction == direction {
			if busIndex == index {
				return &buses[i]
			}
			busIndex++
		}
	}
	return nil
}

// ChannelCount sums the channels of all audio buses in a direction.
func (c *Configuration) ChannelCount(direction Direction) int {
	total := 0
	for _, b := range c.audioBuses {
		if b.Direction == direction {
			total += int(b.ChannelCount)
		}
	}
	return total
}

// AddEventBus adds an event bus (MIDI I/O).
func (c *Configuration) AddEventBus(direction Direction, name string) {
	c.eventBuses = append(c.eventBuses, Info{
		MediaType:    MediaTypeEvent,
		Direction:    direction,
		ChannelCount: 1,
		Name:         name,
		IsActive:     true,
	})
}

func (c *Configuration) buses(mediaType MediaType) []Info {
	if mediaType == MediaTypeEvent {
		return c.eventBuses
	}
	return c.audioBuses
}
