// Package ui builds the generic parameter-control surface a host container
// displays for a patch processor. It only observes descriptors; parameter
// metadata is never mutated from here.
package ui

import (
	"github.com/rnbogo/rnbogo/pkg/framework/param"
)

// ControlDefaults are the drag increments used for parameters whose metadata
// implies no step size of its own (continuous or two-step parameters).
type ControlDefaults struct {
	Coarse float64
	Fine   float64
}

// DefaultControlDefaults returns the standard sensitivity: whole units for
// coarse drags, hundredths for fine ones.
func DefaultControlDefaults() ControlDefaults {
	return ControlDefaults{Coarse: 1.0, Fine: 0.01}
}

// Control is one interactive widget bound to a live parameter. The coarse
// and fine increments drive drag/scroll sensitivity only; they do not limit
// the parameter's stored resolution.
type Control struct {
	desc   *param.Descriptor
	coarse float64
	fine   float64
}

// NewControl builds a control for a descriptor, deriving increments from its
// step and enum metadata:
//
//	enum values     -> coarse = fine = 1
//	steps > 2       -> coarse = fine = range / (steps - 1)
//	otherwise       -> the supplied defaults
func NewControl(desc *param.Descriptor, defaults ControlDefaults) *Control {
	coarse := defaults.Coarse
	fine := defaults.Fine
	if desc.EnumValues {
		coarse = 1
		fine = coarse
	} else if desc.Steps > 2 {
		coarse = (desc.Max - desc.Min) / float64(desc.Steps-1)
		fine = coarse
	}
	return &Control{desc: desc, coarse: coarse, fine: fine}
}

// Descriptor returns the bound descriptor.
func (c *Control) Descriptor() *param.Descriptor {
	return c.desc
}

// Parameter returns the live host parameter.
func (c *Control) Parameter() *param.Parameter {
	return c.desc.Value
}

// CoarseIncrement returns the coarse drag increment in plain units.
func (c *Control) CoarseIncrement() float64 {
	return c.coarse
}

// FineIncrement returns the fine drag increment in plain units.
func (c *Control) FineIncrement() float64 {
	return c.fine
}

// Adjust nudges the parameter by one increment in the given direction
// (+1/-1), clamped to the parameter range.
func (c *Control) Adjust(direction int, fine bool) {
	inc := c.coarse
	if fine {
		inc = c.fine
	}
	c.desc.Value.SetPlainValue(c.desc.Value.GetPlainValue() + float64(direction)*inc)
}

// Label returns the display text for the control: name plus formatted value.
func (c *Control) Label() string {
	p := c.desc.Value
	return p.Name + " " + p.FormatValue(p.GetValue())
}
