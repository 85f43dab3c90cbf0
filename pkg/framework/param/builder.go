package param

import (
	"fmt"
	"strings"
)

// Builder provides a fluent API for creating parameters.
type Builder struct {
	param *Parameter
}

// New creates a parameter builder with a 0-1 range and automation enabled.
func New(id uint32, name string) *Builder {
	return &Builder{
		param: &Parameter{
			ID:    id,
			Name:  name,
			Min:   0,
			Max:   1,
			Flags: CanAutomate,
		},
	}
}

// Range sets the plain-value range.
func (b *Builder) Range(min, max float64) *Builder {
	b.param.Min = min
	b.param.Max = max
	return b
}

// Default sets the default value in plain units.
func (b *Builder) Default(value float64) *Builder {
	if b.param.Max > b.param.Min {
		b.param.DefaultValue = (value - b.param.Min) / (b.param.Max - b.param.Min)
	}
	return b
}

// Unit sets the display unit.
func (b *Builder) Unit(unit string) *Builder {
	b.param.Unit = unit
	return b
}

// Steps sets the number of discrete values (0 = continuous).
func (b *Builder) Steps(count int32) *Builder {
	b.param.StepCount = count
	return b
}

// Flags replaces the parameter flags.
func (b *Builder) Flags(flags uint32) *Builder {
	b.param.Flags = flags
	return b
}

// ReadOnly marks the parameter as read-only and not automatable.
func (b *Builder) ReadOnly() *Builder {
	b.param.Flags |= IsReadOnly
	b.param.Flags &^= CanAutomate
	return b
}

// Hidden marks the parameter as hidden from generic UIs.
func (b *Builder) Hidden() *Builder {
	b.param.Flags |= IsHidden
	return b
}

// Formatter sets custom display formatting and parsing.
func (b *Builder) Formatter(format func(float64) string, parse func(string) (float64, error)) *Builder {
	b.param.formatFunc = format
	b.param.parseFunc = parse
	return b
}

// Build returns the configured parameter initialized to its default.
func (b *Builder) Build() *Parameter {
	b.param.SetValue(b.param.DefaultValue)
	return b.param
}

// Choice creates a builder for an enumerated parameter whose values map onto
// the given names in order.
func Choice(id uint32, name string, names []string) *Builder {
	formatter := func(value float64) string {
		index := int(value + 0.5)
		if index >= 0 && index < len(names) {
			return names[index]
		}
		return "Unknown"
	}
	parser := func(str string) (float64, error) {
		for i, n := range names {
			if strings.EqualFold(strings.TrimSpace(str), n) {
				return float64(i), nil
			}
		}
		return 0, fmt.Errorf("unknown option: %s", str)
	}

	maxVal := 0.0
	if len(names) > 1 {
		maxVal = float64(len(names) - 1)
	}
	return New(id, name).
		Range(0, maxVal).
		Steps(int32(len(names))).
		Flags(CanAutomate|IsList).
		Formatter(formatter, parser)
}
