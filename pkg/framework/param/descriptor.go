package param

import (
	"github.com/rnbogo/rnbogo/pkg/patch"
)

// Identifier namespace for patch parameters. Exported patch parameters live
// under a single fixed namespace; the table is compile-time constant and
// never mutated.
const (
	idNamespace = "main"
	idSeparator = ":"
)

// Identifier returns the namespaced host identifier for a patch parameter ID.
func Identifier(patchID string) string {
	return idNamespace + idSeparator + patchID
}

// Descriptor pairs one generated-patch parameter with the live host
// parameter built for it. The host Parameter alone does not retain the
// step-count and enum semantics the UI later needs for increment
// calculation, so the descriptor keeps the original metadata alongside it.
// Descriptors are immutable after layout construction.
type Descriptor struct {
	Index      int    // patch parameter table index
	Identifier string // namespaced host identifier, unique within a layout
	Desc       string // display description
	Min        float64
	Max        float64
	Steps      int  // 0 = continuous
	EnumValues bool // values are an enumeration
	Value      *Parameter
}

// Layout is the ordered set of descriptors for one patch instance, one per
// engine parameter, in engine index order. It is built once at processor
// construction and never resized.
type Layout struct {
	descriptors []*Descriptor
}

// LayoutFromEngine enumerates the engine's parameter table and builds the
// host parameter layout: one Parameter and one Descriptor per entry, in
// index order, registered into a fresh Registry in the same order.
//
// The metadata table is trusted (it comes from the patch compiler); no
// validation is performed here.
func LayoutFromEngine(e patch.Engine) (*Layout, *Registry) {
	n := e.NumParameters()
	layout := &Layout{descriptors: make([]*Descriptor, 0, n)}
	registry := NewRegistry()

	for i := 0; i < n; i++ {
		info := e.ParameterInfo(i)

		b := New(uint32(i), info.DisplayName).
			Range(info.Min, info.Max).
			Default(info.Default).
			Unit(info.Unit).
			Steps(int32(info.Steps))
		if info.EnumValues {
			b.Flags(CanAutomate | IsList)
		}
		p := b.Build()

		registry.Add(p)
		layout.descriptors = append(layout.descriptors, &Descriptor{
			Index:      i,
			Identifier: Identifier(info.ID),
			Desc:       info.DisplayName,
			Min:        info.Min,
			Max:        info.Max,
			Steps:      info.Steps,
			EnumValues: info.EnumValues,
			Value:      p,
		})
	}

	return layout, registry
}

// Count returns the number of descriptors.
func (l *Layout) Count() int {
	return len(l.descriptors)
}

// At returns the descriptor at the given patch index, or nil.
func (l *Layout) At(index int) *Descriptor {
	if index < 0 || index >= len(l.descriptors) {
		return nil
	}
	return l.descriptors[index]
}

// Descriptors returns the descriptors in patch index order. Callers must not
// modify the returned slice.
func (l *Layout) Descriptors() []*Descriptor {
	return l.descriptors
}
