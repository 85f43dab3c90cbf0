package ui

import (
	"github.com/rnbogo/rnbogo/pkg/framework/param"
	"github.com/rnbogo/rnbogo/pkg/framework/plugin"
)

// ParamView is a single scrollable view holding one control per parameter,
// in descriptor order.
type ParamView struct {
	name     string
	controls []*Control
}

// NewParamView creates an empty view.
func NewParamView(name string) *ParamView {
	return &ParamView{name: name}
}

// Name identifies the view to the host container.
func (v *ParamView) Name() string {
	return v.name
}

// AddControl appends a control to the view.
func (v *ParamView) AddControl(c *Control) {
	v.controls = append(v.controls, c)
}

// Controls returns the view's controls in layout order.
func (v *ParamView) Controls() []*Control {
	return v.controls
}

// Editor assembles the parameter-control UI for a patch layout. An editor
// holds references to descriptors it does not own; it may be closed and a
// new one built while the processor persists, so nothing here outlives a
// single instance.
type Editor struct {
	views  []plugin.View
	active int
}

var _ plugin.Editor = (*Editor)(nil)

// NewEditor walks the layout in order and builds one control per descriptor
// into a single view. A zero-parameter layout yields an empty view; editor
// construction never fails.
func NewEditor(layout *param.Layout, defaults ControlDefaults) *Editor {
	view := NewParamView("Params")
	for _, desc := range layout.Descriptors() {
		view.AddControl(NewControl(desc, defaults))
	}

	e := &Editor{active: -1}
	e.AddView(view)
	e.SetView(0)
	return e
}

// AddView appends a view to the editor.
func (e *Editor) AddView(v plugin.View) {
	e.views = append(e.views, v)
}

// Views returns the editor's views in the order added.
func (e *Editor) Views() []plugin.View {
	return e.views
}

// SetView makes the index-th view active. Out-of-range indexes are ignored.
func (e *Editor) SetView(index int) {
	if index < 0 || index >= len(e.views) {
		return
	}
	e.active = index
}

// ActiveView returns the currently displayed view, or nil.
func (e *Editor) ActiveView() plugin.View {
	if e.active < 0 || e.active >= len(e.views) {
		return nil
	}
	return e.views[e.active]
}

// Close releases the editor. Controls hold only references to parameters
// owned by the processor, so there is nothing to tear down beyond dropping
// them.
func (e *Editor) Close() {
	e.views = nil
	e.active = -1
}
