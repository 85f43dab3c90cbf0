package param

import (
	"fmt"
	"math"
	"testing"

	"github.com/rnbogo/rnbogo/pkg/patch"
)

// tableEngine is a metadata-only engine for layout tests.
type tableEngine struct {
	table []patch.ParameterInfo
}

func (e *tableEngine) NumInputChannels() int                        { return 2 }
func (e *tableEngine) NumOutputChannels() int                       { return 2 }
func (e *tableEngine) NumParameters() int                           { return len(e.table) }
func (e *tableEngine) ParameterInfo(i int) patch.ParameterInfo      { return e.table[i] }
func (e *tableEngine) Prepare(sampleRate float64, maxBlockSize int) {}
func (e *tableEngine) Process(in, out [][]float32, frames int)      {}
func (e *tableEngine) SetParameterValue(i int, plain float64)       {}
func (e *tableEngine) ParameterValue(i int) float64                 { return 0 }

func makeTable(n int) []patch.ParameterInfo {
	table := make([]patch.ParameterInfo, n)
	for i := range table {
		table[i] = patch.ParameterInfo{
			Index:       i,
			ID:          fmt.Sprintf("p%d", i),
			DisplayName: fmt.Sprintf("Param %d", i),
			Min:         0,
			Max:         float64(i + 1),
			Default:     float64(i+1) / 2,
		}
	}
	return table
}

func TestLayoutFromEngineCounts(t *testing.T) {
	for _, n := range []int{0, 1, 3, 16, 64} {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			layout, registry := LayoutFromEngine(&tableEngine{table: makeTable(n)})

			if layout.Count() != n {
				t.Fatalf("layout has %d descriptors, want %d", layout.Count(), n)
			}
			if registry.Count() != int32(n) {
				t.Fatalf("registry has %d parameters, want %d", registry.Count(), n)
			}

			seen := make(map[string]bool)
			for i, d := range layout.Descriptors() {
				if d.Index != i {
					t.Errorf("descriptor %d has index %d", i, d.Index)
				}
				if seen[d.Identifier] {
					t.Errorf("duplicate identifier %s", d.Identifier)
				}
				seen[d.Identifier] = true
				if registry.GetByIndex(int32(i)) != d.Value {
					t.Errorf("registry order diverges from layout at %d", i)
				}
			}
		})
	}
}

func TestLayoutRetainsStepMetadata(t *testing.T) {
	table := []patch.ParameterInfo{
		{Index: 0, ID: "gain", DisplayName: "Gain", Min: -24, Max: 24},
		{Index: 1, ID: "tone", DisplayName: "Tone", Min: 0, Max: 100, Steps: 5},
		{Index: 2, ID: "mode", DisplayName: "Mode", Min: 0, Max: 2, Steps: 3, EnumValues: true},
	}
	layout, _ := LayoutFromEngine(&tableEngine{table: table})

	d := layout.At(1)
	if d.Steps != 5 {
		t.Errorf("tone descriptor Steps = %d, want 5", d.Steps)
	}
	if d.Value.StepCount != 5 {
		t.Errorf("tone parameter StepCount = %d, want 5", d.Value.StepCount)
	}

	d = layout.At(2)
	if !d.EnumValues {
		t.Error("mode descriptor lost its enum flag")
	}
	if d.Value.Flags&IsList == 0 {
		t.Error("mode parameter missing IsList flag")
	}
}

func TestLayoutAppliesDefaults(t *testing.T) {
	table := []patch.ParameterInfo{
		{Index: 0, ID: "gain", DisplayName: "Gain", Min: -24, Max: 24, Default: -6},
	}
	layout, _ := LayoutFromEngine(&tableEngine{table: table})

	if got := layout.At(0).Value.GetPlainValue(); math.Abs(got-(-6)) > 1e-9 {
		t.Errorf("default plain value = %f, want -6", got)
	}
}

func TestLayoutAtOutOfRange(t *testing.T) {
	layout, _ := LayoutFromEngine(&tableEngine{table: makeTable(2)})
	if layout.At(-1) != nil || layout.At(2) != nil {
		t.Error("At out of range should return nil")
	}
}

func TestIdentifierNamespace(t *testing.T) {
	if got := Identifier("gain"); got != "main:gain" {
		t.Errorf("Identifier(gain) = %q, want main:gain", got)
	}
}
