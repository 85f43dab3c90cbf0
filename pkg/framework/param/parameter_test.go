package param

import (
	"math"
	"testing"
)

func TestParameterValueClamping(t *testing.T) {
	p := New(0, "Gain").Range(-24, 24).Default(0).Build()

	p.SetValue(1.5)
	if got := p.GetValue(); got != 1 {
		t.Errorf("SetValue(1.5) stored %f, want clamp to 1", got)
	}
	p.SetValue(-0.5)
	if got := p.GetValue(); got != 0 {
		t.Errorf("SetValue(-0.5) stored %f, want clamp to 0", got)
	}
}

func TestParameterNormalization(t *testing.T) {
	p := New(0, "Tone").Range(0, 100).Default(100).Build()

	tests := []struct {
		plain      float64
		normalized float64
	}{
		{0, 0},
		{25, 0.25},
		{100, 1},
		{150, 1}, // clamped
		{-10, 0}, // clamped
	}
	for _, test := range tests {
		if got := p.Normalize(test.plain); math.Abs(got-test.normalized) > 1e-9 {
			t.Errorf("Normalize(%f) = %f, want %f", test.plain, got, test.normalized)
		}
	}

	if got := p.Denormalize(0.25); math.Abs(got-25) > 1e-9 {
		t.Errorf("Denormalize(0.25) = %f, want 25", got)
	}
}

func TestParameterPlainRoundTrip(t *testing.T) {
	p := New(3, "Gain").Range(-24, 24).Default(0).Build()

	p.SetPlainValue(-6)
	if got := p.GetPlainValue(); math.Abs(got-(-6)) > 1e-9 {
		t.Errorf("GetPlainValue() = %f, want -6", got)
	}
}

func TestParameterDefaultApplied(t *testing.T) {
	p := New(0, "Tone").Range(0, 100).Default(75).Build()
	if got := p.GetPlainValue(); math.Abs(got-75) > 1e-9 {
		t.Errorf("default plain value = %f, want 75", got)
	}
}

func TestFormatValue(t *testing.T) {
	t.Run("Continuous", func(t *testing.T) {
		p := New(0, "Gain").Range(-24, 24).Default(0).Formatter(DecibelFormatter, DecibelParser).Build()
		if got := p.FormatValue(p.Normalize(-6)); got != "-6.0 dB" {
			t.Errorf("FormatValue = %q, want %q", got, "-6.0 dB")
		}
	})

	t.Run("Stepped", func(t *testing.T) {
		p := New(0, "Tone").Range(0, 100).Steps(5).Default(0).Build()
		if got := p.FormatValue(0.5); got != "50" {
			t.Errorf("FormatValue = %q, want %q", got, "50")
		}
	})
}

func TestChoice(t *testing.T) {
	p := Choice(2, "Mode", []string{"Bypass", "Lowpass", "Highpass"}).Build()

	if p.StepCount != 3 {
		t.Errorf("StepCount = %d, want 3", p.StepCount)
	}
	if p.Flags&IsList == 0 {
		t.Error("expected IsList flag")
	}
	if got := p.FormatValue(p.Normalize(1)); got != "Lowpass" {
		t.Errorf("FormatValue(1) = %q, want Lowpass", got)
	}

	normalized, err := p.ParseValue("highpass")
	if err != nil {
		t.Fatalf("ParseValue error: %v", err)
	}
	if plain := p.Denormalize(normalized); math.Abs(plain-2) > 1e-9 {
		t.Errorf("ParseValue(highpass) = %f plain, want 2", plain)
	}
}
