package balloons

import (
	"math"
	"testing"
)

func TestHSLPrimaries(t *testing.T) {
	tests := []struct {
		name string
		hue  float64
		want Color
	}{
		{"red", 0, Color{1, 0, 0, 1}},
		{"green", 120, Color{0, 1, 0, 1}},
		{"blue", 240, Color{0, 0, 1, 1}},
		{"wraps past 360", 480, Color{0, 1, 0, 1}},
		{"wraps negative", -120, Color{0, 0, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSL(tt.hue, 1, 0.5)
			if !approxEqual(got.R, tt.want.R, 1e-9) || !approxEqual(got.G, tt.want.G, 1e-9) ||
				!approxEqual(got.B, tt.want.B, 1e-9) || got.A != 1 {
				t.Errorf("HSL(%v, 1, 0.5) = %+v, want %+v", tt.hue, got, tt.want)
			}
		})
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	c := Color{1, 1, 1, 0.5}.toRGBA()
	if c.A != 128 || c.R != 128 {
		t.Errorf("toRGBA = %+v, want R=128 A=128", c)
	}
}

func TestRangeRandom(t *testing.T) {
	r := Range{Min: -6, Max: 6}
	if got := r.Random(&seqRand{floats: []float64{0}}); got != -6 {
		t.Errorf("Random(0) = %v, want -6", got)
	}
	if got := r.Random(&seqRand{floats: []float64{0.5}}); got != 0 {
		t.Errorf("Random(0.5) = %v, want 0", got)
	}
	if got := r.Random(&seqRand{floats: []float64{math.Nextafter(1, 0)}}); got >= 6 {
		t.Errorf("Random(~1) = %v, want < 6", got)
	}
	fixed := Range{Min: 3, Max: 3}
	if got := fixed.Random(NewRand(1)); got != 3 {
		t.Errorf("degenerate Random = %v, want 3", got)
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestEventTypeString(t *testing.T) {
	if EventSpawn.String() != "spawn" || EventClick.String() != "click" || EventRecycle.String() != "recycle" {
		t.Error("unexpected event names")
	}
	if EventType(200).String() != "unknown" {
		t.Error("out-of-range event should be unknown")
	}
}
