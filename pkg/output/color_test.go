package output

import (
	"testing"

	"github.com/df07/go-offline-raytracer/pkg/core"
)

func TestNewColor(t *testing.T) {
	tests := []struct {
		name     string
		linear   core.Vec3
		expected Color
	}{
		{"black", core.NewVec3(0, 0, 0), Color{0, 0, 0}},
		{"white", core.NewVec3(1, 1, 1), Color{255, 255, 255}},
		{"quarter is gamma corrected to half", core.NewVec3(0.25, 0.25, 0.25), Color{127, 127, 127}},
		{"overbright clamps to white", core.NewVec3(4, 1.5, 100), Color{255, 255, 255}},
		{"negative clamps to black", core.NewVec3(-1, -0.5, 0), Color{0, 0, 0}},
		{"channels are independent", core.NewVec3(1, 0, 0.25), Color{255, 0, 127}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewColor(tt.linear); got != tt.expected {
				t.Errorf("NewColor(%v) = %v, want %v", tt.linear, got, tt.expected)
			}
		})
	}
}

func TestNewColorInRange(t *testing.T) {
	sampler := core.NewSeededSampler(7)
	for i := 0; i < 1000; i++ {
		linear := core.NewVec3(
			sampler.Get1D()*4-2,
			sampler.Get1D()*4-2,
			sampler.Get1D()*4-2,
		)
		c := NewColor(linear)
		if c.R > 255 || c.G > 255 || c.B > 255 {
			t.Fatalf("NewColor(%v) = %v, out of 8-bit range", linear, c)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := (Color{R: 12, G: 0, B: 255}).String(); got != "12 0 255" {
		t.Errorf("Expected \"12 0 255\", got %q", got)
	}
}
