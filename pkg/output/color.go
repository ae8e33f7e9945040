package output

import (
	"fmt"

	"github.com/df07/go-offline-raytracer/pkg/core"
)

// quantizeScale maps [0,1] onto 0..255 with truncation, so only an exact
// 1.0 would reach 255.99
const quantizeScale = 255.99

// Color is an 8-bit-per-channel pixel value
type Color struct {
	R, G, B uint32
}

// NewColor converts a linear radiance estimate into a display color.
// Components are clamped to [0,1], gamma corrected with exponent 1/2 and
// quantized to 0..255.
func NewColor(linear core.Vec3) Color {
	c := linear.Clamp(0, 1).Sqrt().Multiply(quantizeScale)
	return Color{
		R: uint32(c.X),
		G: uint32(c.Y),
		B: uint32(c.Z),
	}
}

// String formats the color as a PPM pixel triple
func (c Color) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// RGBA implements color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.R * 0x101, c.G * 0x101, c.B * 0x101, 0xffff
}
