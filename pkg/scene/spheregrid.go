package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/geometry"
	"github.com/df07/go-offline-raytracer/pkg/material"
	"github.com/df07/go-offline-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float32) core.Vec3 {
	hRad := h * math32.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math32.Cos(hRad)
	b := c * math32.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a grid of colored spheres on a ground sphere.
// Hue varies across columns and chroma across rows; every third sphere is
// diffuse, the rest are metal with a little roughness.
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := NewScene("spheregrid")
	s.Description = "Grid of rainbow-colored metal and diffuse spheres"
	s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, renderer.CameraConfig{
		Origin: &core.Point3{X: 0, Y: 1.2, Z: 2},
		VFov:   50,
	})
	if len(cameraOverrides) > 0 {
		s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, cameraOverrides[0])
	}

	ground := s.AddMaterial("ground", material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.Push(geometry.NewSphere(core.NewPoint3(0, -1000, 0), 1000, ground))

	const gridSize = 6
	const targetWidth = 4.0
	spacing := float32(targetWidth) / (gridSize - 1)
	radius := spacing * 0.35

	// OKLCH parameters for color variation
	baseLightness := float32(0.65)
	minChroma := float32(0.05)
	maxChroma := float32(0.25)

	for i := range gridSize {
		for j := range gridSize {
			x := float32(i)*spacing - targetWidth/2
			z := -float32(j)*spacing - 1.5
			position := core.NewPoint3(x, radius, z)

			hue := float32(i) / (gridSize - 1) * 360.0
			chroma := minChroma + float32(j)/(gridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math32.Sin(float32(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			var m material.Material
			if (i+j)%3 == 0 {
				m = material.NewLambertian(color)
			} else {
				roughness := 0.05 + 0.1*float32((i+j)%3)/2.0
				m = material.NewMetal(color, roughness)
			}
			s.AddMaterial(fmt.Sprintf("sphere-%d-%d", i, j), m)
			s.Push(geometry.NewSphere(position, radius, m))
		}
	}

	return s
}
