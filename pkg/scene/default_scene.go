package scene

import (
	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/geometry"
	"github.com/df07/go-offline-raytracer/pkg/material"
	"github.com/df07/go-offline-raytracer/pkg/renderer"
)

// NewDefaultScene creates the classic four-sphere scene: a diffuse sphere
// flanked by glass and gold, resting on a huge ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := NewScene("default")
	s.Description = "Diffuse, glass and metal spheres on a ground sphere"
	if len(cameraOverrides) > 0 {
		s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, cameraOverrides[0])
	}

	// Create materials
	ground := s.AddMaterial("ground", material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	center := s.AddMaterial("center", material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	glass := s.AddMaterial("glass", material.NewDielectric(1.5))
	gold := s.AddMaterial("gold", material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0))

	s.Push(geometry.NewSphere(core.NewPoint3(0, -100.5, -1), 100, ground))
	s.Push(geometry.NewSphere(core.NewPoint3(0, 0, -1), 0.5, center))
	s.Push(geometry.NewSphere(core.NewPoint3(-1, 0, -1), 0.5, glass))
	s.Push(geometry.NewSphere(core.NewPoint3(1, 0, -1), 0.5, gold))

	return s
}

// NewHollowGlassScene replaces the solid glass sphere with a thin glass
// shell. The inner sphere has a negative radius so its normals point
// inward, turning it into the inside wall of the shell.
func NewHollowGlassScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := NewScene("hollow-glass")
	s.Description = "Thin glass shell next to diffuse and fuzzy metal spheres"
	if len(cameraOverrides) > 0 {
		s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, cameraOverrides[0])
	}

	ground := s.AddMaterial("ground", material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	center := s.AddMaterial("center", material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	glass := s.AddMaterial("glass", material.NewDielectric(1.5))
	gold := s.AddMaterial("gold", material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))

	s.Push(geometry.NewSphere(core.NewPoint3(0, -100.5, -1), 100, ground))
	s.Push(geometry.NewSphere(core.NewPoint3(0, 0, -1), 0.5, center))
	s.Push(geometry.NewSphere(core.NewPoint3(-1, 0, -1), 0.5, glass))
	s.Push(geometry.NewSphere(core.NewPoint3(-1, 0, -1), -0.45, glass))
	s.Push(geometry.NewSphere(core.NewPoint3(1, 0, -1), 0.5, gold))

	return s
}
