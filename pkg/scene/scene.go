package scene

import (
	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/geometry"
	"github.com/df07/go-offline-raytracer/pkg/integrator"
	"github.com/df07/go-offline-raytracer/pkg/material"
	"github.com/df07/go-offline-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Description    string
	Shapes         []geometry.Shape             // Objects in the scene
	Materials      map[string]material.Material // Named materials shared by shapes
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	Background     integrator.Background
}

// NewScene creates an empty scene with default camera, sampling and sky
func NewScene(name string) *Scene {
	return &Scene{
		Name:           name,
		Shapes:         make([]geometry.Shape, 0),
		Materials:      make(map[string]material.Material),
		CameraConfig:   renderer.DefaultCameraConfig(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
		Background:     integrator.DefaultBackground(),
	}
}

// Push appends a shape. Duplicates and overlapping shapes are allowed.
func (s *Scene) Push(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddMaterial registers a material under name, replacing any previous one
func (s *Scene) AddMaterial(name string, m material.Material) material.Material {
	s.Materials[name] = m
	return m
}

// Material looks up a named material
func (s *Scene) Material(name string) (material.Material, bool) {
	m, ok := s.Materials[name]
	return m, ok
}

// Hit returns the nearest intersection in [tMin, tMax] across all shapes.
// The upper bound shrinks to each hit found so later shapes can only win
// by being strictly closer.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float32) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// Camera builds the camera described by the scene's camera config
func (s *Scene) Camera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}
