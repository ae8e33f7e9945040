package integrator

import (
	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/material"
)

// ShadowEpsilon is the lower t bound for every scene query. It keeps a
// scattered ray from re-hitting the surface it just left.
const ShadowEpsilon = 0.001

// World is anything that can resolve the nearest hit along a ray
type World interface {
	Hit(ray core.Ray, tMin, tMax float32) (*material.HitRecord, bool)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along ray with at most depth bounces
	RayColor(ray core.Ray, world World, sampler core.Sampler, depth int) core.Vec3
}

// Background is the sky gradient returned for rays that leave the scene
type Background struct {
	Top    core.Vec3 // Color looking straight up
	Bottom core.Vec3 // Color looking straight down
}

// DefaultBackground returns the white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the background color for a ray direction
func (b Background) Color(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Lerp(b.Top, t)
}
