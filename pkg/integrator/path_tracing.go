package integrator

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-offline-raytracer/pkg/core"
)

// PathTracer implements recursive single-path Monte Carlo path tracing
type PathTracer struct {
	background Background
}

// NewPathTracer creates a path tracer that returns background for escaped rays
func NewPathTracer(background Background) *PathTracer {
	return &PathTracer{background: background}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracer) RayColor(ray core.Ray, world World, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, ShadowEpsilon, math32.Inf(1))
	if !isHit {
		return pt.background.Color(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, sampler, depth-1))
}
