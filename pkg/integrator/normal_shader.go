package integrator

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-offline-raytracer/pkg/core"
)

// NormalShader colors each hit by its surface normal, mapped from [-1,1]
// to [0,1]. It ignores materials and never recurses, which makes it a
// cheap preview of scene geometry.
type NormalShader struct {
	background Background
}

// NewNormalShader creates a normal-visualizing integrator
func NewNormalShader(background Background) *NormalShader {
	return &NormalShader{background: background}
}

// RayColor implements Integrator
func (ns *NormalShader) RayColor(ray core.Ray, world World, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, ShadowEpsilon, math32.Inf(1))
	if !isHit {
		return ns.background.Color(ray)
	}
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
