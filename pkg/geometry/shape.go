package geometry

import (
	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the nearest intersection with parameter in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float32) (*material.HitRecord, bool)
}
