package renderer

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-offline-raytracer/pkg/core"
)

// CameraConfig describes a fixed pinhole camera looking down -Z
type CameraConfig struct {
	Origin         *core.Point3 // Eye position (nil = world origin)
	AspectRatio    float32      // Viewport width / height
	ViewportHeight float32      // Image plane height at FocalLength; ignored when VFov > 0
	VFov           float32      // Vertical field of view in degrees (0 = use ViewportHeight)
	FocalLength    float32      // Distance from the eye to the image plane
}

// DefaultCameraConfig returns a 16:9 camera at the origin with a 2-unit
// tall image plane one unit away
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
}

// MergeCameraConfig returns base with every set field of override applied.
// A non-nil Origin always wins, including the world origin.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Origin != nil {
		origin := *override.Origin
		result.Origin = &origin
	}
	if override.AspectRatio > 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.ViewportHeight > 0 {
		result.ViewportHeight = override.ViewportHeight
	}
	if override.VFov > 0 {
		result.VFov = override.VFov
	}
	if override.FocalLength > 0 {
		result.FocalLength = override.FocalLength
	}
	return result
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from the given configuration.
// Missing fields fall back to DefaultCameraConfig.
func NewCamera(config CameraConfig) *Camera {
	config = MergeCameraConfig(DefaultCameraConfig(), config)

	viewportHeight := config.ViewportHeight
	if config.VFov > 0 {
		theta := config.VFov * math32.Pi / 180.0
		viewportHeight = 2.0 * math32.Tan(theta/2) * config.FocalLength
	}
	viewportWidth := config.AspectRatio * viewportHeight

	var origin core.Point3
	if config.Origin != nil {
		origin = *config.Origin
	}
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for screen coordinates (u, v) where 0 <= u,v <= 1
// and (0, 0) is the lower-left corner of the image
func (c *Camera) GetRay(u, v float32) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		SubtractPoint(c.origin)

	return core.NewRay(c.origin, direction)
}
