package renderer

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-offline-raytracer/pkg/core"
)

var approx = cmpopts.EquateApprox(0, 1e-5)

func TestCameraGetRay(t *testing.T) {
	camera := NewCamera(CameraConfig{
		AspectRatio:    2,
		ViewportHeight: 2,
		FocalLength:    1,
	})

	tests := []struct {
		name     string
		u, v     float32
		expected core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
		{"lower right", 1, 0, core.NewVec3(2, -1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.u, tt.v)
			if ray.Origin != (core.Point3{}) {
				t.Errorf("Expected ray from origin, got %v", ray.Origin)
			}
			if diff := cmp.Diff(tt.expected, ray.Direction, approx); diff != "" {
				t.Errorf("Direction mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCameraOffsetOrigin(t *testing.T) {
	camera := NewCamera(CameraConfig{Origin: &core.Point3{X: 1, Y: 2, Z: 3}})
	ray := camera.GetRay(0.5, 0.5)

	if diff := cmp.Diff(core.NewPoint3(1, 2, 3), ray.Origin, approx); diff != "" {
		t.Errorf("Origin mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(core.NewVec3(0, 0, -1), ray.Direction, approx); diff != "" {
		t.Errorf("Center ray should look down -Z (-want +got):\n%s", diff)
	}
}

func TestCameraVFov(t *testing.T) {
	// 90 degrees at focal length 1 gives a viewport 2 units tall
	camera := NewCamera(CameraConfig{VFov: 90, AspectRatio: 1, FocalLength: 1})
	top := camera.GetRay(0.5, 1)

	if diff := cmp.Diff(core.NewVec3(0, 1, -1), top.Direction, approx); diff != "" {
		t.Errorf("Top ray mismatch (-want +got):\n%s", diff)
	}

	narrow := NewCamera(CameraConfig{VFov: 30, AspectRatio: 1, FocalLength: 1})
	expected := math32.Tan(15 * math32.Pi / 180)
	if got := narrow.GetRay(0.5, 1).Direction.Y; math32.Abs(got-expected) > 1e-5 {
		t.Errorf("Expected half-height %f, got %f", expected, got)
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{FocalLength: 2, VFov: 40})

	expected := base
	expected.FocalLength = 2
	expected.VFov = 40
	if diff := cmp.Diff(expected, merged); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(base, MergeCameraConfig(base, CameraConfig{})); diff != "" {
		t.Errorf("Empty override should leave base unchanged (-want +got):\n%s", diff)
	}
}

func TestMergeCameraConfigOrigin(t *testing.T) {
	base := DefaultCameraConfig()
	base.Origin = &core.Point3{X: 0, Y: 1.2, Z: 2}

	// An explicit world origin replaces a non-zero base origin
	merged := MergeCameraConfig(base, CameraConfig{Origin: &core.Point3{}})
	if merged.Origin == nil || *merged.Origin != (core.Point3{}) {
		t.Fatalf("Expected world origin override, got %v", merged.Origin)
	}
	ray := NewCamera(merged).GetRay(0.5, 0.5)
	if ray.Origin != (core.Point3{}) {
		t.Errorf("Expected ray from world origin, got %v", ray.Origin)
	}

	// Unset origin keeps the base
	kept := MergeCameraConfig(base, CameraConfig{VFov: 30})
	if diff := cmp.Diff(base.Origin, kept.Origin); diff != "" {
		t.Errorf("Origin should be kept (-want +got):\n%s", diff)
	}

	// The merged config does not alias the override
	override := core.Point3{X: 5}
	merged = MergeCameraConfig(base, CameraConfig{Origin: &override})
	override.X = 9
	if merged.Origin.X != 5 {
		t.Errorf("Merged origin changed with the override, got %v", merged.Origin)
	}
}

func TestDefaultCameraViewport(t *testing.T) {
	camera := NewCamera(CameraConfig{})
	ray := camera.GetRay(0, 0)

	expected := core.NewVec3(-16.0/9.0, -1, -1)
	if diff := cmp.Diff(expected, ray.Direction, approx); diff != "" {
		t.Errorf("Default lower-left mismatch (-want +got):\n%s", diff)
	}
}
