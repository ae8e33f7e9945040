package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/integrator"
	"github.com/df07/go-offline-raytracer/pkg/material"
	"github.com/df07/go-offline-raytracer/pkg/renderer"
)

const threeSpheres = `
name: Three Spheres
description: Glass, gold and chalk
camera:
  origin: [0, 0.5, 1]
  vfov: 60
sampling:
  width: 200
  height: 100
  samples_per_pixel: 16
background:
  top: [0.2, 0.3, 0.9]
materials:
  ground:
    type: lambertian
    albedo: [0.8, 0.8, 0.0]
  gold:
    type: metal
    albedo: [0.8, 0.6, 0.2]
    fuzz: 0.25
  glass:
    type: dielectric
    ior: 1.5
spheres:
  - center: [0, -100.5, -1]
    radius: 100
    material: ground
  - center: [1, 0, -1]
    radius: 0.5
    material: gold
  - center: [-1, 0, -1]
    radius: 0.5
    material: glass
  - center: [-1, 0, -1]
    radius: -0.45
    material: glass
`

func TestParseScene(t *testing.T) {
	s, err := Parse([]byte(threeSpheres))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if s.Name != "Three Spheres" || s.Description != "Glass, gold and chalk" {
		t.Errorf("Unexpected metadata %q / %q", s.Name, s.Description)
	}
	if s.GetPrimitiveCount() != 4 {
		t.Errorf("Expected 4 spheres, got %d", s.GetPrimitiveCount())
	}

	expectedCamera := renderer.DefaultCameraConfig()
	expectedCamera.Origin = &core.Point3{X: 0, Y: 0.5, Z: 1}
	expectedCamera.VFov = 60
	expectedCamera.AspectRatio = 2 // follows the 200x100 image
	if diff := cmp.Diff(expectedCamera, s.CameraConfig); diff != "" {
		t.Errorf("Camera mismatch (-want +got):\n%s", diff)
	}

	expectedSampling := renderer.SamplingConfig{Width: 200, Height: 100, SamplesPerPixel: 16, MaxDepth: 50}
	if diff := cmp.Diff(expectedSampling, s.SamplingConfig); diff != "" {
		t.Errorf("Sampling mismatch (-want +got):\n%s", diff)
	}

	expectedBackground := integrator.Background{
		Top:    core.NewVec3(0.2, 0.3, 0.9),
		Bottom: integrator.DefaultBackground().Bottom,
	}
	if diff := cmp.Diff(expectedBackground, s.Background); diff != "" {
		t.Errorf("Background mismatch (-want +got):\n%s", diff)
	}

	gold, ok := s.Material("gold")
	if !ok {
		t.Fatal("Missing gold material")
	}
	if _, isMetal := gold.(*material.Metal); !isMetal {
		t.Errorf("Expected gold to be *material.Metal, got %T", gold)
	}
	glass, _ := s.Material("glass")
	if _, isGlass := glass.(*material.Dielectric); !isGlass {
		t.Errorf("Expected glass to be *material.Dielectric, got %T", glass)
	}
}

func TestParseSceneAspectRatio(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected float32
		wantErr  bool
	}{
		{
			name:     "square image gives square viewport",
			yaml:     "sampling: {width: 100, height: 100}\n",
			expected: 1,
		},
		{
			name:     "matching camera aspect is accepted",
			yaml:     "camera: {aspect_ratio: 2}\nsampling: {width: 300, height: 150}\n",
			expected: 2,
		},
		{
			name:     "width alone keeps the camera aspect",
			yaml:     "sampling: {width: 640}\n",
			expected: 16.0 / 9.0,
		},
		{
			name:    "conflicting camera aspect",
			yaml:    "camera: {aspect_ratio: 1.7778}\nsampling: {width: 100, height: 100}\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidScene) {
					t.Fatalf("Expected ErrInvalidScene, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if diff := cmp.Diff(tt.expected, s.CameraConfig.AspectRatio, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
				t.Errorf("Aspect ratio mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// A square image must not be rendered through a stretched viewport
	s, err := Parse([]byte("sampling: {width: 100, height: 100}\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	corner := s.Camera().GetRay(1, 1).Direction
	if diff := cmp.Diff(corner.Y, corner.X, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		t.Errorf("Expected equal horizontal and vertical extent, got %v", corner)
	}
}

func TestParseSceneDefaults(t *testing.T) {
	s, err := Parse([]byte("spheres: []\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if diff := cmp.Diff(renderer.DefaultCameraConfig(), s.CameraConfig); diff != "" {
		t.Errorf("Camera should default (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(renderer.DefaultSamplingConfig(), s.SamplingConfig); diff != "" {
		t.Errorf("Sampling should default (-want +got):\n%s", diff)
	}
	if s.GetPrimitiveCount() != 0 {
		t.Errorf("Expected an empty scene, got %d shapes", s.GetPrimitiveCount())
	}
}

func TestParseSceneInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{
			name:    "unknown material type",
			yaml:    "materials:\n  m: {type: plastic, albedo: [1, 1, 1]}\n",
			message: "unknown type",
		},
		{
			name:    "undefined material",
			yaml:    "spheres:\n  - {center: [0, 0, -1], radius: 0.5, material: missing}\n",
			message: "undefined material",
		},
		{
			name:    "fuzz too large",
			yaml:    "materials:\n  m: {type: metal, albedo: [1, 1, 1], fuzz: 1.5}\n",
			message: "fuzz",
		},
		{
			name:    "negative fuzz",
			yaml:    "materials:\n  m: {type: metal, albedo: [1, 1, 1], fuzz: -0.1}\n",
			message: "fuzz",
		},
		{
			name:    "zero ior",
			yaml:    "materials:\n  m: {type: dielectric}\n",
			message: "ior",
		},
		{
			name:    "short albedo",
			yaml:    "materials:\n  m: {type: lambertian, albedo: [1, 1]}\n",
			message: "3 components",
		},
		{
			name:    "zero radius",
			yaml:    "materials:\n  m: {type: dielectric, ior: 1.5}\nspheres:\n  - {center: [0, 0, -1], radius: 0, material: m}\n",
			message: "zero radius",
		},
		{
			name:    "bad center",
			yaml:    "materials:\n  m: {type: dielectric, ior: 1.5}\nspheres:\n  - {center: [0, 0], radius: 1, material: m}\n",
			message: "3 components",
		},
		{
			name:    "bad background",
			yaml:    "background:\n  bottom: [1]\n",
			message: "background.bottom",
		},
		{
			name:    "spheres listed under an unknown key",
			yaml:    "shapes:\n  - {center: [0, 0, -1], radius: 0.5, material: m}\n",
			message: "shapes",
		},
		{
			name:    "unknown material field",
			yaml:    "materials:\n  m: {type: metal, albedo: [1, 1, 1], roughness: 0.2}\n",
			message: "roughness",
		},
		{
			name:    "malformed yaml",
			yaml:    "spheres: [\n",
			message: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidScene) {
				t.Fatalf("Expected ErrInvalidScene, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Expected error mentioning %q, got %v", tt.message, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "three.yaml")
	if err := os.WriteFile(path, []byte(threeSpheres), 0644); err != nil {
		t.Fatalf("Writing scene: %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if s.GetPrimitiveCount() != 4 {
		t.Errorf("Expected 4 spheres, got %d", s.GetPrimitiveCount())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
