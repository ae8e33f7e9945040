package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/geometry"
	"github.com/df07/go-offline-raytracer/pkg/material"
	"github.com/df07/go-offline-raytracer/pkg/renderer"
)

// ErrInvalidScene is returned for scene files that parse but describe
// something that cannot be rendered
var ErrInvalidScene = errors.New("invalid scene")

// FileConfig is the YAML layout of a scene file
type FileConfig struct {
	Name        string                    `yaml:"name"`
	Description string                    `yaml:"description"`
	Camera      *CameraFileConfig         `yaml:"camera"`
	Sampling    *SamplingFileConfig       `yaml:"sampling"`
	Background  *BackgroundFileConfig     `yaml:"background"`
	Materials   map[string]MaterialConfig `yaml:"materials"`
	Spheres     []SphereConfig            `yaml:"spheres"`
}

// CameraFileConfig overrides fields of the default camera
type CameraFileConfig struct {
	Origin         []float32 `yaml:"origin"`
	AspectRatio    float32   `yaml:"aspect_ratio"`
	ViewportHeight float32   `yaml:"viewport_height"`
	VFov           float32   `yaml:"vfov"`
	FocalLength    float32   `yaml:"focal_length"`
}

// SamplingFileConfig overrides fields of the default sampling config
type SamplingFileConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	SamplesPerPixel int `yaml:"samples_per_pixel"`
	MaxDepth        int `yaml:"max_depth"`
}

// BackgroundFileConfig sets the sky gradient
type BackgroundFileConfig struct {
	Top    []float32 `yaml:"top"`
	Bottom []float32 `yaml:"bottom"`
}

// MaterialConfig describes one named material
type MaterialConfig struct {
	Type   string    `yaml:"type"` // lambertian, metal or dielectric
	Albedo []float32 `yaml:"albedo"`
	Fuzz   float32   `yaml:"fuzz"`
	IOR    float32   `yaml:"ior"`
}

// SphereConfig places a sphere with a named material
type SphereConfig struct {
	Center   []float32 `yaml:"center"`
	Radius   float32   `yaml:"radius"`
	Material string    `yaml:"material"`
}

// LoadFile reads and builds a scene from a YAML file
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from YAML. Unknown keys are rejected so a
// misspelled section is not silently ignored.
func Parse(data []byte) (*Scene, error) {
	var cfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	return cfg.Build()
}

// Build validates the config and turns it into a scene
func (cfg *FileConfig) Build() (*Scene, error) {
	s := NewScene(cfg.Name)
	s.Description = cfg.Description

	if cfg.Camera != nil {
		override := renderer.CameraConfig{
			AspectRatio:    cfg.Camera.AspectRatio,
			ViewportHeight: cfg.Camera.ViewportHeight,
			VFov:           cfg.Camera.VFov,
			FocalLength:    cfg.Camera.FocalLength,
		}
		if cfg.Camera.Origin != nil {
			origin, err := parseVec3("camera.origin", cfg.Camera.Origin)
			if err != nil {
				return nil, err
			}
			override.Origin = &core.Point3{X: origin.X, Y: origin.Y, Z: origin.Z}
		}
		s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, override)
	}

	if cfg.Sampling != nil {
		s.SamplingConfig = mergeSamplingConfig(s.SamplingConfig, *cfg.Sampling)
		if err := cfg.matchAspectRatio(s); err != nil {
			return nil, err
		}
	}

	if cfg.Background != nil {
		if cfg.Background.Top != nil {
			top, err := parseVec3("background.top", cfg.Background.Top)
			if err != nil {
				return nil, err
			}
			s.Background.Top = top
		}
		if cfg.Background.Bottom != nil {
			bottom, err := parseVec3("background.bottom", cfg.Background.Bottom)
			if err != nil {
				return nil, err
			}
			s.Background.Bottom = bottom
		}
	}

	// Build materials in name order so errors are reported deterministically
	names := make([]string, 0, len(cfg.Materials))
	for name := range cfg.Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m, err := buildMaterial(name, cfg.Materials[name])
		if err != nil {
			return nil, err
		}
		s.AddMaterial(name, m)
	}

	for i, sc := range cfg.Spheres {
		center, err := parseVec3(fmt.Sprintf("spheres[%d].center", i), sc.Center)
		if err != nil {
			return nil, err
		}
		if sc.Radius == 0 {
			return nil, fmt.Errorf("%w: spheres[%d] has zero radius", ErrInvalidScene, i)
		}
		m, ok := s.Material(sc.Material)
		if !ok {
			return nil, fmt.Errorf("%w: spheres[%d] references undefined material %q", ErrInvalidScene, i, sc.Material)
		}
		s.Push(geometry.NewSphere(core.NewPoint3(center.X, center.Y, center.Z), sc.Radius, m))
	}

	return s, nil
}

// aspectTolerance allows for the rounding of integer image sizes
const aspectTolerance = 0.01

// matchAspectRatio keeps the viewport shape equal to the image shape when
// the file gives an explicit image size. A camera aspect ratio that
// contradicts the size is rejected.
func (cfg *FileConfig) matchAspectRatio(s *Scene) error {
	if cfg.Sampling.Width <= 0 || cfg.Sampling.Height <= 0 {
		return nil
	}
	imageAspect := float32(cfg.Sampling.Width) / float32(cfg.Sampling.Height)

	if cfg.Camera != nil && cfg.Camera.AspectRatio > 0 {
		if math32.Abs(cfg.Camera.AspectRatio-imageAspect) > aspectTolerance*imageAspect {
			return fmt.Errorf("%w: camera aspect_ratio %g does not match image size %dx%d",
				ErrInvalidScene, cfg.Camera.AspectRatio, cfg.Sampling.Width, cfg.Sampling.Height)
		}
		return nil
	}
	s.CameraConfig.AspectRatio = imageAspect
	return nil
}

func buildMaterial(name string, mc MaterialConfig) (material.Material, error) {
	switch mc.Type {
	case "lambertian":
		albedo, err := parseVec3("materials."+name+".albedo", mc.Albedo)
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(albedo), nil
	case "metal":
		albedo, err := parseVec3("materials."+name+".albedo", mc.Albedo)
		if err != nil {
			return nil, err
		}
		if mc.Fuzz < 0 || mc.Fuzz > 1 {
			return nil, fmt.Errorf("%w: material %q fuzz %g outside [0,1]", ErrInvalidScene, name, mc.Fuzz)
		}
		return material.NewMetal(albedo, mc.Fuzz), nil
	case "dielectric":
		if mc.IOR <= 0 {
			return nil, fmt.Errorf("%w: material %q needs a positive ior, got %g", ErrInvalidScene, name, mc.IOR)
		}
		return material.NewDielectric(mc.IOR), nil
	default:
		return nil, fmt.Errorf("%w: material %q has unknown type %q", ErrInvalidScene, name, mc.Type)
	}
}

func parseVec3(field string, values []float32) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidScene, field, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}

func mergeSamplingConfig(base renderer.SamplingConfig, override SamplingFileConfig) renderer.SamplingConfig {
	result := base
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel > 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		result.MaxDepth = override.MaxDepth
	}
	return result
}
