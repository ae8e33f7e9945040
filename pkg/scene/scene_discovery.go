package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownScene is returned when a name matches no built-in or file scene
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Name accepted by Load
	DisplayName string // Human readable name
	Description string // Optional description
	Type        string // "builtin" or "yaml"
	FilePath    string // Path to the YAML file (yaml type only)
}

type builtinScene struct {
	info SceneInfo
	build func() *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{ID: "default", DisplayName: "Default Scene", Description: "Diffuse, glass and metal spheres on a ground sphere", Type: "builtin"},
		build: func() *Scene { return NewDefaultScene() },
	},
	{
		info: SceneInfo{ID: "hollow-glass", DisplayName: "Hollow Glass", Description: "Thin glass shell next to diffuse and fuzzy metal spheres", Type: "builtin"},
		build: func() *Scene { return NewHollowGlassScene() },
	},
	{
		info: SceneInfo{ID: "spheregrid", DisplayName: "Sphere Grid", Description: "Grid of rainbow-colored metal and diffuse spheres", Type: "builtin"},
		build: func() *Scene { return NewSphereGridScene() },
	},
}

// ListScenes returns the built-in scenes followed by every YAML scene in
// dir, sorted by display name. A missing directory yields only built-ins.
func ListScenes(dir string) ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		scenes = append(scenes, b.info)
	}

	files, err := ListYAMLScenes(dir)
	if err != nil {
		return nil, err
	}
	return append(scenes, files...), nil
}

// ListYAMLScenes scans dir for *.yaml and *.yml scene files
func ListYAMLScenes(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return []SceneInfo{}, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		scenes = append(scenes, ParseSceneMetadata(filePath))
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// sceneHeader is the subset of a scene file needed for listing
type sceneHeader struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ParseSceneMetadata reads the name and description of a scene file.
// Unreadable or malformed files fall back to a name derived from the
// filename so they still show up in listings.
func ParseSceneMetadata(filePath string) SceneInfo {
	filename := filepath.Base(filePath)
	id := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:          id,
		DisplayName: titleCase(id),
		Type:        "yaml",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info
	}
	var header sceneHeader
	if err := yaml.Unmarshal(data, &header); err != nil {
		return info
	}
	if header.Name != "" {
		info.DisplayName = header.Name
	}
	info.Description = header.Description
	return info
}

// Load resolves name to a scene. Built-in IDs win, then file IDs found in
// dir, then name itself as a path to a YAML file.
func Load(name, dir string) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == name {
			return b.build(), nil
		}
	}

	files, err := ListYAMLScenes(dir)
	if err != nil {
		return nil, err
	}
	for _, info := range files {
		if info.ID == name {
			return loadYAMLScene(info)
		}
	}

	if ext := strings.ToLower(filepath.Ext(name)); ext == ".yaml" || ext == ".yml" {
		if _, err := os.Stat(name); err == nil {
			return loadYAMLScene(ParseSceneMetadata(name))
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

func loadYAMLScene(info SceneInfo) (*Scene, error) {
	s, err := LoadFile(info.FilePath)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = info.ID
	}
	return s, nil
}

// titleCase converts a filename-style string to title case
// e.g., "hollow-glass" -> "Hollow Glass"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
