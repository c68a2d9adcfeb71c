// internal/level/loader.go
package level

import (
	"embed"
	"fmt"
	"os"

	"go-waypoint-defense/pkg/geom"

	"gopkg.in/yaml.v3"
)

//go:embed data/default.yaml
var dataFS embed.FS

type pointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type zoneConfig struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
}

// levelConfig is the on-disk layout of a level file.
type levelConfig struct {
	Name  string        `yaml:"name"`
	Path  []pointConfig `yaml:"path"`
	Zones []zoneConfig  `yaml:"zones"`
}

// Load reads a level from a YAML file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// Default returns the embedded level.
func Default() (*Level, error) {
	data, err := dataFS.ReadFile("data/default.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded level: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates level YAML.
func Parse(data []byte) (*Level, error) {
	var cfg levelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level YAML: %w", err)
	}

	points := make([]geom.Vec2, 0, len(cfg.Path))
	for _, p := range cfg.Path {
		points = append(points, geom.Vec2{X: p.X, Y: p.Y})
	}
	path, err := NewPath(points)
	if err != nil {
		return nil, err
	}

	lvl := &Level{Name: cfg.Name, Path: path}
	for i, z := range cfg.Zones {
		if z.W <= 0 || z.H <= 0 {
			return nil, fmt.Errorf("zone %d (%s): size must be positive", i, z.Name)
		}
		lvl.Zones = append(lvl.Zones, Zone{Name: z.Name, Rect: geom.Rect{X: z.X, Y: z.Y, W: z.W, H: z.H}})
	}
	return lvl, nil
}
