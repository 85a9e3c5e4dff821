package simulator

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/optsim/go-optics-sim/pkg/scene"
	"github.com/optsim/go-optics-sim/pkg/vmath"
)

// Source modes.
const (
	ModeFan  = "fan"  // planar fan of rays (2D cross-section view)
	ModeCone = "cone" // cone of rays (3D perspective view)
)

// Config holds the full simulation parameters. Every update receives
// the complete configuration; there are no incremental updates.
type Config struct {
	Mode       string // "fan" or "cone"
	MaxBounces int

	// Interface and media
	InterfaceLevel float64
	MediumIndex    float64 // refractive index below the interface

	Source    SourceConfig
	Obstacles []ObstacleConfig
}

// SourceConfig describes the light source geometry.
type SourceConfig struct {
	Position    [3]float64
	SpreadAngle float64 // unit: rad
	CenterAngle float64 // unit: rad

	NumRays int // fan mode

	NumRaysRadial   int // cone mode: rings, counting the axis ray
	NumRaysCircular int // cone mode: azimuthal samples at the outer ring
}

// ObstacleConfig describes one spherical obstacle.
type ObstacleConfig struct {
	Position [3]float64
	Radius   float64
}

// DefaultConfig are the default parameters: the scene the interactive
// app starts from, lit by a 20-ray fan.
func DefaultConfig() Config {
	return Config{
		Mode:           ModeFan,
		MaxBounces:     5,
		InterfaceLevel: 300,
		MediumIndex:    scene.IndexWater,
		Source: SourceConfig{
			Position:        [3]float64{400, 50, 0},
			SpreadAngle:     math.Pi / 3,
			CenterAngle:     0,
			NumRays:         20,
			NumRaysRadial:   5,
			NumRaysCircular: 16,
		},
		Obstacles: []ObstacleConfig{
			{Position: [3]float64{400, 420, 0}, Radius: 40},
		},
	}
}

// ParseConfig parses the TOML config file whose path is provided.
// Values from the file overwrite the defaults.
func ParseConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Validate rejects configurations the simulator cannot run.
func (c Config) Validate() error {
	if c.Mode != ModeFan && c.Mode != ModeCone {
		return fmt.Errorf("unknown source mode %q", c.Mode)
	}
	if c.MaxBounces < 0 {
		return fmt.Errorf("max bounces must be non-negative, got %d", c.MaxBounces)
	}
	return nil
}

// BuildScene constructs the scene described by the configuration.
func (c Config) BuildScene() *scene.Scene {
	s := scene.New(c.InterfaceLevel)
	if c.MediumIndex != 0 {
		s.SetMediumIndex(c.MediumIndex)
	}
	for _, o := range c.Obstacles {
		s.AddObstacle(vmath.NewVec3(o.Position[0], o.Position[1], o.Position[2]), o.Radius)
	}
	return s
}
