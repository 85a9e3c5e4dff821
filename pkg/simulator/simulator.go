// Package simulator runs one synchronous simulation update: it builds
// the scene and light source from a configuration, traces the full ray
// batch, and accumulates per-obstacle heatmaps. The scene is frozen for
// the duration of an update; each ray is traced independently.
package simulator

import (
	"math"

	"github.com/optsim/go-optics-sim/pkg/heatmap"
	"github.com/optsim/go-optics-sim/pkg/lights"
	"github.com/optsim/go-optics-sim/pkg/scene"
	"github.com/optsim/go-optics-sim/pkg/tracer"
	"github.com/optsim/go-optics-sim/pkg/vmath"
)

// Simulator owns a scene and the configuration used to light it.
type Simulator struct {
	Scene  *scene.Scene
	Config Config
}

// Result is the output of one simulation update.
type Result struct {
	// Rays are the completed ray paths, in emission order.
	Rays []*tracer.Ray
	// Heatmaps holds one per-angle intensity map per obstacle, in
	// obstacle order.
	Heatmaps []heatmap.Map
	Stats    Stats
}

// Stats summarizes a completed batch.
type Stats struct {
	RayCount      int
	PathPoints    int
	EscapedRays   int
	MinIntensity  float64
	MeanIntensity float64
}

// New creates a simulator from a configuration.
func New(config Config) *Simulator {
	return &Simulator{
		Scene:  config.BuildScene(),
		Config: config,
	}
}

// Update regenerates and traces the full ray batch against the current
// scene. It is synchronous and single-threaded; the returned result is
// complete when Update returns.
func (sim *Simulator) Update() Result {
	cfg := sim.Config
	position := vmath.NewVec3(cfg.Source.Position[0], cfg.Source.Position[1], cfg.Source.Position[2])

	maxBounces := cfg.MaxBounces
	if maxBounces <= 0 {
		maxBounces = tracer.DefaultMaxBounces
	}

	var rays []*tracer.Ray
	switch cfg.Mode {
	case ModeCone:
		source := lights.NewConeSource(position,
			cfg.Source.NumRaysRadial, cfg.Source.NumRaysCircular,
			cfg.Source.SpreadAngle, cfg.Source.CenterAngle)
		rays = source.Emit(sim.Scene, maxBounces)
	default:
		source := lights.NewFanSource(position,
			cfg.Source.NumRays, cfg.Source.SpreadAngle, cfg.Source.CenterAngle)
		rays = source.Emit(sim.Scene, maxBounces)
	}

	heatmaps := make([]heatmap.Map, len(sim.Scene.Obstacles))
	for i, obstacle := range sim.Scene.Obstacles {
		heatmaps[i] = heatmap.Accumulate(rays, obstacle)
	}

	return Result{
		Rays:     rays,
		Heatmaps: heatmaps,
		Stats:    computeStats(rays),
	}
}

// escaped reports whether a ray terminated by propagating off-scene.
func escaped(r *tracer.Ray) bool {
	n := len(r.Path)
	if n < 2 {
		return false
	}
	last := r.Path[n-1].Subtract(r.Path[n-2]).Length()
	return math.Abs(last-tracer.EscapeDistance) < 1e-9
}

func computeStats(rays []*tracer.Ray) Stats {
	stats := Stats{RayCount: len(rays), MinIntensity: 1.0}
	if len(rays) == 0 {
		stats.MinIntensity = 0
		return stats
	}

	total := 0.0
	for _, r := range rays {
		stats.PathPoints += len(r.Path)
		if escaped(r) {
			stats.EscapedRays++
		}
		if r.Intensity < stats.MinIntensity {
			stats.MinIntensity = r.Intensity
		}
		total += r.Intensity
	}
	stats.MeanIntensity = total / float64(len(rays))
	return stats
}
