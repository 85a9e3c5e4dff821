// Package tracer advances light rays through a scene, applying Snell's
// law refraction at the water surface and specular reflection off
// spherical obstacles until a bounce limit or intensity floor is hit.
package tracer

import (
	"math"

	"github.com/optsim/go-optics-sim/pkg/scene"
	"github.com/optsim/go-optics-sim/pkg/vmath"
)

// Tracing constants. These are part of the simulation's observable
// behavior, not tuning knobs: tests assert on them directly.
const (
	// HitEpsilon is the minimum hit distance; anything closer is
	// treated as the surface the ray just left.
	HitEpsilon = 0.001

	// MinIntensity is the energy-budget cutoff below which a ray is
	// considered fully absorbed.
	MinIntensity = 0.01

	// EscapeDistance is how far a ray that hits nothing is propagated
	// before it terminates off-scene.
	EscapeDistance = 1000.0

	// SurfaceAttenuation is applied at every interface event, whether
	// it resolves to refraction or total internal reflection.
	SurfaceAttenuation = 0.95

	// ObstacleAttenuation is the specular loss at an obstacle hit.
	ObstacleAttenuation = 0.8

	// DefaultMaxBounces bounds the number of interactions per ray.
	DefaultMaxBounces = 5
)

// hit kinds, in tie-break order: the interface is tested first, so it
// wins when a plane hit and a sphere hit land at the same distance.
type hitKind int

const (
	hitNone hitKind = iota
	hitInterface
	hitObstacle
)

// Trace advances a ray through the scene for up to maxBounces
// interactions, recording each visited point in the ray's path. The
// ray is returned with its final origin, direction and intensity; the
// scene is never modified.
func Trace(r *Ray, s *scene.Scene, maxBounces int) *Ray {
	for bounce := 0; bounce < maxBounces; bounce++ {
		if r.Intensity < MinIntensity {
			break
		}

		query := vmath.NewRay(r.Origin, r.Direction)

		nearest := math.Inf(1)
		kind := hitNone
		var obstacleNormal vmath.Vec3

		if t, ok := IntersectPlane(query, s.InterfaceLevel); ok && t < nearest {
			nearest = t
			kind = hitInterface
		}

		for _, obstacle := range s.Obstacles {
			if t, normal, ok := IntersectSphere(query, obstacle); ok && t < nearest {
				nearest = t
				kind = hitObstacle
				obstacleNormal = normal
			}
		}

		// No hit anywhere: send the ray off-scene and stop.
		if kind == hitNone {
			r.Propagate(EscapeDistance)
			break
		}

		// The medium the ray travels through is decided by which side
		// of the interface it occupies before the move.
		fromAbove := r.Origin.Y < s.InterfaceLevel

		r.Propagate(nearest)

		switch kind {
		case hitInterface:
			normal := vmath.NewVec3(0, -1, 0) // surface normal, pointing up

			n1, n2 := s.IndexAbove, s.IndexBelow
			if !fromAbove {
				n1, n2 = s.IndexBelow, s.IndexAbove
			}

			if refracted, ok := Refract(r.Direction, normal, n1, n2); ok {
				r.Direction = refracted
			} else {
				// Total internal reflection.
				r.Direction = Reflect(r.Direction, normal)
			}
			r.Intensity *= SurfaceAttenuation

		case hitObstacle:
			r.Direction = Reflect(r.Direction, obstacleNormal)
			r.Intensity *= ObstacleAttenuation
		}
	}

	return r
}
