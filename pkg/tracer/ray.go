package tracer

import "github.com/optsim/go-optics-sim/pkg/vmath"

// Ray is one traced light path. Origin is the leading edge of the path
// and moves forward as the ray propagates; Path records every point the
// ray has visited, starting with the emission point. Direction stays
// unit length at all times, and Intensity only ever decreases.
type Ray struct {
	Origin    vmath.Vec3
	Direction vmath.Vec3
	Intensity float64
	Path      []vmath.Vec3
}

// NewRay creates a ray at full intensity. The direction is normalized
// on construction; the path starts with the emission point.
func NewRay(origin, direction vmath.Vec3) *Ray {
	return &Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
		Intensity: 1.0,
		Path:      []vmath.Vec3{origin},
	}
}

// Propagate advances the ray by the given distance along its current
// direction and records the new position in the path.
func (r *Ray) Propagate(distance float64) vmath.Vec3 {
	r.Origin = r.Origin.Add(r.Direction.Multiply(distance))
	r.Path = append(r.Path, r.Origin)
	return r.Origin
}

// Segments returns the number of propagation segments in the path.
func (r *Ray) Segments() int {
	return len(r.Path) - 1
}
