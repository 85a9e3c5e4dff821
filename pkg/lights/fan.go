// Package lights enumerates the initial rays emitted by a light source
// and hands each one to the tracer. The generators hold no optical
// logic and no state; they only fix the emission geometry and the
// deterministic ordering downstream consumers rely on.
package lights

import (
	"math"

	"github.com/optsim/go-optics-sim/pkg/scene"
	"github.com/optsim/go-optics-sim/pkg/tracer"
	"github.com/optsim/go-optics-sim/pkg/vmath"
)

// FanSource emits a planar fan of rays from a point. Angle zero points
// along +y ("downward" in screen coordinates); positive angles rotate
// clockwise. Rays are produced in ascending angle order.
type FanSource struct {
	Position    vmath.Vec3
	NumRays     int
	SpreadAngle float64 // full fan width, radians
	CenterAngle float64 // rotation of the whole fan, radians
}

// NewFanSource creates a fan source with the given geometry.
func NewFanSource(position vmath.Vec3, numRays int, spread, center float64) *FanSource {
	return &FanSource{
		Position:    position,
		NumRays:     numRays,
		SpreadAngle: spread,
		CenterAngle: center,
	}
}

// Emit generates the fan, traces every ray through the scene, and
// returns the completed batch. Angles run linearly from
// center-spread/2 to center+spread/2 inclusive. A non-positive ray
// count yields an empty batch; a single ray goes along the center.
func (f *FanSource) Emit(s *scene.Scene, maxBounces int) []*tracer.Ray {
	if f.NumRays <= 0 {
		return nil
	}

	rays := make([]*tracer.Ray, 0, f.NumRays)
	start := f.CenterAngle - f.SpreadAngle/2

	for i := 0; i < f.NumRays; i++ {
		angle := f.CenterAngle
		if f.NumRays > 1 {
			angle = start + f.SpreadAngle*float64(i)/float64(f.NumRays-1)
		}
		direction := vmath.NewVec3(math.Sin(angle), math.Cos(angle), 0)

		ray := tracer.NewRay(f.Position, direction)
		rays = append(rays, tracer.Trace(ray, s, maxBounces))
	}

	return rays
}
