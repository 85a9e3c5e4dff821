package lights

import (
	"math"

	"github.com/optsim/go-optics-sim/pkg/scene"
	"github.com/optsim/go-optics-sim/pkg/tracer"
	"github.com/optsim/go-optics-sim/pkg/vmath"
)

// ConeSource emits a cone of rays from a point: one ray along the cone
// axis, then concentric rings of increasing polar angle. Outer rings
// carry proportionally more azimuthal samples, which roughly equalizes
// the sample density per unit solid angle. The whole cone is rotated
// about the z-axis by CenterAngle.
type ConeSource struct {
	Position        vmath.Vec3
	NumRaysRadial   int     // number of rings, counting the axis ray
	NumRaysCircular int     // azimuthal samples at the outermost ring
	SpreadAngle     float64 // full cone opening, radians
	CenterAngle     float64 // tilt about the z-axis, radians
}

// NewConeSource creates a cone source with the given geometry.
func NewConeSource(position vmath.Vec3, radial, circular int, spread, center float64) *ConeSource {
	return &ConeSource{
		Position:        position,
		NumRaysRadial:   radial,
		NumRaysCircular: circular,
		SpreadAngle:     spread,
		CenterAngle:     center,
	}
}

// Emit generates the cone, traces every ray through the scene, and
// returns the completed batch in ring-ascending, azimuth-ascending
// order. A non-positive ring count yields an empty batch.
func (c *ConeSource) Emit(s *scene.Scene, maxBounces int) []*tracer.Ray {
	if c.NumRaysRadial <= 0 {
		return nil
	}

	var rays []*tracer.Ray

	emit := func(direction vmath.Vec3) {
		ray := tracer.NewRay(c.Position, c.rotateZ(direction))
		rays = append(rays, tracer.Trace(ray, s, maxBounces))
	}

	// Center axis ray first.
	emit(vmath.NewVec3(0, 1, 0))

	for ring := 1; ring < c.NumRaysRadial; ring++ {
		theta := (c.SpreadAngle / 2) * float64(ring) / float64(c.NumRaysRadial-1)

		// Integer truncation is intentional: ring i gets circular*i/radial
		// samples, at least one.
		numAtRing := c.NumRaysCircular * ring / c.NumRaysRadial
		if numAtRing < 1 {
			numAtRing = 1
		}

		for j := 0; j < numAtRing; j++ {
			phi := 2 * math.Pi * float64(j) / float64(numAtRing)
			emit(vmath.NewVec3(
				math.Sin(theta)*math.Cos(phi),
				math.Cos(theta),
				math.Sin(theta)*math.Sin(phi),
			))
		}
	}

	return rays
}

// rotateZ rotates a direction about the z-axis by the center angle.
func (c *ConeSource) rotateZ(v vmath.Vec3) vmath.Vec3 {
	sin, cos := math.Sin(c.CenterAngle), math.Cos(c.CenterAngle)
	return vmath.NewVec3(
		v.X*cos-v.Y*sin,
		v.X*sin+v.Y*cos,
		v.Z,
	)
}
