package tracer

import (
	"math"

	"github.com/optsim/go-optics-sim/pkg/vmath"
)

// Refract computes the refracted direction of a unit incident vector
// crossing a surface with unit normal n, from a medium with refractive
// index n1 into one with index n2, using Snell's law. The normal is
// flipped (and the indices swapped) when it faces away from the
// incident ray, so callers may pass the geometric normal as-is.
// Returns false on total internal reflection, where no refracted
// direction exists.
func Refract(incident, normal vmath.Vec3, n1, n2 float64) (vmath.Vec3, bool) {
	cosI := -incident.Dot(normal)

	// Orient the normal against the incident ray.
	if cosI < 0 {
		cosI = -cosI
		normal = normal.Negate()
		n1, n2 = n2, n1
	}

	// Snell's law: n1·sin(θ1) = n2·sin(θ2)
	n := n1 / n2
	sin2T := n * n * (1.0 - cosI*cosI)
	if sin2T > 1.0 {
		return vmath.Vec3{}, false
	}

	cosT := math.Sqrt(1.0 - sin2T)
	refracted := incident.Multiply(n).Add(normal.Multiply(n*cosI - cosT))
	return refracted.Normalize(), true
}

// Reflect computes the mirror reflection of an incident vector about a
// unit surface normal: r = i - 2·dot(i,n)·n.
func Reflect(incident, normal vmath.Vec3) vmath.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}
