package tracer

import (
	"math"

	"github.com/optsim/go-optics-sim/pkg/scene"
	"github.com/optsim/go-optics-sim/pkg/vmath"
)

// IntersectPlane computes the hit distance of a ray against the
// horizontal plane y = level. Rays traveling parallel to the plane
// (|direction.y| below HitEpsilon) never hit it, and hits closer than
// HitEpsilon are rejected so a ray cannot re-intersect the surface it
// just left.
func IntersectPlane(ray vmath.Ray, level float64) (float64, bool) {
	if math.Abs(ray.Direction.Y) < HitEpsilon {
		return 0, false
	}

	t := (level - ray.Origin.Y) / ray.Direction.Y
	if t < HitEpsilon {
		return 0, false
	}

	return t, true
}

// IntersectSphere computes the nearest hit of a ray against a sphere,
// returning the hit distance and the outward unit normal at the hit
// point. Degenerate spheres (radius <= 0) and degenerate directions
// never intersect.
func IntersectSphere(ray vmath.Ray, sphere scene.Sphere) (float64, vmath.Vec3, bool) {
	if sphere.Radius <= 0 {
		return 0, vmath.Vec3{}, false
	}

	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Subtract(sphere.Center)
	a := ray.Direction.Dot(ray.Direction)
	if a < 1e-12 {
		// Zero-length direction; guard the division below.
		return 0, vmath.Vec3{}, false
	}
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - sphere.Radius*sphere.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, vmath.Vec3{}, false
	}

	// Prefer the closer root; fall back to the farther one when the ray
	// starts inside or grazes the surface.
	sqrtD := math.Sqrt(discriminant)
	t := (-b - sqrtD) / (2.0 * a)
	if t < HitEpsilon {
		t = (-b + sqrtD) / (2.0 * a)
		if t < HitEpsilon {
			return 0, vmath.Vec3{}, false
		}
	}

	normal := ray.At(t).Subtract(sphere.Center).Multiply(1.0 / sphere.Radius)
	return t, normal, true
}
