// Package heatmap accumulates the light intensity arriving at an
// obstacle into per-angle buckets for downstream display. It runs a
// second, simplified segment/sphere intersection pass over completed
// ray paths; it never feeds back into the tracer.
package heatmap

import (
	"math"

	"github.com/optsim/go-optics-sim/pkg/scene"
	"github.com/optsim/go-optics-sim/pkg/tracer"
)

// Map holds accumulated intensity keyed by the integer angle (degrees,
// -180..180) of the hit point around the sphere center, measured in
// the xy-plane.
type Map map[int]float64

// Accumulate walks every segment of every ray path and adds the ray's
// final intensity to the angular bucket where the segment first enters
// the sphere. Segments that miss, start past the sphere, or have zero
// length contribute nothing.
func Accumulate(rays []*tracer.Ray, sphere scene.Sphere) Map {
	m := make(Map)
	for _, ray := range rays {
		if len(ray.Path) < 2 {
			continue
		}
		for i := 0; i < len(ray.Path)-1; i++ {
			p1, p2 := ray.Path[i], ray.Path[i+1]

			d := p2.Subtract(p1)
			f := p1.Subtract(sphere.Center)

			a := d.Dot(d)
			if a == 0 {
				continue
			}
			b := 2 * f.Dot(d)
			c := f.Dot(f) - sphere.Radius*sphere.Radius

			discriminant := b*b - 4*a*c
			if discriminant < 0 {
				continue
			}

			// Entry point only, and only within this segment.
			t := (-b - math.Sqrt(discriminant)) / (2 * a)
			if t < 0 || t > 1 {
				continue
			}

			hit := p1.Add(d.Multiply(t))
			diff := hit.Subtract(sphere.Center)
			angle := int(math.Atan2(diff.Y, diff.X) * 180 / math.Pi)
			m[angle] += ray.Intensity
		}
	}
	return m
}

// Max returns the largest accumulated intensity, or zero for an empty
// map. Display code uses it to normalize bucket values.
func (m Map) Max() float64 {
	var maxIntensity float64
	for _, v := range m {
		if v > maxIntensity {
			maxIntensity = v
		}
	}
	return maxIntensity
}
