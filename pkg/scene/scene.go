// Package scene holds the physical configuration consumed by the ray
// tracer: a horizontal refracting interface separating two media and a
// collection of spherical obstacles. The scene is exclusively owned by
// the host application and is only mutated between simulation updates,
// never while a trace is in flight.
package scene

import "github.com/optsim/go-optics-sim/pkg/vmath"

// Refractive indices of the default media.
const (
	IndexAir   = 1.0
	IndexWater = 1.33
)

// Sphere is an opaque spherical obstacle. Obstacles may overlap or be
// degenerate; a non-positive radius simply never intersects anything.
type Sphere struct {
	Center vmath.Vec3
	Radius float64
}

// NewSphere creates a new sphere obstacle
func NewSphere(center vmath.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Scene contains the refracting interface and the obstacle collection.
type Scene struct {
	// InterfaceLevel is the y-coordinate of the horizontal refracting
	// plane (the water surface), infinite in extent.
	InterfaceLevel float64

	// IndexAbove and IndexBelow are the refractive indices of the media
	// above and below the interface. Above is air (1.0) by convention.
	IndexAbove float64
	IndexBelow float64

	// Obstacles are the spherical reflectors in the scene.
	Obstacles []Sphere
}

// New creates a scene with the given interface level, air above and
// water below, and no obstacles.
func New(interfaceLevel float64) *Scene {
	return &Scene{
		InterfaceLevel: interfaceLevel,
		IndexAbove:     IndexAir,
		IndexBelow:     IndexWater,
	}
}

// Default creates the scene the simulator starts from: an 800x600 space
// with the water surface halfway down and a single submerged sphere.
func Default() *Scene {
	const width, height = 800.0, 600.0
	s := New(height * 0.5)
	s.AddObstacle(vmath.NewVec3(width/2, height*0.7, 0), 40)
	return s
}

// SetInterfaceLevel replaces the interface height. The scene stores the
// value as given; keeping it within sensible bounds is the host's job.
func (s *Scene) SetInterfaceLevel(level float64) {
	s.InterfaceLevel = level
}

// SetMediumIndex replaces the refractive index of the medium below the
// interface. Any positive value is accepted; indices below 1 are
// physically unusual but the refraction formula stays well-defined.
func (s *Scene) SetMediumIndex(index float64) {
	s.IndexBelow = index
}

// AddObstacle appends a sphere to the obstacle collection.
func (s *Scene) AddObstacle(center vmath.Vec3, radius float64) {
	s.Obstacles = append(s.Obstacles, NewSphere(center, radius))
}

// ClearObstacles removes all obstacles from the scene.
func (s *Scene) ClearObstacles() {
	s.Obstacles = s.Obstacles[:0]
}
