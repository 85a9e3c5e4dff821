package lights

import (
	"math"
	"testing"

	"github.com/optsim/go-optics-sim/pkg/tracer"
	"github.com/optsim/go-optics-sim/pkg/vmath"
)

func TestConeSource_RayCount(t *testing.T) {
	tests := []struct {
		name     string
		radial   int
		circular int
		expected int
	}{
		// 1 axis ray + 12·1/3 + 12·2/3 (integer truncation)
		{"three rings of twelve", 3, 12, 13},
		// 1 + max(1, 5·1/4) + max(1, 5·2/4) + max(1, 5·3/4) = 1+1+2+3
		{"truncation clamps to one", 4, 5, 7},
		{"axis only", 1, 12, 1},
		{"no rings", 0, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewConeSource(vmath.Vec3{}, tt.radial, tt.circular, math.Pi/3, 0)
			rays := source.Emit(emptyScene(), tracer.DefaultMaxBounces)
			if len(rays) != tt.expected {
				t.Errorf("Expected %d rays, got %d", tt.expected, len(rays))
			}
		})
	}
}

func TestConeSource_AxisRayFirst(t *testing.T) {
	source := NewConeSource(vmath.NewVec3(1, 2, 3), 3, 12, math.Pi/3, 0)

	rays := source.Emit(emptyScene(), tracer.DefaultMaxBounces)
	if len(rays) == 0 {
		t.Fatal("Expected rays, got none")
	}

	axis := rays[0].Path[1].Subtract(rays[0].Path[0]).Normalize()
	if axis.Subtract(vmath.NewVec3(0, 1, 0)).Length() > 1e-9 {
		t.Errorf("Expected the first ray along the cone axis, got %v", axis)
	}
}

func TestConeSource_RingGeometry(t *testing.T) {
	spread := math.Pi / 3
	source := NewConeSource(vmath.Vec3{}, 3, 12, spread, 0)

	rays := source.Emit(emptyScene(), tracer.DefaultMaxBounces)
	if len(rays) != 13 {
		t.Fatalf("Expected 13 rays, got %d", len(rays))
	}

	axis := vmath.NewVec3(0, 1, 0)

	// Ring 1 (rays 1..4) sits at half the outer polar angle, ring 2
	// (rays 5..12) at the full spread/2.
	checkRing := func(rays []*tracer.Ray, theta float64) {
		t.Helper()
		for i, ray := range rays {
			cos := ray.Direction.Dot(axis)
			if math.Abs(cos-math.Cos(theta)) > 1e-9 {
				t.Errorf("Ring ray %d: expected polar angle %v, got %v", i, theta, math.Acos(cos))
			}
		}
	}
	checkRing(rays[1:5], (spread/2)*1/2)
	checkRing(rays[5:13], spread/2)

	// Azimuth must ascend within a ring: first ring sample at phi=0
	// lies in the xz-plane with positive x.
	first := rays[1].Direction
	if first.Z != 0 || first.X <= 0 {
		t.Errorf("Expected the first ring sample at phi=0, got %v", first)
	}
}

func TestConeSource_CenterAngleRotatesCone(t *testing.T) {
	center := math.Pi / 2
	source := NewConeSource(vmath.Vec3{}, 2, 4, math.Pi/6, center)

	rays := source.Emit(emptyScene(), tracer.DefaultMaxBounces)
	if len(rays) == 0 {
		t.Fatal("Expected rays, got none")
	}

	// Rotating 90 degrees about z sends the +y axis to -x.
	expected := vmath.NewVec3(-1, 0, 0)
	if rays[0].Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected rotated axis %v, got %v", expected, rays[0].Direction)
	}
}

func TestConeSource_DirectionsAreUnit(t *testing.T) {
	source := NewConeSource(vmath.NewVec3(0, -10, 0), 4, 16, math.Pi/2, 0.4)

	for i, ray := range source.Emit(emptyScene(), tracer.DefaultMaxBounces) {
		initial := ray.Path[1].Subtract(ray.Path[0]).Length()
		if math.Abs(initial-tracer.EscapeDistance) > 1e-6 {
			t.Errorf("Ray %d: expected a unit direction scaled by the escape distance, got %v", i, initial)
		}
	}
}
