package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, grey())
	ray := mustRay(t, core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, grey())

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := mustRay(t, tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			assertVecNear(t, "normal", tt.expectedNormal, hit.Normal)
		})
	}
}

func TestSphere_Hit_RespectsEpsilon(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, grey())

	// Ray starting exactly on the surface heading outward: the only root is t=0
	ray := mustRay(t, core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))
	if _, isHit := sphere.Hit(ray, 1e-4, math.Inf(1)); isHit {
		t.Error("Root at t=0 should be discarded by epsilon")
	}

	// Ray starting on the surface heading inward finds the far side
	ray = mustRay(t, core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit, isHit := sphere.Hit(ray, 1e-4, math.Inf(1))
	if !isHit {
		t.Fatal("Expected far-side hit")
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected t=2, got %f", hit.T)
	}
}

func TestSphere_Hit_SharesMaterial(t *testing.T) {
	mat := grey()
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1.0, mat)

	hit, isHit := sphere.Hit(mustRay(t, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 100)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != mat {
		t.Error("Hit record should reference the primitive's material, not a copy")
	}
}

func TestSphere_Validate(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
	}{
		{"zero radius", 0},
		{"negative radius", -1},
		{"nan radius", math.NaN()},
		{"infinite radius", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(core.NewVec3(0, 0, 0), tt.radius, grey())
			if err := sphere.Validate(); !errors.Is(err, ErrDegenerateRadius) {
				t.Errorf("Expected ErrDegenerateRadius, got %v", err)
			}
		})
	}

	valid := NewSphere(core.NewVec3(0, 0, 0), 0.5, grey())
	if err := valid.Validate(); err != nil {
		t.Errorf("Unexpected error for valid sphere: %v", err)
	}
}
