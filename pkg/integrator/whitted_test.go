package integrator

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// mockScene is a minimal scene for integrator tests
type mockScene struct {
	primitives []geometry.Primitive
	lights     []lights.PointLight
	ambient    float64
	background core.Vec3
}

func (s *mockScene) GetCamera() *geometry.Camera         { return nil }
func (s *mockScene) GetPrimitives() []geometry.Primitive { return s.primitives }
func (s *mockScene) GetLights() []lights.PointLight      { return s.lights }
func (s *mockScene) GetAmbient() float64                 { return s.ambient }
func (s *mockScene) GetBackground() core.Vec3            { return s.background }

// forwardRay looks from the origin down -Z
var forwardRay = core.Ray{Origin: core.NewVec3(0, 0, 0), Direction: core.NewVec3(0, 0, -1)}

func grey() *material.Material {
	return material.NewMatte(core.NewVec3(0.5, 0.5, 0.5))
}

// sphereAhead is a unit sphere whose front point (0,0,-4) faces the origin
func sphereAhead(mat *material.Material) geometry.Primitive {
	return geometry.NewSphere(core.NewVec3(0, 0, -5), 1, mat)
}

func whiteLight(position core.Vec3) lights.PointLight {
	return lights.NewPointLight(position, core.NewVec3(1, 1, 1), 1.0)
}

func assertColor(t *testing.T, expected, got core.Vec3) {
	t.Helper()
	const tolerance = 1e-9
	if math.Abs(got.X-expected.X) > tolerance ||
		math.Abs(got.Y-expected.Y) > tolerance ||
		math.Abs(got.Z-expected.Z) > tolerance {
		t.Errorf("Expected color %v, got %v", expected, got)
	}
}

func TestWhitted_MissReturnsBackground(t *testing.T) {
	background := core.NewVec3(0.25, 0.5, 0.75)
	scene := &mockScene{background: background, ambient: 0.1}

	w := NewWhitted(Config{})
	color, err := w.RayColor(forwardRay, scene)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if color != background {
		t.Errorf("Expected background %v, got %v", background, color)
	}

	counters := w.Counters()
	if counters.PrimaryRays != 1 || counters.PrimaryHits != 0 {
		t.Errorf("Expected 1 primary ray and no hits, got %+v", counters)
	}
}

func TestWhitted_Lighting(t *testing.T) {
	tests := []struct {
		name     string
		material *material.Material
		lights   []lights.PointLight
		ambient  float64
		expected core.Vec3
	}{
		{
			name:     "head-on diffuse",
			material: grey(),
			lights:   []lights.PointLight{whiteLight(core.NewVec3(0, 0, 0))},
			expected: core.NewVec3(0.5, 0.5, 0.5),
		},
		{
			name:     "ambient only without lights",
			material: grey(),
			ambient:  0.2,
			expected: core.NewVec3(0.1, 0.1, 0.1),
		},
		{
			name:     "light behind surface",
			material: grey(),
			lights:   []lights.PointLight{whiteLight(core.NewVec3(0, 0, -10))},
			ambient:  0.2,
			expected: core.NewVec3(0.1, 0.1, 0.1),
		},
		{
			name:     "colored light tints diffuse",
			material: material.NewMatte(core.NewVec3(1, 1, 1)),
			lights:   []lights.PointLight{lights.NewPointLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 0.5, 0), 0.5)},
			expected: core.NewVec3(0.5, 0.25, 0),
		},
		{
			name:     "specular highlight",
			material: material.NewMaterial(core.NewVec3(0, 0, 0), 0, 1, 1, 0),
			lights:   []lights.PointLight{lights.NewPointLight(core.NewVec3(0, 0, 0), core.NewVec3(0.5, 0.5, 0.5), 1.0)},
			expected: core.NewVec3(0.5, 0.5, 0.5),
		},
		{
			name:     "overexposure clamps",
			material: material.NewMatte(core.NewVec3(1, 1, 1)),
			lights: []lights.PointLight{
				whiteLight(core.NewVec3(0, 0, 0)),
				whiteLight(core.NewVec3(0, 0, 0)),
			},
			ambient:  0.5,
			expected: core.NewVec3(1, 1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := &mockScene{
				primitives: []geometry.Primitive{sphereAhead(tt.material)},
				lights:     tt.lights,
				ambient:    tt.ambient,
			}
			color, err := NewWhitted(Config{}).RayColor(forwardRay, scene)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			assertColor(t, tt.expected, color)
		})
	}
}

func TestWhitted_ShadowOccluder(t *testing.T) {
	// The light sits above and in front of the hit point; a small sphere
	// on the segment between them blocks it without touching the primary ray.
	scene := &mockScene{
		primitives: []geometry.Primitive{
			sphereAhead(grey()),
			geometry.NewSphere(core.NewVec3(0, 2, -2), 0.5, grey()),
		},
		lights:  []lights.PointLight{whiteLight(core.NewVec3(0, 4, 0))},
		ambient: 0.2,
	}

	w := NewWhitted(Config{})
	color, err := w.RayColor(forwardRay, scene)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertColor(t, core.NewVec3(0.1, 0.1, 0.1), color)

	counters := w.Counters()
	if counters.ShadowRays != 1 || counters.OccludedShadowRays != 1 {
		t.Errorf("Expected one occluded shadow ray, got %+v", counters)
	}

	// Without the occluder the light contributes diffuse at 45 degrees
	scene.primitives = scene.primitives[:1]
	color, err = NewWhitted(Config{}).RayColor(forwardRay, scene)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	lit := 0.1 + 0.5*math.Sqrt(0.5)
	assertColor(t, core.NewVec3(lit, lit, lit), color)
}

func TestWhitted_ShadowBoundedByLightDistance(t *testing.T) {
	// An object beyond the light must not cast a shadow
	scene := &mockScene{
		primitives: []geometry.Primitive{
			sphereAhead(grey()),
			geometry.NewSphere(core.NewVec3(0, 0, 5), 1, grey()),
		},
		lights: []lights.PointLight{whiteLight(core.NewVec3(0, 0, 0))},
	}

	w := NewWhitted(Config{})
	color, err := w.RayColor(forwardRay, scene)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertColor(t, core.NewVec3(0.5, 0.5, 0.5), color)
	if w.Counters().OccludedShadowRays != 0 {
		t.Errorf("Expected no occlusion, got %+v", w.Counters())
	}
}

func TestWhitted_ReflectionBlend(t *testing.T) {
	// Half-reflective white sphere with nothing behind the camera:
	// the reflected ray misses and picks up the background.
	scene := &mockScene{
		primitives: []geometry.Primitive{
			sphereAhead(material.NewMaterial(core.NewVec3(1, 1, 1), 1, 0, 1, 0.5)),
		},
		ambient:    0.2,
		background: core.NewVec3(1, 0, 0),
	}

	w := NewWhitted(Config{})
	color, err := w.RayColor(forwardRay, scene)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assertColor(t, core.NewVec3(0.6, 0.1, 0.1), color)
	if w.Counters().ReflectionRays != 1 {
		t.Errorf("Expected 1 reflection ray, got %+v", w.Counters())
	}
}

func TestWhitted_FacingMirrorsTerminate(t *testing.T) {
	mirror := material.NewMaterial(core.NewVec3(1, 1, 1), 0, 0, 1, 1)
	scene := &mockScene{
		primitives: []geometry.Primitive{
			geometry.NewPlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), mirror),
			geometry.NewPlane(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), mirror),
		},
		ambient: 0.5,
	}

	tests := []struct {
		name          string
		maxDepth      int
		expectedDepth int
	}{
		{"explicit depth", 3, 3},
		{"zero falls back to default", 0, DefaultMaxDepth},
		{"negative falls back to default", -2, DefaultMaxDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWhitted(Config{MaxDepth: tt.maxDepth})
			color, err := w.RayColor(forwardRay, scene)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			// A perfect mirror takes the deepest level's ambient term unchanged
			assertColor(t, core.NewVec3(0.5, 0.5, 0.5), color)

			counters := w.Counters()
			if counters.ReflectionRays != tt.expectedDepth {
				t.Errorf("Expected %d reflection rays, got %d", tt.expectedDepth, counters.ReflectionRays)
			}
			if counters.MaxDepthReached != tt.expectedDepth {
				t.Errorf("Expected max depth %d, got %d", tt.expectedDepth, counters.MaxDepthReached)
			}
		})
	}
}

func TestWhitted_DistanceFade(t *testing.T) {
	scene := &mockScene{
		primitives: []geometry.Primitive{sphereAhead(grey())},
		lights:     []lights.PointLight{whiteLight(core.NewVec3(0, 0, 0))},
	}

	tests := []struct {
		name     string
		fade     float64
		expected float64
	}{
		{"disabled", 0, 0.5},
		{"half way", 8, 0.25},
		{"beyond fade distance", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color, err := NewWhitted(Config{FadeDistance: tt.fade}).RayColor(forwardRay, scene)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			assertColor(t, core.NewVec3(tt.expected, tt.expected, tt.expected), color)
		})
	}
}

func TestWhitted_NonFiniteColor(t *testing.T) {
	scene := &mockScene{
		primitives: []geometry.Primitive{sphereAhead(grey())},
		lights:     []lights.PointLight{lights.NewPointLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), math.Inf(1))},
	}

	_, err := NewWhitted(Config{}).RayColor(forwardRay, scene)
	if !errors.Is(err, ErrNonFiniteColor) {
		t.Errorf("Expected ErrNonFiniteColor, got %v", err)
	}
}

func TestWhitted_LightAtHitPoint(t *testing.T) {
	scene := &mockScene{
		primitives: []geometry.Primitive{sphereAhead(grey())},
		lights:     []lights.PointLight{whiteLight(core.NewVec3(0, 0, -4))},
	}

	_, err := NewWhitted(Config{}).RayColor(forwardRay, scene)
	if !errors.Is(err, core.ErrDegenerateVector) {
		t.Errorf("Expected ErrDegenerateVector, got %v", err)
	}
}

func TestCounters_Add(t *testing.T) {
	total := Counters{PrimaryRays: 2, ShadowRays: 3, MaxDepthReached: 4}
	total.Add(Counters{PrimaryRays: 1, PrimaryHits: 1, ReflectionRays: 5, MaxDepthReached: 2})

	expected := Counters{PrimaryRays: 3, PrimaryHits: 1, ShadowRays: 3, ReflectionRays: 5, MaxDepthReached: 4}
	if total != expected {
		t.Errorf("Expected %+v, got %+v", expected, total)
	}
}

func TestMergeConfig(t *testing.T) {
	merged := MergeConfig(DefaultConfig(), Config{MaxDepth: 2, FadeDistance: 10})
	if merged.MaxDepth != 2 || merged.FadeDistance != 10 {
		t.Errorf("Overrides not applied: %+v", merged)
	}
	if merged.ShadowEpsilon != 1e-4 || merged.HitEpsilon != 1e-4 {
		t.Errorf("Defaults not kept: %+v", merged)
	}
}
