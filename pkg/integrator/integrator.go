package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene is the read-only view of a scene that integrators need
type Scene interface {
	GetCamera() *geometry.Camera
	GetPrimitives() []geometry.Primitive
	GetLights() []lights.PointLight
	GetAmbient() float64
	GetBackground() core.Vec3
}

// Integrator defines the interface for light transport algorithms.
// An Integrator is not safe for concurrent use; each worker owns one.
type Integrator interface {
	// RayColor computes the color seen along a primary ray
	RayColor(ray core.Ray, scene Scene) (core.Vec3, error)

	// Counters returns the ray counts accumulated so far
	Counters() Counters
}

// Counters tracks how many rays of each type an integrator has traced
type Counters struct {
	PrimaryRays        int // Rays cast from the camera
	PrimaryHits        int // Primary rays that hit a primitive
	ShadowRays         int // Shadow rays cast toward lights
	OccludedShadowRays int // Shadow rays blocked before reaching the light
	ReflectionRays     int // Mirror reflection rays
	MaxDepthReached    int // Deepest reflection level visited
}

// Add accumulates other into c
func (c *Counters) Add(other Counters) {
	c.PrimaryRays += other.PrimaryRays
	c.PrimaryHits += other.PrimaryHits
	c.ShadowRays += other.ShadowRays
	c.OccludedShadowRays += other.OccludedShadowRays
	c.ReflectionRays += other.ReflectionRays
	c.MaxDepthReached = max(c.MaxDepthReached, other.MaxDepthReached)
}
