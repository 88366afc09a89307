package integrator

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// ErrNonFiniteColor is returned when shading produces NaN or infinite values
var ErrNonFiniteColor = errors.New("integrator: non-finite color")

// DefaultMaxDepth is the reflection depth cap used when none is configured
const DefaultMaxDepth = 5

// Config contains the Whitted integrator settings
type Config struct {
	MaxDepth      int     // Maximum reflection depth; values <= 0 use DefaultMaxDepth
	HitEpsilon    float64 // Roots at or below this distance are discarded
	ShadowEpsilon float64 // Offset along the normal for secondary ray origins
	FadeDistance  float64 // Hit colors fade to black at this distance; 0 disables fading
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:      DefaultMaxDepth,
		HitEpsilon:    1e-4,
		ShadowEpsilon: 1e-4,
		FadeDistance:  0,
	}
}

// MergeConfig applies the non-zero fields of override on top of base
func MergeConfig(base, override Config) Config {
	result := base
	if override.MaxDepth > 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.HitEpsilon > 0 {
		result.HitEpsilon = override.HitEpsilon
	}
	if override.ShadowEpsilon > 0 {
		result.ShadowEpsilon = override.ShadowEpsilon
	}
	if override.FadeDistance > 0 {
		result.FadeDistance = override.FadeDistance
	}
	return result
}

// Whitted implements recursive ray tracing with Phong shading, hard shadows
// from point lights and mirror reflection bounded by a depth cap.
type Whitted struct {
	config   Config
	counters Counters
}

// NewWhitted creates a Whitted integrator; zero fields in config take defaults
func NewWhitted(config Config) *Whitted {
	return &Whitted{config: MergeConfig(DefaultConfig(), config)}
}

// Config returns the effective configuration
func (w *Whitted) Config() Config {
	return w.config
}

// Counters returns the ray counts accumulated so far
func (w *Whitted) Counters() Counters {
	return w.counters
}

// RayColor returns the color seen along a primary ray
func (w *Whitted) RayColor(ray core.Ray, scene Scene) (core.Vec3, error) {
	w.counters.PrimaryRays++
	return w.trace(ray, scene, 0)
}

// trace finds the nearest hit and shades it, or returns the background on a miss
func (w *Whitted) trace(ray core.Ray, scene Scene, depth int) (core.Vec3, error) {
	hit, isHit := geometry.Intersect(ray, scene.GetPrimitives(), w.config.HitEpsilon, math.Inf(1))
	if !isHit {
		return scene.GetBackground(), nil
	}
	if depth == 0 {
		w.counters.PrimaryHits++
	}
	return w.Shade(hit, ray.Direction, scene, depth)
}

// Shade computes the color at a hit point: ambient, plus diffuse and specular
// from each unoccluded light, blended with the mirror reflection by the
// material's reflectivity, clamped to [0, 1].
func (w *Whitted) Shade(hit geometry.HitRecord, incidentDir core.Vec3, scene Scene, depth int) (core.Vec3, error) {
	mat := hit.Material
	normal := hit.Normal
	offsetPoint := hit.Point.Add(normal.Multiply(w.config.ShadowEpsilon))
	prims := scene.GetPrimitives()
	viewDir := incidentDir.Negate()

	local := mat.Color.Multiply(scene.GetAmbient())

	for _, light := range scene.GetLights() {
		sample, err := light.Sample(hit.Point)
		if err != nil {
			return core.Vec3{}, err
		}

		// Lights behind the surface contribute nothing
		cosTheta := normal.Dot(sample.Direction)
		if cosTheta <= 0 {
			continue
		}

		w.counters.ShadowRays++
		shadowRay := core.Ray{Origin: offsetPoint, Direction: sample.Direction}
		lightDistance := light.Position.Subtract(offsetPoint).Length()
		if geometry.Occluded(shadowRay, prims, w.config.HitEpsilon, lightDistance) {
			w.counters.OccludedShadowRays++
			continue
		}

		diffuse := mat.Color.MultiplyVec(light.Color).Multiply(cosTheta * mat.Diffuse * light.Intensity)
		local = local.Add(diffuse)

		if mat.Specular > 0 {
			reflected := sample.Direction.Negate().Reflect(normal)
			highlight := math.Pow(max(0, reflected.Dot(viewDir)), mat.Shininess)
			local = local.Add(light.Color.Multiply(highlight * mat.Specular))
		}
	}

	color := local
	if mat.IsReflective() && depth < w.config.MaxDepth {
		reflectedDir, err := incidentDir.Reflect(normal).TryNormalize()
		if err != nil {
			return core.Vec3{}, fmt.Errorf("reflection at depth %d: %w", depth, err)
		}

		w.counters.ReflectionRays++
		w.counters.MaxDepthReached = max(w.counters.MaxDepthReached, depth+1)

		reflectedColor, err := w.trace(core.Ray{Origin: offsetPoint, Direction: reflectedDir}, scene, depth+1)
		if err != nil {
			return core.Vec3{}, err
		}
		color = local.Lerp(reflectedColor, mat.Reflectivity)
	}

	if w.config.FadeDistance > 0 {
		color = color.Multiply(max(0, 1-hit.T/w.config.FadeDistance))
	}

	if !color.IsFinite() {
		return core.Vec3{}, fmt.Errorf("%w at %v", ErrNonFiniteColor, hit.Point)
	}
	return color.Clamp(0, 1), nil
}
