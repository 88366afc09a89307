package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight is an infinitesimal light source that illuminates in all directions
type PointLight struct {
	Position  core.Vec3 // World position
	Color     core.Vec3 // Light color, each channel in [0, 1]
	Intensity float64   // Scalar multiplier applied to the diffuse term
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, intensity float64) PointLight {
	return PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// LightSample describes the light as seen from a shading point
type LightSample struct {
	Direction core.Vec3 // Unit direction from the shading point to the light
	Distance  float64   // Distance from the shading point to the light
}

// Sample returns the direction and distance from point to the light.
// It fails with core.ErrDegenerateVector when the point coincides with the light.
func (l PointLight) Sample(point core.Vec3) (LightSample, error) {
	toLight := l.Position.Subtract(point)
	direction, err := toLight.TryNormalize()
	if err != nil {
		return LightSample{}, fmt.Errorf("light at %v: %w", l.Position, err)
	}
	return LightSample{
		Direction: direction,
		Distance:  toLight.Length(),
	}, nil
}

// Validate reports non-finite positions or colors and negative intensity
func (l PointLight) Validate() error {
	if !l.Position.IsFinite() || !l.Color.IsFinite() {
		return fmt.Errorf("point light: non-finite position %v or color %v", l.Position, l.Color)
	}
	if l.Intensity < 0 {
		return fmt.Errorf("point light: negative intensity %g", l.Intensity)
	}
	return nil
}
