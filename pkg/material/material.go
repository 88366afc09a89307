package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidMaterial is returned by Validate for out-of-range coefficients
var ErrInvalidMaterial = errors.New("material: invalid material")

// Material describes how a surface responds to light under the Phong model.
// Primitives hold a pointer to a Material so hit records share it by reference.
type Material struct {
	Color        core.Vec3 // Base color, each channel in [0, 1]
	Diffuse      float64   // Diffuse coefficient
	Specular     float64   // Specular coefficient
	Shininess    float64   // Phong exponent
	Reflectivity float64   // Fraction of outgoing color taken from the mirror reflection, in [0, 1]
}

// NewMaterial creates a material with explicit coefficients
func NewMaterial(color core.Vec3, diffuse, specular, shininess, reflectivity float64) *Material {
	return &Material{
		Color:        color,
		Diffuse:      diffuse,
		Specular:     specular,
		Shininess:    shininess,
		Reflectivity: reflectivity,
	}
}

// NewMatte creates a purely diffuse material
func NewMatte(color core.Vec3) *Material {
	return NewMaterial(color, 1.0, 0.0, 1.0, 0.0)
}

// NewPlastic creates a diffuse material with a tight white highlight
func NewPlastic(color core.Vec3, shininess float64) *Material {
	return NewMaterial(color, 0.9, 0.5, shininess, 0.0)
}

// NewMirror creates a reflective material; reflectivity 1 is a perfect mirror
func NewMirror(color core.Vec3, reflectivity float64) *Material {
	return NewMaterial(color, 0.1, 0.8, 200.0, reflectivity)
}

// Validate reports coefficients that would make shading undefined
func (m *Material) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil material", ErrInvalidMaterial)
	}
	if !m.Color.IsFinite() || m.Color.X < 0 || m.Color.Y < 0 || m.Color.Z < 0 {
		return fmt.Errorf("%w: color %v", ErrInvalidMaterial, m.Color)
	}
	if m.Diffuse < 0 || m.Specular < 0 {
		return fmt.Errorf("%w: negative coefficient (diffuse %g, specular %g)", ErrInvalidMaterial, m.Diffuse, m.Specular)
	}
	if m.Shininess < 0 {
		return fmt.Errorf("%w: negative shininess %g", ErrInvalidMaterial, m.Shininess)
	}
	if m.Reflectivity < 0 || m.Reflectivity > 1 {
		return fmt.Errorf("%w: reflectivity %g outside [0, 1]", ErrInvalidMaterial, m.Reflectivity)
	}
	return nil
}

// IsReflective reports whether the material contributes a mirror reflection
func (m *Material) IsReflective() bool {
	return m.Reflectivity > 0
}
