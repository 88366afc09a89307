package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a sphere primitive
func NewSphere(center core.Vec3, radius float64, mat *material.Material) Primitive {
	return Primitive{
		Kind:     KindSphere,
		Sphere:   Sphere{Center: center, Radius: radius},
		Material: mat,
	}
}

// hit solves |O + tD - C|² = r² for a unit direction D
func (s *Sphere) hit(ray core.Ray, tMin, tMax float64) (float64, core.Vec3, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, core.Vec3{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return 0, core.Vec3{}, false
		}
	}

	outwardNormal := ray.At(root).Subtract(s.Center).Multiply(1.0 / s.Radius)
	return root, outwardNormal, true
}

func (s *Sphere) validate() error {
	if !s.Center.IsFinite() {
		return ErrDegeneratePrimitive
	}
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return ErrDegenerateRadius
	}
	return nil
}
