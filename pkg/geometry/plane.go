package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal; zero when constructed from a degenerate normal
}

// NewPlane creates a plane primitive
func NewPlane(point, normal core.Vec3, mat *material.Material) Primitive {
	return Primitive{
		Kind:     KindPlane,
		Plane:    Plane{Point: point, Normal: normal.Normalize()},
		Material: mat,
	}
}

func (p *Plane) hit(ray core.Ray, tMin, tMax float64) (float64, core.Vec3, bool) {
	// Ray parallel to the plane never intersects
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < 1e-8 {
		return 0, core.Vec3{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t >= tMax {
		return 0, core.Vec3{}, false
	}
	return t, p.Normal, true
}

func (p *Plane) validate() error {
	if !p.Point.IsFinite() || p.Normal.LengthSquared() == 0 {
		return ErrDegeneratePrimitive
	}
	return nil
}
