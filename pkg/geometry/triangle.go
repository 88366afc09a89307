package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	Normal     core.Vec3 // Cached unit normal, (V1-V0) × (V2-V0)
}

// NewTriangle creates a triangle primitive
func NewTriangle(v0, v1, v2 core.Vec3, mat *material.Material) Primitive {
	tri := Triangle{V0: v0, V1: v1, V2: v2}
	tri.Normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return Primitive{Kind: KindTriangle, Triangle: tri, Material: mat}
}

// hit uses the Möller-Trumbore algorithm
func (tri *Triangle) hit(ray core.Ray, tMin, tMax float64) (float64, core.Vec3, bool) {
	const epsilon = 1e-8

	edge1 := tri.V1.Subtract(tri.V0)
	edge2 := tri.V2.Subtract(tri.V0)

	// Determinant near zero means the ray lies in the triangle's plane
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return 0, core.Vec3{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(tri.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, core.Vec3{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, core.Vec3{}, false
	}

	t := f * edge2.Dot(q)
	if t <= tMin || t >= tMax {
		return 0, core.Vec3{}, false
	}
	return t, tri.Normal, true
}

func (tri *Triangle) validate() error {
	if !tri.V0.IsFinite() || !tri.V1.IsFinite() || !tri.V2.IsFinite() || tri.Normal.LengthSquared() == 0 {
		return ErrDegeneratePrimitive
	}
	return nil
}
