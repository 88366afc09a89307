package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner core.Vec3 // One corner of the quad
	U      core.Vec3 // First edge vector
	V      core.Vec3 // Second edge vector
	Normal core.Vec3 // Unit normal (U × V)
	D      float64   // Plane equation constant: normal · p = D
	W      core.Vec3 // Cached n / (n · n) for planar coordinates
}

// NewQuad creates a quad primitive
func NewQuad(corner, u, v core.Vec3, mat *material.Material) Primitive {
	n := u.Cross(v)
	q := Quad{
		Corner: corner,
		U:      u,
		V:      v,
		Normal: n.Normalize(),
	}
	q.D = q.Normal.Dot(corner)
	if lenSq := n.LengthSquared(); lenSq > 0 {
		q.W = n.Multiply(1.0 / lenSq)
	}
	return Primitive{Kind: KindQuad, Quad: q, Material: mat}
}

func (q *Quad) hit(ray core.Ray, tMin, tMax float64) (float64, core.Vec3, bool) {
	denominator := ray.Direction.Dot(q.Normal)
	if math.Abs(denominator) < 1e-8 {
		return 0, core.Vec3{}, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t <= tMin || t >= tMax {
		return 0, core.Vec3{}, false
	}

	// Planar coordinates of the hit point relative to the corner
	hitVector := ray.At(t).Subtract(q.Corner)
	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return 0, core.Vec3{}, false
	}

	return t, q.Normal, true
}

func (q *Quad) validate() error {
	if !q.Corner.IsFinite() || q.Normal.LengthSquared() == 0 {
		return ErrDegeneratePrimitive
	}
	return nil
}
