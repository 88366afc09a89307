package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

var (
	ErrDegenerateRadius    = errors.New("geometry: sphere radius must be positive and finite")
	ErrDegeneratePrimitive = errors.New("geometry: degenerate primitive")
	ErrUnknownKind         = errors.New("geometry: unknown primitive kind")
)

// HitRecord contains information about a ray-primitive intersection.
// It is transient: it lives only while one pixel is being evaluated.
type HitRecord struct {
	T         float64            // Parameter t along the ray
	Point     core.Vec3          // Point of intersection
	Normal    core.Vec3          // Unit surface normal, facing against the incoming ray
	FrontFace bool               // Whether the ray hit the outward-facing side
	Material  *material.Material // Shared material of the hit primitive
	Index     int                // Index of the hit primitive in the scene
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Kind identifies the variant held by a Primitive
type Kind uint8

const (
	KindSphere Kind = iota
	KindPlane
	KindQuad
	KindTriangle
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	case KindQuad:
		return "quad"
	case KindTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Primitive is a closed tagged variant over the supported shapes.
// Only the field selected by Kind is meaningful.
type Primitive struct {
	Kind     Kind
	Sphere   Sphere
	Plane    Plane
	Quad     Quad
	Triangle Triangle
	Material *material.Material
}

// Hit tests the primitive against the ray, accepting only tMin < t < tMax
func (p *Primitive) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	var (
		t       float64
		outward core.Vec3
		ok      bool
	)

	switch p.Kind {
	case KindSphere:
		t, outward, ok = p.Sphere.hit(ray, tMin, tMax)
	case KindPlane:
		t, outward, ok = p.Plane.hit(ray, tMin, tMax)
	case KindQuad:
		t, outward, ok = p.Quad.hit(ray, tMin, tMax)
	case KindTriangle:
		t, outward, ok = p.Triangle.hit(ray, tMin, tMax)
	}
	if !ok {
		return HitRecord{}, false
	}

	hit := HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, outward)
	return hit, true
}

// Validate reports degenerate geometry or an invalid material
func (p *Primitive) Validate() error {
	var err error
	switch p.Kind {
	case KindSphere:
		err = p.Sphere.validate()
	case KindPlane:
		err = p.Plane.validate()
	case KindQuad:
		err = p.Quad.validate()
	case KindTriangle:
		err = p.Triangle.validate()
	default:
		err = ErrUnknownKind
	}
	if err != nil {
		return fmt.Errorf("%s: %w", p.Kind, err)
	}
	if err := p.Material.Validate(); err != nil {
		return fmt.Errorf("%s: %w", p.Kind, err)
	}
	return nil
}
