package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// TieTolerance is the distance within which two hits are considered equal.
// Ties resolve to the primitive with the lowest index.
const TieTolerance = 1e-9

// Intersect finds the nearest primitive hit by the ray with tMin < t < tMax.
// The returned record carries the index of the primitive that was hit.
func Intersect(ray core.Ray, prims []Primitive, tMin, tMax float64) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestSoFar := tMax

	for i := range prims {
		limit := closestSoFar
		if hitAnything {
			limit = min(tMax, closestSoFar+TieTolerance)
		}

		hit, isHit := prims[i].Hit(ray, tMin, limit)
		if !isHit {
			continue
		}
		// Only a strictly nearer hit displaces an earlier primitive
		if hitAnything && hit.T > closest.T-TieTolerance {
			continue
		}

		hit.Index = i
		closest = hit
		closestSoFar = hit.T
		hitAnything = true
	}

	return closest, hitAnything
}

// Occluded reports whether any primitive blocks the ray within tMin < t < tMax
func Occluded(ray core.Ray, prims []Primitive, tMin, tMax float64) bool {
	for i := range prims {
		if _, isHit := prims[i].Hit(ray, tMin, tMax); isHit {
			return true
		}
	}
	return false
}
