package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// InspectResult describes what the primary ray through one pixel sees
type InspectResult struct {
	Hit       bool
	Ray       core.Ray
	Record    geometry.HitRecord  // Valid only when Hit is true
	Primitive *geometry.Primitive // The primitive that was hit, nil on a miss
	Color     core.Vec3           // Shaded color before gamma, as written to the frame
}

// Inspect casts the primary ray through pixel (x, y) and reports the nearest
// hit together with the shaded color of that pixel.
func Inspect(scene integrator.Scene, config integrator.Config, x, y int) (InspectResult, error) {
	camera := scene.GetCamera()
	if camera == nil {
		return InspectResult{}, ErrNoCamera
	}
	width, height := camera.Config().Width, camera.Config().Height
	if x < 0 || x >= width || y < 0 || y >= height {
		return InspectResult{}, fmt.Errorf("renderer: pixel (%d, %d) outside %dx%d frame", x, y, width, height)
	}

	whitted := integrator.NewWhitted(config)
	ray := camera.GetRay(x, y)

	color, err := whitted.RayColor(ray, scene)
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{Ray: ray, Color: color}
	prims := scene.GetPrimitives()
	if hit, isHit := geometry.Intersect(ray, prims, whitted.Config().HitEpsilon, math.Inf(1)); isHit {
		result.Hit = true
		result.Record = hit
		result.Primitive = &prims[hit.Index]
	}
	return result, nil
}
