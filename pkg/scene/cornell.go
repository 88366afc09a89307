package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell box built from quad walls, lit by a point
// light just below the ceiling
func NewCornellScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(278, 278, -800), // Camera outside the box looking in
		LookAt: core.NewVec3(278, 278, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
		Width:  400,
		Height: 400, // Square aspect ratio for Cornell box
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New(cameraConfig, core.NewVec3(0, 0, 0), 0.08)

	red := material.NewMatte(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewMatte(core.NewVec3(0.12, 0.45, 0.15))
	white := material.NewMatte(core.NewVec3(0.73, 0.73, 0.73))
	mirror := material.NewMirror(core.NewVec3(0.9, 0.9, 0.9), 0.9)
	glossy := material.NewPlastic(core.NewVec3(0.2, 0.3, 0.8), 128)

	// Walls
	s.AddQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green) // left
	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red)     // right
	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white)   // floor
	s.AddQuad(core.NewVec3(0, 555, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white) // ceiling
	s.AddQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white) // back

	// A wedge made of two triangles leaning on the back wall
	s.AddTriangle(core.NewVec3(80, 0, 540), core.NewVec3(200, 0, 540), core.NewVec3(140, 220, 540), white)
	s.AddTriangle(core.NewVec3(80, 0, 540), core.NewVec3(140, 220, 540), core.NewVec3(140, 0, 420), white)

	s.AddSphere(core.NewVec3(190, 90, 190), 90, mirror)
	s.AddSphere(core.NewVec3(380, 80, 320), 80, glossy)

	s.AddPointLight(core.NewVec3(278, 540, 278), core.NewVec3(1, 0.95, 0.85), 1.0)
	return s
}
