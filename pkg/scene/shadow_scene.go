package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewShadowScene creates a small sphere floating above a large one, with an
// overhead light so the small sphere casts a shadow onto the large one.
func NewShadowScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 3, 6),
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45.0,
		Width:  320,
		Height: 240,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New(cameraConfig, core.NewVec3(0.05, 0.05, 0.1), 0.1)
	s.AddSphere(core.NewVec3(0, -100, 0), 100, material.NewMatte(core.NewVec3(0.9, 0.9, 0.9)))
	s.AddSphere(core.NewVec3(0, 1.5, 0), 0.5, material.NewPlastic(core.NewVec3(0.9, 0.2, 0.2), 32))
	s.AddPointLight(core.NewVec3(0, 8, 0), core.NewVec3(1, 1, 1), 1.0)
	return s
}
