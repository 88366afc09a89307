package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres over a ground plane
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt: core.NewVec3(0, 0.5, -1), // Look at the center sphere
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
		Width:  400,
		Height: 225, // 16:9 aspect ratio
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New(cameraConfig, core.NewVec3(0.5, 0.7, 1.0), 0.1)

	// Create materials
	ground := material.NewMatte(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	red := material.NewPlastic(core.NewVec3(0.65, 0.25, 0.2), 64)
	blue := material.NewMatte(core.NewVec3(0.1, 0.2, 0.5))
	silver := material.NewMirror(core.NewVec3(0.8, 0.8, 0.8), 0.8)
	gold := material.NewMaterial(core.NewVec3(0.8, 0.6, 0.2), 0.6, 0.6, 32, 0.3)

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground)
	s.AddSphere(core.NewVec3(0, 0.5, -1), 0.5, red)
	s.AddSphere(core.NewVec3(-1, 0.5, -1), 0.5, silver)
	s.AddSphere(core.NewVec3(1, 0.5, -1), 0.5, gold)
	s.AddSphere(core.NewVec3(0.5, 0.2, -0.4), 0.2, blue)

	s.AddPointLight(core.NewVec3(5, 5, 3), core.NewVec3(1.0, 0.95, 0.9), 0.9)
	s.AddPointLight(core.NewVec3(-4, 3, 2), core.NewVec3(0.6, 0.7, 1.0), 0.4)

	return s
}
