package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorsScene creates two perfect mirrors facing each other with a sphere
// between them. Every reflection path bounces until the depth cap.
func NewMirrorsScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 0.5, 3),
		LookAt: core.NewVec3(0, 0, -3),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60.0,
		Width:  320,
		Height: 240,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New(cameraConfig, core.NewVec3(0, 0, 0), 0.1)

	mirror := material.NewMirror(core.NewVec3(1, 1, 1), 1.0)
	s.AddPlane(core.NewVec3(0, 0, -4), core.NewVec3(0, 0, 1), mirror)
	s.AddPlane(core.NewVec3(0, 0, 4), core.NewVec3(0, 0, -1), mirror)
	s.AddPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), material.NewMatte(core.NewVec3(0.4, 0.4, 0.4)))
	s.AddSphere(core.NewVec3(0, 0, -1), 0.75, material.NewMirror(core.NewVec3(0.9, 0.9, 1.0), 1.0))
	s.AddPointLight(core.NewVec3(0, 3, 0), core.NewVec3(1, 1, 1), 1.0)
	return s
}
