package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// SingleSphereBackground is the background color of the single sphere scene
var SingleSphereBackground = core.NewVec3(0.25, 0.5, 0.75)

// NewSingleSphereScene creates one white diffuse sphere at (0,0,-5) lit by a
// point light at (2,2,0), seen from the origin down -Z with a 90 degree fov.
func NewSingleSphereScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   90.0,
		Width:  4,
		Height: 4,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := New(cameraConfig, SingleSphereBackground, 0.1)
	s.AddSphere(core.NewVec3(0, 0, -5), 1, material.NewMatte(core.NewVec3(1, 1, 1)))
	s.AddPointLight(core.NewVec3(2, 2, 0), core.NewVec3(1, 1, 1), 1.0)
	return s
}
