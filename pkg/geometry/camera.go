package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var ErrDegenerateCamera = errors.New("geometry: degenerate camera")

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera is looking at
	Up     core.Vec3 // Up direction (usually (0,1,0))
	VFov   float64   // Vertical field of view in degrees
	Width  int       // Output width in pixels
	Height int       // Output height in pixels
}

// MergeCameraConfig applies the non-zero fields of override on top of base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	return result
}

// Camera generates primary rays through pixel centers
type Camera struct {
	config     CameraConfig
	origin     core.Vec3
	forward    core.Vec3 // Unit look direction
	right      core.Vec3 // Unit camera-space +X in world space
	up         core.Vec3 // Unit camera-space +Y in world space
	halfHeight float64   // tan(vfov/2)
	halfWidth  float64   // halfHeight * aspect
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrDegenerateCamera, config.Width, config.Height)
	}
	if !(config.VFov > 0 && config.VFov < 180) {
		return nil, fmt.Errorf("%w: vertical fov %g", ErrDegenerateCamera, config.VFov)
	}
	forward, err := config.LookAt.Subtract(config.Center).TryNormalize()
	if err != nil {
		return nil, fmt.Errorf("%w: look direction: %w", ErrDegenerateCamera, err)
	}
	if _, err := forward.Cross(config.Up).TryNormalize(); err != nil {
		return nil, fmt.Errorf("%w: up vector %v parallel to look direction: %w", ErrDegenerateCamera, config.Up, err)
	}

	// The inverse of the view matrix maps camera space to world space; its
	// first three columns are the camera's right, up and backward axes.
	view := mgl64.LookAtV(toMgl(config.Center), toMgl(config.LookAt), toMgl(config.Up))
	cameraToWorld := view.Inv()

	halfHeight := math.Tan(config.VFov * math.Pi / 360.0)
	aspect := float64(config.Width) / float64(config.Height)

	return &Camera{
		config:     config,
		origin:     config.Center,
		forward:    fromMgl(cameraToWorld.Col(2).Vec3()).Negate().Normalize(),
		right:      fromMgl(cameraToWorld.Col(0).Vec3()).Normalize(),
		up:         fromMgl(cameraToWorld.Col(1).Vec3()).Normalize(),
		halfHeight: halfHeight,
		halfWidth:  halfHeight * aspect,
	}, nil
}

// GetRay returns the primary ray through the center of pixel (px, py).
// Pixel (0, 0) is the top-left corner of the image.
func (c *Camera) GetRay(px, py int) core.Ray {
	return c.GetRayAt(float64(px)+0.5, float64(py)+0.5)
}

// GetRayAt returns the primary ray through the continuous image position
// (u, v), measured in pixels from the top-left corner of the image.
// GetRayAt(px+0.5, py+0.5) is the ray through the center of pixel (px, py).
func (c *Camera) GetRayAt(u, v float64) core.Ray {
	ndcX := u/float64(c.config.Width)*2 - 1
	ndcY := 1 - v/float64(c.config.Height)*2

	direction := c.forward.
		Add(c.right.Multiply(ndcX * c.halfWidth)).
		Add(c.up.Multiply(ndcY * c.halfHeight))

	// forward is a unit vector orthogonal to right and up, so direction is never zero
	return core.Ray{Origin: c.origin, Direction: direction.Normalize()}
}

// GetCameraForward returns the unit look direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.forward
}

// Origin returns the camera position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
