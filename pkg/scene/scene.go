package scene

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

var (
	ErrInvalidScene = errors.New("scene: invalid scene")
	ErrNoCamera     = errors.New("scene: no camera defined")
)

// Scene contains all the elements needed for rendering.
// It is built once and must not be modified while a render is in progress.
type Scene struct {
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	Primitives   []geometry.Primitive // Objects in the scene, in stable order
	Lights       []lights.PointLight  // Lights in the scene; all contribute additively
	Ambient      float64              // Global ambient coefficient
	Background   core.Vec3            // Color returned for rays that hit nothing
}

// New creates an empty scene with the given camera configuration
func New(cameraConfig geometry.CameraConfig, background core.Vec3, ambient float64) *Scene {
	return &Scene{
		CameraConfig: cameraConfig,
		Primitives:   make([]geometry.Primitive, 0),
		Lights:       make([]lights.PointLight, 0),
		Ambient:      ambient,
		Background:   background,
	}
}

// GetCamera returns the scene camera, or nil before Preprocess
func (s *Scene) GetCamera() *geometry.Camera { return s.Camera }

// GetPrimitives returns the primitives in stable order
func (s *Scene) GetPrimitives() []geometry.Primitive { return s.Primitives }

// GetLights returns the scene lights
func (s *Scene) GetLights() []lights.PointLight { return s.Lights }

// GetAmbient returns the global ambient coefficient
func (s *Scene) GetAmbient() float64 { return s.Ambient }

// GetBackground returns the background color
func (s *Scene) GetBackground() core.Vec3 { return s.Background }

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat *material.Material) {
	s.Primitives = append(s.Primitives, geometry.NewSphere(center, radius, mat))
}

// AddPlane adds an infinite plane to the scene
func (s *Scene) AddPlane(point, normal core.Vec3, mat *material.Material) {
	s.Primitives = append(s.Primitives, geometry.NewPlane(point, normal, mat))
}

// AddQuad adds a parallelogram to the scene
func (s *Scene) AddQuad(corner, u, v core.Vec3, mat *material.Material) {
	s.Primitives = append(s.Primitives, geometry.NewQuad(corner, u, v, mat))
}

// AddTriangle adds a triangle to the scene
func (s *Scene) AddTriangle(v0, v1, v2 core.Vec3, mat *material.Material) {
	s.Primitives = append(s.Primitives, geometry.NewTriangle(v0, v1, v2, mat))
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position, color core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, color, intensity))
}

// SetResolution changes the output size and discards the current camera
func (s *Scene) SetResolution(width, height int) {
	s.CameraConfig.Width = width
	s.CameraConfig.Height = height
	s.Camera = nil
}

// Preprocess prepares the scene for rendering: it builds the camera from the
// camera configuration and validates every element.
func (s *Scene) Preprocess() error {
	if s.Camera == nil {
		camera, err := geometry.NewCamera(s.CameraConfig)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidScene, err)
		}
		s.Camera = camera
	}
	return s.Validate()
}

// Validate reports the first problem that would make a render undefined.
// An empty primitive list is valid and renders as background only.
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, ErrNoCamera)
	}
	if s.Ambient < 0 || math.IsNaN(s.Ambient) || math.IsInf(s.Ambient, 0) {
		return fmt.Errorf("%w: ambient %g", ErrInvalidScene, s.Ambient)
	}
	if !s.Background.IsFinite() {
		return fmt.Errorf("%w: background %v", ErrInvalidScene, s.Background)
	}
	for i := range s.Primitives {
		if err := s.Primitives[i].Validate(); err != nil {
			return fmt.Errorf("%w: primitive %d: %w", ErrInvalidScene, i, err)
		}
	}
	for i, light := range s.Lights {
		if err := light.Validate(); err != nil {
			return fmt.Errorf("%w: light %d: %w", ErrInvalidScene, i, err)
		}
	}
	return nil
}

// GetPrimitiveCount returns the number of primitives of each kind
func (s *Scene) GetPrimitiveCount() map[geometry.Kind]int {
	counts := make(map[geometry.Kind]int)
	for i := range s.Primitives {
		counts[s.Primitives[i].Kind]++
	}
	return counts
}

// Stats builds a tabular summary of the scene contents
func (s *Scene) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Element", "Kind", "Count"})

	counts := s.GetPrimitiveCount()
	table.Append([]string{"Primitives", "---", strconv.Itoa(len(s.Primitives))})
	for _, kind := range []geometry.Kind{geometry.KindSphere, geometry.KindPlane, geometry.KindQuad, geometry.KindTriangle} {
		if counts[kind] > 0 {
			table.Append([]string{"", kind.String(), strconv.Itoa(counts[kind])})
		}
	}
	table.Append([]string{"Lights", "point", strconv.Itoa(len(s.Lights))})
	table.Append([]string{"Camera", "vfov", strconv.FormatFloat(s.CameraConfig.VFov, 'g', -1, 64)})
	table.Append([]string{"", "resolution", fmt.Sprintf("%dx%d", s.CameraConfig.Width, s.CameraConfig.Height)})
	table.Render()

	return buf.String()
}
