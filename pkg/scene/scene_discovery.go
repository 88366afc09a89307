package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier used on the command line and in the API
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Short description
	Width       int    `json:"width"`       // Default output width
	Height      int    `json:"height"`      // Default output height
}

type builtinScene struct {
	info   SceneInfo
	create func(cameraOverrides ...geometry.CameraConfig) *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info:   SceneInfo{ID: "default", DisplayName: "Default", Description: "Spheres of mixed materials over a ground plane"},
		create: NewDefaultScene,
	},
	"single-sphere": {
		info:   SceneInfo{ID: "single-sphere", DisplayName: "Single Sphere", Description: "One white diffuse sphere and one point light"},
		create: NewSingleSphereScene,
	},
	"shadow": {
		info:   SceneInfo{ID: "shadow", DisplayName: "Shadow", Description: "A small sphere casting a shadow onto a large one"},
		create: NewShadowScene,
	},
	"mirrors": {
		info:   SceneInfo{ID: "mirrors", DisplayName: "Facing Mirrors", Description: "Two perfect mirrors facing each other"},
		create: NewMirrorsScene,
	},
	"cornell": {
		info:   SceneInfo{ID: "cornell", DisplayName: "Cornell Box", Description: "Quad walls, triangles and two spheres"},
		create: NewCornellScene,
	},
}

// List returns the built-in scenes sorted by ID
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtinScenes))
	for _, builtin := range builtinScenes {
		info := builtin.info
		config := builtin.create().CameraConfig
		info.Width, info.Height = config.Width, config.Height
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Lookup creates a fresh, unprocessed instance of the named built-in scene
func Lookup(name string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return builtin.create(cameraOverrides...), nil
}

// Create looks up a built-in scene, sets its resolution when width and height
// are positive, and preprocesses it for rendering
func Create(name string, width, height int) (*Scene, error) {
	s, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if width > 0 && height > 0 {
		s.SetResolution(width, height)
	}
	if err := s.Preprocess(); err != nil {
		return nil, err
	}
	return s, nil
}
