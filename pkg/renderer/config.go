package renderer

import (
	"runtime"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// Config contains frame rendering configuration
type Config struct {
	TileSize        int               // Size of each square tile in pixels
	NumWorkers      int               // Number of parallel workers (0 = use CPU count)
	SamplesPerPixel int               // Anti-aliasing grid: each pixel averages N×N evenly spaced rays
	Gamma           float64           // Output gamma; 1.0 writes linear values
	Integrator      integrator.Config // Shading settings passed to each worker's integrator
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:        32,
		NumWorkers:      runtime.NumCPU(),
		SamplesPerPixel: 1,
		Gamma:           1.0,
		Integrator:      integrator.DefaultConfig(),
	}
}

// MergeConfig applies the non-zero fields of override on top of base
func MergeConfig(base, override Config) Config {
	result := base
	if override.TileSize > 0 {
		result.TileSize = override.TileSize
	}
	if override.NumWorkers > 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.SamplesPerPixel > 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.Gamma > 0 {
		result.Gamma = override.Gamma
	}
	result.Integrator = integrator.MergeConfig(base.Integrator, override.Integrator)
	return result
}
