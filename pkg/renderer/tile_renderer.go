package renderer

import (
	"context"
	"fmt"
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier, row-major over the grid
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of disjoint tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// TileRenderer renders individual tiles using an integrator. It is owned by
// a single worker, so its integrator needs no locking.
type TileRenderer struct {
	scene      integrator.Scene
	integrator integrator.Integrator
	gamma      float64
	samples    int // Sub-pixel grid size along each axis
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator.
// Only the Gamma and SamplesPerPixel fields of config are used.
func NewTileRenderer(scene integrator.Scene, integratorInst integrator.Integrator, config Config) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		integrator: integratorInst,
		gamma:      config.Gamma,
		samples:    max(1, config.SamplesPerPixel),
	}
}

// RenderTile shades every pixel inside the tile bounds into fb.
// Tiles never overlap, so concurrent calls on different tiles are safe.
func (tr *TileRenderer) RenderTile(ctx context.Context, tile *Tile, fb *FrameBuffer) error {
	camera := tr.scene.GetCamera()
	bounds := tile.Bounds

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			color, err := tr.renderPixel(camera, x, y)
			if err != nil {
				return fmt.Errorf("pixel (%d, %d): %w", x, y, err)
			}
			fb.SetPixel(x, y, color.GammaCorrect(tr.gamma))
		}
	}
	return nil
}

// renderPixel returns the average color of an N×N grid of rays through the
// pixel, sampled at the centers of its sub-cells. With one sample it is the
// single ray through the pixel center.
func (tr *TileRenderer) renderPixel(camera *geometry.Camera, x, y int) (core.Vec3, error) {
	if tr.samples == 1 {
		return tr.integrator.RayColor(camera.GetRay(x, y), tr.scene)
	}

	n := float64(tr.samples)
	var sum core.Vec3
	for sy := 0; sy < tr.samples; sy++ {
		for sx := 0; sx < tr.samples; sx++ {
			u := float64(x) + (float64(sx)+0.5)/n
			v := float64(y) + (float64(sy)+0.5)/n
			color, err := tr.integrator.RayColor(camera.GetRayAt(u, v), tr.scene)
			if err != nil {
				return core.Vec3{}, err
			}
			sum = sum.Add(color)
		}
	}
	return sum.Multiply(1 / (n * n)), nil
}

// Counters returns the ray counts accumulated by this renderer's integrator
func (tr *TileRenderer) Counters() integrator.Counters {
	return tr.integrator.Counters()
}
