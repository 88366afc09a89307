package renderer

import (
	"bytes"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RenderStats contains statistics about a rendered frame
type RenderStats struct {
	Width              int           // Frame width in pixels
	Height             int           // Frame height in pixels
	TotalPixels        int           // Total number of pixels rendered
	PrimaryRays        int           // Camera rays traced; TotalPixels times the samples per pixel
	Tiles              int           // Number of tiles the frame was split into
	Workers            int           // Number of workers used
	TilesPerWorker     []int         // Tiles rendered by each worker, indexed by worker ID
	PrimaryHits        int           // Camera rays that hit a primitive
	ShadowRays         int           // Shadow rays cast toward lights
	OccludedShadowRays int           // Shadow rays blocked before reaching the light
	ReflectionRays     int           // Mirror reflection rays
	MaxDepthReached    int           // Deepest reflection level visited
	Elapsed            time.Duration // Wall clock render time
}

func newRenderStats(width, height, tiles int, tilesPerWorker []int, counters integrator.Counters, elapsed time.Duration) RenderStats {
	return RenderStats{
		Width:              width,
		Height:             height,
		TotalPixels:        width * height,
		PrimaryRays:        counters.PrimaryRays,
		Tiles:              tiles,
		Workers:            len(tilesPerWorker),
		TilesPerWorker:     tilesPerWorker,
		PrimaryHits:        counters.PrimaryHits,
		ShadowRays:         counters.ShadowRays,
		OccludedShadowRays: counters.OccludedShadowRays,
		ReflectionRays:     counters.ReflectionRays,
		MaxDepthReached:    counters.MaxDepthReached,
		Elapsed:            elapsed,
	}
}

// HitRatio returns the fraction of camera rays that hit something
func (s RenderStats) HitRatio() float64 {
	if s.PrimaryRays == 0 {
		return 0
	}
	return float64(s.PrimaryHits) / float64(s.PrimaryRays)
}

// Table renders the statistics as a text table
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Stat", "Value"})
	table.Append([]string{"Resolution", strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)})
	table.Append([]string{"Pixels", strconv.Itoa(s.TotalPixels)})
	table.Append([]string{"Primary rays", strconv.Itoa(s.PrimaryRays)})
	table.Append([]string{"Primary hits", strconv.Itoa(s.PrimaryHits) + " (" + strconv.FormatFloat(100*s.HitRatio(), 'f', 1, 64) + "%)"})
	table.Append([]string{"Shadow rays", strconv.Itoa(s.ShadowRays)})
	table.Append([]string{"Occluded shadow rays", strconv.Itoa(s.OccludedShadowRays)})
	table.Append([]string{"Reflection rays", strconv.Itoa(s.ReflectionRays)})
	table.Append([]string{"Max reflection depth", strconv.Itoa(s.MaxDepthReached)})
	table.Append([]string{"Tiles / workers", strconv.Itoa(s.Tiles) + " / " + strconv.Itoa(s.Workers)})
	table.SetFooter([]string{"Render time", s.Elapsed.Round(time.Millisecond).String()})
	table.Render()

	return buf.String()
}
