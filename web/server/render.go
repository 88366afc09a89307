package server

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/entry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string  `json:"scene"`    // Built-in scene ID
	Width    int     `json:"width"`    // Image width; 0 keeps the scene default
	Height   int     `json:"height"`   // Image height; 0 keeps the scene default
	Workers  int     `json:"workers"`  // Parallel workers; 0 uses every CPU
	Samples  int     `json:"samples"`  // Anti-aliasing grid size; each pixel averages samples×samples rays
	MaxDepth int     `json:"maxDepth"` // Maximum mirror reflection depth
	Gamma    float64 `json:"gamma"`    // Output gamma
	Fade     float64 `json:"fade"`     // Distance fade; 0 disables it
	Format   string  `json:"format"`   // png, bmp, tiff, ppm or json
}

// RenderResponse is returned for format=json and carries the frame as a
// base64 PNG alongside the render statistics
type RenderResponse struct {
	Scene     string           `json:"scene"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels        int `json:"totalPixels"`
	PrimaryRays        int `json:"primaryRays"`
	PrimaryHits        int `json:"primaryHits"`
	ShadowRays         int `json:"shadowRays"`
	OccludedShadowRays int `json:"occludedShadowRays"`
	ReflectionRays     int `json:"reflectionRays"`
	MaxDepthReached    int `json:"maxDepthReached"`
	Workers            int `json:"workers"`
	Tiles              int `json:"tiles"`
}

var renderCounter atomic.Int64

// handleRender renders one complete frame and returns it as an image or JSON
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := scene.Create(req.Scene, req.Width, req.Height)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	fb, err := renderer.NewFrameBuffer(sceneObj.CameraConfig.Width, sceneObj.CameraConfig.Height)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	renderID := "render-" + strconv.FormatInt(renderCounter.Add(1), 10)
	console := NewConsoleLogger(renderID, s.logger)
	config := renderer.Config{
		NumWorkers:      req.Workers,
		SamplesPerPixel: req.Samples,
		Gamma:           req.Gamma,
		Integrator: integrator.Config{
			MaxDepth:     req.MaxDepth,
			FadeDistance: req.Fade,
		},
	}

	// Use request context to stop rendering when the client disconnects
	startTime := time.Now()
	runner := entry.NewRunner(sceneObj, fb, config, console)
	if err := runner.RunRenderContext(r.Context()); err != nil {
		writeError(w, statusForError(err), fmt.Sprintf("Render error: %v", err))
		return
	}
	elapsed := time.Since(startTime)

	if req.Format == "json" {
		var buf bytes.Buffer
		if err := renderer.Encode(&buf, fb.Image(), renderer.FormatPNG); err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to encode image: %v", err))
			return
		}
		stats := runner.Stats()
		writeJSON(w, http.StatusOK, RenderResponse{
			Scene:     req.Scene,
			Width:     fb.Width,
			Height:    fb.Height,
			ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
			Stats: Stats{
				TotalPixels:        stats.TotalPixels,
				PrimaryRays:        stats.PrimaryRays,
				PrimaryHits:        stats.PrimaryHits,
				ShadowRays:         stats.ShadowRays,
				OccludedShadowRays: stats.OccludedShadowRays,
				ReflectionRays:     stats.ReflectionRays,
				MaxDepthReached:    stats.MaxDepthReached,
				Workers:            stats.Workers,
				Tiles:              stats.Tiles,
			},
			Console:   console.Messages(),
			ElapsedMs: elapsed.Milliseconds(),
		})
		return
	}

	format, _ := renderer.ParseFormat(req.Format)
	var buf bytes.Buffer
	if err := renderer.Encode(&buf, fb.Image(), format); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-Time", elapsed.String())
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if (req.Width == 0) != (req.Height == 0) {
		return nil, errors.New("width and height must be given together")
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, maxWorkers); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", 1, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", integrator.DefaultMaxDepth, 1, maxDepth); err != nil {
		return nil, err
	}
	if req.Gamma, err = parseFloatParam(query, "gamma", 1.0, 0.1, 5.0); err != nil {
		return nil, err
	}
	if req.Fade, err = parseFloatParam(query, "fade", 0, 0, 1e6); err != nil {
		return nil, err
	}

	req.Format = query.Get("format")
	switch req.Format {
	case "":
		req.Format = string(renderer.FormatPNG)
	case "json":
	default:
		format, err := renderer.ParseFormat(req.Format)
		if err != nil {
			return nil, err
		}
		req.Format = string(format)
	}

	return req, nil
}

// statusForError maps render failures to HTTP status codes
func statusForError(err error) int {
	switch entry.StatusOf(err) {
	case entry.StatusInvalidScene, entry.StatusDegenerate, entry.StatusBufferMismatch:
		if errors.Is(err, scene.ErrUnknownScene) {
			return http.StatusNotFound
		}
		return http.StatusBadRequest
	case entry.StatusCancelled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
