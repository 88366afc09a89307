//go:build js && wasm

// Command wasm exposes the renderer to a JavaScript host.
//
// Exported functions on the global object:
//
//	run(target?)    renders one frame and returns the status code; when a
//	                Uint8ClampedArray of frameWidth()*frameHeight()*4 bytes is
//	                given, the frame is copied into it; any other target
//	                returns the buffer mismatch status
//	frameWidth()    width of the frame in pixels
//	frameHeight()   height of the frame in pixels
//	listScenes()    array of built-in scene IDs
//	selectScene(id) switches the scene; returns the status code
package main

import (
	"fmt"
	"syscall/js"

	"github.com/df07/go-whitted-raytracer/pkg/entry"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var logger = log.New("wasm")

// host owns the only frame buffer in the process
type host struct {
	runner *entry.Runner
}

func newHost(sceneName string) (*host, error) {
	s, err := scene.Lookup(sceneName)
	if err != nil {
		return nil, err
	}
	fb, err := renderer.NewFrameBuffer(s.CameraConfig.Width, s.CameraConfig.Height)
	if err != nil {
		return nil, err
	}
	// Browsers run wasm on a single thread
	config := renderer.Config{NumWorkers: 1}
	return &host{runner: entry.NewRunner(s, fb, config, logger)}, nil
}

func (h *host) run(this js.Value, args []js.Value) any {
	if err := h.runner.RunRender(); err != nil {
		return int(h.runner.Status())
	}

	if len(args) > 0 && !args[0].IsUndefined() && !args[0].IsNull() {
		fb := h.runner.FrameBuffer()
		if err := checkTarget(args[0], len(fb.Pix)); err != nil {
			logger.Errorf("Cannot copy frame: %v", err)
			return int(entry.StatusOf(err))
		}
		js.CopyBytesToJS(args[0], fb.Pix)
	}
	return int(entry.StatusOK)
}

// checkTarget reports whether target can receive a frame of size bytes.
// js.CopyBytesToJS panics on anything but a byte array.
func checkTarget(target js.Value, size int) error {
	if !target.InstanceOf(js.Global().Get("Uint8ClampedArray")) && !target.InstanceOf(js.Global().Get("Uint8Array")) {
		return fmt.Errorf("%w: target is a %s, not a Uint8ClampedArray", renderer.ErrBufferSize, target.Type())
	}
	if n := target.Get("length").Int(); n != size {
		return fmt.Errorf("%w: target array has %d bytes, frame needs %d", renderer.ErrBufferSize, n, size)
	}
	return nil
}

func (h *host) frameWidth(this js.Value, args []js.Value) any {
	return h.runner.FrameBuffer().Width
}

func (h *host) frameHeight(this js.Value, args []js.Value) any {
	return h.runner.FrameBuffer().Height
}

func listScenes(this js.Value, args []js.Value) any {
	ids := make([]any, 0)
	for _, info := range scene.List() {
		ids = append(ids, info.ID)
	}
	return js.ValueOf(ids)
}

func main() {
	h, err := newHost("default")
	if err != nil {
		logger.Errorf("Failed to create default scene: %v", err)
		return
	}

	selectScene := func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return int(entry.StatusInvalidScene)
		}
		next, err := newHost(args[0].String())
		if err != nil {
			logger.Errorf("Failed to select scene: %v", err)
			return int(entry.StatusOf(err))
		}
		*h = *next
		return int(entry.StatusOK)
	}

	js.Global().Set("run", js.FuncOf(h.run))
	js.Global().Set("frameWidth", js.FuncOf(h.frameWidth))
	js.Global().Set("frameHeight", js.FuncOf(h.frameHeight))
	js.Global().Set("listScenes", js.FuncOf(listScenes))
	js.Global().Set("selectScene", js.FuncOf(selectScene))

	logger.Noticef("Raytracer ready: %dx%d", h.runner.FrameBuffer().Width, h.runner.FrameBuffer().Height)

	// Keep the exported functions alive
	select {}
}
