package renderer

import (
	"errors"
	"fmt"
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrBufferSize is returned when a pixel buffer does not match the frame size
var ErrBufferSize = errors.New("renderer: buffer size mismatch")

// FrameBuffer is an RGBA8 pixel buffer in row-major order with the origin at
// the top-left. Pixel (x, y) occupies Pix[(y*Width+x)*4 : (y*Width+x)*4+4].
type FrameBuffer struct {
	Pix    []byte
	Width  int
	Height int
}

// NewFrameBuffer allocates a zeroed buffer for a width x height frame
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrBufferSize, width, height)
	}
	return &FrameBuffer{
		Pix:    make([]byte, width*height*4),
		Width:  width,
		Height: height,
	}, nil
}

// WrapFrameBuffer uses a caller-owned byte slice as the pixel storage
func WrapFrameBuffer(pix []byte, width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrBufferSize, width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: have %d bytes, need %d for %dx%d", ErrBufferSize, len(pix), width*height*4, width, height)
	}
	return &FrameBuffer{Pix: pix, Width: width, Height: height}, nil
}

// SetPixel writes a color with channels in [0, 1] at (x, y) with alpha 255
func (fb *FrameBuffer) SetPixel(x, y int, color core.Vec3) {
	i := (y*fb.Width + x) * 4
	fb.Pix[i] = toByte(color.X)
	fb.Pix[i+1] = toByte(color.Y)
	fb.Pix[i+2] = toByte(color.Z)
	fb.Pix[i+3] = 255
}

// RGBA returns the bytes stored for pixel (x, y)
func (fb *FrameBuffer) RGBA(x, y int) (r, g, b, a uint8) {
	i := (y*fb.Width + x) * 4
	return fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2], fb.Pix[i+3]
}

// Image returns an image.RGBA view sharing the buffer's memory
func (fb *FrameBuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    fb.Pix,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// toByte maps [0, 1] to [0, 255], rounding to nearest
func toByte(c float64) uint8 {
	c = max(0, min(1, c))
	return uint8(c*255 + 0.5)
}
