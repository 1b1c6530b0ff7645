// Package yuv implements the 4:2:0 chroma-subsampled frame model.
//
// A Frame420 stores one Group per 2×2 pixel cluster: four luma samples
// and a single Cb/Cr pair shared by the cluster. Pixel (x, y) maps to
// group (y/2)*(width/2)+x/2 and luma slot 2*(y%2)+(x%2).
package yuv

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned for non-positive frame sizes.
	ErrInvalidDimensions = errors.New("yuv: invalid frame dimensions")
	// ErrOddDimensions is returned when width or height is odd.
	ErrOddDimensions = errors.New("yuv: frame dimensions must be even")
	// ErrShortBuffer is returned when a byte dump is too small for the frame.
	ErrShortBuffer = errors.New("yuv: buffer too short for frame")
)

// Frame is the pixel-access capability shared by frame representations.
// Coordinates outside the resolution panic.
type Frame interface {
	PixelY(x, y int) uint8
	PixelU(x, y int) uint8
	PixelV(x, y int) uint8
	SetPixelY(x, y int, v uint8)
	SetPixelU(x, y int, v uint8)
	SetPixelV(x, y int, v uint8)
	Resolution() (width, height int)
}

// Cloner is a Frame that can produce an independent copy of itself.
type Cloner[F any] interface {
	Frame
	Clone() F
}

// Pixel returns the (Y, U, V) triple at (x, y).
func Pixel(f Frame, x, y int) (uint8, uint8, uint8) {
	return f.PixelY(x, y), f.PixelU(x, y), f.PixelV(x, y)
}

// SetPixel stores a (Y, U, V) triple at (x, y).
func SetPixel(f Frame, x, y int, vy, vu, vv uint8) {
	f.SetPixelY(x, y, vy)
	f.SetPixelU(x, y, vu)
	f.SetPixelV(x, y, vv)
}

// Group holds the samples of one 2×2 pixel cluster.
// Y is ordered top-left, top-right, bottom-left, bottom-right.
type Group struct {
	Y  [4]uint8
	Cb uint8
	Cr uint8
}

// Frame420 is a YUV 4:2:0 frame.
type Frame420 struct {
	width  int
	height int
	groups []Group
}

// ValidateDimensions reports whether width×height can hold a 4:2:0 frame.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	if width%2 != 0 || height%2 != 0 {
		return errors.Wrapf(ErrOddDimensions, "%dx%d", width, height)
	}
	return nil
}

// NewFrame420 allocates a black frame (Y=0, Cb=Cr=0).
func NewFrame420(width, height int) (*Frame420, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	return &Frame420{
		width:  width,
		height: height,
		groups: make([]Group, (width/2)*(height/2)),
	}, nil
}

// Groups returns the group slice in row-major order. It aliases the frame.
func (f *Frame420) Groups() []Group {
	return f.groups
}

// Resolution returns the frame size in pixels.
func (f *Frame420) Resolution() (int, int) {
	return f.width, f.height
}

// Clone returns a deep copy of the frame.
func (f *Frame420) Clone() *Frame420 {
	groups := make([]Group, len(f.groups))
	copy(groups, f.groups)
	return &Frame420{width: f.width, height: f.height, groups: groups}
}

// group returns the group covering (x, y) and the luma slot of the pixel.
func (f *Frame420) group(x, y int) (*Group, int) {
	if uint(x) >= uint(f.width) || uint(y) >= uint(f.height) {
		panic(fmt.Sprintf("yuv: pixel (%d, %d) out of range for %dx%d frame", x, y, f.width, f.height))
	}
	return &f.groups[(y/2)*(f.width/2)+x/2], 2*(y%2) + x%2
}

// PixelY returns the luma sample at (x, y).
func (f *Frame420) PixelY(x, y int) uint8 {
	g, slot := f.group(x, y)
	return g.Y[slot]
}

// PixelU returns the Cb sample covering (x, y).
func (f *Frame420) PixelU(x, y int) uint8 {
	g, _ := f.group(x, y)
	return g.Cb
}

// PixelV returns the Cr sample covering (x, y).
func (f *Frame420) PixelV(x, y int) uint8 {
	g, _ := f.group(x, y)
	return g.Cr
}

// SetPixelY sets the luma sample at (x, y).
func (f *Frame420) SetPixelY(x, y int, v uint8) {
	g, slot := f.group(x, y)
	g.Y[slot] = v
}

// SetPixelU sets the Cb sample of the group covering (x, y).
func (f *Frame420) SetPixelU(x, y int, v uint8) {
	g, _ := f.group(x, y)
	g.Cb = v
}

// SetPixelV sets the Cr sample of the group covering (x, y).
func (f *Frame420) SetPixelV(x, y int, v uint8) {
	g, _ := f.group(x, y)
	g.Cr = v
}
