package yuv

import (
	"github.com/pkg/errors"
)

// DumpSize returns the byte-dump length of a width×height frame:
// the full luma plane followed by two quarter-size chroma planes.
func DumpSize(width, height int) int {
	return 6 * (width / 2) * (height / 2)
}

// Dump serialises the frame as its luma plane in row-major order
// (each group contributes [y0,y1] to an even row and [y2,y3] to the
// odd row below it), then the Cb plane, then the Cr plane.
func (f *Frame420) Dump() []byte {
	w := f.width / 2
	h := f.height / 2
	out := make([]byte, DumpSize(f.width, f.height))
	luma := out[:4*w*h]
	cb := out[4*w*h : 5*w*h]
	cr := out[5*w*h:]

	for y := 0; y < h; y++ {
		top := 4 * y * w
		bottom := top + 2*w
		for x := 0; x < w; x++ {
			g := &f.groups[y*w+x]
			luma[top+2*x] = g.Y[0]
			luma[top+2*x+1] = g.Y[1]
			luma[bottom+2*x] = g.Y[2]
			luma[bottom+2*x+1] = g.Y[3]
			cb[y*w+x] = g.Cb
			cr[y*w+x] = g.Cr
		}
	}
	return out
}

// Load rebuilds a frame from a byte dump produced by Dump.
// Bytes past DumpSize(width, height) are ignored.
func Load(data []byte, width, height int) (*Frame420, error) {
	f, err := NewFrame420(width, height)
	if err != nil {
		return nil, err
	}
	if need := DumpSize(width, height); len(data) < need {
		return nil, errors.Wrapf(ErrShortBuffer, "have %d bytes, need %d", len(data), need)
	}

	w := width / 2
	h := height / 2
	cb := data[4*w*h : 5*w*h]
	cr := data[5*w*h : 6*w*h]
	for y := 0; y < h; y++ {
		top := 4 * y * w
		bottom := top + 2*w
		for x := 0; x < w; x++ {
			g := &f.groups[y*w+x]
			g.Y[0] = data[top+2*x]
			g.Y[1] = data[top+2*x+1]
			g.Y[2] = data[bottom+2*x]
			g.Y[3] = data[bottom+2*x+1]
			g.Cb = cb[y*w+x]
			g.Cr = cr[y*w+x]
		}
	}
	return f, nil
}
