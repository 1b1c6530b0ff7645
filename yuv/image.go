package yuv

import (
	"image"
	"image/color"

	"github.com/mrjoshuak/go-codec31/internal/mct"
)

// FromImage converts m to a 4:2:0 frame. A trailing odd row or column
// is dropped. Chroma is the average of the four pixels of each group.
func FromImage(m image.Image) (*Frame420, error) {
	b := m.Bounds()
	width := b.Dx() &^ 1
	height := b.Dy() &^ 1
	f, err := NewFrame420(width, height)
	if err != nil {
		return nil, err
	}

	if src, ok := m.(*image.YCbCr); ok && src.SubsampleRatio == image.YCbCrSubsampleRatio420 {
		f.fromYCbCr420(src)
		return f, nil
	}

	var r, g, bl [4]float64
	w := width / 2
	for gy := 0; gy < height/2; gy++ {
		for gx := 0; gx < w; gx++ {
			for slot := 0; slot < 4; slot++ {
				x := b.Min.X + 2*gx + slot%2
				y := b.Min.Y + 2*gy + slot/2
				c := color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)
				r[slot], g[slot], bl[slot] = float64(c.R), float64(c.G), float64(c.B)
			}
			mct.ForwardICT(r[:], g[:], bl[:])

			grp := &f.groups[gy*w+gx]
			var cb, cr float64
			for slot := 0; slot < 4; slot++ {
				grp.Y[slot] = mct.ClampUint8(r[slot] + 0.5)
				cb += g[slot]
				cr += bl[slot]
			}
			grp.Cb = mct.ClampUint8(cb/4 + 0.5)
			grp.Cr = mct.ClampUint8(cr/4 + 0.5)
		}
	}
	return f, nil
}

// fromYCbCr420 copies the planes of a 4:2:0 image without colour conversion.
func (f *Frame420) fromYCbCr420(src *image.YCbCr) {
	b := src.Bounds()
	w := f.width / 2
	for gy := 0; gy < f.height/2; gy++ {
		for gx := 0; gx < w; gx++ {
			grp := &f.groups[gy*w+gx]
			x := b.Min.X + 2*gx
			y := b.Min.Y + 2*gy
			grp.Y[0] = src.Y[src.YOffset(x, y)]
			grp.Y[1] = src.Y[src.YOffset(x+1, y)]
			grp.Y[2] = src.Y[src.YOffset(x, y+1)]
			grp.Y[3] = src.Y[src.YOffset(x+1, y+1)]
			ci := src.COffset(x, y)
			grp.Cb = src.Cb[ci]
			grp.Cr = src.Cr[ci]
		}
	}
}

// Image converts the frame to RGBA.
func (f *Frame420) Image() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	var y, cb, cr [4]float64
	w := f.width / 2
	for gy := 0; gy < f.height/2; gy++ {
		for gx := 0; gx < w; gx++ {
			grp := &f.groups[gy*w+gx]
			for slot := 0; slot < 4; slot++ {
				y[slot] = float64(grp.Y[slot])
				cb[slot] = float64(grp.Cb)
				cr[slot] = float64(grp.Cr)
			}
			mct.InverseICT(y[:], cb[:], cr[:])

			for slot := 0; slot < 4; slot++ {
				dst.SetRGBA(2*gx+slot%2, 2*gy+slot/2, color.RGBA{
					R: mct.ClampUint8(y[slot]),
					G: mct.ClampUint8(cb[slot]),
					B: mct.ClampUint8(cr[slot]),
					A: 0xFF,
				})
			}
		}
	}
	return dst
}
