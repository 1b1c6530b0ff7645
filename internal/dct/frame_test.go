package dct

import (
	"testing"

	"github.com/mrjoshuak/go-codec31/yuv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrame(t *testing.T, w, h int, luma func(x, y int) uint8) *yuv.Frame420 {
	t.Helper()
	f, err := yuv.NewFrame420(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.SetPixelY(x, y, luma(x, y))
			f.SetPixelU(x, y, uint8(x+y))
			f.SetPixelV(x, y, uint8(200-x))
		}
	}
	return f
}

func TestTiles(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		count int
	}{
		{"exact", 16, 8, 2},
		{"partial right column", 20, 8, 2},
		{"partial bottom row", 8, 14, 1},
		{"smaller than a tile", 6, 6, 0},
		{"large", 64, 48, 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tiles(tt.w, tt.h), tt.count)
		})
	}
}

func TestTiles_CoverEachPixelOnce(t *testing.T) {
	const w, h = 32, 24
	covered := make([]int, w*h)
	for _, tl := range tiles(w, h) {
		for y := 0; y < BlockSize; y++ {
			for x := 0; x < BlockSize; x++ {
				covered[(tl.y+y)*w+tl.x+x]++
			}
		}
	}
	for i, n := range covered {
		require.Equal(t, 1, n, "pixel %d", i)
	}
}

func TestForwardFrame_MidGray(t *testing.T) {
	f := newFrame(t, 16, 16, func(x, y int) uint8 { return 128 })
	ForwardFrame(f, Options{})
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			assert.Equal(t, uint8(128), f.PixelY(x, y))
		}
	}
}

func TestForwardFrame_PartialTilesUntouched(t *testing.T) {
	luma := func(x, y int) uint8 { return uint8(90 + x + 2*y) }
	f := newFrame(t, 20, 14, luma)
	ForwardFrame(f, Options{})

	for y := 0; y < 14; y++ {
		for x := 0; x < 20; x++ {
			if x >= 16 || y >= 8 {
				assert.Equal(t, luma(x, y), f.PixelY(x, y), "(%d,%d)", x, y)
			}
		}
	}
}

func TestForwardFrame_ChromaUntouched(t *testing.T) {
	f := newFrame(t, 16, 16, func(x, y int) uint8 { return uint8(x * y) })
	orig := f.Clone()
	ForwardFrame(f, Options{})
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			assert.Equal(t, orig.PixelU(x, y), f.PixelU(x, y))
			assert.Equal(t, orig.PixelV(x, y), f.PixelV(x, y))
		}
	}
}

func TestForwardFrame_MatchesBlock(t *testing.T) {
	f := newFrame(t, 16, 8, func(x, y int) uint8 { return uint8(100 + 4*(x%8) + 3*y) })
	ForwardFrame(f, Options{})

	want := EncodeBlock(gradientBlock(), &LumaTable)
	for _, ox := range []int{0, 8} {
		for y := 0; y < BlockSize; y++ {
			for x := 0; x < BlockSize; x++ {
				assert.Equal(t, want.Get(x, y), f.PixelY(ox+x, y), "tile %d (%d,%d)", ox/8, x, y)
			}
		}
	}
}

func TestFrame_ParallelMatchesSequential(t *testing.T) {
	luma := func(x, y int) uint8 { return uint8(110 + (x*3+y*5)%30) }
	seq := newFrame(t, 64, 48, luma)
	par := newFrame(t, 64, 48, luma)

	ForwardFrame(seq, Options{Workers: 1})
	ForwardFrame(par, Options{Workers: 4})
	assert.Equal(t, seq.Groups(), par.Groups())

	InverseFrame(seq, Options{Workers: 1})
	InverseFrame(par, Options{Workers: -1})
	assert.Equal(t, seq.Groups(), par.Groups())
}

func TestEncodeDecodeFrame_Clones(t *testing.T) {
	src := newFrame(t, 16, 16, func(x, y int) uint8 { return uint8(100 + 4*(x%8) + 3*(y%8)) })
	orig := src.Clone()

	enc := EncodeFrame(src, Options{})
	assert.Equal(t, orig.Groups(), src.Groups(), "source frame is not modified")
	assert.NotEqual(t, src.Groups(), enc.Groups())

	dec := DecodeFrame(enc, Options{})
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			assert.InDelta(t, int(src.PixelY(x, y)), int(dec.PixelY(x, y)), 12, "(%d,%d)", x, y)
		}
	}
}

func TestFrame_UnitTableRoundTrip(t *testing.T) {
	f := newFrame(t, 16, 16, func(x, y int) uint8 { return uint8(120 + (x/8)*5 + (y/8)*3) })
	o := Options{Table: &UnitTable}
	out := DecodeFrame(EncodeFrame(f, o), o)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			assert.InDelta(t, int(f.PixelY(x, y)), int(out.PixelY(x, y)), 1)
		}
	}
}

func BenchmarkForwardFrame(b *testing.B) {
	f, _ := yuv.NewFrame420(320, 240)
	for i := range f.Groups() {
		f.Groups()[i].Y = [4]uint8{uint8(i), uint8(i + 1), uint8(i + 2), uint8(i + 3)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = EncodeFrame(f, Options{Workers: -1})
	}
}
