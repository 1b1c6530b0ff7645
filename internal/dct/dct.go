// Package dct implements the 8×8 block Discrete Cosine Transform and
// quantization used for the luma plane.
//
// The forward path maps unsigned samples to centred values, applies a
// direct 2D DCT-II, divides by a quantization table, rounds to a signed
// byte and re-biases to an unsigned byte. The inverse path undoes each
// step in reverse order using a 2D DCT-III.
//
// The transform is evaluated directly (O(N⁴) per block). Only the
// cosine factors are precomputed.
package dct

import (
	"math"

	"github.com/mrjoshuak/go-codec31/internal/matrix"
)

// BlockSize is the side length of a transform block.
const BlockSize = 8

// Table is an 8×8 quantization table in row-major order.
// Entry j*BlockSize+i divides coefficient (i, j).
type Table [BlockSize * BlockSize]float64

// LumaTable is the standard JPEG luminance quantization table.
var LumaTable = Table{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// UnitTable leaves coefficients unscaled.
var UnitTable = Table{
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
}

// Precomputed cosine factors: cosTable[k][n] = cos((n+0.5)·π·k/N).
var (
	cosTable [BlockSize][BlockSize]float64
	scale    [BlockSize]float64
)

func init() {
	for k := 0; k < BlockSize; k++ {
		for n := 0; n < BlockSize; n++ {
			cosTable[k][n] = math.Cos((float64(n) + 0.5) * math.Pi * float64(k) / BlockSize)
		}
		scale[k] = c(k)
	}
}

// c is the DCT normalisation factor.
func c(k int) float64 {
	if k == 0 {
		return math.Sqrt(1.0 / BlockSize)
	}
	return math.Sqrt(2.0 / BlockSize)
}

// Forward applies the 2D DCT-II to an 8×8 block in place.
//
//	F(u,v) = C(u)·C(v)·Σi Σj f(i,j)·cos((i+0.5)πu/N)·cos((j+0.5)πv/N)
func Forward(m *matrix.Matrix[float64]) {
	src := m.Clone()
	for u := 0; u < BlockSize; u++ {
		for v := 0; v < BlockSize; v++ {
			var sum float64
			for i := 0; i < BlockSize; i++ {
				for j := 0; j < BlockSize; j++ {
					sum += src.Get(i, j) * cosTable[u][i] * cosTable[v][j]
				}
			}
			m.Set(u, v, scale[u]*scale[v]*sum)
		}
	}
}

// Inverse applies the 2D DCT-III to an 8×8 block of coefficients in place.
//
//	g(x,y) = Σu Σv C(u)·C(v)·F(u,v)·cos((x+0.5)πu/N)·cos((y+0.5)πv/N)
func Inverse(m *matrix.Matrix[float64]) {
	src := m.Clone()
	for x := 0; x < BlockSize; x++ {
		for y := 0; y < BlockSize; y++ {
			var sum float64
			for u := 0; u < BlockSize; u++ {
				for v := 0; v < BlockSize; v++ {
					sum += scale[u] * scale[v] * src.Get(u, v) * cosTable[u][x] * cosTable[v][y]
				}
			}
			m.Set(x, y, sum)
		}
	}
}

// Quantize divides each coefficient by the matching table entry.
func Quantize(m *matrix.Matrix[float64], t *Table) {
	e := m.Elements()
	for k := range e {
		e[k] /= t[k]
	}
}

// Dequantize multiplies each coefficient by the matching table entry.
func Dequantize(m *matrix.Matrix[float64], t *Table) {
	e := m.Elements()
	for k := range e {
		e[k] *= t[k]
	}
}

// RoundHalfUp truncates f and adds one when the discarded fraction is at
// least 0.5. Negative values therefore always truncate toward zero.
// Results outside the int8 range wrap.
func RoundHalfUp(f float64) int8 {
	t := int64(f)
	if f-float64(t) >= 0.5 {
		t++
	}
	return int8(t)
}

// Element conversions between the stages of a block.

func center(e uint8) int8 { return int8(int(e) - 128) }
func uncenter(e int8) uint8 { return uint8(int(e) + 128) }
func widen(e int8) float64 { return float64(e) }

// EncodeBlock runs the forward path on one 8×8 block of luma samples.
func EncodeBlock(block *matrix.Matrix[uint8], t *Table) *matrix.Matrix[uint8] {
	m := matrix.Convert(matrix.Convert(block, center), widen)
	Forward(m)
	Quantize(m, t)
	return matrix.Convert(matrix.Convert(m, RoundHalfUp), uncenter)
}

// DecodeBlock runs the inverse path on one 8×8 block produced by EncodeBlock.
func DecodeBlock(block *matrix.Matrix[uint8], t *Table) *matrix.Matrix[uint8] {
	m := matrix.Convert(matrix.Convert(block, center), widen)
	Dequantize(m, t)
	Inverse(m)
	return matrix.Convert(matrix.Convert(m, RoundHalfUp), uncenter)
}
