// Package mct implements the colour transforms between RGB and YCbCr.
//
// Both directions use the full-range ITU-R BT.601 matrix. Chroma is
// stored offset by 128 so that every component fits in a byte.
package mct

// ChromaOffset is added to Cb and Cr so that they are stored unsigned.
const ChromaOffset = 128

// Forward transforms

// ForwardICT converts planar RGB to planar YCbCr in place.
// Cb and Cr are level shifted by ChromaOffset.
func ForwardICT(r, g, b []float64) {
	for i := range r {
		y := 0.299*r[i] + 0.587*g[i] + 0.114*b[i]
		cb := -0.168736*r[i] - 0.331264*g[i] + 0.5*b[i] + ChromaOffset
		cr := 0.5*r[i] - 0.418688*g[i] - 0.081312*b[i] + ChromaOffset

		r[i] = y
		g[i] = cb
		b[i] = cr
	}
}

// Inverse transforms

// InverseICT converts planar YCbCr (chroma offset by ChromaOffset) back
// to planar RGB in place.
func InverseICT(y, cb, cr []float64) {
	for i := range y {
		u := cb[i] - ChromaOffset
		v := cr[i] - ChromaOffset
		r := y[i] + 1.402*v
		g := y[i] - 0.344136*u - 0.714136*v
		b := y[i] + 1.772*u

		y[i] = r
		cb[i] = g
		cr[i] = b
	}
}

// Clamp functions

// ClampFloat64 clamps a float64 value to the given range.
func ClampFloat64(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampUint8 clamps v to [0, 255] and truncates it to a byte.
func ClampUint8(v float64) uint8 {
	return uint8(ClampFloat64(v, 0, 255))
}
