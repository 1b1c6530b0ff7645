package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ZeroFilled(t *testing.T) {
	m := New[float64](8)
	require.Equal(t, 8, m.Len())
	require.Len(t, m.Elements(), 64)
	for _, e := range m.Elements() {
		assert.Zero(t, e)
	}
}

func TestSetGet(t *testing.T) {
	m := New[int](4)
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			m.Set(i, j, 10*j+i)
		}
	}
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			assert.Equal(t, 10*j+i, m.Get(i, j), "(%d,%d)", i, j)
		}
	}
}

func TestLayout_RowMajor(t *testing.T) {
	m := From([]uint8{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, 3)

	// i is the column, j the row.
	assert.Equal(t, uint8(2), m.Get(1, 0))
	assert.Equal(t, uint8(4), m.Get(0, 1))
	assert.Equal(t, uint8(9), m.Get(2, 2))

	m.Set(2, 0, 30)
	assert.Equal(t, uint8(30), m.Elements()[2])
}

func TestFrom_WrapsWithoutCopy(t *testing.T) {
	buf := []int8{0, 0, 0, 0}
	m := From(buf, 2)
	m.Set(1, 1, -5)
	assert.Equal(t, int8(-5), buf[3])
}

func TestFrom_LengthMismatch(t *testing.T) {
	assert.Panics(t, func() { From([]int{1, 2, 3}, 2) })
}

func TestOutOfRange(t *testing.T) {
	m := New[int](4)
	tests := []struct {
		name string
		i, j int
	}{
		{"column past end", 4, 0},
		{"row past end", 0, 4},
		{"negative column", -1, 2},
		{"column wraps into next row", 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { m.Get(tt.i, tt.j) })
			assert.Panics(t, func() { m.Set(tt.i, tt.j, 1) })
		})
	}
}

func TestConvert(t *testing.T) {
	src := From([]uint8{0, 64, 128, 255}, 2)
	dst := Convert(src, func(e uint8) int8 { return int8(int(e) - 128) })

	require.Equal(t, src.Len(), dst.Len())
	require.Len(t, dst.Elements(), len(src.Elements()))
	assert.Equal(t, []int8{-128, -64, 0, 127}, dst.Elements())

	// The source is untouched and the result does not alias it.
	dst.Set(0, 0, 1)
	assert.Equal(t, uint8(0), src.Get(0, 0))
}

func TestClone(t *testing.T) {
	m := From([]float64{1, 2, 3, 4}, 2)
	c := m.Clone()
	c.Set(0, 0, 100)
	assert.Equal(t, 1.0, m.Get(0, 0))
	assert.Equal(t, 100.0, c.Get(0, 0))
}
