// Package matrix provides a fixed-size square matrix over a flat buffer.
package matrix

import "fmt"

// Matrix is a size×size matrix stored in a flat slice.
// Element (i, j) lives at index j*size+i: j selects the row, i the column.
type Matrix[E any] struct {
	elements []E
	size     int
}

// New allocates a zero-filled size×size matrix.
func New[E any](size int) *Matrix[E] {
	return &Matrix[E]{
		elements: make([]E, size*size),
		size:     size,
	}
}

// From wraps elements as a size×size matrix. The slice is not copied.
// It panics if len(elements) != size*size.
func From[E any](elements []E, size int) *Matrix[E] {
	if len(elements) != size*size {
		panic(fmt.Sprintf("matrix: %d elements do not form a %dx%d matrix", len(elements), size, size))
	}
	return &Matrix[E]{elements: elements, size: size}
}

// Get returns element (i, j).
func (m *Matrix[E]) Get(i, j int) E {
	return m.elements[m.index(i, j)]
}

// Set stores v at (i, j).
func (m *Matrix[E]) Set(i, j int, v E) {
	m.elements[m.index(i, j)] = v
}

// index panics for coordinates outside the matrix, even when the flat
// offset would still land inside the buffer.
func (m *Matrix[E]) index(i, j int) int {
	if uint(i) >= uint(m.size) || uint(j) >= uint(m.size) {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for size %d", i, j, m.size))
	}
	return j*m.size + i
}

// Len returns the side length.
func (m *Matrix[E]) Len() int {
	return m.size
}

// Elements returns the backing slice in row-major order.
func (m *Matrix[E]) Elements() []E {
	return m.elements
}

// Clone returns a deep copy.
func (m *Matrix[E]) Clone() *Matrix[E] {
	elements := make([]E, len(m.elements))
	copy(elements, m.elements)
	return &Matrix[E]{elements: elements, size: m.size}
}

// Convert maps every element of m through f into a new matrix of the same shape.
func Convert[E, T any](m *Matrix[E], f func(E) T) *Matrix[T] {
	result := New[T](m.size)
	for i, e := range m.elements {
		result.elements[i] = f(e)
	}
	return result
}
