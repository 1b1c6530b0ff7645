// Package bitstream provides MSB-first bit-level I/O over byte buffers.
//
// Bit 0 of a byte is its most significant bit (mask 1<<7). Both the
// Writer and the Reader move strictly forward; there is no seek.
package bitstream

import (
	"github.com/pkg/errors"
)

// ErrExhausted is returned when a Reader runs past the end of its buffer.
var ErrExhausted = errors.New("bitstream: buffer exhausted")

// Writer appends bits to an owned, growable buffer.
type Writer struct {
	data []byte
	pos  int   // Current byte index
	bit  uint8 // Current bit within the byte (0-7, 0 is the MSB)
}

// NewWriter creates a writer with room for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Writer{data: make([]byte, 0, sizeHint)}
}

// WriteBit appends a single bit (0 or 1). Storage grows by one zero
// byte whenever the write pointer moves past the end of the buffer.
func (w *Writer) WriteBit(bit int) {
	if len(w.data) <= w.pos {
		w.data = append(w.data, 0)
	}
	if bit&1 == 1 {
		w.data[w.pos] |= 1 << (7 - w.bit)
	}
	w.bit++
	if w.bit == 8 {
		w.bit = 0
		w.pos++
	}
}

// WriteBits writes the lowest n bits of val, most significant first.
func (w *Writer) WriteBits(val uint64, n uint) {
	for i := n; i > 0; i-- {
		w.WriteBit(int((val >> (i - 1)) & 1))
	}
}

// WriteCode writes a sequence of bits, one per element.
func (w *Writer) WriteCode(bits []uint8) {
	for _, b := range bits {
		w.WriteBit(int(b))
	}
}

// TotalBits returns the number of bits written so far.
func (w *Writer) TotalBits() int {
	return 8*w.pos + int(w.bit)
}

// TotalBytes returns the number of bytes touched by the written bits.
// A partially filled last byte counts as a whole byte.
func (w *Writer) TotalBytes() int {
	if w.bit > 0 {
		return w.pos + 1
	}
	return w.pos
}

// Bytes returns the written data. The last byte is zero-padded.
// The returned slice aliases the writer's buffer.
func (w *Writer) Bytes() []byte {
	return w.data[:w.TotalBytes()]
}

// Reader reads bits from a borrowed buffer.
type Reader struct {
	data []byte
	pos  int
	bit  uint8
}

// NewReader creates a reader over data. The buffer is not copied and
// must not be modified while the reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit reads the next bit (0 or 1).
func (r *Reader) ReadBit() (int, error) {
	if r.pos >= len(r.data) {
		return 0, ErrExhausted
	}
	bit := int((r.data[r.pos] >> (7 - r.bit)) & 1)
	r.bit++
	if r.bit == 8 {
		r.bit = 0
		r.pos++
	}
	return bit, nil
}

// ReadBits reads n bits (at most 64) into the low bits of the result.
func (r *Reader) ReadBits(n uint) (uint64, error) {
	var result uint64
	for i := uint(0); i < n; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		result = (result << 1) | uint64(bit)
	}
	return result, nil
}

// TotalBits returns the number of bits consumed so far.
func (r *Reader) TotalBits() int {
	return 8*r.pos + int(r.bit)
}

// TotalBytes returns the number of bytes touched by the consumed bits.
func (r *Reader) TotalBytes() int {
	if r.bit > 0 {
		return r.pos + 1
	}
	return r.pos
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return 8*len(r.data) - r.TotalBits()
}
