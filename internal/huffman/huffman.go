// Package huffman implements the byte-oriented Huffman entropy coder.
//
// A payload is self-contained:
//
//	[4 bytes]   number of encoded data bits, big-endian
//	[256 bytes] leaf symbols in tree pre-order
//	[...]       tree shape bits, zero-padded to a byte boundary
//	[...]       encoded data bits, zero-padded to a byte boundary
//
// The tree is rebuilt from the input on every Encode call.
package huffman

import (
	"encoding/binary"
	"math"

	"github.com/mrjoshuak/go-codec31/internal/bitstream"
	"github.com/pkg/errors"
)

var (
	// ErrTruncated is returned when a payload ends before a declared field.
	ErrTruncated = errors.New("huffman: truncated payload")
	// ErrMalformedTree is returned when the serialised tree is not a full
	// binary tree with 256 leaves.
	ErrMalformedTree = errors.New("huffman: malformed tree")
	// ErrCodeOverrun is returned when the declared bit count ends inside a code.
	ErrCodeOverrun = errors.New("huffman: bit count ends inside a code")
	// ErrTooLarge is returned when the encoded data exceeds 2^32-1 bits.
	ErrTooLarge = errors.New("huffman: input too large")
)

const (
	headerSize = 4
	leavesSize = NumSymbols
	// treeBytes is the padded size of a serialised tree shape.
	treeBytes = (maxNodes + 7) / 8
)

// Encode compresses src. An empty src encodes to a 4-byte payload with a
// zero bit count and no tree.
func Encode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return make([]byte, headerSize), nil
	}

	freq := Count(src)
	tree := Build(&freq)
	codes := tree.Codes()

	var totalBits uint64
	for sym, f := range freq {
		totalBits += f * uint64(len(codes[sym]))
	}
	if totalBits > math.MaxUint32 {
		return nil, errors.Wrapf(ErrTooLarge, "%d data bits", totalBits)
	}

	data := bitstream.NewWriter(int(totalBits/8) + 1)
	for _, b := range src {
		data.WriteCode(codes[b])
	}

	shape := bitstream.NewWriter(treeBytes)
	out := make([]byte, headerSize, headerSize+leavesSize+treeBytes+data.TotalBytes())
	binary.BigEndian.PutUint32(out, uint32(data.TotalBits()))
	out = tree.WriteTo(shape, out)
	out = append(out, shape.Bytes()...)
	out = append(out, data.Bytes()...)
	return out, nil
}

// Decode decompresses a payload produced by Encode.
func Decode(payload []byte) ([]byte, error) {
	if len(payload) < headerSize {
		return nil, errors.Wrapf(ErrTruncated, "%d byte header", len(payload))
	}
	size := int(binary.BigEndian.Uint32(payload))
	if size == 0 {
		return []byte{}, nil
	}
	if len(payload) < headerSize+leavesSize {
		return nil, errors.Wrap(ErrTruncated, "leaf symbols")
	}

	leaves := payload[headerSize : headerSize+leavesSize]
	shape := bitstream.NewReader(payload[headerSize+leavesSize:])
	tree, err := ReadTree(shape, leaves)
	if err != nil {
		return nil, err
	}

	body := payload[headerSize+leavesSize+shape.TotalBytes():]
	if need := (size + 7) / 8; len(body) < need {
		return nil, errors.Wrapf(ErrTruncated, "data has %d bytes, need %d", len(body), need)
	}

	r := bitstream.NewReader(body)
	out := make([]byte, 0, size/2)
	for r.TotalBits() < size {
		n := tree.root
		for !tree.nodes[n].isLeaf() {
			bit, err := r.ReadBit()
			if err != nil {
				return nil, errors.Wrap(ErrCodeOverrun, "data")
			}
			n = tree.next(n, bit)
		}
		if r.TotalBits() > size {
			return nil, errors.Wrapf(ErrCodeOverrun, "symbol %d", len(out))
		}
		out = append(out, tree.nodes[n].symbol)
	}
	return out, nil
}
