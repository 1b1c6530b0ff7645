package codec31

import (
	"bytes"
	"testing"
)

// FuzzDecode tests the decoder with arbitrary input data.
// Run with: go test -fuzz=FuzzDecode -fuzztime=60s
func FuzzDecode(f *testing.F) {
	// Minimal picture header, 2x2, empty payload
	f.Add([]byte{0x31, 0x0C, 0x00, 'p', 1, 1, 0, 2, 0, 2})

	// Header followed by a zero bit count
	f.Add([]byte{0x31, 0x0C, 0x00, 'p', 1, 1, 0, 2, 0, 2, 0, 0, 0, 0})

	// Empty input
	f.Add([]byte{})

	// Single byte inputs
	f.Add([]byte{0x00})
	f.Add([]byte{0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		// The decoder should never panic, regardless of input
		r := bytes.NewReader(data)
		_, _ = Decode(r)
	})
}

// FuzzDecodeConfig tests header parsing with arbitrary input.
func FuzzDecodeConfig(f *testing.F) {
	f.Add([]byte{0x31, 0x0C, 0x00, 'p', 1, 1, 0, 2, 0, 2})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		r := bytes.NewReader(data)
		_, _ = DecodeConfig(r)
	})
}

// FuzzDecodeFrame feeds arbitrary payloads to the frame decoder.
func FuzzDecodeFrame(f *testing.F) {
	f.Add([]byte{0, 0, 0, 0}, uint8(8), uint8(8))
	f.Add([]byte{0, 0, 0, 8}, uint8(2), uint8(2))

	f.Fuzz(func(t *testing.T, payload []byte, w, h uint8) {
		_, _ = DecodeFrame(payload, int(w), int(h), &Options{Workers: 1})
	})
}

// FuzzDecodeVideo tests the video container and zstd detection.
func FuzzDecodeVideo(f *testing.F) {
	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte{0, 0, 0, 1, 0, 0, 10, 0x31, 0x0C, 0x00, 'p', 1, 1, 0, 2, 0, 2})
	f.Add([]byte{0x28, 0xB5, 0x2F, 0xFD})

	f.Fuzz(func(t *testing.T, data []byte) {
		r := bytes.NewReader(data)
		_, _ = DecodeVideo(r, &Options{Workers: 1})
	})
}
