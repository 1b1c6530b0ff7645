// Package codec31 provides a pure Go implementation of the codec31
// picture and video codec.
//
// A frame is stored as YUV 4:2:0. Every whole 8×8 tile of the luma plane
// is transformed with a 2D DCT-II and quantized with the JPEG luma
// table; the resulting frame dump is Huffman coded. Pictures wrap one
// coded frame in a 10-byte header; videos are a sequence of pictures.
//
// Basic usage for decoding:
//
//	file, _ := os.Open("image.31p")
//	img, err := codec31.Decode(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Basic usage for encoding:
//
//	file, _ := os.Create("output.31p")
//	err := codec31.Encode(file, img, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
package codec31

import (
	"image"
	"io"
	"runtime"

	"github.com/mrjoshuak/go-codec31/internal/container"
	"github.com/mrjoshuak/go-codec31/internal/dct"
	"github.com/pkg/errors"
)

// ErrDimensions is returned when a frame cannot be stored at, or was not
// coded at, the requested resolution.
var ErrDimensions = errors.New("codec31: dimension mismatch")

// MaxDimension is the largest width or height a picture header can hold.
const MaxDimension = 1<<16 - 1

// Compression selects the outer framing of a video stream.
type Compression int

const (
	// CompressionNone writes the raw video container.
	CompressionNone Compression = iota
	// CompressionZstd wraps the whole video container in a zstd frame.
	CompressionZstd
)

// String returns the string representation of the compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	default:
		return "Unknown"
	}
}

// Options holds the encoding and decoding options.
type Options struct {
	// Workers is the number of goroutines transforming luma tiles.
	// Values <= 1 transform sequentially.
	Workers int

	// Compression specifies the outer framing of video streams.
	// Pictures are never compressed a second time. Decoding detects
	// the framing on its own.
	Compression Compression
}

// DefaultOptions returns the default options.
func DefaultOptions() *Options {
	return &Options{
		Workers:     runtime.GOMAXPROCS(0),
		Compression: CompressionNone,
	}
}

func (o *Options) transform() dct.Options {
	return dct.Options{Workers: o.Workers, Table: &dct.LumaTable}
}

func orDefault(o *Options) *Options {
	if o == nil {
		return DefaultOptions()
	}
	return o
}

func init() {
	image.RegisterFormat("31p",
		string(container.Magic[:]),
		func(r io.Reader) (image.Image, error) {
			return Decode(r)
		},
		DecodeConfig)
}
