package codec31

import (
	"image"
	"io"

	"github.com/mrjoshuak/go-codec31/internal/container"
	"github.com/mrjoshuak/go-codec31/internal/dct"
	"github.com/mrjoshuak/go-codec31/internal/huffman"
	"github.com/mrjoshuak/go-codec31/yuv"
	"github.com/pkg/errors"
)

// EncodeFrame compresses f into a bare payload. f is not modified.
//
// The luma tiles of a copy of f are transformed and quantized, the copy
// is dumped to bytes and the dump is Huffman coded.
func EncodeFrame(f *yuv.Frame420, o *Options) ([]byte, error) {
	o = orDefault(o)
	coded := dct.EncodeFrame(f, o.transform())
	payload, err := huffman.Encode(coded.Dump())
	if err != nil {
		return nil, errors.Wrap(err, "entropy coding")
	}
	return payload, nil
}

// EncodePicture compresses f and wraps it in a picture header.
func EncodePicture(f *yuv.Frame420, o *Options) (*container.Picture, error) {
	width, height := f.Resolution()
	if width > MaxDimension || height > MaxDimension {
		return nil, errors.Wrapf(ErrDimensions, "%dx%d exceeds %d", width, height, MaxDimension)
	}
	payload, err := EncodeFrame(f, o)
	if err != nil {
		return nil, err
	}
	return &container.Picture{
		PixFmt: container.PixFmtYUV420P,
		Width:  uint16(width),
		Height: uint16(height),
		Data:   payload,
	}, nil
}

// Encode writes m to w as a codec31 picture. A trailing odd row or
// column of m is dropped. If o is nil, DefaultOptions is used.
func Encode(w io.Writer, m image.Image, o *Options) error {
	f, err := yuv.FromImage(m)
	if err != nil {
		return errors.Wrap(err, "converting image")
	}
	p, err := EncodePicture(f, o)
	if err != nil {
		return err
	}
	_, err = p.WriteTo(w)
	return err
}
