package codec31

import (
	"bufio"
	"image"
	"image/color"
	"io"

	"github.com/mrjoshuak/go-codec31/internal/container"
	"github.com/mrjoshuak/go-codec31/internal/dct"
	"github.com/mrjoshuak/go-codec31/internal/huffman"
	"github.com/mrjoshuak/go-codec31/yuv"
	"github.com/pkg/errors"
)

// DecodeFrame decompresses a payload produced by EncodeFrame for a
// width×height frame.
func DecodeFrame(payload []byte, width, height int, o *Options) (*yuv.Frame420, error) {
	o = orDefault(o)
	if err := yuv.ValidateDimensions(width, height); err != nil {
		return nil, err
	}

	dump, err := huffman.Decode(payload)
	if err != nil {
		return nil, errors.Wrap(err, "entropy decoding")
	}
	if need := yuv.DumpSize(width, height); len(dump) != need {
		return nil, errors.Wrapf(ErrDimensions, "decoded %d bytes, %dx%d needs %d", len(dump), width, height, need)
	}

	f, err := yuv.Load(dump, width, height)
	if err != nil {
		return nil, err
	}
	dct.InverseFrame(f, o.transform())
	return f, nil
}

// DecodePicture decompresses a picture.
func DecodePicture(p *container.Picture, o *Options) (*yuv.Frame420, error) {
	return DecodeFrame(p.Data, int(p.Width), int(p.Height), o)
}

// Decode reads a codec31 picture from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	p, err := container.ReadPicture(bufio.NewReader(r))
	if err != nil {
		return nil, errors.Wrap(err, "reading picture")
	}
	f, err := DecodePicture(p, nil)
	if err != nil {
		return nil, errors.Wrap(err, "decoding picture")
	}
	return f.Image(), nil
}

// DecodeConfig returns the color model and dimensions of a codec31
// picture without decoding the payload.
func DecodeConfig(r io.Reader) (image.Config, error) {
	p, err := container.ReadPictureHeader(r)
	if err != nil {
		return image.Config{}, errors.Wrap(err, "reading picture header")
	}
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      int(p.Width),
		Height:     int(p.Height),
	}, nil
}
