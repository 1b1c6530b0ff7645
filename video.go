package codec31

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/mrjoshuak/go-codec31/internal/container"
	"github.com/mrjoshuak/go-codec31/yuv"
	"github.com/pkg/errors"
)

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// EncodeVideo writes frames to w as a video stream. Every frame is
// stored as a complete picture, so frames may differ in resolution.
// If o is nil, DefaultOptions is used.
func EncodeVideo(w io.Writer, frames []*yuv.Frame420, o *Options) error {
	o = orDefault(o)
	v := &container.Video{}
	for i, f := range frames {
		p, err := EncodePicture(f, o)
		if err != nil {
			return errors.Wrapf(err, "encoding frame %d", i)
		}
		v.Append(p.Bytes())
	}

	data, err := v.Bytes()
	if err != nil {
		return err
	}
	switch o.Compression {
	case CompressionNone:
	case CompressionZstd:
		data = compressZstd(data)
	default:
		return errors.Errorf("codec31: unsupported compression: %s", o.Compression)
	}

	_, err = w.Write(data)
	return errors.Wrap(err, "writing video")
}

// DecodeVideo reads a video stream written by EncodeVideo. zstd framing
// is detected from the stream and removed before parsing.
func DecodeVideo(r io.Reader, o *Options) ([]*yuv.Frame420, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading video")
	}
	if bytes.HasPrefix(data, zstdMagic) {
		data, err = decompressZstd(data)
		if err != nil {
			return nil, errors.Wrap(err, "zstd")
		}
	}

	v, err := container.ParseVideo(data)
	if err != nil {
		return nil, err
	}
	frames := make([]*yuv.Frame420, 0, len(v.Frames))
	for i, vf := range v.Frames {
		p, err := container.ParsePicture(vf.Data)
		if err != nil {
			return nil, errors.Wrapf(err, "frame %d", i)
		}
		f, err := DecodePicture(p, o)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding frame %d", i)
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// --- ZSTD helpers ---

func mustNewZstdEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		panic(err)
	}
	return enc
}

func mustNewZstdDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		panic(err)
	}
	return dec
}

var zstdEncPool = sync.Pool{
	New: func() any {
		return mustNewZstdEncoder()
	},
}

var zstdDecPool = sync.Pool{
	New: func() any {
		return mustNewZstdDecoder()
	},
}

func compressZstd(data []byte) []byte {
	enc := zstdEncPool.Get().(*zstd.Encoder)
	out := enc.EncodeAll(data, nil)
	zstdEncPool.Put(enc)
	return out
}

func decompressZstd(data []byte) ([]byte, error) {
	dec := zstdDecPool.Get().(*zstd.Decoder)
	out, err := dec.DecodeAll(data, nil)
	zstdDecPool.Put(dec)
	return out, err
}
