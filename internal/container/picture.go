// Package container implements the codec31 file formats.
//
// A picture is a 10-byte header followed by an encoded payload:
//
//	offset  size  field
//	0       4     magic 0x31 0x0C 0x00 'p'
//	4       1     version (1)
//	5       1     pixel format (1 = YUV420P)
//	6       2     width, big-endian
//	8       2     height, big-endian
//	10      ...   payload
//
// A video is a frame count, a table of 3-byte frame sizes and the
// concatenated frames. See Video.
package container

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Format constants.
const (
	// Version is the only picture version this package reads and writes.
	Version uint8 = 1
	// PixFmtYUV420P is planar YUV with 2×2 chroma subsampling.
	PixFmtYUV420P uint8 = 1
	// HeaderSize is the size of the picture header.
	HeaderSize = 10
)

// Magic is the picture signature.
var Magic = [4]byte{0x31, 0x0C, 0x00, 'p'}

var (
	// ErrTruncated is returned when data ends before a declared field.
	ErrTruncated = errors.New("container: truncated data")
	// ErrInvalidMagic is returned when a picture does not start with Magic.
	ErrInvalidMagic = errors.New("container: invalid magic")
	// ErrUnsupportedVersion is returned for a picture version other than Version.
	ErrUnsupportedVersion = errors.New("container: unsupported version")
	// ErrUnsupportedPixFmt is returned for an unknown pixel format.
	ErrUnsupportedPixFmt = errors.New("container: unsupported pixel format")
)

// Picture is a single encoded frame with its resolution.
type Picture struct {
	PixFmt uint8
	Width  uint16
	Height uint16
	Data   []byte
}

// Header returns the 10 header bytes.
func (p *Picture) Header() []byte {
	header := make([]byte, HeaderSize)
	copy(header[0:4], Magic[:])
	header[4] = Version
	header[5] = p.PixFmt
	binary.BigEndian.PutUint16(header[6:8], p.Width)
	binary.BigEndian.PutUint16(header[8:10], p.Height)
	return header
}

// Bytes returns the complete picture.
func (p *Picture) Bytes() []byte {
	result := make([]byte, HeaderSize+len(p.Data))
	copy(result, p.Header())
	copy(result[HeaderSize:], p.Data)
	return result
}

// WriteTo writes the complete picture to w.
func (p *Picture) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Header())
	if err != nil {
		return int64(n), errors.Wrap(err, "writing picture header")
	}
	m, err := w.Write(p.Data)
	if err != nil {
		return int64(n + m), errors.Wrap(err, "writing picture data")
	}
	return int64(n + m), nil
}

// parseHeader validates a picture header and fills p without the payload.
func (p *Picture) parseHeader(header []byte) error {
	if len(header) < HeaderSize {
		return errors.Wrapf(ErrTruncated, "picture header has %d bytes", len(header))
	}
	if !bytes.Equal(header[0:4], Magic[:]) {
		return errors.Wrapf(ErrInvalidMagic, "% x", header[0:4])
	}
	if header[4] != Version {
		return errors.Wrapf(ErrUnsupportedVersion, "version %d", header[4])
	}
	if header[5] != PixFmtYUV420P {
		return errors.Wrapf(ErrUnsupportedPixFmt, "pixel format %d", header[5])
	}
	p.PixFmt = header[5]
	p.Width = binary.BigEndian.Uint16(header[6:8])
	p.Height = binary.BigEndian.Uint16(header[8:10])
	return nil
}

// ParsePicture parses a complete picture. Data aliases the input.
func ParsePicture(data []byte) (*Picture, error) {
	p := &Picture{}
	if err := p.parseHeader(data); err != nil {
		return nil, err
	}
	p.Data = data[HeaderSize:]
	return p, nil
}

// ReadPictureHeader reads and validates only the header. Data is nil.
func ReadPictureHeader(r io.Reader) (*Picture, error) {
	header := make([]byte, HeaderSize)
	if n, err := io.ReadFull(r, header); err != nil {
		return nil, errors.Wrapf(ErrTruncated, "picture header has %d bytes", n)
	}
	p := &Picture{}
	if err := p.parseHeader(header); err != nil {
		return nil, err
	}
	return p, nil
}

// ReadPicture reads a picture from r until EOF.
func ReadPicture(r io.Reader) (*Picture, error) {
	p, err := ReadPictureHeader(r)
	if err != nil {
		return nil, err
	}
	p.Data, err = io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading picture data")
	}
	return p, nil
}
