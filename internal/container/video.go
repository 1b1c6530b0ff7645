package container

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// MaxFrameSize is the largest frame a 3-byte size field can describe.
const MaxFrameSize = 1<<24 - 1

const (
	countSize = 4
	sizeWidth = 3
)

// ErrFrameTooLarge is returned when a frame does not fit a 3-byte size.
var ErrFrameTooLarge = errors.New("container: frame too large")

// FrameType tags a video frame.
type FrameType uint8

// Frame types. Only intra frames are produced; PFrame is reserved.
const (
	IFrame FrameType = iota
	PFrame
)

// String returns the short name of the frame type.
func (t FrameType) String() string {
	switch t {
	case IFrame:
		return "I"
	case PFrame:
		return "P"
	default:
		return "Unknown"
	}
}

// Frame is one entry of a video.
type Frame struct {
	Type FrameType
	Data []byte
}

// Video is an ordered list of frames stored as
//
//	[4 bytes]      frame count N, big-endian
//	[3*N bytes]    size of each frame, big-endian
//	[...]          frame data, concatenated in order
//
// Frame types are not stored.
type Video struct {
	Frames []Frame
}

// Append adds an intra frame.
func (v *Video) Append(data []byte) {
	v.Frames = append(v.Frames, Frame{Type: IFrame, Data: data})
}

// Bytes serialises the video.
func (v *Video) Bytes() ([]byte, error) {
	total := countSize + sizeWidth*len(v.Frames)
	for i, f := range v.Frames {
		if len(f.Data) > MaxFrameSize {
			return nil, errors.Wrapf(ErrFrameTooLarge, "frame %d has %d bytes", i, len(f.Data))
		}
		total += len(f.Data)
	}

	out := make([]byte, countSize+sizeWidth*len(v.Frames), total)
	binary.BigEndian.PutUint32(out, uint32(len(v.Frames)))
	for i, f := range v.Frames {
		off := countSize + sizeWidth*i
		n := len(f.Data)
		out[off] = byte(n >> 16)
		out[off+1] = byte(n >> 8)
		out[off+2] = byte(n)
	}
	for _, f := range v.Frames {
		out = append(out, f.Data...)
	}
	return out, nil
}

// ParseVideo parses a serialised video. Frame data aliases the input
// and every frame is typed IFrame.
func ParseVideo(data []byte) (*Video, error) {
	if len(data) < countSize {
		return nil, errors.Wrapf(ErrTruncated, "video header has %d bytes", len(data))
	}
	count := uint64(binary.BigEndian.Uint32(data))
	table := data[countSize:]
	if uint64(len(table)) < sizeWidth*count {
		return nil, errors.Wrapf(ErrTruncated, "size table for %d frames", count)
	}

	body := table[sizeWidth*count:]
	v := &Video{Frames: make([]Frame, 0, count)}
	offset := 0
	for i := 0; i < int(count); i++ {
		e := table[sizeWidth*i:]
		size := int(e[0])<<16 | int(e[1])<<8 | int(e[2])
		if len(body)-offset < size {
			return nil, errors.Wrapf(ErrTruncated, "frame %d needs %d bytes, %d left", i, size, len(body)-offset)
		}
		v.Frames = append(v.Frames, Frame{Type: IFrame, Data: body[offset : offset+size]})
		offset += size
	}
	return v, nil
}
