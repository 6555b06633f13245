package core

import (
	"errors"
	"fmt"

	"github.com/go-audio/audio"
)

var (
	// ErrNilBuffer is returned when a nil host buffer is passed in.
	ErrNilBuffer = errors.New("audio buffer is nil")
	// ErrUnsupportedChannels is returned for buffers that are not mono.
	ErrUnsupportedChannels = errors.New("only mono buffers are supported")
)

// ProcessFloatBuffer runs p in place over the samples of a mono go-audio
// buffer. A buffer without format is treated as mono.
func ProcessFloatBuffer(p Processor[float64], buf *audio.FloatBuffer) error {
	if buf == nil {
		return ErrNilBuffer
	}

	if err := checkMono(buf.Format); err != nil {
		return err
	}

	ProcessBlock(p, buf.Data)

	return nil
}

// ProcessFloat32Buffer is the single-precision variant of ProcessFloatBuffer.
func ProcessFloat32Buffer(p Processor[float32], buf *audio.Float32Buffer) error {
	if buf == nil {
		return ErrNilBuffer
	}

	if err := checkMono(buf.Format); err != nil {
		return err
	}

	ProcessBlock(p, buf.Data)

	return nil
}

func checkMono(f *audio.Format) error {
	if f == nil || f.NumChannels <= 1 {
		return nil
	}

	return fmt.Errorf("%w: got %d channels", ErrUnsupportedChannels, f.NumChannels)
}
