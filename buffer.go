package graph

import (
	"github.com/go-audio/audio"
)

// Buffer is a fixed-length block of samples for a single channel. It is
// allocated once, when the owning node data is created, and overwritten
// in place on every processing block. It must not be resized during
// traversal.
type Buffer []float64

// NewBuffer returns a zeroed buffer of the provided size.
func NewBuffer(size int) Buffer {
	return make(Buffer, size)
}

// Silence sets all samples to zero.
func (b Buffer) Silence() {
	for i := range b {
		b[i] = 0
	}
}

// Buffers is a set of single-channel buffers that belongs to one node,
// one buffer per output channel.
type Buffers []Buffer

// NewBuffers returns zeroed buffers for the provided number of channels
// with the provided buffer size.
func NewBuffers(channels, size int) Buffers {
	bs := make(Buffers, channels)
	for i := range bs {
		bs[i] = NewBuffer(size)
	}
	return bs
}

// Silence sets all samples of all channels to zero.
func (bs Buffers) Silence() {
	for i := range bs {
		bs[i].Silence()
	}
}

// Channels returns the number of channels.
func (bs Buffers) Channels() int {
	return len(bs)
}

// Size returns the number of samples per channel.
func (bs Buffers) Size() int {
	if len(bs) == 0 {
		return 0
	}
	return len(bs[0])
}

// AsFloatBuffer returns an interleaved copy of the buffers for the
// provided sample rate. It allocates and is not meant to be used on the
// processing path.
func (bs Buffers) AsFloatBuffer(sampleRate int) *audio.FloatBuffer {
	numChannels := bs.Channels()
	buf := &audio.FloatBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  sampleRate,
		},
		Data: make([]float64, numChannels*bs.Size()),
	}
	for i := 0; i < bs.Size(); i++ {
		for j := range bs {
			buf.Data[i*numChannels+j] = bs[j][i]
		}
	}
	return buf
}

// BuffersFromFloatBuffer returns buffers with the deinterleaved copy of
// the provided audio buffer. Interleaved data that does not divide into
// whole frames is truncated to the last complete frame.
func BuffersFromFloatBuffer(buf *audio.FloatBuffer) Buffers {
	if buf == nil || buf.Format == nil || buf.Format.NumChannels == 0 {
		return nil
	}
	numChannels := buf.Format.NumChannels
	frames := buf.NumFrames()
	bs := NewBuffers(numChannels, frames)
	for i := range bs {
		for j, pos := i, 0; pos < frames; j, pos = j+numChannels, pos+1 {
			bs[i][pos] = buf.Data[j]
		}
	}
	return bs
}
