package graph_test

import (
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"

	"github.com/pipelined/graph"
)

func TestBuffers(t *testing.T) {
	var bs graph.Buffers
	assert.Equal(t, 0, bs.Channels())
	assert.Equal(t, 0, bs.Size())

	bs = graph.NewBuffers(2, 64)
	assert.Equal(t, 2, bs.Channels())
	assert.Equal(t, 64, bs.Size())
	for _, b := range bs {
		for _, s := range b {
			assert.Equal(t, 0.0, s)
		}
	}
}

func TestSilence(t *testing.T) {
	bs := graph.NewBuffers(2, 8)
	for i := range bs {
		for j := range bs[i] {
			bs[i][j] = 1
		}
	}
	bs.Silence()
	for _, b := range bs {
		for _, s := range b {
			assert.Equal(t, 0.0, s)
		}
	}
	assert.Equal(t, 8, bs.Size())
}

func TestFloatBufferInterop(t *testing.T) {
	bs := graph.Buffers{
		graph.Buffer{1, 3, 5},
		graph.Buffer{2, 4, 6},
	}

	buf := bs.AsFloatBuffer(44100)
	assert.Equal(t, 2, buf.Format.NumChannels)
	assert.Equal(t, 44100, buf.Format.SampleRate)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, buf.Data)

	back := graph.BuffersFromFloatBuffer(buf)
	assert.Equal(t, bs, back)

	assert.Nil(t, graph.BuffersFromFloatBuffer(nil))
}

func TestFloatBufferInteropRaggedData(t *testing.T) {
	// interleaved data with a trailing incomplete frame is truncated.
	buf := &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: 44100},
		Data:   []float64{1, 2, 3, 4, 5},
	}
	bs := graph.BuffersFromFloatBuffer(buf)
	assert.Equal(t, graph.Buffers{
		graph.Buffer{1, 3},
		graph.Buffer{2, 4},
	}, bs)
}
