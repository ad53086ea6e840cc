package node

import (
	"github.com/pipelined/graph"
)

// Delay delays each channel of its first input by a fixed number of
// samples, with history kept across blocks. Channels without a
// configured delay pass through unchanged.
type Delay struct {
	rings [][]float64
	pos   []int
}

// NewDelay returns a delay node with one delay length per channel, in
// samples. A zero length means pass-through for that channel.
func NewDelay(samples ...int) *Delay {
	d := &Delay{
		rings: make([][]float64, len(samples)),
		pos:   make([]int, len(samples)),
	}
	for i, n := range samples {
		if n > 0 {
			d.rings[i] = make([]float64, n)
		}
	}
	return d
}

// Process implements graph.Node.
func (d *Delay) Process(inputs []graph.Input, output graph.Buffers) {
	if len(inputs) == 0 {
		output.Silence()
		return
	}
	in := inputs[0].Buffers()
	for ch, buffer := range output {
		if ch >= len(in) {
			buffer.Silence()
			continue
		}
		if ch >= len(d.rings) || d.rings[ch] == nil {
			copy(buffer, in[ch])
			continue
		}
		ring, pos := d.rings[ch], d.pos[ch]
		for i := 0; i < len(buffer) && i < len(in[ch]); i++ {
			buffer[i] = ring[pos]
			ring[pos] = in[ch][i]
			pos++
			if pos == len(ring) {
				pos = 0
			}
		}
		d.pos[ch] = pos
	}
}
