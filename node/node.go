// Package node provides reference implementations of graph nodes:
// sources, pass-throughs and mixing.
package node

import (
	"github.com/pipelined/graph"
)

// Constant is a source that fills every output channel with a fixed
// value. Inputs are ignored.
type Constant float64

// Process implements graph.Node.
func (c Constant) Process(inputs []graph.Input, output graph.Buffers) {
	for _, buffer := range output {
		for i := range buffer {
			buffer[i] = float64(c)
		}
	}
}

// Pass copies its first input to the output. Channels without a matching
// input channel are silenced.
type Pass struct{}

// Process implements graph.Node.
func (Pass) Process(inputs []graph.Input, output graph.Buffers) {
	if len(inputs) == 0 {
		return
	}
	in := inputs[0].Buffers()
	for i, buffer := range output {
		if i < len(in) {
			copy(buffer, in[i])
		} else {
			buffer.Silence()
		}
	}
}
