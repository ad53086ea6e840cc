package node

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/pipelined/graph"
)

// Sum mixes all inputs onto the output channel-wise: output is silenced
// first, then every input's channel i is added onto output channel i.
// Inputs with fewer channels than the output contribute to the channels
// they have; longer blocks are truncated to the output size.
type Sum struct{}

// Process implements graph.Node.
func (Sum) Process(inputs []graph.Input, output graph.Buffers) {
	output.Silence()
	for _, input := range inputs {
		for i, in := range input.Buffers() {
			if i >= len(output) {
				break
			}
			addTruncated(output[i], in)
		}
	}
}

// SumBuffers mixes every buffer of every input onto the first output
// channel. Remaining output channels are silenced.
type SumBuffers struct{}

// Process implements graph.Node.
func (SumBuffers) Process(inputs []graph.Input, output graph.Buffers) {
	output.Silence()
	if len(output) == 0 {
		return
	}
	for _, input := range inputs {
		for _, in := range input.Buffers() {
			addTruncated(output[0], in)
		}
	}
}

// addTruncated adds src onto dst over their common length. vecmath
// panics on length mismatch, so shape differences are truncated here.
func addTruncated(dst, src graph.Buffer) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	vecmath.AddBlockInPlace(dst[:n], src[:n])
}
