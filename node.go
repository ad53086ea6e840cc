package graph

// Node is a unit of audio processing stored in a graph vertex.
//
// Process is called by the Processor as it traverses the graph during
// audio rendering. The inputs slice holds one view per incoming edge of
// the vertex, in the order the graph provider yields them. Sources may
// ignore inputs entirely. output holds the vertex's own buffers; the
// engine never clears them, so a node that accumulates must silence its
// output first.
//
// Input views are valid only for the duration of the call and must not
// be retained.
type Node interface {
	Process(inputs []Input, output Buffers)
}

// ProcessFunc is an adapter to allow the use of ordinary functions as
// nodes.
type ProcessFunc func(inputs []Input, output Buffers)

// Process calls fn(inputs, output).
func (fn ProcessFunc) Process(inputs []Input, output Buffers) {
	fn(inputs, output)
}

// Input is a read-only view over the output buffers of one predecessor
// node, tagged with the variant value of the edge it arrived through.
// It is constructed by the Processor for a single Process call and is
// invalid as soon as that call returns: a later traversal step may
// overwrite the referenced buffers.
type Input struct {
	// Variant distinguishes semantically different inputs, e.g. a
	// sidechain from a main signal. Its value is the edge metadata
	// provided by the graph.
	Variant any

	buffers Buffers
}

// newInput is the only constructor, used by the traversal as it visits a
// vertex. Views cannot be fabricated outside a Process call.
func newInput(buffers Buffers, variant any) Input {
	return Input{Variant: variant, buffers: buffers}
}

// Buffers returns the output buffers of the input node.
func (in Input) Buffers() Buffers {
	return in.buffers
}
