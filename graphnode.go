package graph

// GraphNode exposes an entire inner graph as a single node, so that
// graphs can be nested inside other graphs.
//
// On every Process call the incoming input views are copied into the
// buffers of the inner input vertices (one vertex per input, in order),
// the inner graph is processed rooted at the output vertex, and the
// output vertex's buffers are copied to the node's own output.
//
// Processor must be dedicated to the inner graph. Reusing the processor
// that is traversing the outer graph would clobber its scratch state
// mid-call.
type GraphNode[N Node] struct {
	Processor  *Processor[N]
	Graph      Graph[N]
	InputNodes []int64
	OutputNode int64
}

// Process implements Node.
func (n *GraphNode[N]) Process(inputs []Input, output Buffers) {
	// Excess inputs have no inner vertex to feed and are dropped.
	for i, in := range inputs {
		if i >= len(n.InputNodes) {
			break
		}
		copyBuffers(n.Graph.Data(n.InputNodes[i]).Buffers, in.Buffers())
	}
	n.Processor.Process(n.Graph, n.OutputNode)
	copyBuffers(output, n.Graph.Data(n.OutputNode).Buffers)
}

// copyBuffers copies src into dst, truncating to the shorter channel
// count and buffer size.
func copyBuffers(dst, src Buffers) {
	for i := 0; i < len(dst) && i < len(src); i++ {
		copy(dst[i], src[i])
	}
}
