package graph

// BoxedNode owns a node of an unknown concrete type behind a single
// uniform type, so that a graph holding heterogeneous node
// implementations can use one NodeData type for all vertices.
//
// A BoxedNode is confined to the goroutine that created it. Use
// BoxedNodeSend when the node must be constructed on one goroutine and
// handed to another before processing begins.
type BoxedNode struct {
	node Node
}

// NewBoxedNode wraps the provided node. The wrapper takes ownership: the
// caller must not use the node directly afterwards.
func NewBoxedNode(node Node) *BoxedNode {
	return &BoxedNode{node: node}
}

// Unwrap releases and returns the owned node. The wrapper gives up
// ownership and must not be used afterwards.
func (b *BoxedNode) Unwrap() Node {
	node := b.node
	b.node = nil
	return node
}

// Process forwards to the wrapped node.
func (b *BoxedNode) Process(inputs []Input, output Buffers) {
	b.node.Process(inputs, output)
}

// String returns only the wrapper's type name. The state of the wrapped
// node is intentionally opaque.
func (b *BoxedNode) String() string {
	return "BoxedNode"
}

// BoxedNodeSend owns a node of an unknown concrete type, like BoxedNode,
// and is additionally safe to transfer between goroutines before
// processing begins. This is useful when nodes or the graph itself are
// initialised on a setup goroutine and then sent to the audio goroutine.
//
// The wrapped node must not be shared: the transfer hands over sole
// ownership, and once processing starts the node stays confined to the
// processing goroutine. Nodes that retain references to state mutated
// elsewhere do not qualify.
type BoxedNodeSend struct {
	node Node
}

// NewBoxedNodeSend wraps the provided node for goroutine transfer. The
// wrapper takes ownership: the caller must not use the node directly
// afterwards.
func NewBoxedNodeSend(node Node) *BoxedNodeSend {
	return &BoxedNodeSend{node: node}
}

// Unwrap releases and returns the owned node. The wrapper gives up
// ownership and must not be used afterwards.
func (b *BoxedNodeSend) Unwrap() Node {
	node := b.node
	b.node = nil
	return node
}

// Process forwards to the wrapped node.
func (b *BoxedNodeSend) Process(inputs []Input, output Buffers) {
	b.node.Process(inputs, output)
}

// String returns only the wrapper's type name.
func (b *BoxedNodeSend) String() string {
	return "BoxedNodeSend"
}
