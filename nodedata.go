package graph

import (
	"github.com/rs/xid"
)

// NodeData is the payload stored in a graph vertex: a node together with
// the output buffers it owns. The buffers are allocated once here and
// then only ever mutated by the node's own Process call.
type NodeData[N Node] struct {
	Node    N
	Buffers Buffers

	uid string
}

// NewNodeData returns node data for the provided node with zeroed output
// buffers for the provided number of channels and buffer size.
func NewNodeData[N Node](node N, channels, size int) *NodeData[N] {
	return &NodeData[N]{
		Node:    node,
		Buffers: NewBuffers(channels, size),
		uid:     xid.New().String(),
	}
}

// MonoNodeData returns node data with a single output channel.
func MonoNodeData[N Node](node N, size int) *NodeData[N] {
	return NewNodeData(node, 1, size)
}

// StereoNodeData returns node data with two output channels.
func StereoNodeData[N Node](node N, size int) *NodeData[N] {
	return NewNodeData(node, 2, size)
}

// UID returns the unique id of this node data. It identifies the vertex
// payload in logs regardless of which graph it is stored in.
func (d *NodeData[N]) UID() string {
	return d.uid
}
