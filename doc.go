/*
Package graph executes directed graphs of audio processing nodes.

Concept

A node is a unit of DSP work: a source, an effect or a sink. Every node
implements a single contract:

	Process(inputs []Input, output Buffers)

During one processing block the graph is walked once in dependency order.
Each node receives read-only views over the output buffers of its direct
predecessors and writes its own result into buffers it owns. The walk is
synchronous and allocation-free, which makes it usable from hard
real-time audio callbacks.

The graph structure itself is external to this package. Any type
implementing the Graph interface can be traversed; package dag provides
the default implementation. The provider, not the engine, is responsible
for keeping the graph acyclic.

Nodes

Concrete nodes of different types can share one graph through the boxed
wrappers. BoxedNode erases any node behind a uniform type. BoxedNodeSend
does the same for nodes that may be constructed on one goroutine and then
handed to the audio goroutine before processing begins. Reference node
implementations live in package node.
*/
package graph
