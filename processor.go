package graph

// Edge describes one incoming edge of a vertex: the id of the source
// vertex and the variant metadata the graph associates with the edge.
type Edge struct {
	Source  int64
	Variant any
}

// Graph is the external structure the Processor traverses. The engine
// only ever reads it; storage of vertices and edges, their insertion and
// removal and the id space are all up to the implementation. Package dag
// provides the default one.
//
// The implementation must keep the structure acyclic. The engine trusts
// the visit order it is given and does not re-validate it per call, so a
// cycle makes input views observe buffers that are being rewritten in
// the same step.
type Graph[N Node] interface {
	// Data returns the payload of the vertex with the provided id.
	Data(id int64) *NodeData[N]
	// Sources appends the incoming edges of the vertex to dst and
	// returns the resulting slice. Order is up to the implementation
	// but must be stable between calls. Parallel edges appear once
	// each.
	Sources(dst []Edge, id int64) []Edge
	// VisitOrder appends a dependency-respecting order over the root's
	// ancestry to dst and returns the resulting slice. Every
	// predecessor of a vertex precedes that vertex; root comes last.
	VisitOrder(dst []int64, root int64) []int64
}

// Logger is the interface for processor loggers.
type Logger interface {
	Debug(...interface{})
	Info(...interface{})
}

// Processor traverses a graph in dependency order and drives each
// vertex's Process call. It reuses internal slices between calls, so
// steady-state traversal does not allocate.
//
// A Processor is not safe for concurrent use. It may be constructed on
// one goroutine and handed to another together with the graph, as long
// as the hand-off happens before the first Process call.
type Processor[N Node] struct {
	order  []int64
	edges  []Edge
	inputs []Input

	log Logger
}

// Option configures a processor.
type Option[N Node] func(*Processor[N])

// WithLogger sets the logger used for traversal tracing. If this option
// is not provided, the processor is silent.
func WithLogger[N Node](l Logger) Option[N] {
	return func(p *Processor[N]) {
		p.log = l
	}
}

// NewProcessor returns a new processor and applies provided options.
func NewProcessor[N Node](options ...Option[N]) *Processor[N] {
	p := &Processor[N]{}
	for _, option := range options {
		option(p)
	}
	return p
}

// Process walks every vertex the root depends on, in dependency order
// with the root last, and calls each vertex's node with views over its
// predecessors' current output buffers. After the call the root's
// buffers hold the block produced by the whole subgraph.
//
// Vertices with no incoming edges receive an empty input slice. Parallel
// edges yield one input view each, with their own variants, in source
// order. Panics raised by a node propagate to the caller.
func (p *Processor[N]) Process(g Graph[N], root int64) {
	p.order = g.VisitOrder(p.order[:0], root)
	if p.log != nil {
		p.log.Debug("process", " root: ", root, " vertices: ", len(p.order))
	}
	for _, id := range p.order {
		p.processVertex(g, id)
	}
}

// processVertex assembles the input views of a single vertex and invokes
// its node. The views are valid only until the node returns: the next
// vertex in the order may alias the same buffers.
func (p *Processor[N]) processVertex(g Graph[N], id int64) {
	p.edges = g.Sources(p.edges[:0], id)
	p.inputs = p.inputs[:0]
	for _, e := range p.edges {
		p.inputs = append(p.inputs, newInput(g.Data(e.Source).Buffers, e.Variant))
	}
	data := g.Data(id)
	data.Node.Process(p.inputs, data.Buffers)
}
