// Package dag provides the default graph structure for audio node
// graphs. It is a directed multigraph: parallel edges between the same
// pair of vertices are allowed and keep their own variants.
//
// The structure is a thin layer over gonum's multigraph. Vertex ids are
// allocated by gonum; incoming edges are additionally indexed in
// insertion order, which is the order nodes observe their inputs in.
//
// The graph must stay acyclic. Cycles are not rejected on Connect to
// keep edits cheap; call Validate after a batch of edits to check.
package dag

import (
	"errors"
	"fmt"

	"github.com/pipelined/graph"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"
)

var (
	// ErrUnknownVertex is returned by Connect when an endpoint does not
	// exist in the graph.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrGraphCycle is returned by Validate when the graph contains a
	// cycle and by Connect for self loops.
	ErrGraphCycle = errors.New("graph contains a cycle")
)

// inEdge is one incoming edge of a vertex.
type inEdge struct {
	source  int64
	line    int64
	variant any
}

// Graph stores node data records in a directed multigraph and implements
// graph.Graph. The zero value is not usable, use New.
//
// Graph is not safe for concurrent use. Like the processor, it may be
// built on one goroutine and handed to another before processing starts.
type Graph[N graph.Node] struct {
	g        *multi.DirectedGraph
	data     map[int64]*graph.NodeData[N]
	incoming map[int64][]inEdge

	// visit scratch, reused to keep VisitOrder allocation-free in
	// steady state.
	color map[int64]byte
	stack []int64
}

// New returns an empty graph.
func New[N graph.Node]() *Graph[N] {
	return &Graph[N]{
		g:        multi.NewDirectedGraph(),
		data:     make(map[int64]*graph.NodeData[N]),
		incoming: make(map[int64][]inEdge),
		color:    make(map[int64]byte),
	}
}

// Add adds a new vertex holding the provided node data and returns its
// id.
func (d *Graph[N]) Add(data *graph.NodeData[N]) int64 {
	n := d.g.NewNode()
	d.g.AddNode(n)
	d.data[n.ID()] = data
	return n.ID()
}

// Connect adds an edge from one vertex to another with the provided
// variant and returns the edge id. Parallel edges are allowed; each gets
// its own id and variant. Self loops are rejected, other cycles are only
// detected by Validate.
func (d *Graph[N]) Connect(from, to int64, variant any) (int64, error) {
	if from == to {
		return 0, fmt.Errorf("connect %d to itself: %w", from, ErrGraphCycle)
	}
	f, t := d.g.Node(from), d.g.Node(to)
	if f == nil {
		return 0, fmt.Errorf("connect from %d: %w", from, ErrUnknownVertex)
	}
	if t == nil {
		return 0, fmt.Errorf("connect to %d: %w", to, ErrUnknownVertex)
	}
	l := d.g.NewLine(f, t)
	d.g.SetLine(l)
	d.incoming[to] = append(d.incoming[to], inEdge{
		source:  from,
		line:    l.ID(),
		variant: variant,
	})
	return l.ID(), nil
}

// Disconnect removes the edge with the provided id between two vertices.
// Unknown edges are ignored.
func (d *Graph[N]) Disconnect(from, to, edge int64) {
	d.g.RemoveLine(from, to, edge)
	in := d.incoming[to]
	for i := range in {
		if in[i].line == edge {
			d.incoming[to] = append(in[:i], in[i+1:]...)
			return
		}
	}
}

// Remove removes a vertex with all its edges. The node data record is
// destroyed with the vertex.
func (d *Graph[N]) Remove(id int64) {
	if d.g.Node(id) == nil {
		return
	}
	// purge incoming lists of the successors before gonum drops the
	// lines themselves.
	to := d.g.From(id)
	for to.Next() {
		succ := to.Node().ID()
		in := d.incoming[succ][:0]
		for _, e := range d.incoming[succ] {
			if e.source != id {
				in = append(in, e)
			}
		}
		d.incoming[succ] = in
	}
	d.g.RemoveNode(id)
	delete(d.incoming, id)
	delete(d.data, id)
}

// Len returns the number of vertices.
func (d *Graph[N]) Len() int {
	return len(d.data)
}

// Data returns the node data of the vertex, nil for unknown ids.
func (d *Graph[N]) Data(id int64) *graph.NodeData[N] {
	return d.data[id]
}

// Sources appends the incoming edges of the vertex to dst in insertion
// order and returns the resulting slice.
func (d *Graph[N]) Sources(dst []graph.Edge, id int64) []graph.Edge {
	for _, e := range d.incoming[id] {
		dst = append(dst, graph.Edge{Source: e.source, Variant: e.variant})
	}
	return dst
}

// vertex colors of the visit.
const (
	white = iota // not seen
	gray         // on the stack, predecessors being visited
	black        // emitted
)

// VisitOrder appends the depth-first post-order over the root's ancestry
// to dst and returns the resulting slice: every predecessor of an
// emitted vertex has been emitted before it, root comes last. The order
// is only meaningful when the graph is acyclic.
func (d *Graph[N]) VisitOrder(dst []int64, root int64) []int64 {
	if d.data[root] == nil {
		return dst
	}
	clear(d.color)
	d.stack = append(d.stack[:0], root)
	for len(d.stack) > 0 {
		id := d.stack[len(d.stack)-1]
		switch d.color[id] {
		case white:
			d.color[id] = gray
			for _, e := range d.incoming[id] {
				if d.color[e.source] == white {
					d.stack = append(d.stack, e.source)
				}
			}
		case gray:
			d.color[id] = black
			d.stack = d.stack[:len(d.stack)-1]
			dst = append(dst, id)
		default:
			// duplicate stack entry of an emitted vertex.
			d.stack = d.stack[:len(d.stack)-1]
		}
	}
	return dst
}

// Validate checks that the graph is acyclic. It is meant to be called
// after a batch of edits, never on the processing path: the processor
// itself trusts the visit order without re-checking.
func (d *Graph[N]) Validate() error {
	if _, err := topo.Sort(d.g); err != nil {
		var cycles topo.Unorderable
		if errors.As(err, &cycles) {
			return fmt.Errorf("vertices %v: %w", cycleIDs(cycles), ErrGraphCycle)
		}
		return err
	}
	return nil
}

func cycleIDs(cycles topo.Unorderable) [][]int64 {
	ids := make([][]int64, len(cycles))
	for i, cycle := range cycles {
		ids[i] = make([]int64, len(cycle))
		for j, n := range cycle {
			ids[i][j] = n.ID()
		}
	}
	return ids
}
