package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelined/graph"
	"github.com/pipelined/graph/dag"
	"github.com/pipelined/graph/log"
	"github.com/pipelined/graph/node"
)

const bufferSize = 64

// connect fails the test instead of returning the edge error, to keep
// graph definitions in tests readable.
func connect(t *testing.T, g *dag.Graph[graph.Node], from, to int64, variant any) {
	t.Helper()
	_, err := g.Connect(from, to, variant)
	require.NoError(t, err)
}

func TestProcessChain(t *testing.T) {
	g := dag.New[graph.Node]()
	a := g.Add(graph.MonoNodeData[graph.Node](node.Constant(0.9), bufferSize))
	b := g.Add(graph.MonoNodeData[graph.Node](node.Pass{}, bufferSize))
	c := g.Add(graph.MonoNodeData[graph.Node](node.Pass{}, bufferSize))
	connect(t, g, a, b, nil)
	connect(t, g, b, c, nil)
	require.NoError(t, g.Validate())

	p := graph.NewProcessor(graph.WithLogger[graph.Node](log.GetLogger()))
	p.Process(g, c)

	out := g.Data(c).Buffers
	assert.Equal(t, 1, out.Channels())
	assert.Equal(t, bufferSize, out.Size())
	for _, s := range out[0] {
		assert.Equal(t, 0.9, s)
	}
}

func TestProcessSum(t *testing.T) {
	g := dag.New[graph.Node]()
	l := g.Add(graph.MonoNodeData[graph.Node](node.Constant(0.5), bufferSize))
	r := g.Add(graph.MonoNodeData[graph.Node](node.Constant(0.5), bufferSize))
	sum := g.Add(graph.MonoNodeData[graph.Node](node.Sum{}, bufferSize))
	connect(t, g, l, sum, nil)
	connect(t, g, r, sum, nil)

	// stale samples must be wiped by the sum node, not accumulated.
	g.Data(sum).Buffers[0][0] = 42

	p := graph.NewProcessor[graph.Node]()
	p.Process(g, sum)

	for _, s := range g.Data(sum).Buffers[0] {
		assert.Equal(t, 1.0, s)
	}
}

func TestProcessSourceReceivesNoInputs(t *testing.T) {
	g := dag.New[graph.Node]()
	var sourceInputs []graph.Input
	source := graph.ProcessFunc(func(inputs []graph.Input, output graph.Buffers) {
		sourceInputs = inputs
		output.Silence()
	})
	a := g.Add(graph.MonoNodeData[graph.Node](source, bufferSize))
	b := g.Add(graph.MonoNodeData[graph.Node](node.Pass{}, bufferSize))
	connect(t, g, a, b, nil)

	graph.NewProcessor[graph.Node]().Process(g, b)
	assert.Len(t, sourceInputs, 0)
}

func TestProcessParallelEdges(t *testing.T) {
	g := dag.New[graph.Node]()
	var variants []any
	var buffers int
	dst := graph.ProcessFunc(func(inputs []graph.Input, output graph.Buffers) {
		variants = variants[:0]
		buffers = 0
		for _, in := range inputs {
			variants = append(variants, in.Variant)
			buffers += in.Buffers().Channels()
		}
	})
	a := g.Add(graph.MonoNodeData[graph.Node](node.Constant(1), bufferSize))
	b := g.Add(graph.MonoNodeData[graph.Node](dst, bufferSize))
	connect(t, g, a, b, "signal")
	connect(t, g, a, b, "sidechain")

	graph.NewProcessor[graph.Node]().Process(g, b)

	// parallel edges are not deduplicated, each keeps its variant.
	assert.Equal(t, []any{"signal", "sidechain"}, variants)
	assert.Equal(t, 2, buffers)
}

func TestProcessVisitOrder(t *testing.T) {
	g := dag.New[graph.Node]()
	var order []int64
	record := func(id *int64) graph.ProcessFunc {
		return func([]graph.Input, graph.Buffers) {
			order = append(order, *id)
		}
	}
	ids := make([]int64, 5)
	for i := range ids {
		ids[i] = g.Add(graph.MonoNodeData[graph.Node](record(&ids[i]), bufferSize))
	}
	// diamond into ids[3], ids[4] detached from the root.
	connect(t, g, ids[0], ids[1], nil)
	connect(t, g, ids[0], ids[2], nil)
	connect(t, g, ids[1], ids[3], nil)
	connect(t, g, ids[2], ids[3], nil)
	require.NoError(t, g.Validate())

	graph.NewProcessor[graph.Node]().Process(g, ids[3])

	require.Len(t, order, 4)
	assert.NotContains(t, order, ids[4])
	assert.Equal(t, ids[3], order[len(order)-1])
	pos := make(map[int64]int)
	for i, id := range order {
		pos[id] = i
	}
	assert.Less(t, pos[ids[0]], pos[ids[1]])
	assert.Less(t, pos[ids[0]], pos[ids[2]])
	assert.Less(t, pos[ids[1]], pos[ids[3]])
	assert.Less(t, pos[ids[2]], pos[ids[3]])
}

func TestProcessKeepsBufferSizes(t *testing.T) {
	g := dag.New[graph.Node]()
	a := g.Add(graph.NewNodeData[graph.Node](node.Constant(1), 2, bufferSize))
	b := g.Add(graph.NewNodeData[graph.Node](node.Sum{}, 2, bufferSize))
	connect(t, g, a, b, nil)

	p := graph.NewProcessor[graph.Node]()
	for i := 0; i < 3; i++ {
		p.Process(g, b)
		assert.Equal(t, 2, g.Data(a).Buffers.Channels())
		assert.Equal(t, bufferSize, g.Data(a).Buffers.Size())
		assert.Equal(t, 2, g.Data(b).Buffers.Channels())
		assert.Equal(t, bufferSize, g.Data(b).Buffers.Size())
	}
}

func TestProcessBoxedGraph(t *testing.T) {
	// a heterogeneous graph sharing one node data type through boxing.
	g := dag.New[*graph.BoxedNodeSend]()
	a := g.Add(graph.MonoNodeData(graph.NewBoxedNodeSend(node.Constant(0.25)), bufferSize))
	b := g.Add(graph.MonoNodeData(graph.NewBoxedNodeSend(node.Pass{}), bufferSize))
	_, err := g.Connect(a, b, nil)
	require.NoError(t, err)

	p := graph.NewProcessor[*graph.BoxedNodeSend]()
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Process(g, b)
	}()
	<-done

	for _, s := range g.Data(b).Buffers[0] {
		assert.Equal(t, 0.25, s)
	}
}

func TestNodeDataUID(t *testing.T) {
	d1 := graph.MonoNodeData[graph.Node](node.Pass{}, bufferSize)
	d2 := graph.MonoNodeData[graph.Node](node.Pass{}, bufferSize)
	assert.NotEmpty(t, d1.UID())
	assert.NotEqual(t, d1.UID(), d2.UID())
}
