package edgekind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/edgekind"
)

func TestVisitPointedEdgesOrdersAscendingThenUnorderedByInsertion(t *testing.T) {
	v := graph.NewGraphView()
	source := v.InsertNode(nil)

	mkTarget := func() graph.NodeID { return v.InsertNode(nil).ID() }

	unordered1 := mkTarget()
	ordered2 := mkTarget()
	unordered2 := mkTarget()
	ordered1 := mkTarget()

	o1 := uint32(1)
	o2 := uint32(2)
	v.InsertEdge(source.ID(), unordered1, graph.KindPointer, true, nil, nil, nil)
	v.InsertEdge(source.ID(), ordered2, graph.KindPointer, true, nil, &o2, nil)
	v.InsertEdge(source.ID(), unordered2, graph.KindPointer, true, nil, nil, nil)
	v.InsertEdge(source.ID(), ordered1, graph.KindPointer, true, nil, &o1, nil)

	var targets []graph.NodeID
	err := edgekind.Pointer.VisitPointedEdges(source, func(_ any, e graph.BoundEdgeReference) graph.VisitResult {
		targets = append(targets, e.Edge().Target())
		return graph.Continue
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []graph.NodeID{ordered1, ordered2, unordered1, unordered2}, targets)
}

func TestGetPointedNodeByIdentifierReturnsTheFirstMatch(t *testing.T) {
	v := graph.NewGraphView()
	source := v.InsertNode(nil)
	a := v.InsertNode(nil)
	b := v.InsertNode(nil)

	name := "ref"
	o1 := uint32(5)
	o2 := uint32(1)
	v.InsertEdge(source.ID(), a.ID(), graph.KindPointer, true, &name, &o1, nil)
	v.InsertEdge(source.ID(), b.ID(), graph.KindPointer, true, &name, &o2, nil)

	got, ok := edgekind.Pointer.GetPointedNodeByIdentifier(source, "ref")
	require.True(t, ok)
	assert.Equal(t, b.ID(), got)
}
