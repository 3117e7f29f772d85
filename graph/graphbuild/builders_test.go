package graphbuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/graphbuild"
)

func TestInsertEdgeProducesAnEdgeMatchingTheBuilder(t *testing.T) {
	v := graph.NewGraphView()
	a := v.InsertNode(nil)
	b := v.InsertNode(nil)

	attrs := graph.NewDynamicAttributes()
	attrs.Put("weight", graph.Int(5))

	builder := graphbuild.NewEdgeCreationAttributes(graph.KindPointer).
		WithName("ref").
		WithOrder(2).
		WithAttributes(attrs)

	ref, err := builder.InsertEdge(v, a.ID(), b.ID())
	require.NoError(t, err)

	e := ref.Edge()
	assert.Equal(t, graph.KindPointer, e.Kind())
	name, ok := e.Name()
	assert.True(t, ok)
	assert.Equal(t, "ref", name)
	order, ok := e.Order()
	assert.True(t, ok)
	assert.EqualValues(t, 2, order)
	v2, ok := e.Attributes().Get("weight")
	assert.True(t, ok)
	n, _ := v2.AsInt()
	assert.EqualValues(t, 5, n)
}

func TestCreateEdgeDoesNotInsert(t *testing.T) {
	v := graph.NewGraphView()
	a := v.InsertNode(nil)
	b := v.InsertNode(nil)

	builder := graphbuild.NewEdgeCreationAttributes(graph.KindOperand)
	_, err := builder.CreateEdge(a.ID(), b.ID())
	require.NoError(t, err)

	assert.Equal(t, 0, v.EdgeCount())
}

func TestApplyToOverwritesNameOrderAndAttributesWithoutChangingKind(t *testing.T) {
	v := graph.NewGraphView()
	a := v.InsertNode(nil)
	b := v.InsertNode(nil)
	ref := v.InsertEdge(a.ID(), b.ID(), graph.KindPointer, true, nil, nil, nil)

	name := "renamed"
	order := uint32(9)
	builder := &graphbuild.EdgeCreationAttributes{Kind: graph.KindPointer, Name: &name, Order: &order}

	require.NoError(t, builder.ApplyTo(ref.Edge()))

	gotName, ok := ref.Edge().Name()
	require.True(t, ok)
	assert.Equal(t, "renamed", gotName)
	gotOrder, ok := ref.Edge().Order()
	require.True(t, ok)
	assert.EqualValues(t, 9, gotOrder)
	assert.Equal(t, graph.KindPointer, ref.Edge().Kind())
}

func TestValidateRejectsUnknownKind(t *testing.T) {
	builder := &graphbuild.EdgeCreationAttributes{}
	assert.Error(t, builder.Validate())
}

func TestNodeCreationAttributesApplyToMergesDynamicAttributes(t *testing.T) {
	v := graph.NewGraphView()
	n := v.InsertNode(nil)

	attrs := graph.NewDynamicAttributes()
	attrs.Put("label", graph.String("resistor"))
	builder := graphbuild.NewNodeCreationAttributes().WithAttributes(attrs)
	builder.ApplyTo(n)

	got, ok := n.Attributes().Get("label")
	require.True(t, ok)
	s, _ := got.AsString()
	assert.Equal(t, "resistor", s)
}
