package typegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/edgekind"
	"github.com/archgraph/graphcore/graph/graphbuild"
	"github.com/archgraph/graphcore/typegraph"
)

// TestInstantiateResistorBuildsTwoPinChildren is spec scenario 1: a Resistor
// type with two Pad-typed pin children, instantiated into a concrete
// subgraph of three nodes wired by Composition and Type edges.
func TestInstantiateResistorBuildsTwoPinChildren(t *testing.T) {
	v := graph.NewGraphView()
	tg := typegraph.NewTypeGraph(v)

	pad, err := tg.AddType("Pad")
	require.NoError(t, err)

	resistor, err := tg.AddType("Resistor")
	require.NoError(t, err)

	pin1 := tg.NewMakeChild(pad, "Pin1")
	pin2 := tg.NewMakeChild(pad, "Pin2")
	_, err = edgekind.Composition.AddChild(resistor, pin1, "Pin1")
	require.NoError(t, err)
	_, err = edgekind.Composition.AddChild(resistor, pin2, "Pin2")
	require.NoError(t, err)

	instance, err := tg.Instantiate("Resistor", nil)
	require.NoError(t, err)

	var names []string
	err = edgekind.Composition.VisitChildEdges(instance, func(_ any, e graph.BoundEdgeReference) graph.VisitResult {
		name, _ := e.Edge().Name()
		names = append(names, name)
		return graph.Continue
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pin1", "Pin2"}, names)

	assert.True(t, edgekind.Type.IsNodeInstanceOf(instance, resistor.ID()))

	pin1Instance, ok := edgekind.Composition.GetChildByIdentifier(instance, "Pin1")
	require.True(t, ok)
	assert.True(t, edgekind.Type.IsNodeInstanceOf(pin1Instance, pad.ID()))
}

// TestInstantiateDividerWiresAMakeLinkBetweenTwoChildInstances is spec
// scenario 2: a Divider type made of two Resistor children, R1 and R2, with
// a deferred MakeLink wiring R1.Pin2 to R2.Pin1 once both are instantiated.
func TestInstantiateDividerWiresAMakeLinkBetweenTwoChildInstances(t *testing.T) {
	v := graph.NewGraphView()
	tg := typegraph.NewTypeGraph(v)

	pad, err := tg.AddType("Pad")
	require.NoError(t, err)
	resistor, err := tg.AddType("Resistor")
	require.NoError(t, err)
	pin1 := tg.NewMakeChild(pad, "Pin1")
	pin2 := tg.NewMakeChild(pad, "Pin2")
	_, err = edgekind.Composition.AddChild(resistor, pin1, "Pin1")
	require.NoError(t, err)
	_, err = edgekind.Composition.AddChild(resistor, pin2, "Pin2")
	require.NoError(t, err)

	divider, err := tg.AddType("Divider")
	require.NoError(t, err)
	r1 := tg.NewMakeChild(resistor, "R1")
	r2 := tg.NewMakeChild(resistor, "R2")
	_, err = edgekind.Composition.AddChild(divider, r1, "R1")
	require.NoError(t, err)
	_, err = edgekind.Composition.AddChild(divider, r2, "R2")
	require.NoError(t, err)

	lhsRef, err := tg.AddReference([]string{"R1", "Pin2"})
	require.NoError(t, err)
	rhsRef, err := tg.AddReference([]string{"R2", "Pin1"})
	require.NoError(t, err)

	edgeAttrs := graphbuild.NewEdgeCreationAttributes(graph.KindInterfaceConnection)
	link := tg.NewMakeLink(lhsRef, rhsRef, edgeAttrs)
	edgekind.Operand.Link(divider, link, nil)

	instance, err := tg.Instantiate("Divider", nil)
	require.NoError(t, err)

	r1Instance, ok := edgekind.Composition.GetChildByIdentifier(instance, "R1")
	require.True(t, ok)
	r1Pin2, ok := edgekind.Composition.GetChildByIdentifier(r1Instance, "Pin2")
	require.True(t, ok)

	r2Instance, ok := edgekind.Composition.GetChildByIdentifier(instance, "R2")
	require.True(t, ok)
	r2Pin1, ok := edgekind.Composition.GetChildByIdentifier(r2Instance, "Pin1")
	require.True(t, ok)

	path, ok := edgekind.InterfaceConnection.IsConnectedTo(r1Pin2, r2Pin1)
	require.True(t, ok)
	assert.Len(t, path, 1)
}

// TestAddChildRejectsADuplicateCompositionIdentifier is spec scenario 3.
func TestAddChildRejectsADuplicateCompositionIdentifier(t *testing.T) {
	v := graph.NewGraphView()
	tg := typegraph.NewTypeGraph(v)

	pad, err := tg.AddType("Pad")
	require.NoError(t, err)
	resistor, err := tg.AddType("Resistor")
	require.NoError(t, err)

	pin1 := tg.NewMakeChild(pad, "Pin1")
	pin1Again := tg.NewMakeChild(pad, "Pin1")
	_, err = edgekind.Composition.AddChild(resistor, pin1, "Pin1")
	require.NoError(t, err)

	_, err = edgekind.Composition.AddChild(resistor, pin1Again, "Pin1")
	var dupErr *edgekind.DuplicateChildIdentifierError
	require.ErrorAs(t, err, &dupErr)
}

// TestInstantiateWiresDirectlyAttachedTraitsOntoTheNewInstance is spec
// scenario 6: a type with a Trait edge to a trait type gets a matching
// Trait-instance attached to every instance of it.
func TestInstantiateWiresDirectlyAttachedTraitsOntoTheNewInstance(t *testing.T) {
	v := graph.NewGraphView()
	tg := typegraph.NewTypeGraph(v)

	hasValue := tg.AddTrait()
	edgekind.Trait.MarkAsTrait(hasValue)

	widget, err := tg.AddType("Widget")
	require.NoError(t, err)
	v.InsertEdge(widget.ID(), hasValue.ID(), graph.KindTrait, graph.DefaultDirectional(graph.KindTrait), nil, nil, nil)

	instance, err := tg.Instantiate("Widget", nil)
	require.NoError(t, err)

	found, ok, err := edgekind.Trait.TryGetTrait(instance, hasValue.ID())
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, edgekind.Type.IsNodeInstanceOf(found, hasValue.ID()))
}

// TestAddTraitToAttachesATraitInstanceToAnExistingNode covers the
// typegraph-level AddTraitTo entry point directly, independent of
// instantiation-time trait wiring.
func TestAddTraitToAttachesATraitInstanceToAnExistingNode(t *testing.T) {
	v := graph.NewGraphView()
	tg := typegraph.NewTypeGraph(v)

	hasValue := tg.AddTrait()
	target, err := tg.AddType("Widget")
	require.NoError(t, err)

	instance, err := tg.AddTraitTo(target, hasValue)
	require.NoError(t, err)
	assert.True(t, edgekind.Type.IsNodeInstanceOf(instance, hasValue.ID()))

	found, ok, err := edgekind.Trait.TryGetTrait(target, hasValue.ID())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, instance.ID(), found.ID())
}

// TestInstantiateDetectsATypeCycle guards the depth/cycle bound: a type
// whose own composition children resolve back to itself must fail rather
// than recurse forever.
func TestInstantiateDetectsATypeCycle(t *testing.T) {
	v := graph.NewGraphView()
	tg := typegraph.NewTypeGraph(v)

	self, err := tg.AddType("Self")
	require.NoError(t, err)

	child := tg.NewMakeChild(self, "inner")
	_, err = edgekind.Composition.AddChild(self, child, "inner")
	require.NoError(t, err)

	_, err = tg.Instantiate("Self", nil)
	var cycleErr *typegraph.TypeCycleError
	require.ErrorAs(t, err, &cycleErr)
}
