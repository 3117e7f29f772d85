package edgekind

import (
	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/graphbuild"
)

// Type is the namespace of operations over Type edges, which record
// "instanceNode is an instance of typeNode". A node has at most one
// incoming Type edge; TypeGraph.instantiate_node is the only caller
// expected to insert one.
//
// The edge direction (type -> instance, source = type, target = instance)
// follows the instantiation algorithm's "insert an EdgeType from T to I"
// wording rather than the alternate "outgoing from the instance" phrasing
// found elsewhere in the same description; see DESIGN.md for the reasoning.
var Type typeKind

type typeKind struct{}

// Tid returns the Type edge-kind tag.
func (typeKind) Tid() graph.EdgeKind { return graph.KindType }

// IsInstance reports whether e is a Type edge.
func (typeKind) IsInstance(e *graph.Edge) bool { return e.Kind() == graph.KindType }

// Build returns a builder for a Type edge.
func (typeKind) Build() *graphbuild.EdgeCreationAttributes {
	return graphbuild.NewEdgeCreationAttributes(graph.KindType)
}

// Create constructs (without inserting) a Type edge from typeNode to
// instanceNode.
func (typeKind) Create(typeNode, instanceNode graph.NodeID) *graph.Edge {
	return graph.NewDetachedEdge(typeNode, instanceNode, graph.KindType, graph.DefaultDirectional(graph.KindType), nil, nil, nil)
}

// Link inserts a Type edge from typeNode to instanceNode in view.
func (typeKind) Link(view *graph.GraphView, typeNode, instanceNode graph.NodeID) graph.BoundEdgeReference {
	return view.InsertEdge(typeNode, instanceNode, graph.KindType, graph.DefaultDirectional(graph.KindType), nil, nil, nil)
}

// GetTypeNode returns e's type endpoint. e must be a Type edge.
func (typeKind) GetTypeNode(e *graph.Edge) (graph.NodeID, error) {
	if !Type.IsInstance(e) {
		return 0, graph.ErrInvalidEdgeKind
	}
	return e.Source(), nil
}

// GetInstanceNode returns e's instance endpoint. e must be a Type edge.
func (typeKind) GetInstanceNode(e *graph.Edge) (graph.NodeID, error) {
	if !Type.IsInstance(e) {
		return 0, graph.ErrInvalidEdgeKind
	}
	return e.Target(), nil
}

// GetTypeOf returns the endpoint of e opposite to node.
func (typeKind) GetTypeOf(e *graph.Edge, node graph.NodeID) (graph.NodeID, bool) {
	if !Type.IsInstance(e) {
		return 0, false
	}
	return e.OtherEndpoint(node)
}

// GetTypeEdge returns instance's unique incoming Type edge, if any.
func (typeKind) GetTypeEdge(instance graph.BoundNodeReference) (graph.BoundEdgeReference, bool) {
	k := graph.KindType
	edges := instance.View().IterInEdges(instance.ID(), &k)
	if len(edges) == 0 {
		return graph.BoundEdgeReference{}, false
	}
	return edges[0], true
}

// IsNodeInstanceOf reports whether instance's type edge points at typeNode.
func (typeKind) IsNodeInstanceOf(instance graph.BoundNodeReference, typeNode graph.NodeID) bool {
	edge, ok := Type.GetTypeEdge(instance)
	if !ok {
		return false
	}
	t, err := Type.GetTypeNode(edge.Edge())
	return err == nil && t == typeNode
}

// VisitTypeEdges visits node's incoming Type edges (there is at most one,
// but the shared visitor surface is kept for symmetry with other kinds).
func (typeKind) VisitTypeEdges(node graph.BoundNodeReference, f graph.EdgeVisitFunc, ctx any) error {
	return visitIn(node, graph.KindType, f, ctx)
}
