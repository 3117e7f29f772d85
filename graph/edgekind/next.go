package edgekind

import (
	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/graphbuild"
)

// Next is the namespace of operations over Next edges, a doubly-linked
// chain where each node has at most one incoming and one outgoing edge.
var Next nextKind

type nextKind struct{}

// Tid returns the Next edge-kind tag.
func (nextKind) Tid() graph.EdgeKind { return graph.KindNext }

// IsInstance reports whether e is a Next edge.
func (nextKind) IsInstance(e *graph.Edge) bool { return e.Kind() == graph.KindNext }

// Build returns a builder for a Next edge.
func (nextKind) Build() *graphbuild.EdgeCreationAttributes {
	return graphbuild.NewEdgeCreationAttributes(graph.KindNext)
}

// Create constructs (without inserting) a Next edge.
func (nextKind) Create(previous, next graph.NodeID) *graph.Edge {
	return graph.NewDetachedEdge(previous, next, graph.KindNext, graph.DefaultDirectional(graph.KindNext), nil, nil, nil)
}

// GetPreviousNode returns e's previous endpoint. e must be a Next edge.
func (nextKind) GetPreviousNode(e *graph.Edge) (graph.NodeID, error) {
	if !Next.IsInstance(e) {
		return 0, graph.ErrInvalidEdgeKind
	}
	return e.Source(), nil
}

// GetNextNode returns e's next endpoint. e must be a Next edge.
func (nextKind) GetNextNode(e *graph.Edge) (graph.NodeID, error) {
	if !Next.IsInstance(e) {
		return 0, graph.ErrInvalidEdgeKind
	}
	return e.Target(), nil
}

// GetNextOf returns the endpoint of e opposite to node.
func (nextKind) GetNextOf(e *graph.Edge, node graph.NodeID) (graph.NodeID, bool) {
	if !Next.IsInstance(e) {
		return 0, false
	}
	return e.OtherEndpoint(node)
}

// GetPreviousEdge returns node's unique incoming Next edge, if any.
func (nextKind) GetPreviousEdge(node graph.BoundNodeReference) (graph.BoundEdgeReference, bool) {
	k := graph.KindNext
	edges := node.View().IterInEdges(node.ID(), &k)
	if len(edges) == 0 {
		return graph.BoundEdgeReference{}, false
	}
	return edges[0], true
}

// GetNextEdge returns node's unique outgoing Next edge, if any.
func (nextKind) GetNextEdge(node graph.BoundNodeReference) (graph.BoundEdgeReference, bool) {
	k := graph.KindNext
	edges := node.View().IterOutEdges(node.ID(), &k)
	if len(edges) == 0 {
		return graph.BoundEdgeReference{}, false
	}
	return edges[0], true
}

// VisitNextEdges visits node's outgoing Next edges (there is at most one).
func (nextKind) VisitNextEdges(node graph.BoundNodeReference, f graph.EdgeVisitFunc, ctx any) error {
	return visitOut(node, graph.KindNext, f, ctx)
}

// Link inserts a Next edge from previous to next, rejecting if either
// endpoint already participates in a Next edge on that side.
func (nextKind) Link(previous, next graph.BoundNodeReference) (graph.BoundEdgeReference, error) {
	if _, ok := Next.GetNextEdge(previous); ok {
		return graph.BoundEdgeReference{}, graph.ErrNextAlreadySet
	}
	if _, ok := Next.GetPreviousEdge(next); ok {
		return graph.BoundEdgeReference{}, graph.ErrNextAlreadySet
	}
	ref := previous.View().InsertEdge(previous.ID(), next.ID(), graph.KindNext, graph.DefaultDirectional(graph.KindNext), nil, nil, nil)
	return ref, nil
}
