// Package edgekind implements the stateless per-edge-kind operation
// modules: Composition, Type, Next, Pointer, Operand, InterfaceConnection,
// and Trait, plus the InterfaceConnection connectivity solver. Each kind is
// a namespace of free functions over graph.GraphView, never a type
// hierarchy — dispatch on edge kind is a tag comparison, mirroring nornicdb's
// preference for sum-type-with-tag over polymorphism (pkg/storage/types.go).
package edgekind

import (
	"fmt"

	"github.com/archgraph/graphcore/graph"
)

// DuplicateChildIdentifierError reports that parent already has a
// composition child registered under identifier.
type DuplicateChildIdentifierError struct {
	Parent     graph.NodeID
	Identifier string
}

func (e *DuplicateChildIdentifierError) Error() string {
	return fmt.Sprintf("edgekind: parent node %d already has a composition child named %q", e.Parent, e.Identifier)
}

// visitOut runs f over node's outgoing edges of kind, in insertion order,
// short-circuiting on Stop or Error.
func visitOut(node graph.BoundNodeReference, kind graph.EdgeKind, f graph.EdgeVisitFunc, ctx any) error {
	k := kind
	for _, e := range node.View().IterOutEdges(node.ID(), &k) {
		switch f(ctx, e) {
		case graph.Stop:
			return nil
		case graph.VisitError:
			return graph.ErrCallback
		}
	}
	return nil
}

// visitIn runs f over node's incoming edges of kind, in insertion order,
// short-circuiting on Stop or Error.
func visitIn(node graph.BoundNodeReference, kind graph.EdgeKind, f graph.EdgeVisitFunc, ctx any) error {
	k := kind
	for _, e := range node.View().IterInEdges(node.ID(), &k) {
		switch f(ctx, e) {
		case graph.Stop:
			return nil
		case graph.VisitError:
			return graph.ErrCallback
		}
	}
	return nil
}

// visitNeighbour runs f over node's non-directional edges of kind, in
// insertion order, short-circuiting on Stop or Error.
func visitNeighbour(node graph.BoundNodeReference, kind graph.EdgeKind, f graph.EdgeVisitFunc, ctx any) error {
	k := kind
	for _, e := range node.View().IterNeighbourEdges(node.ID(), &k) {
		switch f(ctx, e) {
		case graph.Stop:
			return nil
		case graph.VisitError:
			return graph.ErrCallback
		}
	}
	return nil
}
