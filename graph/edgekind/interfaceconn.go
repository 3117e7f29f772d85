package edgekind

import (
	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/graphbuild"
)

const attrShallow = "shallow"

// InterfaceConnection is the namespace of operations over InterfaceConnection
// edges: a non-directional peer-to-peer relation, in two flavors (shallow,
// deep) discriminated by the "shallow" dynamic attribute. The connectivity
// solver lives alongside it in solver.go.
var InterfaceConnection interfaceConnKind

type interfaceConnKind struct{}

// Tid returns the InterfaceConnection edge-kind tag.
func (interfaceConnKind) Tid() graph.EdgeKind { return graph.KindInterfaceConnection }

// IsInstance reports whether e is an InterfaceConnection edge.
func (interfaceConnKind) IsInstance(e *graph.Edge) bool {
	return e.Kind() == graph.KindInterfaceConnection
}

func (interfaceConnKind) build(shallow bool) *graphbuild.EdgeCreationAttributes {
	attrs := graph.NewDynamicAttributes()
	attrs.Put(attrShallow, graph.Bool(shallow))
	return graphbuild.NewEdgeCreationAttributes(graph.KindInterfaceConnection).WithAttributes(attrs)
}

// Build returns a builder for a deep InterfaceConnection edge.
func (k interfaceConnKind) Build() *graphbuild.EdgeCreationAttributes { return k.build(false) }

// BuildShallow returns a builder for a shallow InterfaceConnection edge.
func (k interfaceConnKind) BuildShallow() *graphbuild.EdgeCreationAttributes { return k.build(true) }

func (k interfaceConnKind) create(a, b graph.NodeID, shallow bool) *graph.Edge {
	attrs := graph.NewDynamicAttributes()
	attrs.Put(attrShallow, graph.Bool(shallow))
	return graph.NewDetachedEdge(a, b, graph.KindInterfaceConnection, graph.DefaultDirectional(graph.KindInterfaceConnection), nil, nil, attrs)
}

// Create constructs (without inserting) a deep InterfaceConnection edge.
func (k interfaceConnKind) Create(a, b graph.NodeID) *graph.Edge { return k.create(a, b, false) }

// CreateShallow constructs (without inserting) a shallow InterfaceConnection
// edge.
func (k interfaceConnKind) CreateShallow(a, b graph.NodeID) *graph.Edge { return k.create(a, b, true) }

// IsShallow reports whether e is a shallow InterfaceConnection edge.
func (interfaceConnKind) IsShallow(e *graph.Edge) bool {
	v, ok := e.Attributes().Get(attrShallow)
	if !ok {
		return false
	}
	shallow, _ := v.AsBool()
	return shallow
}

// Connect inserts a deep InterfaceConnection edge between a and b.
func (k interfaceConnKind) Connect(a, b graph.BoundNodeReference) graph.BoundEdgeReference {
	attrs := graph.NewDynamicAttributes()
	attrs.Put(attrShallow, graph.Bool(false))
	return a.View().InsertEdge(a.ID(), b.ID(), graph.KindInterfaceConnection, graph.DefaultDirectional(graph.KindInterfaceConnection), nil, nil, attrs)
}

// ConnectShallow inserts a shallow InterfaceConnection edge between a and b.
func (k interfaceConnKind) ConnectShallow(a, b graph.BoundNodeReference) graph.BoundEdgeReference {
	attrs := graph.NewDynamicAttributes()
	attrs.Put(attrShallow, graph.Bool(true))
	return a.View().InsertEdge(a.ID(), b.ID(), graph.KindInterfaceConnection, graph.DefaultDirectional(graph.KindInterfaceConnection), nil, nil, attrs)
}

// GetConnectionOf returns the endpoint of e opposite to node.
func (interfaceConnKind) GetConnectionOf(e *graph.Edge, node graph.NodeID) (graph.NodeID, bool) {
	if e.Kind() != graph.KindInterfaceConnection {
		return 0, false
	}
	return e.OtherEndpoint(node)
}

// VisitConnectionEdges visits node's InterfaceConnection edges in insertion
// order.
func (interfaceConnKind) VisitConnectionEdges(node graph.BoundNodeReference, f graph.EdgeVisitFunc, ctx any) error {
	return visitNeighbour(node, graph.KindInterfaceConnection, f, ctx)
}
