// Package graphbuild provides deferred-construction records for edges and
// nodes: EdgeCreationAttributes and NodeCreationAttributes. A builder
// records everything needed to materialise an entity except its endpoints,
// so templates (graph/edgekind, typegraph) can describe "what to create"
// long before "where to create it" is known.
package graphbuild

import (
	"github.com/go-playground/validator/v10"

	"github.com/archgraph/graphcore/graph"
)

var validate = validator.New()

// EdgeCreationAttributes records everything needed to materialise an edge
// except its endpoints. It follows LederWorks-gorepos' builder-then-validate
// structs (validated with go-playground/validator before being turned into
// operations), generalized to graph edges.
type EdgeCreationAttributes struct {
	Kind        graph.EdgeKind `validate:"required"`
	Directional *bool
	Name        *string `validate:"omitempty,min=1"`
	Order       *uint32
	Dynamic     *graph.DynamicAttributes
}

// NewEdgeCreationAttributes returns a builder for kind, defaulting
// directionality to the kind's own default until overridden.
func NewEdgeCreationAttributes(kind graph.EdgeKind) *EdgeCreationAttributes {
	return &EdgeCreationAttributes{Kind: kind}
}

// WithName sets the edge's name. A zero-length name is rejected by Validate.
func (b *EdgeCreationAttributes) WithName(name string) *EdgeCreationAttributes {
	b.Name = &name
	return b
}

// WithOrder sets the edge's tie-break order.
func (b *EdgeCreationAttributes) WithOrder(order uint32) *EdgeCreationAttributes {
	b.Order = &order
	return b
}

// WithDirectional overrides the kind's default directionality.
func (b *EdgeCreationAttributes) WithDirectional(directional bool) *EdgeCreationAttributes {
	b.Directional = &directional
	return b
}

// WithAttributes attaches a dynamic attribute map, replacing any previous
// one. The builder takes ownership; the caller should not mutate attrs
// after this call.
func (b *EdgeCreationAttributes) WithAttributes(attrs *graph.DynamicAttributes) *EdgeCreationAttributes {
	b.Dynamic = attrs
	return b
}

// Validate reports whether the builder's fields are well-formed. It is
// called internally by CreateEdge/InsertEdge/ApplyTo, but is exported so
// callers can validate early (e.g. right after parsing a fixture).
func (b *EdgeCreationAttributes) Validate() error {
	return validate.Struct(b)
}

// GetTid returns the edge kind this builder will produce.
func (b *EdgeCreationAttributes) GetTid() graph.EdgeKind { return b.Kind }

func (b *EdgeCreationAttributes) resolvedDirectional() bool {
	if b.Directional != nil {
		return *b.Directional
	}
	return graph.DefaultDirectional(b.Kind)
}

func (b *EdgeCreationAttributes) dynamicOrEmpty() *graph.DynamicAttributes {
	if b.Dynamic != nil {
		return b.Dynamic.Clone()
	}
	return graph.NewDynamicAttributes()
}

// CreateEdge constructs but does not insert an edge between source and
// target, using this builder's recorded fields.
func (b *EdgeCreationAttributes) CreateEdge(source, target graph.NodeID) (*graph.Edge, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return graph.NewDetachedEdge(source, target, b.Kind, b.resolvedDirectional(), b.Name, b.Order, b.dynamicOrEmpty()), nil
}

// InsertEdge constructs and inserts an edge between source and target in
// view, using this builder's recorded fields.
func (b *EdgeCreationAttributes) InsertEdge(view *graph.GraphView, source, target graph.NodeID) (graph.BoundEdgeReference, error) {
	if err := b.Validate(); err != nil {
		return graph.BoundEdgeReference{}, err
	}
	ref := view.InsertEdge(source, target, b.Kind, b.resolvedDirectional(), b.Name, b.Order, b.dynamicOrEmpty())
	return ref, nil
}

// ApplyTo copies this builder's name, directionality, and dynamic
// attributes onto an already-inserted edge. It never changes the edge's
// kind or endpoints.
func (b *EdgeCreationAttributes) ApplyTo(edge *graph.Edge) error {
	if err := b.Validate(); err != nil {
		return err
	}
	edge.SetName(b.Name)
	edge.SetOrder(b.Order)
	edge.SetDirectional(b.resolvedDirectional())
	if b.Dynamic != nil {
		b.Dynamic.CloneInto(edge.Attributes())
	}
	return nil
}

// NodeCreationAttributes is the node analogue of EdgeCreationAttributes. It
// currently carries only a dynamic attribute map, per the spec it was
// distilled from; the type exists separately from EdgeCreationAttributes so
// that adding node-specific fields later does not perturb edge builders.
type NodeCreationAttributes struct {
	Dynamic *graph.DynamicAttributes
}

// NewNodeCreationAttributes returns an empty node builder.
func NewNodeCreationAttributes() *NodeCreationAttributes {
	return &NodeCreationAttributes{}
}

// WithAttributes attaches a dynamic attribute map, replacing any previous
// one.
func (b *NodeCreationAttributes) WithAttributes(attrs *graph.DynamicAttributes) *NodeCreationAttributes {
	b.Dynamic = attrs
	return b
}

// CreateNode inserts a fresh generic node into view carrying this builder's
// dynamic attributes.
func (b *NodeCreationAttributes) CreateNode(view *graph.GraphView) graph.BoundNodeReference {
	return view.InsertNode(b.dynamicOrEmpty())
}

// ApplyTo copies this builder's dynamic attributes onto an already-bound
// node.
func (b *NodeCreationAttributes) ApplyTo(node graph.BoundNodeReference) {
	if b.Dynamic == nil {
		return
	}
	b.Dynamic.CloneInto(node.Attributes())
}

func (b *NodeCreationAttributes) dynamicOrEmpty() *graph.DynamicAttributes {
	if b.Dynamic != nil {
		return b.Dynamic.Clone()
	}
	return graph.NewDynamicAttributes()
}
