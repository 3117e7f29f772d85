package edgekind

import (
	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/graphbuild"
)

// Operand is the namespace of operations over Operand edges
// (expression -> operand), the mirror image of Composition across the
// expression/operand direction: one operand may serve many expressions,
// one expression may have many operands.
var Operand operandKind

type operandKind struct{}

// Tid returns the Operand edge-kind tag.
func (operandKind) Tid() graph.EdgeKind { return graph.KindOperand }

// IsInstance reports whether e is an Operand edge.
func (operandKind) IsInstance(e *graph.Edge) bool { return e.Kind() == graph.KindOperand }

// Build returns a builder for an Operand edge, with an optional operand
// identifier.
func (operandKind) Build(identifier *string) *graphbuild.EdgeCreationAttributes {
	b := graphbuild.NewEdgeCreationAttributes(graph.KindOperand)
	if identifier != nil {
		b = b.WithName(*identifier)
	}
	return b
}

// Create constructs (without inserting) an Operand edge.
func (operandKind) Create(expression, operand graph.NodeID, identifier *string) *graph.Edge {
	return graph.NewDetachedEdge(expression, operand, graph.KindOperand, graph.DefaultDirectional(graph.KindOperand), identifier, nil, nil)
}

// GetExpressionNode returns e's expression endpoint. e must be an Operand
// edge.
func (operandKind) GetExpressionNode(e *graph.Edge) (graph.NodeID, error) {
	if !Operand.IsInstance(e) {
		return 0, graph.ErrInvalidEdgeKind
	}
	return e.Source(), nil
}

// GetOperandNode returns e's operand endpoint. e must be an Operand edge.
func (operandKind) GetOperandNode(e *graph.Edge) (graph.NodeID, error) {
	if !Operand.IsInstance(e) {
		return 0, graph.ErrInvalidEdgeKind
	}
	return e.Target(), nil
}

// GetOperandOf returns the endpoint of e opposite to node.
func (operandKind) GetOperandOf(e *graph.Edge, node graph.NodeID) (graph.NodeID, bool) {
	if !Operand.IsInstance(e) {
		return 0, false
	}
	return e.OtherEndpoint(node)
}

// VisitExpressionEdges visits operand's incoming Operand edges (one per
// expression that references it) in insertion order.
func (operandKind) VisitExpressionEdges(operand graph.BoundNodeReference, f graph.EdgeVisitFunc, ctx any) error {
	return visitIn(operand, graph.KindOperand, f, ctx)
}

// VisitOperandEdges visits expression's outgoing Operand edges in
// insertion order.
func (operandKind) VisitOperandEdges(expression graph.BoundNodeReference, f graph.EdgeVisitFunc, ctx any) error {
	return visitOut(expression, graph.KindOperand, f, ctx)
}

// Link inserts an Operand edge from expression to operand.
func (operandKind) Link(expression, operand graph.BoundNodeReference, identifier *string) graph.BoundEdgeReference {
	return expression.View().InsertEdge(expression.ID(), operand.ID(), graph.KindOperand, graph.DefaultDirectional(graph.KindOperand), identifier, nil, nil)
}

// GetOperandByIdentifier returns expression's first operand registered
// under identifier, if any.
func (operandKind) GetOperandByIdentifier(expression graph.BoundNodeReference, identifier string) (graph.BoundNodeReference, bool) {
	var found graph.BoundNodeReference
	var ok bool
	_ = Operand.VisitOperandEdges(expression, func(_ any, e graph.BoundEdgeReference) graph.VisitResult {
		if name, has := e.Edge().Name(); has && name == identifier {
			found = e.View().Bind(e.Edge().Target())
			ok = true
			return graph.Stop
		}
		return graph.Continue
	}, nil)
	return found, ok
}

// VisitOperandsOfType visits expression's operands whose Type edge points
// at operandType.
func (operandKind) VisitOperandsOfType(expression graph.BoundNodeReference, operandType graph.NodeID, f graph.NodeVisitFunc, ctx any) error {
	return Operand.VisitOperandEdges(expression, func(_ any, e graph.BoundEdgeReference) graph.VisitResult {
		operand := e.View().Bind(e.Edge().Target())
		if !Type.IsNodeInstanceOf(operand, operandType) {
			return graph.Continue
		}
		return f(ctx, operand)
	}, nil)
}

// VisitExpressionEdgesOfType visits operand's referencing expressions
// whose Type edge points at expressionType.
func (operandKind) VisitExpressionEdgesOfType(operand graph.BoundNodeReference, expressionType graph.NodeID, f graph.NodeVisitFunc, ctx any) error {
	return Operand.VisitExpressionEdges(operand, func(_ any, e graph.BoundEdgeReference) graph.VisitResult {
		expression := e.View().Bind(e.Edge().Source())
		if !Type.IsNodeInstanceOf(expression, expressionType) {
			return graph.Continue
		}
		return f(ctx, expression)
	}, nil)
}
