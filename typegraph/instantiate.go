package typegraph

import (
	"fmt"

	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/edgekind"
	"github.com/archgraph/graphcore/graph/graphbuild"
)

// LinkResolutionFailedError reports that a MakeLink template's lhs or rhs
// reference could not be resolved against the instance under construction.
type LinkResolutionFailedError struct {
	TemplateNode graph.NodeID
	RefPath      []string
}

func (e *LinkResolutionFailedError) Error() string {
	return fmt.Sprintf("typegraph: link template node %d could not resolve reference path %v", e.TemplateNode, e.RefPath)
}

// TypeCycleError reports that instantiation recursed back into a type node
// already on the current instantiation path.
type TypeCycleError struct {
	TypeNode graph.NodeID
}

func (e *TypeCycleError) Error() string {
	return fmt.Sprintf("typegraph: instantiation of type node %d forms a cycle", e.TypeNode)
}

// maxInstantiationDepth bounds recursion as a TypeCycle fallback for type
// graphs too deep to plausibly be legitimate, per spec §4.H's "implementers
// are encouraged to bound recursion or detect the cycle".
const maxInstantiationDepth = 4096

// Instantiate materialises the type registered under typeName into a fresh
// instance subgraph. extra, if non-nil, is overlaid onto the new instance's
// attributes after the type's own NodeCreationAttributes (if any).
func (tg *TypeGraph) Instantiate(typeName string, extra *graphbuild.NodeCreationAttributes) (graph.BoundNodeReference, error) {
	typeNode, ok := tg.GetTypeByName(typeName)
	if !ok {
		return graph.BoundNodeReference{}, fmt.Errorf("typegraph: no registered type named %q", typeName)
	}
	return tg.InstantiateNode(typeNode, extra)
}

// InstantiateNode is Instantiate generalized to an already-bound type node,
// including unregistered ones (trait types, MakeChild child types).
func (tg *TypeGraph) InstantiateNode(typeNode graph.BoundNodeReference, extra *graphbuild.NodeCreationAttributes) (graph.BoundNodeReference, error) {
	return tg.instantiate(typeNode, extra, make(map[graph.NodeID]bool), 0)
}

func (tg *TypeGraph) instantiate(typeNode graph.BoundNodeReference, extra *graphbuild.NodeCreationAttributes, path map[graph.NodeID]bool, depth int) (graph.BoundNodeReference, error) {
	if depth > maxInstantiationDepth || path[typeNode.ID()] {
		return graph.BoundNodeReference{}, &TypeCycleError{TypeNode: typeNode.ID()}
	}
	path[typeNode.ID()] = true
	defer delete(path, typeNode.ID())

	instance := tg.view.InsertNode(nil)
	tg.track(instance.ID())

	if overlay := tg.makeChildOverlay(typeNode.ID()); overlay != nil {
		overlay.ApplyTo(instance)
	}
	if extra != nil {
		extra.ApplyTo(instance)
	}

	edgekind.Type.Link(tg.view, typeNode.ID(), instance.ID())

	if err := tg.instantiateChildren(typeNode, instance, path, depth); err != nil {
		return graph.BoundNodeReference{}, err
	}
	if err := tg.instantiateOperands(typeNode, instance, path, depth); err != nil {
		return graph.BoundNodeReference{}, err
	}
	if err := tg.instantiateTraits(typeNode, instance, path, depth); err != nil {
		return graph.BoundNodeReference{}, err
	}

	return instance, nil
}

// instantiateChildren walks typeNode's composition children in insertion
// order, recursively instantiating each and wiring the result under
// instance.
func (tg *TypeGraph) instantiateChildren(typeNode, instance graph.BoundNodeReference, path map[graph.NodeID]bool, depth int) error {
	var errOut error

	_ = edgekind.Composition.VisitChildEdges(typeNode, func(_ any, e graph.BoundEdgeReference) graph.VisitResult {
		c := e.View().Bind(e.Edge().Target())
		name, hasName := e.Edge().Name()

		var childType graph.BoundNodeReference
		var overlay *graphbuild.NodeCreationAttributes

		if c.Kind() == graph.NodeMakeChild {
			ctID, ok := tg.childTypeNodeOf(c)
			if !ok {
				errOut = fmt.Errorf("typegraph: MakeChild node %d has no child type", c.ID())
				return graph.VisitError
			}
			childType = tg.view.Bind(ctID)
			if !hasName {
				if id, ok := tg.identifierOf(c); ok {
					name = id
				}
			}
			overlay = tg.makeChildOverlay(c.ID())
		} else {
			childType = c
		}

		childInstance, err := tg.instantiate(childType, nil, path, depth+1)
		if err != nil {
			errOut = err
			return graph.VisitError
		}
		if overlay != nil {
			overlay.ApplyTo(childInstance)
		}

		if _, err := edgekind.Composition.AddChild(instance, childInstance, name); err != nil {
			errOut = err
			return graph.VisitError
		}

		return graph.Continue
	}, nil)

	return errOut
}

// instantiateOperands walks typeNode's operand children, wiring each
// MakeLink template into a real edge once both of its reference chains
// resolve against instance.
func (tg *TypeGraph) instantiateOperands(typeNode, instance graph.BoundNodeReference, path map[graph.NodeID]bool, depth int) error {
	var errOut error

	_ = edgekind.Operand.VisitOperandEdges(typeNode, func(_ any, e graph.BoundEdgeReference) graph.VisitResult {
		o := e.View().Bind(e.Edge().Target())
		if o.Kind() != graph.NodeMakeLink {
			return graph.Continue
		}

		lhsRefID, rhsRefID, ok := tg.linkRefsOf(o)
		if !ok {
			errOut = fmt.Errorf("typegraph: MakeLink node %d missing reference handles", o.ID())
			return graph.VisitError
		}
		lhsRef := tg.view.Bind(lhsRefID)
		rhsRef := tg.view.Bind(rhsRefID)

		lhs, ok := Resolve(lhsRef, instance)
		if !ok {
			errOut = &LinkResolutionFailedError{TemplateNode: o.ID(), RefPath: referencePath(lhsRef)}
			return graph.VisitError
		}
		rhs, ok := Resolve(rhsRef, instance)
		if !ok {
			errOut = &LinkResolutionFailedError{TemplateNode: o.ID(), RefPath: referencePath(rhsRef)}
			return graph.VisitError
		}

		edgeAttrs := tg.linkEdgeAttrsOf(o.ID())
		if edgeAttrs == nil {
			errOut = fmt.Errorf("typegraph: MakeLink node %d missing edge attributes", o.ID())
			return graph.VisitError
		}
		if _, err := edgeAttrs.InsertEdge(tg.view, lhs.ID(), rhs.ID()); err != nil {
			errOut = err
			return graph.VisitError
		}

		return graph.Continue
	}, nil)

	return errOut
}

// instantiateTraits walks typeNode's own outgoing Trait edges (traits
// attached directly to the type being instantiated) and instantiates each
// trait type, attaching the resulting instance to instance via a Trait
// edge.
func (tg *TypeGraph) instantiateTraits(typeNode, instance graph.BoundNodeReference, path map[graph.NodeID]bool, depth int) error {
	var errOut error

	_ = edgekind.Trait.VisitTraitEdges(typeNode, func(_ any, e graph.BoundEdgeReference) graph.VisitResult {
		traitType := e.View().Bind(e.Edge().Target())
		traitInstance, err := tg.instantiate(traitType, nil, path, depth+1)
		if err != nil {
			errOut = err
			return graph.VisitError
		}
		edgekind.Trait.AddTraitInstanceTo(instance, traitInstance)
		return graph.Continue
	}, nil)

	return errOut
}

// AddTraitTo instantiates traitType into a fresh trait-instance node and
// attaches it to target via a Trait edge.
func (tg *TypeGraph) AddTraitTo(target, traitType graph.BoundNodeReference) (graph.BoundNodeReference, error) {
	instance, err := tg.InstantiateNode(traitType, nil)
	if err != nil {
		return graph.BoundNodeReference{}, err
	}
	edgekind.Trait.AddTraitInstanceTo(target, instance)
	return instance, nil
}
