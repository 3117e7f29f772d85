package fixture

import (
	"fmt"

	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/edgekind"
	"github.com/archgraph/graphcore/graph/graphbuild"
	"github.com/archgraph/graphcore/typegraph"
)

func parseKind(s string) (graph.EdgeKind, error) {
	switch s {
	case "InterfaceConnection":
		return graph.KindInterfaceConnection, nil
	case "Pointer":
		return graph.KindPointer, nil
	case "Operand":
		return graph.KindOperand, nil
	case "Trait":
		return graph.KindTrait, nil
	default:
		return 0, fmt.Errorf("fixture: unknown link kind %q", s)
	}
}

// Build registers scenario's types, children, and links into tg, then (if
// scenario.Instantiate is set) instantiates that type and returns the
// result.
func Build(tg *typegraph.TypeGraph, scenario *Scenario) (graph.BoundNodeReference, error) {
	nodes := make(map[string]graph.BoundNodeReference, len(scenario.Types))

	for _, ts := range scenario.Types {
		node, err := tg.AddType(ts.Name)
		if err != nil {
			return graph.BoundNodeReference{}, err
		}
		nodes[ts.Name] = node
		if ts.Trait {
			edgekind.Trait.MarkAsTrait(node)
		}
	}

	for _, ts := range scenario.Types {
		parent := nodes[ts.Name]

		for _, cs := range ts.Children {
			// Both forms place a MakeChild template under parent: a type
			// registered via TypeGraph.AddType already has a composition
			// parent under tg.GetSelfNode(), so attaching the type node
			// itself as a second composition child would trip
			// ErrMultipleCompositionParents. The MakeChild/Type distinction
			// in the YAML schema is purely about which type the child
			// instantiates, not about whether a template is involved.
			typeName := cs.MakeChild
			if typeName == "" {
				typeName = cs.Type
			}
			if typeName == "" {
				return graph.BoundNodeReference{}, fmt.Errorf("fixture: child %q has neither type nor make_child", cs.Identifier)
			}
			childType, ok := nodes[typeName]
			if !ok {
				return graph.BoundNodeReference{}, fmt.Errorf("fixture: unknown type %q referenced by child %q", typeName, cs.Identifier)
			}
			mc := tg.NewMakeChild(childType, cs.Identifier)
			if _, err := edgekind.Composition.AddChild(parent, mc, cs.Identifier); err != nil {
				return graph.BoundNodeReference{}, err
			}
		}

		for _, ls := range ts.Links {
			lhsRef, err := tg.AddReference(ls.LHS)
			if err != nil {
				return graph.BoundNodeReference{}, err
			}
			rhsRef, err := tg.AddReference(ls.RHS)
			if err != nil {
				return graph.BoundNodeReference{}, err
			}
			kind, err := parseKind(ls.Kind)
			if err != nil {
				return graph.BoundNodeReference{}, err
			}
			edgeAttrs := graphbuild.NewEdgeCreationAttributes(kind)
			link := tg.NewMakeLink(lhsRef, rhsRef, edgeAttrs)
			edgekind.Operand.Link(parent, link, nil)
		}
	}

	if scenario.Instantiate == "" {
		return graph.BoundNodeReference{}, nil
	}

	typeNode, ok := nodes[scenario.Instantiate]
	if !ok {
		return graph.BoundNodeReference{}, fmt.Errorf("fixture: unknown instantiate target %q", scenario.Instantiate)
	}
	return tg.InstantiateNode(typeNode, nil)
}
