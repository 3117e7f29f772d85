// Package typegraph wraps a graph.GraphView with a type registry and the
// instantiation engine that materialises a type's template into a concrete
// instance subgraph. It is the one module in graphcore that is not a
// stateless namespace: a TypeGraph owns the registry, the template-specific
// side tables template nodes need, and the bookkeeping that lets
// Of/OfType/OfInstance answer "which TypeGraph owns this node".
package typegraph

import (
	"fmt"
	"log"
	"sync"

	"github.com/archgraph/graphcore/graph"
	"github.com/archgraph/graphcore/graph/edgekind"
	"github.com/archgraph/graphcore/graph/graphbuild"
)

// DuplicateTypeNameError reports that identifier is already registered in a
// TypeGraph.
type DuplicateTypeNameError struct {
	Identifier string
}

func (e *DuplicateTypeNameError) Error() string {
	return fmt.Sprintf("typegraph: type name %q is already registered", e.Identifier)
}

// TypeGraph wraps a graph.GraphView. It borrows the view; it never owns or
// closes it.
type TypeGraph struct {
	mu     sync.RWMutex
	view   *graph.GraphView
	self   graph.BoundNodeReference
	byName map[string]graph.NodeID
	owned  map[graph.NodeID]bool
	logger *log.Logger

	makeChildAttrs    map[graph.NodeID]*graphbuild.NodeCreationAttributes
	makeLinkEdgeAttrs map[graph.NodeID]*graphbuild.EdgeCreationAttributes
}

// registryMu and registry back Of/OfType/OfInstance: a process-wide index
// from view to the TypeGraphs that borrow it. This is bookkeeping, not
// shared mutable graph state — the spec's prohibition on library-level
// globals targets the latter (§9 Design notes: "the type registry is a
// field of TypeGraph, not a process global"); per-TypeGraph registries
// (byName, owned) still live on the struct. When more than one TypeGraph
// claims the same node (which the spec leaves unresolved), the
// most-recently-registered TypeGraph wins, since that is the one a caller
// who just constructed it would expect to get back.
var (
	registryMu sync.RWMutex
	registry   = map[*graph.GraphView][]*TypeGraph{}
)

// NewTypeGraph wraps view with a fresh, empty type registry.
func NewTypeGraph(view *graph.GraphView, opts ...Option) *TypeGraph {
	cfg := newConfig(opts)
	tg := &TypeGraph{
		view:              view,
		self:              view.InsertNode(nil),
		byName:            make(map[string]graph.NodeID),
		owned:             make(map[graph.NodeID]bool),
		logger:            cfg.logger,
		makeChildAttrs:    make(map[graph.NodeID]*graphbuild.NodeCreationAttributes),
		makeLinkEdgeAttrs: make(map[graph.NodeID]*graphbuild.EdgeCreationAttributes),
	}
	tg.owned[tg.self.ID()] = true

	registryMu.Lock()
	registry[view] = append(registry[view], tg)
	registryMu.Unlock()

	return tg
}

func (tg *TypeGraph) track(id graph.NodeID) {
	tg.mu.Lock()
	defer tg.mu.Unlock()
	tg.owned[id] = true
}

// View returns the borrowed GraphView.
func (tg *TypeGraph) View() *graph.GraphView { return tg.view }

// GetSelfNode returns the distinguished root node that owns every
// type-registry composition edge.
func (tg *TypeGraph) GetSelfNode() graph.BoundNodeReference { return tg.self }

// AddType inserts a fresh node, marks it a type by registering it under
// identifier, and attaches it under GetSelfNode via a Composition edge
// named identifier. It fails with *DuplicateTypeNameError if identifier is
// already registered.
func (tg *TypeGraph) AddType(identifier string) (graph.BoundNodeReference, error) {
	tg.mu.Lock()
	defer tg.mu.Unlock()

	if _, exists := tg.byName[identifier]; exists {
		return graph.BoundNodeReference{}, &DuplicateTypeNameError{Identifier: identifier}
	}

	node := tg.view.InsertNode(nil)
	if _, err := edgekind.Composition.AddChild(tg.self, node, identifier); err != nil {
		return graph.BoundNodeReference{}, err
	}

	tg.byName[identifier] = node.ID()
	tg.owned[node.ID()] = true
	return node, nil
}

// AddTrait inserts a trait-kind type: an unregistered (unnamed) type node
// marked via edgekind.Trait.MarkAsTrait. The spec gives add_trait no
// identifier parameter, so unlike AddType this node is never placed under
// GetSelfNode's composition subtree or reachable by name.
func (tg *TypeGraph) AddTrait() graph.BoundNodeReference {
	tg.mu.Lock()
	defer tg.mu.Unlock()

	node := tg.view.InsertNode(nil)
	edgekind.Trait.MarkAsTrait(node)
	tg.owned[node.ID()] = true
	return node
}

// GetTypeByName returns the type registered under identifier, if any.
func (tg *TypeGraph) GetTypeByName(identifier string) (graph.BoundNodeReference, bool) {
	tg.mu.RLock()
	defer tg.mu.RUnlock()

	id, ok := tg.byName[identifier]
	if !ok {
		return graph.BoundNodeReference{}, false
	}
	return tg.view.Bind(id), true
}

// GetOrCreateType returns the type registered under identifier, creating
// and registering a fresh one if none exists yet.
func (tg *TypeGraph) GetOrCreateType(identifier string) (graph.BoundNodeReference, error) {
	if node, ok := tg.GetTypeByName(identifier); ok {
		return node, nil
	}
	return tg.AddType(identifier)
}

// Of locates the TypeGraph that owns node, if any.
func Of(node graph.BoundNodeReference) (*TypeGraph, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	candidates := registry[node.View()]
	for i := len(candidates) - 1; i >= 0; i-- {
		tg := candidates[i]
		tg.mu.RLock()
		owned := tg.owned[node.ID()]
		tg.mu.RUnlock()
		if owned {
			return tg, true
		}
	}
	return nil, false
}

// OfType is Of restricted to type nodes; it behaves identically to Of but
// documents intent at call sites.
func OfType(typeNode graph.BoundNodeReference) (*TypeGraph, bool) { return Of(typeNode) }

// OfInstance locates the TypeGraph that owns instanceNode's type, following
// its Type edge. It falls back to Of(instanceNode) if the instance itself
// was registered directly (e.g. a trait instance).
func OfInstance(instanceNode graph.BoundNodeReference) (*TypeGraph, bool) {
	if edge, ok := edgekind.Type.GetTypeEdge(instanceNode); ok {
		typeNode := instanceNode.View().Bind(edge.Edge().Source())
		if tg, ok := Of(typeNode); ok {
			return tg, true
		}
	}
	return Of(instanceNode)
}

// GetTypeSubgraph materialises a new view containing only registered type
// nodes and the Composition edges directly between them.
func (tg *TypeGraph) GetTypeSubgraph() *graph.GraphView {
	tg.mu.RLock()
	typeIDs := make(map[graph.NodeID]bool, len(tg.byName))
	for _, id := range tg.byName {
		typeIDs[id] = true
	}
	tg.mu.RUnlock()

	return tg.view.Subgraph(
		func(n graph.BoundNodeReference) bool { return typeIDs[n.ID()] },
		func(e graph.BoundEdgeReference) bool {
			return e.Kind() == graph.KindComposition && typeIDs[e.Edge().Source()] && typeIDs[e.Edge().Target()]
		},
	)
}

// GetTypeInstanceOverview returns, for each registered type name, the
// number of instances of that type currently in the view.
func (tg *TypeGraph) GetTypeInstanceOverview() map[string]int {
	tg.mu.RLock()
	defer tg.mu.RUnlock()

	k := graph.KindType
	out := make(map[string]int, len(tg.byName))
	for name, id := range tg.byName {
		out[name] = len(tg.view.IterOutEdges(id, &k))
	}
	return out
}

// subgraphTraversalKinds are the edge kinds GetSubgraphOfNode follows.
// InterfaceConnection is deliberately excluded (per spec §4.G).
var subgraphTraversalKinds = map[graph.EdgeKind]bool{
	graph.KindComposition: true,
	graph.KindType:        true,
	graph.KindTrait:       true,
	graph.KindPointer:     true,
}

// GetSubgraphOfNode returns the transitive closure of start under
// Composition child edges, Type instance edges, Trait edges, and Pointer
// outgoing edges. The result is a freshly allocated view; the caller owns
// it.
func (tg *TypeGraph) GetSubgraphOfNode(start graph.BoundNodeReference) *graph.GraphView {
	visited := map[graph.NodeID]bool{start.ID(): true}
	queue := []graph.NodeID{start.ID()}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, e := range tg.view.IterOutEdges(current, nil) {
			if !subgraphTraversalKinds[e.Kind()] {
				continue
			}
			target := e.Edge().Target()
			if visited[target] {
				continue
			}
			visited[target] = true
			queue = append(queue, target)
		}
	}

	return tg.view.Subgraph(
		func(n graph.BoundNodeReference) bool { return visited[n.ID()] },
		func(e graph.BoundEdgeReference) bool { return subgraphTraversalKinds[e.Kind()] },
	)
}
