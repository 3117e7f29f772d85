package graph

import (
	"log"
	"sync"

	lru "github.com/hashicorp/golang-lru/simplelru"
	"github.com/google/uuid"
)

// GraphView is the sole owner of a typed property graph: an arena of nodes
// and edges plus their adjacency indexes. It follows nornicdb's MemoryEngine
// (pkg/storage/memory.go) in guarding all mutation with a sync.RWMutex and
// maintaining adjacency indexes alongside the primary storage rather than
// recomputing them on each traversal; unlike MemoryEngine (string-keyed maps,
// since its NodeID is a caller-chosen string) graphcore's ids are dense
// monotone integers assigned at insertion, so storage is slice-backed.
//
// A GraphView may be shared by any number of readers; mutating operations
// require exclusive access, enforced internally by the write lock.
type GraphView struct {
	mu sync.RWMutex

	nodes []*Node
	edges []*Edge

	out       map[NodeID][]EdgeID
	in        map[NodeID][]EdgeID
	neighbour map[NodeID][]EdgeID

	sessionID uuid.UUID
	logger    *log.Logger

	// ifaceGeneration increments every time an InterfaceConnection edge is
	// inserted. Each cached BFS result records the counter it was computed
	// at and is ignored on read once the counter has moved on, so a coarse
	// write invalidates every cached result without the cache needing to
	// track individual edges.
	ifaceGeneration uint64

	connMu    sync.Mutex
	connCache *lru.LRU
}

// connectivityCacheEntry pairs a memoized reachability result with the
// ifaceGeneration it was computed at, so a stale entry (computed before a
// later InterfaceConnection insertion) is detected on read rather than
// requiring eager invalidation.
type connectivityCacheEntry struct {
	generation uint64
	result     map[NodeID][]BoundEdgeReference
}

// connectivityCacheSize bounds how many distinct source nodes' BFS results
// a single view memoizes at once, the same bound traceviz's logviz package
// places on its own per-session result cache.
const connectivityCacheSize = 512

// NewGraphView creates an empty, ready-to-use view.
func NewGraphView(opts ...Option) *GraphView {
	cfg := newConfig(opts)
	connCache, err := lru.NewLRU(connectivityCacheSize, nil)
	if err != nil {
		panic(err)
	}
	v := &GraphView{
		out:       make(map[NodeID][]EdgeID),
		in:        make(map[NodeID][]EdgeID),
		neighbour: make(map[NodeID][]EdgeID),
		sessionID: uuid.New(),
		logger:    cfg.logger,
		connCache: connCache,
	}
	if cfg.nodeCapacityHint > 0 {
		v.nodes = make([]*Node, 0, cfg.nodeCapacityHint)
	}
	if cfg.edgeCapacityHint > 0 {
		v.edges = make([]*Edge, 0, cfg.edgeCapacityHint)
	}
	return v
}

// SessionID identifies this view uniquely across a process's lifetime, used
// to disambiguate views in logs and debug output (no two views print the
// same id, the same role a per-session uuid plays in traceviz's tooling).
func (v *GraphView) SessionID() uuid.UUID { return v.sessionID }

func (v *GraphView) String() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return "graph.GraphView{" + v.sessionID.String() + "}"
}

// IfaceGeneration reports how many InterfaceConnection edges have ever been
// inserted into this view. It is a monotone counter, not a count of edges
// currently present (edges are never removed, so the two coincide).
func (v *GraphView) IfaceGeneration() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.ifaceGeneration
}

// ConnectivityCacheGet returns a previously memoized reachability result for
// source, computed by graph/edgekind's connectivity solver, if one exists
// and was computed at this view's current InterfaceConnection generation.
// The cache lives on the view itself (rather than as a package-level
// global) so it is collectible the moment the view becomes unreachable.
func (v *GraphView) ConnectivityCacheGet(source NodeID) (map[NodeID][]BoundEdgeReference, bool) {
	v.connMu.Lock()
	defer v.connMu.Unlock()
	raw, ok := v.connCache.Get(source)
	if !ok {
		return nil, false
	}
	entry := raw.(connectivityCacheEntry)
	if entry.generation != v.IfaceGeneration() {
		return nil, false
	}
	return entry.result, true
}

// ConnectivityCachePut memoizes result for source at this view's current
// InterfaceConnection generation.
func (v *GraphView) ConnectivityCachePut(source NodeID, result map[NodeID][]BoundEdgeReference) {
	v.connMu.Lock()
	defer v.connMu.Unlock()
	v.connCache.Add(source, connectivityCacheEntry{generation: v.IfaceGeneration(), result: result})
}

// InsertNode allocates a NodeID and installs a generic node with the given
// initial attributes (nil is treated as empty).
func (v *GraphView) InsertNode(attrs *DynamicAttributes) BoundNodeReference {
	return v.InsertNodeWithKind(NodeGeneric, attrs)
}

// InsertNodeWithKind is InsertNode generalized to TypeGraph template kinds;
// ordinary callers should use InsertNode.
func (v *GraphView) InsertNodeWithKind(kind NodeKind, attrs *DynamicAttributes) BoundNodeReference {
	if attrs == nil {
		attrs = NewDynamicAttributes()
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	id := NodeID(len(v.nodes))
	v.nodes = append(v.nodes, &Node{id: id, kind: kind, attrs: attrs})
	return BoundNodeReference{view: v, id: id}
}

// InsertEdge allocates an EdgeID and installs an edge between source and
// target, requiring both to already exist in this view. InsertEdge performs
// no kind-specific invariant checking (duplicate identifiers, single
// composition parent, and so on) — those invariants belong to the edge-kind
// modules in graph/edgekind, which call InsertEdge only after their own
// checks pass. directional is used exactly as given; callers that want the
// kind's default pass DefaultDirectional(kind).
func (v *GraphView) InsertEdge(source, target NodeID, kind EdgeKind, directional bool, name *string, order *uint32, attrs *DynamicAttributes) BoundEdgeReference {
	if attrs == nil {
		attrs = NewDynamicAttributes()
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	if int(source) >= len(v.nodes) || int(target) >= len(v.nodes) {
		panic("graph: InsertEdge endpoint does not exist in this view")
	}

	id := EdgeID(len(v.edges))
	e := &Edge{
		id:          id,
		kind:        kind,
		source:      source,
		target:      target,
		directional: directional,
		name:        name,
		order:       order,
		attrs:       attrs,
	}
	v.edges = append(v.edges, e)

	if directional {
		v.out[source] = append(v.out[source], id)
		v.in[target] = append(v.in[target], id)
	} else {
		v.neighbour[source] = append(v.neighbour[source], id)
		if target != source {
			v.neighbour[target] = append(v.neighbour[target], id)
		}
	}

	if kind == KindInterfaceConnection {
		v.ifaceGeneration++
	}

	return BoundEdgeReference{view: v, id: id}
}

// Bind constructs a bound reference to an existing node.
func (v *GraphView) Bind(id NodeID) BoundNodeReference {
	return BoundNodeReference{view: v, id: id}
}

// BindEdge constructs a bound reference to an existing edge.
func (v *GraphView) BindEdge(id EdgeID) BoundEdgeReference {
	return BoundEdgeReference{view: v, id: id}
}

func (v *GraphView) hasNode(id NodeID) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return int(id) < len(v.nodes)
}

func (v *GraphView) hasEdge(id EdgeID) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return int(id) < len(v.edges)
}

func (v *GraphView) nodeByID(id NodeID) *Node {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if int(id) >= len(v.nodes) {
		panic("graph: node id does not belong to this view")
	}
	return v.nodes[id]
}

func (v *GraphView) edgeByID(id EdgeID) *Edge {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if int(id) >= len(v.edges) {
		panic("graph: edge id does not belong to this view")
	}
	return v.edges[id]
}

// NodeCount returns the number of nodes ever inserted into this view.
func (v *GraphView) NodeCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.nodes)
}

// EdgeCount returns the number of edges ever inserted into this view.
func (v *GraphView) EdgeCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.edges)
}

// IterNodes returns every node in insertion order.
func (v *GraphView) IterNodes() []BoundNodeReference {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]BoundNodeReference, len(v.nodes))
	for i := range v.nodes {
		out[i] = BoundNodeReference{view: v, id: NodeID(i)}
	}
	return out
}

// IterEdges returns every edge in insertion order.
func (v *GraphView) IterEdges() []BoundEdgeReference {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]BoundEdgeReference, len(v.edges))
	for i := range v.edges {
		out[i] = BoundEdgeReference{view: v, id: EdgeID(i)}
	}
	return out
}

// IterOutEdges returns node's outgoing directional edges in insertion
// order, optionally restricted to a single kind.
func (v *GraphView) IterOutEdges(node NodeID, kindFilter *EdgeKind) []BoundEdgeReference {
	return v.filterEdgeList(v.snapshotList(v.out, node), kindFilter)
}

// IterInEdges returns node's incoming directional edges in insertion order,
// optionally restricted to a single kind.
func (v *GraphView) IterInEdges(node NodeID, kindFilter *EdgeKind) []BoundEdgeReference {
	return v.filterEdgeList(v.snapshotList(v.in, node), kindFilter)
}

// IterNeighbourEdges returns every non-directional edge incident to node in
// insertion order, optionally restricted to a single kind. Directional
// edges never appear here; use IterOutEdges/IterInEdges for those.
func (v *GraphView) IterNeighbourEdges(node NodeID, kindFilter *EdgeKind) []BoundEdgeReference {
	return v.filterEdgeList(v.snapshotList(v.neighbour, node), kindFilter)
}

func (v *GraphView) snapshotList(index map[NodeID][]EdgeID, node NodeID) []EdgeID {
	v.mu.RLock()
	defer v.mu.RUnlock()
	src := index[node]
	out := make([]EdgeID, len(src))
	copy(out, src)
	return out
}

func (v *GraphView) filterEdgeList(ids []EdgeID, kindFilter *EdgeKind) []BoundEdgeReference {
	out := make([]BoundEdgeReference, 0, len(ids))
	for _, id := range ids {
		if kindFilter != nil && v.edgeByID(id).Kind() != *kindFilter {
			continue
		}
		out = append(out, BoundEdgeReference{view: v, id: id})
	}
	return out
}

// NodePredicate selects nodes for Subgraph.
type NodePredicate func(BoundNodeReference) bool

// EdgePredicate selects edges for Subgraph.
type EdgePredicate func(BoundEdgeReference) bool

// Subgraph materializes a new view containing exactly the nodes that
// satisfy nodePred and the edges that satisfy edgePred AND whose endpoints
// both survived nodePred. Ids are re-issued in the new view, starting from
// 0, in the original insertion order of the selected entities.
func (v *GraphView) Subgraph(nodePred NodePredicate, edgePred EdgePredicate) *GraphView {
	v.mu.RLock()
	nodesSnapshot := make([]*Node, len(v.nodes))
	copy(nodesSnapshot, v.nodes)
	edgesSnapshot := make([]*Edge, len(v.edges))
	copy(edgesSnapshot, v.edges)
	v.mu.RUnlock()

	out := NewGraphView()
	remap := make(map[NodeID]NodeID, len(nodesSnapshot))

	for _, n := range nodesSnapshot {
		ref := BoundNodeReference{view: v, id: n.id}
		if nodePred != nil && !nodePred(ref) {
			continue
		}
		newRef := out.InsertNodeWithKind(n.kind, n.attrs.Clone())
		remap[n.id] = newRef.id
	}

	for _, e := range edgesSnapshot {
		newSource, sourceOK := remap[e.source]
		newTarget, targetOK := remap[e.target]
		if !sourceOK || !targetOK {
			continue
		}
		ref := BoundEdgeReference{view: v, id: e.id}
		if edgePred != nil && !edgePred(ref) {
			continue
		}
		out.InsertEdge(newSource, newTarget, e.kind, e.directional, cloneStringPtr(e.name), cloneUint32Ptr(e.order), e.attrs.Clone())
	}

	return out
}

// cloneStringPtr copies the pointee rather than the pointer, so the new
// view's edge never aliases the source edge's name field (name is
// write-once today, but SetName could otherwise mutate both through one
// pointer).
func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneUint32Ptr is cloneStringPtr for Edge.order.
func cloneUint32Ptr(p *uint32) *uint32 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
