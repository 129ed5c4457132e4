package skillgraph

// pair identifies an edge by its ordered endpoints.
type pair struct {
	from, to string
}

// Builder folds edge records into a duplicate-free Graph.
// Nodes are unique by id and edges by (from, to); in both cases the first
// record wins and later ones never overwrite it. Output keeps first-seen order.
//
// A Builder is not safe for concurrent use. Each request should use its own.
type Builder struct {
	nodes     []Node
	nodeIndex map[string]struct{}
	edges     []Edge
	edgeIndex map[pair]struct{}
	skipped   int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		nodes:     []Node{},
		nodeIndex: make(map[string]struct{}),
		edges:     []Edge{},
		edgeIndex: make(map[pair]struct{}),
	}
}

// Add registers the record's endpoints and relationship.
// It returns false when the record is missing an id and was skipped.
func (b *Builder) Add(rec EdgeRecord) bool {
	if rec.SourceID == "" || rec.TargetID == "" {
		b.skipped++
		return false
	}

	b.addNode(rec.SourceID, rec.SourceName)
	b.addNode(rec.TargetID, rec.TargetName)

	key := pair{from: rec.SourceID, to: rec.TargetID}
	if _, ok := b.edgeIndex[key]; !ok {
		b.edgeIndex[key] = struct{}{}
		b.edges = append(b.edges, Edge{From: rec.SourceID, To: rec.TargetID, Label: rec.RelationshipType})
	}
	return true
}

func (b *Builder) addNode(id, name string) {
	if _, ok := b.nodeIndex[id]; ok {
		return
	}
	b.nodeIndex[id] = struct{}{}
	if name == "" {
		name = id
	}
	b.nodes = append(b.nodes, Node{ID: id, Label: name})
}

// Skipped returns how many records were dropped for a missing id.
func (b *Builder) Skipped() int {
	return b.skipped
}

// Graph returns a snapshot of the nodes and edges registered so far.
func (b *Builder) Graph() Graph {
	g := Graph{
		Nodes: make([]Node, len(b.nodes)),
		Edges: make([]Edge, len(b.edges)),
	}
	copy(g.Nodes, b.nodes)
	copy(g.Edges, b.edges)
	return g
}

// AddAll adds every record in order and returns b.
func (b *Builder) AddAll(records []EdgeRecord) *Builder {
	for _, rec := range records {
		b.Add(rec)
	}
	return b
}

// Aggregate converts query records into the visualization payload.
func Aggregate(records []EdgeRecord) Graph {
	return NewBuilder().AddAll(records).Graph()
}
