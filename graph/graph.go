/*
Package graph holds the RIN output value: an undirected, residue-keyed
node set and an ordered edge list, both populated once by the pipeline
orchestrator and read-only from then on. Graph has no lifetime
dependency on the residues or bonds used to build it — every field a
Node or Edge needs is copied in at construction time.
*/
package graph

// Node is one residue, carrying everything the serializer collaborator
// needs without consulting the original residue.Residue.
type Node struct {
	ID                 string
	Chain              string
	SequenceNumber     int
	Name               string
	X, Y, Z            float64
	BFactorCA          *float64 // nil when the residue has no alpha carbon
	SecondaryStructure string
	ProteinName        string
	Degree             int
}

// Edge is one interaction, carrying the kind-specific optional fields as
// pointers; a nil field serializes to the documented sentinel ("-999.9"
// for numbers, "None" for text) through Edge.MarshalJSON in serialize.go.
type Edge struct {
	SourceID        string
	TargetID        string
	Length          float64
	Energy          float64
	InteractionLabel string
	SourceAtom      string
	TargetAtom      string

	Angle       *float64
	Donor       *string
	Cation      *string
	Positive    *string
	Orientation *string
}

// Graph is the RIN output value: nodes keyed by residue id (first
// insertion wins, matching spec §4.9's idempotent-insert rule) plus an
// ordered edge list.
type Graph struct {
	nodeOrder []string
	nodes     map[string]*Node
	edges     []Edge
}

// New returns an empty Graph ready for AddNode/AddEdge.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode inserts a node keyed by its ID. A second insert with an
// already-present ID is a no-op: first wins, per spec §4.9.
func (g *Graph) AddNode(n Node) {
	if _, exists := g.nodes[n.ID]; exists {
		return
	}
	stored := n
	g.nodes[n.ID] = &stored
	g.nodeOrder = append(g.nodeOrder, n.ID)
}

// AddEdge appends an edge and increments both endpoints' degree. Both
// endpoints must already have been added via AddNode.
func (g *Graph) AddEdge(e Edge) {
	g.edges = append(g.edges, e)
	if n, ok := g.nodes[e.SourceID]; ok {
		n.Degree++
	}
	if n, ok := g.nodes[e.TargetID]; ok {
		n.Degree++
	}
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, *g.nodes[id])
	}
	return out
}

// Node looks up a single node by id.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of distinct residues in the graph.
func (g *Graph) NodeCount() int { return len(g.nodeOrder) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }
