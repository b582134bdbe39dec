package graph

import "gonum.org/v1/gonum/graph/simple"

// gonumNode wraps a residue id so it can satisfy gonum's graph.Node
// interface, which identifies nodes by int64 rather than by our string
// residue ids.
type gonumNode struct {
	id   int64
	node Node
}

func (n gonumNode) ID() int64 { return n.id }

// ToGonum builds a gonum/graph/simple.WeightedUndirectedGraph mirroring
// this Graph, weighting each edge by its energy. Node ids are assigned
// in the Graph's own insertion order so the mapping is deterministic
// across calls on the same Graph.
func (g *Graph) ToGonum() *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, 0)

	ids := make(map[string]int64, len(g.nodeOrder))
	for i, residueID := range g.nodeOrder {
		id := int64(i)
		ids[residueID] = id
		out.AddNode(gonumNode{id: id, node: *g.nodes[residueID]})
	}

	for _, e := range g.edges {
		sourceID, sourceOK := ids[e.SourceID]
		targetID, targetOK := ids[e.TargetID]
		if !sourceOK || !targetOK {
			continue
		}
		out.SetWeightedEdge(out.NewWeightedEdge(
			out.Node(sourceID),
			out.Node(targetID),
			e.Energy,
		))
	}

	return out
}
