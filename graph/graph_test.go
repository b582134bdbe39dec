package graph

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddNodeFirstWins(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "A:1:_:ALA", Name: "ALA"})
	g.AddNode(Node{ID: "A:1:_:ALA", Name: "DUPLICATE"})
	n, ok := g.Node("A:1:_:ALA")
	if !ok {
		t.Fatal("node not found")
	}
	if n.Name != "ALA" {
		t.Errorf("Name = %q, want ALA (first insert should win)", n.Name)
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", g.NodeCount())
	}
}

func TestAddEdgeIncrementsDegree(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "A"})
	g.AddNode(Node{ID: "B"})
	g.AddEdge(Edge{SourceID: "A", TargetID: "B", InteractionLabel: "VDW:SC_SC"})

	a, _ := g.Node("A")
	b, _ := g.Node("B")
	if a.Degree != 1 || b.Degree != 1 {
		t.Errorf("degrees = (%d, %d), want (1, 1)", a.Degree, b.Degree)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestEdgeMarshalJSONUsesSentinels(t *testing.T) {
	e := Edge{SourceID: "A", TargetID: "B", InteractionLabel: "GENERIC:CA"}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if decoded["angle"] != "-999.9" {
		t.Errorf("angle = %v, want sentinel -999.9", decoded["angle"])
	}
	if decoded["donor"] != "None" {
		t.Errorf("donor = %v, want sentinel None", decoded["donor"])
	}
}

func TestNodeMarshalJSONSentinelBFactor(t *testing.T) {
	n := Node{ID: "A"}
	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if decoded["bfactor_ca"] != "-999.9" {
		t.Errorf("bfactor_ca = %v, want sentinel -999.9", decoded["bfactor_ca"])
	}
}

func TestAddNodeFirstWinsKeepsWholeStruct(t *testing.T) {
	bfactor := 42.1
	want := Node{ID: "A:1:_:ALA", Name: "ALA", Chain: "A", SequenceNumber: 1, BFactorCA: &bfactor, SecondaryStructure: "H"}

	g := New()
	g.AddNode(want)
	g.AddNode(Node{ID: "A:1:_:ALA", Name: "DUPLICATE"})

	got, ok := g.Node("A:1:_:ALA")
	if !ok {
		t.Fatal("node not found")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stored node diverged from the first insert (-want +got):\n%s", diff)
	}
}

func TestToGonumPreservesNodeCount(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "A"})
	g.AddNode(Node{ID: "B"})
	g.AddEdge(Edge{SourceID: "A", TargetID: "B"})

	gn := g.ToGonum()
	if gn.Nodes().Len() != 2 {
		t.Errorf("gonum graph has %d nodes, want 2", gn.Nodes().Len())
	}
	if gn.Edges().Len() != 1 {
		t.Errorf("gonum graph has %d edges, want 1", gn.Edges().Len())
	}
}
