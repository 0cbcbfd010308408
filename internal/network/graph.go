package network

import "github.com/ppiankov/actornet/internal/model"

// graph is the undirected view of structured input used for structure metrics
type graph struct {
	nodes  int
	edges  int
	degree map[string]int // Named connection endpoints only
}

// newGraph sizes the network as the larger of the actor count and the
// number of distinct connection endpoints. Named self loops are ignored;
// edges with a blank endpoint still count toward density.
func newGraph(in model.StructuredInput) graph {
	g := graph{degree: make(map[string]int)}

	for _, conn := range in.Connections {
		if conn.From != "" && conn.From == conn.To {
			continue
		}
		g.edges++
		if conn.From != "" {
			g.degree[conn.From]++
		}
		if conn.To != "" {
			g.degree[conn.To]++
		}
	}

	g.nodes = max(len(in.Actors), len(g.degree))
	return g
}

// centralization is Freeman degree centralization: 1 for a star, 0 when
// every node has the same degree. Graphs under three nodes score 0.
func (g graph) centralization() float64 {
	n := g.nodes
	if n < 3 || len(g.degree) == 0 {
		return 0
	}

	maxDegree := 0
	for _, d := range g.degree {
		maxDegree = max(maxDegree, d)
	}

	var sum float64
	for _, d := range g.degree {
		sum += float64(maxDegree - d)
	}
	// Actors with no named connection have degree 0
	sum += float64((n - len(g.degree)) * maxDegree)

	return model.Clamp(sum / float64((n-1)*(n-2)))
}
