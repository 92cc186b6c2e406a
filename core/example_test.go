package core_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cerberon/core"
)

// ExampleBuild decodes a small network and inspects it.
func ExampleBuild() {
	doc := `
nodes:
  - {id: 1, label: laptop, group: client}
  - {id: 2, label: router, group: network}
  - {id: 3, label: server, group: datacenter}
edges:
  - {from: 1, to: 2, weight: 3, label: wifi}
  - {from: 2, to: 3, weight: 12, label: wan}
`
	desc, err := core.Decode(strings.NewReader(doc))
	if err != nil {
		fmt.Println(err)
		return
	}
	g, err := core.Build(desc)
	if err != nil {
		fmt.Println(err)
		return
	}
	nbrs, _ := g.Neighbors(2)
	w, _ := g.Weight(2, 3)
	fmt.Println("nodes:", g.Nodes())
	fmt.Println("router neighbors:", nbrs)
	fmt.Println("router→server:", w)
	// Output:
	// nodes: [1 2 3]
	// router neighbors: [3]
	// router→server: 12
}

// ExampleGraph_WithUniformWeights derives the hop graph.
func ExampleGraph_WithUniformWeights() {
	g, _ := core.Build(core.Description{
		Nodes: []core.NodeSpec{core.NewNodeSpec(1, "a", "x"), core.NewNodeSpec(2, "b", "x")},
		Edges: []core.EdgeSpec{core.NewEdgeSpec(1, 2, 40, "")},
	})
	hops, _ := g.WithUniformWeights(1)
	w, _ := g.Weight(1, 2)
	h, _ := hops.Weight(1, 2)
	fmt.Println(w, h)
	// Output: 40 1
}
