// Package hasse draws the inclusion order of a powerset: one node per
// subset, one edge from each subset to every superset obtained by
// adding a single element.
package hasse

import (
	"fmt"

	"github.com/cs-au-dk/powerset/powerset"
	"github.com/cs-au-dk/powerset/utils"
	"github.com/cs-au-dk/powerset/utils/dot"
)

// MaxLen bounds the container length Diagram accepts. The diagram has
// 2^n nodes and n*2^(n-1) edges; it stops being readable long before it
// stops being computable.
const MaxLen = 12

// Diagram builds the Hasse diagram of the powerset of src as a DOT
// graph. Node identifiers are the subsets' masks, so the graph is
// deterministic for a given container.
func Diagram[T any](src powerset.Container[T]) (*dot.DotGraph, error) {
	n := src.Len()
	if n > MaxLen {
		return nil, fmt.Errorf("container of length %d exceeds the %d element diagram limit", n, MaxLen)
	}

	e, err := powerset.New(src)
	if err != nil {
		return nil, err
	}

	nodes := make([]*dot.DotNode, 0, 1<<uint(n))
	e.ForEach(func(s powerset.Subset[T]) {
		nodes = append(nodes, &dot.DotNode{
			ID:    fmt.Sprintf("s%d", s.Mask()),
			Attrs: dot.DotAttrs{"label": s.String()},
		})
	})

	edges := []*dot.DotEdge{}
	for m := uint64(0); m < 1<<uint(n); m++ {
		for i := 0; i < n; i++ {
			if m>>uint(i)&1 == 0 {
				edges = append(edges, &dot.DotEdge{
					From: nodes[m],
					To:   nodes[m|1<<uint(i)],
				})
			}
		}
	}

	opts := utils.Opts()
	return &dot.DotGraph{
		Title: fmt.Sprintf("Powerset of %d elements", n),
		Nodes: nodes,
		Edges: edges,
		Options: map[string]string{
			"minlen":  fmt.Sprint(opts.Minlen()),
			"nodesep": fmt.Sprint(opts.Nodesep()),
			"rankdir": "BT",
		},
	}, nil
}
