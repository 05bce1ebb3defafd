/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

// Package graph builds the directed transform graph over the closed system
// enumeration and plans shortest paths across it with Dijkstra's algorithm
// (unit edge weights, equivalent to breadth-first search), composing the
// planned path into a single runnable edge.
package graph

/*****************************************************************************************************************/

import (
	"fmt"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/heliopol/solpol/pkg/bundle"
	"github.com/heliopol/solpol/pkg/catalogue"
	"github.com/heliopol/solpol/pkg/solpolerr"
	"github.com/heliopol/solpol/pkg/system"
)

/*****************************************************************************************************************/

// Graph is the directed transform graph: one node per system.System, one
// edge per catalogue.Edge. It is built once and read thereafter, so it is
// safe for concurrent planning.
type Graph struct {
	directed *simple.DirectedGraph
	edges    map[[2]int64]catalogue.Edge
}

/*****************************************************************************************************************/

// edges is the full catalogue wired into the graph.
var edges = []catalogue.Edge{
	catalogue.MZPSolarToBpB,
	catalogue.BpBToMZPSolar,
	catalogue.BpBToBtBr,
	catalogue.BtBrToBpB,
	catalogue.BtBrToMZPSolar,
	catalogue.BtBrToNPol,
	catalogue.MZPSolarToStokes,
	catalogue.StokesToMZPSolar,
	catalogue.FourPolToStokes,
	catalogue.MZPSolarToBP3,
	catalogue.BP3ToMZPSolar,
	catalogue.BP3ToBThP,
	catalogue.NPolToMZPSolar,
	catalogue.MZPSolarToNPol,
	catalogue.MZPSolarToMZPInstru,
	catalogue.MZPInstruToMZPSolar,
}

/*****************************************************************************************************************/

// New builds the transform graph from the full edge catalogue.
func New() *Graph {
	g := &Graph{
		directed: simple.NewDirectedGraph(),
		edges:    make(map[[2]int64]catalogue.Edge, len(edges)),
	}

	for _, s := range system.All {
		g.directed.AddNode(simple.Node(int64(s)))
	}

	for _, e := range edges {
		src, dst := int64(e.Source), int64(e.Destination)
		g.directed.SetEdge(simple.Edge{F: simple.Node(src), T: simple.Node(dst)})
		g.edges[[2]int64{src, dst}] = e
	}

	return g
}

/*****************************************************************************************************************/

// Plan is a composed path from a source system to a destination system: the
// sequence of catalogue edges to apply in order, and the folded UsesAlpha /
// UsesOutAngles bits across the whole path.
type Plan struct {
	Source, Destination system.System
	Steps               []catalogue.Edge
	UsesAlpha           bool
	UsesOutAngles       bool
}

/*****************************************************************************************************************/

// Route finds the shortest path from src to dst and composes it into a
// Plan. Fails with UnsupportedTransformation if no path exists.
func (g *Graph) Route(src, dst system.System) (*Plan, error) {
	if src == dst {
		return &Plan{Source: src, Destination: dst}, nil
	}

	shortest := path.DijkstraFrom(simple.Node(int64(src)), g.directed)
	nodes, _ := shortest.To(int64(dst))
	if len(nodes) == 0 {
		return nil, solpolerr.UnsupportedTransformation(fmt.Sprintf("%s -> %s", src, dst))
	}

	plan := &Plan{Source: src, Destination: dst}
	for i := 0; i+1 < len(nodes); i++ {
		key := [2]int64{nodes[i].ID(), nodes[i+1].ID()}
		edge, ok := g.edges[key]
		if !ok {
			return nil, solpolerr.UnsupportedTransformation(fmt.Sprintf("%s -> %s", src, dst))
		}
		plan.Steps = append(plan.Steps, edge)
		plan.UsesAlpha = plan.UsesAlpha || edge.UsesAlpha
		plan.UsesOutAngles = plan.UsesOutAngles || edge.UsesOutAngles
	}

	return plan, nil
}

/*****************************************************************************************************************/

// Apply runs every step of the plan in order, threading the same options
// through each edge.
func (p *Plan) Apply(b *bundle.Bundle, opts catalogue.Options) (*bundle.Bundle, error) {
	current := b
	for _, step := range p.Steps {
		next, err := step.Apply(current, opts)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

/*****************************************************************************************************************/
