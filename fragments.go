/*
 * fragments.go, part of gocrystal.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package crystal

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// BondGraph returns an undirected graph with one node per atom of the framework, with the
// atom index as ID, and one edge per bond, weighted by the bond length. Bonds must
// join different atoms of the framework.
func (F *Framework) BondGraph(bonds []Bond) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < F.atoms.Len(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, b := range bonds {
		if b.I == b.J || b.I >= F.atoms.Len() || b.J >= F.atoms.Len() || b.I < 0 || b.J < 0 {
			panic("BondGraph: bond between non-existent or identical atoms")
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(b.I), simple.Node(b.J), b.Dist))
	}
	return g
}

// Fragments returns the indexes of the atoms in each set of atoms connected by the
// given bonds. Since bonds cross the cell boundary, an extended framework is a single
// fragment, while guest molecules or counterions form their own. Each fragment is sorted, and
// the fragments are sorted by their first atom.
func (F *Framework) Fragments(bonds []Bond) [][]int {
	comps := topo.ConnectedComponents(F.BondGraph(bonds))
	ret := make([][]int, 0, len(comps))
	for _, c := range comps {
		ret = append(ret, nodeIDs(c))
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

func nodeIDs(nodes []graph.Node) []int {
	ids := make([]int, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, int(n.ID()))
	}
	sort.Ints(ids)
	return ids
}
