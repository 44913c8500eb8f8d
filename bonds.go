/*
 * bonds.go, part of gocrystal.
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
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

// Bond joins the atoms with indexes I and J (I<J) of a framework. Dist is the
// minimum-image distance between them, in Angstrom.
type Bond struct {
	I    int
	J    int
	Dist float64
}

// InferBonds assigns bonds to the framework based on a simple distance
// criterium, similar to that described in DOI:10.1186/1758-2946-3-33, using
// minimum-image distances, so bonds across the cell boundary are found.
// tol, if given, replaces the default tolerance added to the sum of covalent radii.
// When an atom has more bonds than allowed for its element, the longest ones are dropped.
func (F *Framework) InferBonds(tol ...float64) ([]Bond, error) {
	btol := bondtol
	if len(tol) > 0 {
		btol = tol[0]
	}
	n := F.atoms.Len()
	cov := make([]float64, n)
	for i, s := range F.atoms.Species {
		cov[i] = symbolCovrad[s]
		if cov[i] == 0 {
			return nil, newError(ErrInvalidArgument, "InferBonds", "couldn't find the covalent radius for %s %d", s, i)
		}
	}
	// might get slow for large cells.
	bonds := make([]Bond, 0, 2*n)
	for i := 0; i < n; i++ {
		xi := F.atoms.Position(i)
		for j := i + 1; j < n; j++ {
			d := F.box.Distance(xi, F.atoms.Position(j))
			if d < cov[i]+cov[j]+btol && d > tooclose {
				bonds = append(bonds, Bond{I: i, J: j, Dist: d})
			}
		}
	}
	//Shortest bonds go in first, so they are the ones kept for atoms
	//with a maximum number of bonds.
	sort.SliceStable(bonds, func(i, j int) bool { return bonds[i].Dist < bonds[j].Dist })
	count := make([]int, n)
	ret := make([]Bond, 0, len(bonds))
	for _, b := range bonds {
		if full(F.atoms.Species[b.I], count[b.I]) || full(F.atoms.Species[b.J], count[b.J]) {
			continue
		}
		count[b.I]++
		count[b.J]++
		ret = append(ret, b)
	}
	return ret, nil
}

// full returns true if an atom of the given element can't take more than
// the nbonds it has.
func full(symbol string, nbonds int) bool {
	max := symbolMaxBonds[symbol]
	return max != 0 && nbonds >= max
}
