/*
 * overlap.go, part of gocrystal.
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

// Overlap returns true if the two points, given in fractional coordinates, are closer
// than tol (in Angstrom) under periodic boundary conditions in the box B.
func (B *Box) Overlap(xf1, xf2 [3]float64, tol float64) bool {
	return B.Distance(xf1, xf2) < tol
}

// overlapPairs returns all the pairs i<j of sites in s that overlap within tol.
func overlapPairs(s Siter, B *Box, tol float64) [][2]int {
	var pairs [][2]int
	n := s.Len()
	for i := 0; i < n; i++ {
		xi := s.Position(i)
		for j := i + 1; j < n; j++ {
			if B.Overlap(xi, s.Position(j), tol) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// AtomOverlap returns true if any pair of atoms in the framework are closer than tol
// under periodic boundary conditions. If verbose is given and true, each overlapping
// pair is logged.
func (F *Framework) AtomOverlap(tol float64, verbose ...bool) bool {
	pairs := overlapPairs(F.atoms, F.box, tol)
	if len(verbose) > 0 && verbose[0] {
		for _, p := range pairs {
			logger.Printf("%s: atoms %d (%s) and %d (%s) overlap", F.name, p[0], F.atoms.Species[p[0]], p[1], F.atoms.Species[p[1]])
		}
	}
	return len(pairs) > 0
}

// ChargeOverlap returns true if any pair of point charges in the framework are closer than tol
// under periodic boundary conditions. If verbose is given and true, each overlapping
// pair is logged.
func (F *Framework) ChargeOverlap(tol float64, verbose ...bool) bool {
	pairs := overlapPairs(F.charges, F.box, tol)
	if len(verbose) > 0 && verbose[0] {
		for _, p := range pairs {
			logger.Printf("%s: charges %d (%g) and %d (%g) overlap", F.name, p[0], F.charges.Q[p[0]], p[1], F.charges.Q[p[1]])
		}
	}
	return len(pairs) > 0
}

// chargeTol is the largest difference between two overlapping charges that are
// considered duplicates of each other.
const chargeTol = 1e-4

// nonOverlapping returns the indexes of the sites in s that don't overlap with a site of lower
// index that is itself kept. same(i,j) must return true if the overlapping sites i and j
// can be merged, otherwise an error is returned.
func nonOverlapping(s Siter, B *Box, tol float64, same func(i, j int) bool) ([]int, error) {
	keep := make([]int, 0, s.Len())
	for j := 0; j < s.Len(); j++ {
		xj := s.Position(j)
		dup := false
		for _, i := range keep {
			if !B.Overlap(s.Position(i), xj, tol) {
				continue
			}
			if !same(i, j) {
				return nil, newError(ErrOverlap, "nonOverlapping", "sites %d and %d overlap but are different", i, j)
			}
			dup = true
			break
		}
		if !dup {
			keep = append(keep, j)
		}
	}
	return keep, nil
}

// RemoveOverlap returns a new Framework where, of each group of atoms (or charges) that overlap
// within tol, only the one with the lowest index is kept. Overlapping atoms must be of the same
// species, and overlapping charges must have the same value, otherwise an error is returned.
// If verbose is given and true, the number of removed atoms and charges is logged.
func (F *Framework) RemoveOverlap(tol float64, verbose ...bool) (*Framework, error) {
	akeep, err := nonOverlapping(F.atoms, F.box, tol, func(i, j int) bool {
		return F.atoms.Species[i] == F.atoms.Species[j]
	})
	if err != nil {
		return nil, errDecorate(err, "RemoveOverlap: atoms")
	}
	ckeep, err := nonOverlapping(F.charges, F.box, tol, func(i, j int) bool {
		return approx(F.charges.Q[i], F.charges.Q[j], chargeTol)
	})
	if err != nil {
		return nil, errDecorate(err, "RemoveOverlap: charges")
	}
	R := &Framework{name: F.name, box: F.box, atoms: F.atoms.Some(akeep), charges: F.charges.Some(ckeep), sym: F.Symmetry()}
	if len(verbose) > 0 && verbose[0] {
		logger.Printf("%s: removed %d overlapping atoms and %d overlapping charges", F.name, F.atoms.Len()-R.atoms.Len(), F.charges.Len()-R.charges.Len())
	}
	if R.AtomOverlap(tol) || R.ChargeOverlap(tol) {
		panic("RemoveOverlap: overlaps remain after de-duplication") //can't happen
	}
	return R, nil
}
