/*
 * union.go, part of gocrystal.
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
	"strings"

	"github.com/rmera/gocrystal/symmetry"
)

// boxTol is the tolerance used to decide if two frameworks share a unit cell.
const boxTol = 1e-6

// Union returns a new Framework with the atoms and charges of all the given frameworks, in
// order. All frameworks must have the same box, symmetry rules and space group, otherwise an
// error is returned. If the result has overlapping atoms or charges a warning is logged,
// but the union is still returned.
func Union(frameworks ...*Framework) (*Framework, error) {
	if len(frameworks) == 0 {
		return nil, newError(ErrInvalidArgument, "Union", "no frameworks given")
	}
	first := frameworks[0]
	names := make([]string, 0, len(frameworks))
	atoms := make([]*Atoms, 0, len(frameworks))
	charges := make([]*Charges, 0, len(frameworks))
	for i, f := range frameworks {
		if !first.box.ApproxEqual(f.box, boxTol) {
			return nil, newError(ErrInconsistentStructure, "Union", "framework %d (%s) has a different box", i, f.name)
		}
		if f.sym.SpaceGroup != first.sym.SpaceGroup || f.sym.P1 != first.sym.P1 || !symmetry.Equal(first.sym.Rules, f.sym.Rules) {
			return nil, newError(ErrInconsistentStructure, "Union", "framework %d (%s) has a different symmetry", i, f.name)
		}
		names = append(names, f.name)
		atoms = append(atoms, f.atoms)
		charges = append(charges, f.charges)
	}
	R := &Framework{
		name:    strings.Join(names, "+"),
		box:     first.box,
		atoms:   atoms[0].Concat(atoms[1:]...),
		charges: charges[0].Concat(charges[1:]...),
		sym:     first.Symmetry(),
	}
	if R.AtomOverlap(DefaultOverlapTol) || R.ChargeOverlap(DefaultOverlapTol) {
		logger.Printf("Union: %s has overlapping atoms or charges", R.name)
	}
	return R, nil
}

// Add returns the union of the receiver and the given frameworks. See Union.
func (F *Framework) Add(others ...*Framework) (*Framework, error) {
	R, err := Union(append([]*Framework{F}, others...)...)
	return R, errDecorate(err, "Add")
}
