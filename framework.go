/*
 * framework.go, part of gocrystal.
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
	"fmt"
	"strings"

	"github.com/rmera/gocrystal/symmetry"
)

// P1Label is the canonical space group label of the P1 space group.
const P1Label = "P1"

// Symmetry collects the symmetry information of a Framework.
type Symmetry struct {
	Rules      symmetry.Rules
	SpaceGroup string
	P1         bool
}

// P1Symmetry returns the symmetry information of a structure in the P1 space group.
func P1Symmetry() Symmetry {
	return Symmetry{Rules: symmetry.P1(), SpaceGroup: P1Label, P1: true}
}

// NormalizeSpaceGroup trims quotes and spaces from a space group label and
// returns the canonical P1 label, plus true, for any of the usual ways of
// writing P1 ("P1", "P 1", "-P1").
func NormalizeSpaceGroup(label string) (string, bool) {
	label = strings.TrimSpace(strings.Trim(strings.TrimSpace(label), `'"`))
	switch label {
	case "P1", "P 1", "-P1":
		return P1Label, true
	}
	return label, false
}

// Framework is a crystal structure: a unit cell, the atoms and point charges in it,
// and its symmetry. A Framework is not modified after construction: every operation
// on it returns a new Framework, and the accessors return copies.
type Framework struct {
	name    string
	box     *Box
	atoms   *Atoms
	charges *Charges
	sym     Symmetry
}

// NewFramework builds a Framework from its parts. The parts are copied, atom species are
// stripped to their leading alphabetic symbol ("Ca3" becomes "Ca"), and zero charges
// are dropped. atoms and charges can be nil, meaning no atoms or charges. It returns an
// error if box is nil, the P1 flag is set but the rules are not just the identity,
// or a species label has no alphabetic prefix.
func NewFramework(name string, box *Box, atoms *Atoms, charges *Charges, sym Symmetry) (*Framework, error) {
	if box == nil {
		return nil, newError(ErrInvalidArgument, "NewFramework", "nil box")
	}
	if len(sym.Rules) == 0 {
		return nil, newError(ErrInvalidArgument, "NewFramework", "empty symmetry rule set")
	}
	if sym.P1 && !sym.Rules.IsP1() {
		return nil, newError(ErrInconsistentStructure, "NewFramework", "P1 structure with %d symmetry operations", len(sym.Rules))
	}
	//First phase: copy and normalize
	F := &Framework{name: name, box: box, atoms: atoms.Copy(), sym: sym}
	F.sym.Rules = sym.Rules.Copy()
	for i, v := range F.atoms.Species {
		s := StripLabel(v)
		if s == "" {
			return nil, newError(ErrInvalidArgument, "NewFramework", "atom %d: label %q has no element symbol", i, v)
		}
		F.atoms.Species[i] = s
	}
	c := charges.Copy()
	var err error
	F.charges, err = NewCharges(c.Q, c.Xf) //drops the zeros
	if err != nil {
		return nil, errDecorate(err, "NewFramework")
	}
	//Second phase: F is never modified again.
	return F, nil
}

// Name returns the name of the framework, usually derived from the file it was read from.
func (F *Framework) Name() string { return F.name }

// Box returns the unit cell of the framework. The Box must not be modified.
func (F *Framework) Box() *Box { return F.box }

// Atoms returns a copy of the atoms of the framework.
func (F *Framework) Atoms() *Atoms { return F.atoms.Copy() }

// Charges returns a copy of the point charges of the framework.
func (F *Framework) Charges() *Charges { return F.charges.Copy() }

// Symmetry returns a copy of the symmetry information of the framework.
func (F *Framework) Symmetry() Symmetry {
	s := F.sym
	s.Rules = F.sym.Rules.Copy()
	return s
}

// SpaceGroup returns the space group label of the framework.
func (F *Framework) SpaceGroup() string { return F.sym.SpaceGroup }

// IsP1 returns true if the framework is in the P1 space group, i.e. every atom is
// explicitly listed.
func (F *Framework) IsP1() bool { return F.sym.P1 }

// Len returns the number of atoms in the framework.
func (F *Framework) Len() int { return F.atoms.Len() }

// NCharges returns the number of point charges in the framework.
func (F *Framework) NCharges() int { return F.charges.Len() }

// Species returns the species of the ith atom.
func (F *Framework) Species(i int) string { return F.atoms.Species[i] }

// Position returns the fractional coordinates of the ith atom.
func (F *Framework) Position(i int) [3]float64 { return F.atoms.Position(i) }

// ApproxEqual returns true if F and O have approximately equal boxes, atoms and charges,
// and equivalent symmetry. Coordinates and charges are compared with tolerance tol. Names
// are not compared.
func (F *Framework) ApproxEqual(O *Framework, tol float64) bool {
	return F.box.ApproxEqual(O.box, tol) &&
		F.atoms.ApproxEqual(O.atoms, tol) &&
		F.charges.ApproxEqual(O.charges, tol) &&
		F.sym.P1 == O.sym.P1 &&
		symmetry.Equal(F.sym.Rules, O.sym.Rules)
}

func (F *Framework) String() string {
	return fmt.Sprintf("Framework %s: %d atoms, %d charges, space group %s (P1: %v)\n%s",
		F.name, F.atoms.Len(), F.charges.Len(), F.sym.SpaceGroup, F.sym.P1, F.box.String())
}

// checked runs the checks requested in o on F. If o asks for overlaps to be removed,
// the returned Framework will be a new, de-duplicated one. Otherwise F is returned.
func (F *Framework) checked(o *Options) (*Framework, error) {
	var err error
	if o.CheckOverlap {
		aover := F.AtomOverlap(o.OverlapTol, o.Verbose)
		cover := F.ChargeOverlap(o.OverlapTol, o.Verbose)
		if aover || cover {
			if !o.RemoveOverlap {
				return nil, newError(ErrOverlap, "checked", "%s has overlapping atoms (%v) or charges (%v)", F.name, aover, cover)
			}
			F, err = F.RemoveOverlap(o.OverlapTol, o.Verbose)
			if err != nil {
				return nil, errDecorate(err, "checked")
			}
		}
	}
	if o.CheckChargeNeutrality && !F.ChargeNeutral(o.NetChargeTol) {
		return nil, newError(ErrChargeNeutrality, "checked", "%s has a net charge of %g", F.name, F.NetCharge())
	}
	return F, nil
}

// Check runs the overlap and charge-neutrality checks in the given options (or
// the default ones) on the framework. If the options ask for overlaps to be
// removed, a de-duplicated Framework is returned. Otherwise the framework itself is.
func (F *Framework) Check(opts ...*Options) (*Framework, error) {
	R, err := F.checked(getOptions(opts))
	return R, errDecorate(err, "Check")
}
