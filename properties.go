/*
 * properties.go, part of gocrystal.
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
	"math"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// AmuPerA3ToKgPerM3 converts a density in amu/Å³ to kg/m³.
const AmuPerA3ToKgPerM3 = 1660.53892

// ChemicalFormula returns the irreducible formula of the framework, i.e. the number
// of atoms of each species divided by the greatest common divisor of all the counts.
func (F *Framework) ChemicalFormula() map[string]int {
	counts := make(map[string]int)
	for _, v := range F.atoms.Species {
		counts[v]++
	}
	d := 0
	for _, v := range counts {
		d = gcd(d, v)
	}
	for k, v := range counts {
		counts[k] = v / d
	}
	return counts
}

// FormulaString returns the irreducible formula of the framework as a string, with
// the species in alphabetical order and counts of 1 omitted, i.e. "CaO2".
func (F *Framework) FormulaString() string {
	formula := F.ChemicalFormula()
	keys := maps.Keys(formula)
	slices.Sort(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		if formula[k] != 1 {
			fmt.Fprintf(&b, "%d", formula[k])
		}
	}
	return b.String()
}

// MolecularWeight returns the mass, in amu, of the atoms in the unit cell.
// It returns an error if the mass of a species is not known.
func (F *Framework) MolecularWeight() (float64, error) {
	var mw float64
	for i, v := range F.atoms.Species {
		m, ok := symbolMass[v]
		if !ok {
			return 0, newError(ErrInvalidArgument, "MolecularWeight", "unknown mass for atom %d (%s)", i, v)
		}
		mw += m
	}
	return mw, nil
}

// Density returns the density of the crystal in kg/m³.
func (F *Framework) Density() (float64, error) {
	mw, err := F.MolecularWeight()
	if err != nil {
		return 0, errDecorate(err, "Density")
	}
	return mw / F.box.Volume * AmuPerA3ToKgPerM3, nil
}

// NetCharge returns the sum of the point charges of the framework.
func (F *Framework) NetCharge() float64 {
	return F.charges.Net()
}

// ChargeNeutral returns true if the absolute net charge of the framework is smaller than tol.
func (F *Framework) ChargeNeutral(tol float64) bool {
	return math.Abs(F.NetCharge()) < tol
}

// Charged returns true if the framework has point charges.
func (F *Framework) Charged() bool {
	return F.charges.Len() > 0
}

// withCharges returns a copy of F with one point charge per atom, at the position of the atom,
// taken from q. It fails if the result has a net charge of tol or more.
func (F *Framework) withCharges(q []float64, tol float64) (*Framework, error) {
	if F.Charged() {
		logger.Printf("%s: replacing the %d existing charges", F.name, F.charges.Len())
	}
	charges, err := NewCharges(q, F.atoms.Xf)
	if err != nil {
		return nil, err
	}
	R := &Framework{name: F.name, box: F.box, atoms: F.atoms.Copy(), charges: charges, sym: F.Symmetry()}
	if !R.ChargeNeutral(tol) {
		return nil, newError(ErrChargeNeutrality, "withCharges", "net charge %g after assigning charges to %s", R.NetCharge(), F.name)
	}
	return R, nil
}

// AssignCharges returns a new Framework with one point charge on each atom. The charge of the ith
// atom is q[i]. Existing charges are replaced. It returns an error if q doesn't have one element per
// atom, or if the absolute net charge of the result is tol or larger.
func (F *Framework) AssignCharges(q []float64, tol float64) (*Framework, error) {
	if len(q) != F.atoms.Len() {
		return nil, newError(ErrInvalidArgument, "AssignCharges", "%d charges given for %d atoms", len(q), F.atoms.Len())
	}
	R, err := F.withCharges(q, tol)
	return R, errDecorate(err, "AssignCharges")
}

// AssignChargesBySpecies returns a new Framework with one point charge on each atom, taken from
// the charge of the atom's species in q. Existing charges are replaced. It returns an error if
// q lacks a species present in the framework, or if the absolute net charge of the result is tol
// or larger.
func (F *Framework) AssignChargesBySpecies(q map[string]float64, tol float64) (*Framework, error) {
	perAtom := make([]float64, 0, F.atoms.Len())
	for i, v := range F.atoms.Species {
		c, ok := q[v]
		if !ok {
			return nil, newError(ErrInvalidArgument, "AssignChargesBySpecies", "no charge given for species %s (atom %d)", v, i)
		}
		perAtom = append(perAtom, c)
	}
	R, err := F.withCharges(perAtom, tol)
	return R, errDecorate(err, "AssignChargesBySpecies")
}
