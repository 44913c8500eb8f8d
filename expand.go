/*
 * expand.go, part of gocrystal.
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
	"github.com/rmera/gocrystal/symmetry"
	v3 "github.com/rmera/gocrystal/v3"
)

// applyRules returns the images of every vector in xf under every rule, grouped by rule,
// wrapped into the unit cell.
func applyRules(rules symmetry.Rules, xf *v3.Matrix) *v3.Matrix {
	n := xf.NVecs()
	ret := v3.Zeros(n * len(rules))
	for k, op := range rules {
		for i := 0; i < n; i++ {
			ret.SetVec(k*n+i, v3.WrapVec(op.Apply(xf.Vec(i))))
		}
	}
	return ret
}

// expanded returns F with every symmetry operation applied to every atom and charge, so
// k operations and n atoms give k·n atoms. The new framework is in P1. No checks are run.
func (F *Framework) expanded() *Framework {
	rules := F.sym.Rules
	species := make([]string, 0, len(rules)*F.atoms.Len())
	q := make([]float64, 0, len(rules)*F.charges.Len())
	for range rules {
		species = append(species, F.atoms.Species...)
		q = append(q, F.charges.Q...)
	}
	sym := P1Symmetry()
	return &Framework{
		name:    F.name,
		box:     F.box,
		atoms:   &Atoms{Species: species, Xf: applyRules(rules, F.atoms.Xf)},
		charges: &Charges{Q: q, Xf: applyRules(rules, F.charges.Xf)},
		sym:     sym,
	}
}

// ApplySymmetry returns a new Framework in the P1 space group, obtained by applying every
// symmetry operation of the receiver to every one of its atoms and charges. The checks in the
// given options (or the default ones) are run on the expanded structure. Applied to a framework
// already in P1, it returns an equivalent framework with the same atoms and charges.
func (F *Framework) ApplySymmetry(opts ...*Options) (*Framework, error) {
	o := getOptions(opts)
	if F.sym.P1 {
		R, err := F.checked(o)
		return R, errDecorate(err, "ApplySymmetry")
	}
	if o.Verbose {
		logger.Printf("%s: applying %d symmetry operations of space group %s", F.name, len(F.sym.Rules), F.sym.SpaceGroup)
	}
	R, err := F.expanded().checked(o)
	return R, errDecorate(err, "ApplySymmetry")
}
