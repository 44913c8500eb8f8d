/*
 * json.go, part of gocrystal.
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
	"encoding/json"

	"github.com/rmera/gocrystal/symmetry"
	v3 "github.com/rmera/gocrystal/v3"
)

// jSONFramework is the serialized form of a Framework. Angles are in degrees and
// positions are fractional.
type jSONFramework struct {
	Name       string
	Cell       [6]float64
	SpaceGroup string
	P1         bool
	Symmetry   []string
	Species    []string
	AtomsXf    [][3]float64
	Charges    []float64
	ChargesXf  [][3]float64
}

func vecs(m *v3.Matrix) [][3]float64 {
	ret := make([][3]float64, m.NVecs())
	for i := range ret {
		ret[i] = m.Vec(i)
	}
	return ret
}

// MarshalJSON encodes the framework as a JSON object, so it can be handed to other programs.
func (F *Framework) MarshalJSON() ([]byte, error) {
	B := F.box
	J := jSONFramework{
		Name:       F.name,
		Cell:       [6]float64{B.A, B.B, B.C, Rad2Deg(B.Alpha), Rad2Deg(B.Beta), Rad2Deg(B.Gamma)},
		SpaceGroup: F.sym.SpaceGroup,
		P1:         F.sym.P1,
		Symmetry:   F.sym.Rules.Strings(),
		Species:    F.atoms.Species,
		AtomsXf:    vecs(F.atoms.Xf),
		Charges:    F.charges.Q,
		ChargesXf:  vecs(F.charges.Xf),
	}
	return json.Marshal(J)
}

// UnmarshalJSON decodes a framework encoded by MarshalJSON. The framework is
// rebuilt with NewFramework, so the same validation applies.
func (F *Framework) UnmarshalJSON(data []byte) error {
	J := new(jSONFramework)
	if err := json.Unmarshal(data, J); err != nil {
		return newError(ErrParse, "UnmarshalJSON", "%s", err.Error())
	}
	c := J.Cell
	box, err := NewBoxDegrees(c[0], c[1], c[2], c[3], c[4], c[5])
	if err != nil {
		return errDecorate(err, "UnmarshalJSON")
	}
	rules, err := symmetry.ParseRules(J.Symmetry)
	if err != nil {
		return newError(ErrParse, "UnmarshalJSON", "%s", err.Error())
	}
	atoms, err := NewAtoms(J.Species, v3.FromVecs(J.AtomsXf))
	if err != nil {
		return errDecorate(err, "UnmarshalJSON")
	}
	charges, err := NewCharges(J.Charges, v3.FromVecs(J.ChargesXf))
	if err != nil {
		return errDecorate(err, "UnmarshalJSON")
	}
	R, err := NewFramework(J.Name, box, atoms, charges, Symmetry{Rules: rules, SpaceGroup: J.SpaceGroup, P1: J.P1})
	if err != nil {
		return errDecorate(err, "UnmarshalJSON")
	}
	*F = *R
	return nil
}
