/*
 * sites.go, part of gocrystal.
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
	"math"

	v3 "github.com/rmera/gocrystal/v3"
)

// Atoms holds the species and fractional coordinates of a set of atoms.
// Species[i] corresponds to the ith vector in Xf.
type Atoms struct {
	Species []string
	Xf      *v3.Matrix
}

// NewAtoms returns a new set of atoms. The given slices are copied.
// It returns an error if the number of species and coordinates don't match.
func NewAtoms(species []string, xf *v3.Matrix) (*Atoms, error) {
	if len(species) != xf.NVecs() {
		return nil, newError(ErrInvalidArgument, "NewAtoms", "%d species but %d coordinates", len(species), xf.NVecs())
	}
	A := &Atoms{Species: make([]string, len(species)), Xf: xf.Clone()}
	copy(A.Species, species)
	return A, nil
}

// Len returns the number of atoms
func (A *Atoms) Len() int {
	if A == nil {
		return 0
	}
	return len(A.Species)
}

// Position returns the fractional coordinates of the ith atom.
func (A *Atoms) Position(i int) [3]float64 {
	return A.Xf.Vec(i)
}

// Coords returns the fractional coordinates of all atoms.
func (A *Atoms) Coords() *v3.Matrix {
	return A.Xf
}

// Copy returns a deep copy of the atoms.
func (A *Atoms) Copy() *Atoms {
	if A == nil {
		return &Atoms{Xf: v3.Zeros(0)}
	}
	r, _ := NewAtoms(A.Species, A.Xf) //can't fail on a consistent set
	return r
}

// Some returns a new set with the atoms with the given indexes, in that order.
func (A *Atoms) Some(indexes []int) *Atoms {
	sp := make([]string, 0, len(indexes))
	for _, v := range indexes {
		sp = append(sp, A.Species[v])
	}
	return &Atoms{Species: sp, Xf: A.Xf.SomeVecs(indexes)}
}

// Concat returns a new set with the atoms of the receiver followed by
// those of each of the given sets.
func (A *Atoms) Concat(others ...*Atoms) *Atoms {
	all := append([]*Atoms{A}, others...)
	n := 0
	xfs := make([]*v3.Matrix, 0, len(all))
	for _, v := range all {
		n += v.Len()
		if v != nil {
			xfs = append(xfs, v.Xf)
		}
	}
	sp := make([]string, 0, n)
	for _, v := range all {
		if v != nil {
			sp = append(sp, v.Species...)
		}
	}
	return &Atoms{Species: sp, Xf: v3.Stack(xfs...)}
}

// ApproxEqual returns true if both sets have the same species, in the same
// order, at coordinates that differ by at most tol, modulo lattice translations.
func (A *Atoms) ApproxEqual(O *Atoms, tol float64) bool {
	if A.Len() != O.Len() {
		return false
	}
	if A.Len() == 0 {
		return true
	}
	for i, v := range A.Species {
		if O.Species[i] != v {
			return false
		}
	}
	return periodicEqual(A.Xf, O.Xf, tol)
}

// Charges holds a set of point charges (in units of the electron charge) and
// their fractional coordinates. Q[i] corresponds to the ith vector in Xf.
type Charges struct {
	Q  []float64
	Xf *v3.Matrix
}

// NewCharges returns a new set of point charges. Zero charges are dropped.
// It returns an error if the number of charges and coordinates don't match.
func NewCharges(q []float64, xf *v3.Matrix) (*Charges, error) {
	if len(q) != xf.NVecs() {
		return nil, newError(ErrInvalidArgument, "NewCharges", "%d charges but %d coordinates", len(q), xf.NVecs())
	}
	keep := make([]int, 0, len(q))
	for i, v := range q {
		if v != 0 {
			keep = append(keep, i)
		}
	}
	C := &Charges{Q: make([]float64, 0, len(keep)), Xf: xf.SomeVecs(keep)}
	for _, v := range keep {
		C.Q = append(C.Q, q[v])
	}
	return C, nil
}

// NoCharges returns an empty set of charges.
func NoCharges() *Charges {
	return &Charges{Xf: v3.Zeros(0)}
}

// Len returns the number of charges
func (C *Charges) Len() int {
	if C == nil {
		return 0
	}
	return len(C.Q)
}

// Position returns the fractional coordinates of the ith charge.
func (C *Charges) Position(i int) [3]float64 {
	return C.Xf.Vec(i)
}

// Coords returns the fractional coordinates of all charges.
func (C *Charges) Coords() *v3.Matrix {
	return C.Xf
}

// Net returns the sum of all the charges.
func (C *Charges) Net() float64 {
	var s float64
	if C == nil {
		return 0
	}
	for _, v := range C.Q {
		s += v
	}
	return s
}

// Copy returns a deep copy of the charges.
func (C *Charges) Copy() *Charges {
	if C == nil {
		return NoCharges()
	}
	q := make([]float64, len(C.Q))
	copy(q, C.Q)
	return &Charges{Q: q, Xf: C.Xf.Clone()}
}

// Some returns a new set with the charges with the given indexes, in that order.
func (C *Charges) Some(indexes []int) *Charges {
	q := make([]float64, 0, len(indexes))
	for _, v := range indexes {
		q = append(q, C.Q[v])
	}
	return &Charges{Q: q, Xf: C.Xf.SomeVecs(indexes)}
}

// Concat returns a new set with the charges of the receiver followed by
// those of each of the given sets.
func (C *Charges) Concat(others ...*Charges) *Charges {
	all := append([]*Charges{C}, others...)
	q := make([]float64, 0)
	xfs := make([]*v3.Matrix, 0, len(all))
	for _, v := range all {
		if v == nil {
			continue
		}
		q = append(q, v.Q...)
		xfs = append(xfs, v.Xf)
	}
	return &Charges{Q: q, Xf: v3.Stack(xfs...)}
}

// ApproxEqual returns true if both sets have the same charges, in the same order,
// at the same coordinates (modulo lattice translations), all within tol.
func (C *Charges) ApproxEqual(O *Charges, tol float64) bool {
	if C.Len() != O.Len() {
		return false
	}
	if C.Len() == 0 {
		return true
	}
	for i, v := range C.Q {
		if !approx(v, O.Q[i], tol) {
			return false
		}
	}
	return periodicEqual(C.Xf, O.Xf, tol)
}

// periodicEqual compares two sets of fractional coordinates, element by element,
// ignoring differences by whole lattice vectors.
func periodicEqual(a, b *v3.Matrix, tol float64) bool {
	if a.NVecs() != b.NVecs() {
		return false
	}
	for i := 0; i < a.NVecs(); i++ {
		va, vb := a.Vec(i), b.Vec(i)
		for j := range va {
			d := va[j] - vb[j]
			if math.Abs(d-math.Round(d)) > tol {
				return false
			}
		}
	}
	return true
}
