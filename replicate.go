/*
 * replicate.go, part of gocrystal.
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
	v3 "github.com/rmera/gocrystal/v3"
)

// replicateCoords returns the coordinates of xf tiled ra×rb×rc times, expressed in
// the fractional frame of the replicated cell. The c offset changes fastest.
func replicateCoords(xf *v3.Matrix, ra, rb, rc int) *v3.Matrix {
	n := xf.NVecs()
	ret := v3.Zeros(n * ra * rb * rc)
	scale := [3]float64{1 / float64(ra), 1 / float64(rb), 1 / float64(rc)}
	tmp := v3.Zeros(n)
	block := 0
	for i := 0; i < ra; i++ {
		for j := 0; j < rb; j++ {
			for k := 0; k < rc; k++ {
				tmp.AddVec(xf, [3]float64{float64(i), float64(j), float64(k)})
				tmp.ScaleByVec(tmp, scale)
				for l := 0; l < n; l++ {
					ret.SetVec(block*n+l, tmp.Vec(l))
				}
				block++
			}
		}
	}
	return ret
}

// Replicate returns a new Framework where the unit cell is the receiver's repeated ra, rb and
// rc times along the a, b and c lattice vectors. Atoms and charges are copied into each replica.
// The symmetry information is carried over unchanged, so it still describes the original cell.
func (F *Framework) Replicate(ra, rb, rc int) (*Framework, error) {
	box, err := F.box.Replicate(ra, rb, rc)
	if err != nil {
		return nil, errDecorate(err, "Replicate")
	}
	nrep := ra * rb * rc
	species := make([]string, 0, nrep*F.atoms.Len())
	q := make([]float64, 0, nrep*F.charges.Len())
	for r := 0; r < nrep; r++ {
		species = append(species, F.atoms.Species...)
		q = append(q, F.charges.Q...)
	}
	R := &Framework{
		name:    F.name,
		box:     box,
		atoms:   &Atoms{Species: species, Xf: replicateCoords(F.atoms.Xf, ra, rb, rc)},
		charges: &Charges{Q: q, Xf: replicateCoords(F.charges.Xf, ra, rb, rc)},
		sym:     F.Symmetry(),
	}
	if R.atoms.Len() != F.atoms.Len()*nrep || R.atoms.Xf.NVecs() != R.atoms.Len() ||
		R.charges.Len() != F.charges.Len()*nrep || R.charges.Xf.NVecs() != R.charges.Len() {
		panic("Replicate: wrong number of replicated atoms or charges") //can't happen
	}
	return R, nil
}
