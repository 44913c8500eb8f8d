/*
 * equal.go, part of gocrystal.
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

package symmetry

import "math"

// DefaultTol is the tolerance used to compare fractional coordinates of probe images.
const DefaultTol = 1e-6

// probes returns the 8 points with every fractional coordinate either 0 or 0.25.
func probes() [][3]float64 {
	ret := make([][3]float64, 0, 8)
	for _, x := range []float64{0, 0.25} {
		for _, y := range []float64{0, 0.25} {
			for _, z := range []float64{0, 0.25} {
				ret = append(ret, [3]float64{x, y, z})
			}
		}
	}
	return ret
}

// images applies every operation in R to every probe point.
func (R Rules) images() [][3]float64 {
	p := probes()
	ret := make([][3]float64, 0, len(p)*len(R))
	for _, o := range R {
		for _, v := range p {
			ret = append(ret, o.Apply(v))
		}
	}
	return ret
}

// samePoint compares two fractional coordinates modulo lattice translations.
func samePoint(a, b [3]float64, tol float64) bool {
	for i := range a {
		d := a[i] - b[i]
		d -= math.Round(d)
		if math.Abs(d) > tol {
			return false
		}
	}
	return true
}

// contains returns true if every point in a has a counterpart in b.
func contains(a, b [][3]float64, tol float64) bool {
	for _, v := range a {
		found := false
		for _, w := range b {
			if samePoint(v, w, tol) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Equal returns true if the rule sets r1 and r2 are equivalent. Sets with a different
// number of operations are never equal. Otherwise, each set is applied to 8 probe points
// (all the combinations of 0 and 0.25 in each axis) and the two resulting sets of images
// are compared, regardless of order and modulo lattice translations. Operations that differ
// only by a whole lattice translation, like x+1/2 and x-1/2, are thus equal, since they
// generate the same crystal. A plain comparison of the images would tell them apart.
// This is a heuristic: it distinguishes the operations of the standard space groups,
// but it is not a proof of group equivalence.
func Equal(r1, r2 Rules, tol ...float64) bool {
	t := DefaultTol
	if len(tol) > 0 {
		t = tol[0]
	}
	if len(r1) != len(r2) {
		return false
	}
	i1 := r1.images()
	i2 := r2.images()
	return contains(i1, i2, t) && contains(i2, i1, t)
}
