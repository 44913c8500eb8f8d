/*
 * distances.go, part of gocrystal.
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
	"github.com/rmera/gocrystal/histo"
)

// PairDistances returns the minimum-image distances, in Angstrom, between all pairs of
// atoms closer than rmax. If two species are given, only pairs formed by one atom of each
// species are considered. Note that only the nearest image of each pair is counted, so rmax
// should not be larger than half the shortest cell width.
func (F *Framework) PairDistances(rmax float64, pair ...string) []float64 {
	var s1, s2 string
	if len(pair) >= 2 {
		s1, s2 = pair[0], pair[1]
	}
	match := func(i, j int) bool {
		if s1 == "" {
			return true
		}
		a, b := F.atoms.Species[i], F.atoms.Species[j]
		return (a == s1 && b == s2) || (a == s2 && b == s1)
	}
	ret := make([]float64, 0, F.atoms.Len())
	for i := 0; i < F.atoms.Len(); i++ {
		xi := F.atoms.Position(i)
		for j := i + 1; j < F.atoms.Len(); j++ {
			if !match(i, j) {
				continue
			}
			if d := F.box.Distance(xi, F.atoms.Position(j)); d < rmax {
				ret = append(ret, d)
			}
		}
	}
	return ret
}

// DistanceHistogram returns a histogram of the pair distances between the atoms of the
// framework, over the given dividers. If two species are given, only pairs formed by one atom of
// each are considered. The histogram is labeled with the pair, or with the name of the framework.
func (F *Framework) DistanceHistogram(dividers []float64, pair ...string) (*histo.Data, error) {
	if len(dividers) < 2 {
		return nil, newError(ErrInvalidArgument, "DistanceHistogram", "need at least 2 dividers")
	}
	label := F.name
	if len(pair) >= 2 {
		label = pair[0] + "-" + pair[1]
	}
	d, err := histo.NewData(dividers, F.PairDistances(dividers[len(dividers)-1], pair...), label)
	if err != nil {
		return nil, newError(ErrInvalidArgument, "DistanceHistogram", "%s", err.Error())
	}
	return d, nil
}
