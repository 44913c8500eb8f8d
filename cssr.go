/*
 * cssr.go, part of gocrystal.
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
	"bufio"
	"io"
	"strconv"
	"strings"

	v3 "github.com/rmera/gocrystal/v3"
)

// cssrChargeField is the index of the charge among the fields of a CSSR atom line.
// Fields 5 to 12 are the connectivity.
const cssrChargeField = 13

// readFloats parses the first n fields of line as floats.
func readFloats(line string, n int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) < n {
		return nil, newError(ErrParse, "readFloats", "expected %d numbers, found %d fields in %q", n, len(fields), line)
	}
	ret := make([]float64, n)
	var err error
	for i := range ret {
		ret[i], err = strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, newError(ErrParse, "readFloats", "bad number %q", fields[i])
		}
	}
	return ret, nil
}

// ReadCSSR reads a crystal structure in the CSSR format from r. The first line gives the
// cell lengths, the second the cell angles in degrees, the third the number of atoms, and
// the fourth a title. Each of the following lines has the serial number, label and fractional
// coordinates of an atom, the connectivity, and, optionally, the charge. The positions are wrapped
// into the unit cell. CSSR structures are always in P1. The checks requested in the
// options (or the default ones) are run on the structure read.
func ReadCSSR(r io.Reader, name string, opts ...*Options) (*Framework, error) {
	s := bufio.NewScanner(r)
	header := make([]string, 0, 4)
	for len(header) < 4 && s.Scan() {
		header = append(header, s.Text())
	}
	if len(header) < 4 {
		return nil, newError(ErrParse, "ReadCSSR", "truncated header")
	}
	lengths, err := readFloats(header[0], 3)
	if err != nil {
		return nil, errDecorate(err, "ReadCSSR: cell lengths")
	}
	angles, err := readFloats(header[1], 3)
	if err != nil {
		return nil, errDecorate(err, "ReadCSSR: cell angles")
	}
	box, err := NewBoxDegrees(lengths[0], lengths[1], lengths[2], angles[0], angles[1], angles[2])
	if err != nil {
		return nil, errDecorate(err, "ReadCSSR")
	}
	nf := strings.Fields(header[2])
	if len(nf) == 0 {
		return nil, newError(ErrParse, "ReadCSSR", "no atom count in line 3")
	}
	natoms, err := strconv.Atoi(nf[0])
	if err != nil || natoms < 0 {
		return nil, newError(ErrParse, "ReadCSSR", "bad atom count %q", nf[0])
	}
	species := make([]string, 0, natoms)
	coords := make([]float64, 0, 3*natoms)
	q := make([]float64, 0, natoms)
	for len(species) < natoms && s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 5 {
			return nil, newError(ErrParse, "ReadCSSR", "atom %d: expected at least 5 fields, found %d", len(species)+1, len(fields))
		}
		species = append(species, fields[1])
		for _, v := range fields[2:5] {
			c, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, newError(ErrParse, "ReadCSSR", "atom %d: bad coordinate %q", len(species), v)
			}
			coords = append(coords, c)
		}
		var charge float64
		if len(fields) > cssrChargeField {
			charge, err = strconv.ParseFloat(fields[cssrChargeField], 64)
			if err != nil {
				return nil, newError(ErrParse, "ReadCSSR", "atom %d: bad charge %q", len(species), fields[cssrChargeField])
			}
		}
		q = append(q, charge)
	}
	if err := s.Err(); err != nil {
		return nil, newError(ErrParse, "ReadCSSR", "%s", err.Error())
	}
	if len(species) != natoms {
		return nil, newError(ErrParse, "ReadCSSR", "%d atoms declared but %d found", natoms, len(species))
	}
	xf, err := v3.NewMatrix(coords)
	if err != nil {
		panic(err.Error()) //can't happen
	}
	xf.Wrap(xf)
	atoms, err := NewAtoms(species, xf)
	if err != nil {
		return nil, errDecorate(err, "ReadCSSR")
	}
	charges, err := NewCharges(q, xf)
	if err != nil {
		return nil, errDecorate(err, "ReadCSSR")
	}
	F, err := NewFramework(name, box, atoms, charges, P1Symmetry())
	if err != nil {
		return nil, errDecorate(err, "ReadCSSR")
	}
	R, err := F.checked(getOptions(opts))
	return R, errDecorate(err, "ReadCSSR")
}
