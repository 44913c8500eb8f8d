/*
 * cifwrite.go, part of gocrystal.
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
	"fmt"
	"io"
	"os"
	"strings"
)

// matchTol is the largest fractional distance between an atom and a charge
// considered to be on the same site when writing CIF files.
const matchTol = 1e-4

// atomCharges returns the charge on each atom of F, 0 for atoms that have no charge on them.
// Zero charges are not stored, so there can be fewer charges than atoms, but each charge
// must sit on its own atom, otherwise an error is returned.
func (F *Framework) atomCharges() ([]float64, error) {
	q := make([]float64, F.atoms.Len())
	if F.charges.Len() > F.atoms.Len() {
		return nil, newError(ErrInconsistentStructure, "atomCharges", "%d charges for %d atoms: can't put one charge on each atom", F.charges.Len(), F.atoms.Len())
	}
	charged := make([]bool, F.atoms.Len())
	for j := 0; j < F.charges.Len(); j++ {
		xc := F.charges.Position(j)
		found := false
		for i := range q {
			if charged[i] {
				continue
			}
			if abs3(MinimumImage(sub(F.atoms.Position(i), xc))) < matchTol {
				q[i] = F.charges.Q[j]
				charged[i] = true
				found = true
				break
			}
		}
		if !found {
			return nil, newError(ErrInconsistentStructure, "atomCharges", "charge %d (%g) is not on an atom", j, F.charges.Q[j])
		}
	}
	return q, nil
}

func sub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// abs3 returns the largest absolute value among the components of v.
func abs3(v [3]float64) float64 {
	m := 0.0
	for _, c := range v {
		if c < 0 {
			c = -c
		}
		if c > m {
			m = c
		}
	}
	return m
}

// cifName turns a framework name into something usable after data_
func cifName(name string) string {
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		return "crystal"
	}
	return name
}

// WriteCIF writes the framework to w in the CIF format: unit cell, space group, symmetry
// operations and one atom site per atom, with fractional coordinates if fractional is
// true, and Cartesian ones otherwise. Each atom site carries the charge located on the atom,
// or 0. It returns an error if the framework has charges, but not one per atom.
func (F *Framework) WriteCIF(w io.Writer, fractional bool) error {
	q, err := F.atomCharges()
	if err != nil {
		return errDecorate(err, "WriteCIF")
	}
	b := bufio.NewWriter(w)
	B := F.box
	fmt.Fprintf(b, "data_%s\n", cifName(F.name))
	fmt.Fprintf(b, "_symmetry_space_group_name_H-M    '%s'\n", F.sym.SpaceGroup)
	fmt.Fprintf(b, "_cell_length_a    %.6f\n", B.A)
	fmt.Fprintf(b, "_cell_length_b    %.6f\n", B.B)
	fmt.Fprintf(b, "_cell_length_c    %.6f\n", B.C)
	fmt.Fprintf(b, "_cell_angle_alpha %.6f\n", Rad2Deg(B.Alpha))
	fmt.Fprintf(b, "_cell_angle_beta  %.6f\n", Rad2Deg(B.Beta))
	fmt.Fprintf(b, "_cell_angle_gamma %.6f\n", Rad2Deg(B.Gamma))
	fmt.Fprintf(b, "_cell_volume      %.6f\n\n", B.Volume)
	fmt.Fprintf(b, "loop_\n_symmetry_equiv_pos_as_xyz\n")
	for _, op := range F.sym.Rules.Strings() {
		fmt.Fprintf(b, "'%s'\n", op)
	}
	c := "fract"
	coords := F.atoms.Xf
	if !fractional {
		c = "Cartn"
		coords = B.ToCartesian(coords)
	}
	fmt.Fprintf(b, "\nloop_\n_atom_site_label\n_atom_site_type_symbol\n")
	fmt.Fprintf(b, "_atom_site_%s_x\n_atom_site_%s_y\n_atom_site_%s_z\n_atom_site_charge\n", c, c, c)
	for i, s := range F.atoms.Species {
		x := coords.Vec(i)
		fmt.Fprintf(b, "%-6s %-3s %14.8f %14.8f %14.8f %12.6f\n", fmt.Sprintf("%s%d", s, i+1), s, x[0], x[1], x[2], q[i])
	}
	return b.Flush()
}

// WriteCIFFile writes the framework to a new CIF file with the given name. See WriteCIF.
// An existing file will be overwritten.
func (F *Framework) WriteCIFFile(name string, fractional bool) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer out.Close()
	return withFile(errDecorate(F.WriteCIF(out, fractional), "WriteCIFFile"), name)
}
