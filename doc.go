/*
 * doc.go, part of gocrystal.
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

/*
Package crystal is the main package of the goCrystal library. It models crystalline porous
materials, such as zeolites and metal-organic frameworks, for molecular simulation.

	**goCrystal Capabilities**

	Reads CIF and CSSR files, also when compressed with gzip or zstd.

	Writes CIF, XYZ and JSON files, and the unit cell as VTK.

	Parses crystallographic symmetry operations ("-x+1/2,y,z+1/4") into
	affine transformations, without evaluating code, and tells whether two
	sets of operations are equivalent.

	Expands structures in any space group to P1, and replicates unit cells
	into supercells.

	Finds and removes overlapping atoms and point charges under periodic
	boundary conditions (minimum-image convention).

	Checks charge neutrality, and assigns point charges per atom or per species.

	Computes the chemical formula, molecular weight and density of a crystal,
	pair-distance histograms, and bonds across the cell boundary.

The Framework type is the central object: a unit cell (Box), the atoms and point charges
in it, in fractional coordinates, and the symmetry of the structure. A Framework is
never modified once built; every operation on it returns a new one.

Most operations that can fail return an error that fulfills the Error interface. The kind
of the error can be checked with errors.Is, i.e. errors.Is(err, crystal.ErrOverlap).
Non-fatal advisories are written to a logger, which can be replaced with SetLogger.

Reading a file, checking it and getting a 2x2x2 supercell looks like this:

	o := crystal.DefaultOptions()
	o.RemoveOverlap = true
	F, err := crystal.ReadFile("IRMOF-1.cif", o)
	if err != nil {
		log.Fatal(err)
	}
	S, err := F.Replicate(2, 2, 2)

*/
package crystal
