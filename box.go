/*
 * box.go, part of gocrystal.
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

	v3 "github.com/rmera/gocrystal/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Box is the geometry of a unit cell. Lengths are in Angstrom and angles in radians.
// A Box is not modified after construction.
type Box struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
	//Volume of the cell, in cubic Angstrom
	Volume float64
	//FToC takes fractional to cartesian coordinates (xc = FToC·xf).
	//Its columns are the lattice vectors.
	FToC *mat.Dense
	//CToF is the inverse of FToC.
	CToF *mat.Dense
}

// NewBox builds a unit cell from its lattice parameters. The a lattice vector is put along x,
// b in the xy plane. It returns an error if a length is not positive, an angle is not in (0,π)
// or the angles don't define a cell with positive volume.
func NewBox(a, b, c, alpha, beta, gamma float64) (*Box, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, newError(ErrGeometry, "NewBox", "non-positive cell length(s) %v %v %v", a, b, c)
	}
	for _, v := range []float64{alpha, beta, gamma} {
		if v <= 0 || v >= math.Pi {
			return nil, newError(ErrGeometry, "NewBox", "cell angle %v rad not in (0,π)", v)
		}
	}
	ca, cb, cg := math.Cos(alpha), math.Cos(beta), math.Cos(gamma)
	sg := math.Sin(gamma)
	vterm := 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
	if vterm <= 0 {
		return nil, newError(ErrGeometry, "NewBox", "angles %v %v %v give a degenerate cell", alpha, beta, gamma)
	}
	B := &Box{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma}
	B.Volume = a * b * c * math.Sqrt(vterm)
	B.FToC = mat.NewDense(3, 3, []float64{
		a, b * cg, c * cb,
		0, b * sg, c * (ca - cb*cg) / sg,
		0, 0, B.Volume / (a * b * sg),
	})
	B.CToF = mat.NewDense(3, 3, nil)
	if err := B.CToF.Inverse(B.FToC); err != nil {
		return nil, newError(ErrGeometry, "NewBox", "can't invert the fractional to cartesian matrix: %s", err.Error())
	}
	return B, nil
}

// NewBoxDegrees is like NewBox but takes the angles in degrees.
func NewBoxDegrees(a, b, c, alpha, beta, gamma float64) (*Box, error) {
	B, err := NewBox(a, b, c, Deg2Rad(alpha), Deg2Rad(beta), Deg2Rad(gamma))
	return B, errDecorate(err, "NewBoxDegrees")
}

// Replicate returns a new box spanning ra, rb and rc copies of the receiver
// along its a, b and c lattice vectors.
func (B *Box) Replicate(ra, rb, rc int) (*Box, error) {
	if ra < 1 || rb < 1 || rc < 1 {
		return nil, newError(ErrInvalidArgument, "Box.Replicate", "replication factors must be positive, got %d %d %d", ra, rb, rc)
	}
	R, err := NewBox(B.A*float64(ra), B.B*float64(rb), B.C*float64(rc), B.Alpha, B.Beta, B.Gamma)
	return R, errDecorate(err, "Box.Replicate")
}

// Cartesian returns the cartesian coordinates of the fractional coordinates xf.
func (B *Box) Cartesian(xf [3]float64) [3]float64 {
	return mulVec(B.FToC, xf)
}

// Fractional returns the fractional coordinates of the cartesian coordinates xc.
func (B *Box) Fractional(xc [3]float64) [3]float64 {
	return mulVec(B.CToF, xc)
}

// ToCartesian returns a new matrix with the cartesian coordinates of the
// fractional coordinates in xf.
func (B *Box) ToCartesian(xf *v3.Matrix) *v3.Matrix {
	r := v3.Zeros(xf.NVecs())
	r.Transform(xf, B.FToC)
	return r
}

// ToFractional returns a new matrix with the fractional coordinates of the
// cartesian coordinates in xc.
func (B *Box) ToFractional(xc *v3.Matrix) *v3.Matrix {
	r := v3.Zeros(xc.NVecs())
	r.Transform(xc, B.CToF)
	return r
}

// MinimumImage returns the fractional displacement dxf moved to its nearest periodic
// image, so each component is in [-0.5, 0.5].
func MinimumImage(dxf [3]float64) [3]float64 {
	for i, v := range dxf {
		if math.Abs(v) > 0.5 {
			dxf[i] = v - math.Copysign(1, v)
		}
	}
	return dxf
}

// Distance returns the minimum-image cartesian distance between two points given in
// fractional coordinates. Both points are wrapped into the unit cell first.
func (B *Box) Distance(xf1, xf2 [3]float64) float64 {
	a := v3.WrapVec(xf1)
	b := v3.WrapVec(xf2)
	dxf := MinimumImage([3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]})
	dxc := B.Cartesian(dxf)
	return floats.Norm(dxc[:], 2)
}

// Reciprocal returns the reciprocal lattice vectors, one per row, including the 2π factor.
func (B *Box) Reciprocal() *mat.Dense {
	r := mat.NewDense(3, 3, nil)
	r.Scale(2*math.Pi, B.CToF)
	return r
}

// ApproxEqual returns true if the 6 lattice parameters of B and O differ by at most tol.
func (B *Box) ApproxEqual(O *Box, tol float64) bool {
	if B == nil || O == nil {
		return B == O
	}
	return approx(B.A, O.A, tol) && approx(B.B, O.B, tol) && approx(B.C, O.C, tol) &&
		approx(B.Alpha, O.Alpha, tol) && approx(B.Beta, O.Beta, tol) && approx(B.Gamma, O.Gamma, tol)
}

func (B *Box) String() string {
	return fmt.Sprintf("a=%.4f b=%.4f c=%.4f alpha=%.3f beta=%.3f gamma=%.3f (deg) volume=%.4f",
		B.A, B.B, B.C, Rad2Deg(B.Alpha), Rad2Deg(B.Beta), Rad2Deg(B.Gamma), B.Volume)
}

func mulVec(T mat.Matrix, v [3]float64) [3]float64 {
	var r [3]float64
	for i := 0; i < 3; i++ {
		r[i] = T.At(i, 0)*v[0] + T.At(i, 1)*v[1] + T.At(i, 2)*v[2]
	}
	return r
}
