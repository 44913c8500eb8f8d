/*
 * v3.go, part of gocrystal.
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

/*Package v3 implements a Matrix type representing a row-major 3D matrix (i.e. a Nx3 matrix).
The v3.Matrix is used to represent the fractional or cartesian coordinates of sets of atoms
and point charges in gocrystal. It is based on gonum's (gonum.org/v1/gonum/mat) Dense type,
with some additional restrictions because of the fixed number of columns and with some
additional functions that were found useful for periodic systems.

Unlike a gonum Dense, a v3.Matrix can hold zero vectors. Structures without point charges
are common, so the empty matrix is a normal value here.
*/
package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const cols int = 3

// Matrix is a set of vectors in 3D space. Within the package it is understood that a
// "vector" is a row vector, i.e. the coordinates of a point in 3D space.
// A Matrix with a nil Dense has zero vectors.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	if vecs < 0 {
		panic(ErrShape)
	}
	if vecs == 0 {
		return &Matrix{}
	}
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// data is used as the backing slice.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice lenght %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	if l == 0 {
		return &Matrix{}, nil
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

// FromVecs returns a new Matrix with one row per element of vecs.
func FromVecs(vecs [][3]float64) *Matrix {
	F := Zeros(len(vecs))
	for i, v := range vecs {
		F.SetVec(i, v)
	}
	return F
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	if F == nil || F.Dense == nil {
		return 0
	}
	r, c := F.Dims()
	if c != cols {
		panic(ErrNot3xX)
	}
	return r
}

// Vec returns a copy of the ith vector of F.
func (F *Matrix) Vec(i int) [3]float64 {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

// SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v [3]float64) {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	F.Set(i, 0, v[0])
	F.Set(i, 1, v[1])
	F.Set(i, 2, v[2])
}

// VecView returns a view of the given vector of the matrix.
// Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return &Matrix{F.Dense.Slice(i, i+1, 0, cols).(*mat.Dense)}
}

// Clone returns a deep copy of F.
func (F *Matrix) Clone() *Matrix {
	n := F.NVecs()
	if n == 0 {
		return &Matrix{}
	}
	r := Zeros(n)
	r.Copy(F.Dense)
	return r
}

// SomeVecs returns a new matrix containing the vectors of F with the indexes
// in clist, in the same order as clist.
func (F *Matrix) SomeVecs(clist []int) *Matrix {
	r := Zeros(len(clist))
	for key, val := range clist {
		r.SetVec(key, F.Vec(val))
	}
	return r
}

// Stack returns a new Matrix with the vectors of all the given matrices,
// one after the other. nil or empty matrices are skipped.
func Stack(ms ...*Matrix) *Matrix {
	total := 0
	for _, m := range ms {
		total += m.NVecs()
	}
	r := Zeros(total)
	row := 0
	for _, m := range ms {
		for i := 0; i < m.NVecs(); i++ {
			r.SetVec(row, m.Vec(i))
			row++
		}
	}
	return r
}

// AddVec adds the vector vec to each vector of the matrix A, putting
// the result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) AddVec(A *Matrix, vec [3]float64) {
	n := A.NVecs()
	if F.NVecs() != n {
		panic(ErrShape)
	}
	for i := 0; i < n; i++ {
		v := A.Vec(i)
		F.SetVec(i, [3]float64{v[0] + vec[0], v[1] + vec[1], v[2] + vec[2]})
	}
}

// ScaleByVec scales each coordinate of each vector in A by the corresponding
// element of coord. The result is put in F.
func (F *Matrix) ScaleByVec(A *Matrix, coord [3]float64) {
	n := A.NVecs()
	if F.NVecs() != n {
		panic(ErrShape)
	}
	for i := 0; i < n; i++ {
		v := A.Vec(i)
		F.SetVec(i, [3]float64{v[0] * coord[0], v[1] * coord[1], v[2] * coord[2]})
	}
}

// Transform puts in F the result of applying the 3x3 matrix T to every
// vector of A, i.e. F_i = T·A_i. F and A can be the same matrix.
func (F *Matrix) Transform(A *Matrix, T mat.Matrix) {
	if r, c := T.Dims(); r != cols || c != cols {
		panic(ErrShape)
	}
	n := A.NVecs()
	if F.NVecs() != n {
		panic(ErrShape)
	}
	if n == 0 {
		return
	}
	tmp := mat.NewDense(n, cols, nil)
	tmp.Mul(A.Dense, T.T())
	F.Copy(tmp)
}

// Wrap puts in F the vectors of A with each component mapped into [0,1).
func (F *Matrix) Wrap(A *Matrix) {
	n := A.NVecs()
	if F.NVecs() != n {
		panic(ErrShape)
	}
	for i := 0; i < n; i++ {
		F.SetVec(i, WrapVec(A.Vec(i)))
	}
}

// WrapVec maps each component of v into [0,1).
func WrapVec(v [3]float64) [3]float64 {
	for i, c := range v {
		c = math.Mod(c, 1)
		if c < 0 {
			c += 1
		}
		//-1e-17 mod 1 +1 rounds to exactly 1
		if c >= 1 {
			c = 0
		}
		v[i] = c
	}
	return v
}

// Equal returns true if F and A have the same number of vectors and
// every element differs by at most tol.
func (F *Matrix) Equal(A *Matrix, tol float64) bool {
	n := F.NVecs()
	if n != A.NVecs() {
		return false
	}
	if n == 0 {
		return true
	}
	return mat.EqualApprox(F.Dense, A.Dense, tol)
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	if r == 0 {
		return "[ ]"
	}
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		row := F.Vec(i)
		v = append(v, fmt.Sprintf("%9.5f %9.5f %9.5f", row[0], row[1], row[2]))
	}
	return "[" + strings.Join(v, "\n ") + " ]"
}
