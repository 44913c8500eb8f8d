/*
 * v3_test.go, part of gocrystal.
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

package v3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestEmpty(Te *testing.T) {
	A := Zeros(0)
	if A.NVecs() != 0 {
		Te.Errorf("Empty matrix has %d vectors", A.NVecs())
	}
	B, err := NewMatrix(nil)
	if err != nil {
		Te.Fatal(err)
	}
	C := Stack(A, B, nil)
	if C.NVecs() != 0 {
		Te.Errorf("Stack of empty matrices has %d vectors", C.NVecs())
	}
	if !A.Clone().Equal(B, 1e-10) {
		Te.Error("Empty matrices should be equal")
	}
}

func TestNewMatrixBadLength(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("Expected an error for a slice not divisible by 3")
	}
}

func TestStackAndSome(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	B := FromVecs([][3]float64{{7, 8, 9}})
	C := Stack(A, B)
	if C.NVecs() != 3 {
		Te.Fatalf("Expected 3 vectors, got %d", C.NVecs())
	}
	if C.Vec(2) != [3]float64{7, 8, 9} {
		Te.Errorf("Wrong stacked vector %v", C.Vec(2))
	}
	S := C.SomeVecs([]int{2, 0})
	if S.Vec(0) != [3]float64{7, 8, 9} || S.Vec(1) != [3]float64{1, 2, 3} {
		Te.Errorf("Wrong selection %v", S)
	}
	//the selection is a copy
	S.SetVec(0, [3]float64{0, 0, 0})
	if C.Vec(2) != [3]float64{7, 8, 9} {
		Te.Error("SomeVecs should not return a view")
	}
}

func TestWrap(Te *testing.T) {
	A := FromVecs([][3]float64{{-0.25, 1.5, 0.999}, {2, -1e-18, 0.5}})
	A.Wrap(A)
	want := [][3]float64{{0.75, 0.5, 0.999}, {0, 0, 0.5}}
	for i, w := range want {
		g := A.Vec(i)
		for j := range w {
			if math.Abs(g[j]-w[j]) > 1e-12 {
				Te.Errorf("Wrap %d: got %v want %v", i, g, w)
			}
			if g[j] < 0 || g[j] >= 1 {
				Te.Errorf("Wrapped coordinate out of [0,1): %v", g)
			}
		}
	}
}

func TestTransformAndScale(Te *testing.T) {
	A := FromVecs([][3]float64{{1, 0, 0}, {0, 1, 1}})
	T := mat.NewDense(3, 3, []float64{
		2, 0, 0,
		0, 3, 1,
		0, 0, 4})
	A.Transform(A, T)
	if A.Vec(0) != [3]float64{2, 0, 0} || A.Vec(1) != [3]float64{0, 4, 4} {
		Te.Errorf("Wrong transformation %v", A)
	}
	A.ScaleByVec(A, [3]float64{0.5, 0.25, 0.25})
	A.AddVec(A, [3]float64{1, 1, 1})
	if A.Vec(1) != [3]float64{1, 2, 2} {
		Te.Errorf("Wrong scale/add %v", A)
	}
}

func TestVecView(Te *testing.T) {
	A := FromVecs([][3]float64{{1, 2, 3}, {4, 5, 6}})
	V := A.VecView(1)
	V.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Error("Changes in the view should be reflected in the matrix")
	}
}
