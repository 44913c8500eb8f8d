/*
 * symmetry_test.go, part of gocrystal.
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

import (
	"math"
	"testing"
)

func near(a, b [3]float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			return false
		}
	}
	return true
}

func TestParseApply(Te *testing.T) {
	p := [3]float64{0.1, 0.2, 0.3}
	cases := []struct {
		op   string
		want [3]float64
	}{
		{"x,y,z", [3]float64{0.1, 0.2, 0.3}},
		{"-x+1/2,y,-z", [3]float64{0.4, 0.2, -0.3}},
		{"'1/2+X, 1/2-Y, Z'", [3]float64{0.6, 0.3, 0.3}},
		{"x-y,x,z+1/6", [3]float64{-0.1, 0.1, 0.3 + 1.0/6}},
		{"2x, y/2, -z+0.75", [3]float64{0.2, 0.1, 0.45}},
		{"x+-1/2,+y,z-3/4", [3]float64{-0.4, 0.2, -0.45}},
		{"-y+x, 2*x-1/3, 1/2*z", [3]float64{-0.1, 0.2 - 1.0/3, 0.15}},
	}
	for _, c := range cases {
		o, err := Parse(c.op)
		if err != nil {
			Te.Errorf("Parsing %q: %v", c.op, err)
			continue
		}
		if g := o.Apply(p); !near(g, c.want) {
			Te.Errorf("%q applied to %v: got %v want %v", c.op, p, g, c.want)
		}
	}
}

func TestParseErrors(Te *testing.T) {
	bad := []string{
		"x,y",
		"x*y,y,z",
		"x,y,z;",
		"x/y,y,z",
		"x,,z",
		"x,y,1/0",
		"__import__('os'),y,z",
	}
	for _, b := range bad {
		if _, err := Parse(b); err == nil {
			Te.Errorf("Expected an error parsing %q", b)
		}
	}
}

func TestStringRoundTrip(Te *testing.T) {
	for _, s := range []string{"x,y,z", "-x+1/2,y,-z", "x-y,-y,-z+2/3", "-x,-x+y,1/4", "2*x,y,z-1/2"} {
		o, err := Parse(s)
		if err != nil {
			Te.Fatal(err)
		}
		if o.String() != s {
			Te.Errorf("Canonical form of %q is %q", s, o.String())
		}
		o2, err := Parse(o.String())
		if err != nil {
			Te.Fatal(err)
		}
		if o2 != o {
			Te.Errorf("Round trip of %q failed", s)
		}
	}
}

func TestIsP1(Te *testing.T) {
	if !P1().IsP1() {
		Te.Error("P1 rules are not P1")
	}
	r, err := ParseRules([]string{"x,y,z", "-x,-y,-z"})
	if err != nil {
		Te.Fatal(err)
	}
	if r.IsP1() {
		Te.Error("P-1 reported as P1")
	}
	if len(r.Apply([3]float64{0.1, 0.1, 0.1})) != 2 {
		Te.Error("Wrong number of images")
	}
}

func TestEqual(Te *testing.T) {
	r1, err := ParseRules([]string{"x,y,z", "-x,-y,-z", "x+0.5,y,-z"})
	if err != nil {
		Te.Fatal(err)
	}
	r2, err := ParseRules([]string{"x+1/2,y,-z", "x,y,z", "-x,-y,-z"})
	if err != nil {
		Te.Fatal(err)
	}
	if !Equal(r1, r2) {
		Te.Error("Same operations in different order should be equal")
	}
	if Equal(r1, r2[:2]) {
		Te.Error("Rule sets of different length should not be equal")
	}
	r3, _ := ParseRules([]string{"x,y,z", "-x,-y,-z", "x,y+1/2,-z"})
	if Equal(r1, r3) {
		Te.Error("Different operations reported as equal")
	}
	//lattice translations don't matter
	r4, _ := ParseRules([]string{"x,y,z", "-x,-y,-z", "x-1/2,y,-z"})
	if !Equal(r1, r4) {
		Te.Error("Operations differing by a lattice translation should be equal")
	}
}
