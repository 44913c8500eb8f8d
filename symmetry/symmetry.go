/*
 * symmetry.go, part of gocrystal.
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

/*Package symmetry parses and evaluates crystallographic symmetry operations, such as
those given in the _symmetry_equiv_pos_as_xyz loop of a CIF file ("-x+1/2,y,-z").

Each operation is kept in closed affine form: a 3x3 matrix and a translation, so that
the image of a fractional coordinate r is Rot·r+Trans. Expressions are parsed by a small
recursive-descent parser that only accepts linear combinations of x, y and z with
numeric coefficients and constants. Nothing in an expression is ever executed.
*/
package symmetry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Operation is a symmetry operation in affine form.
type Operation struct {
	Rot   [3][3]float64
	Trans [3]float64
}

// Identity returns the x,y,z operation.
func Identity() Operation {
	var o Operation
	for i := 0; i < 3; i++ {
		o.Rot[i][i] = 1
	}
	return o
}

// Apply returns the image of the fractional coordinates xf under the operation.
// The result is not wrapped into the unit cell.
func (o Operation) Apply(xf [3]float64) [3]float64 {
	var r [3]float64
	for i := 0; i < 3; i++ {
		r[i] = o.Rot[i][0]*xf[0] + o.Rot[i][1]*xf[1] + o.Rot[i][2]*xf[2] + o.Trans[i]
	}
	return r
}

// IsIdentity returns true if the operation leaves every point in place.
func (o Operation) IsIdentity() bool {
	return o == Identity()
}

// Expressions returns the three per-axis expressions of the operation, in the
// usual CIF notation (i.e. "-x+1/2").
func (o Operation) Expressions() [3]string {
	var ret [3]string
	vars := [3]string{"x", "y", "z"}
	for i := 0; i < 3; i++ {
		var b strings.Builder
		for j, v := range vars {
			c := o.Rot[i][j]
			if c == 0 {
				continue
			}
			sign := "+"
			if c < 0 {
				sign = "-"
			}
			if c > 0 && b.Len() == 0 {
				sign = ""
			}
			b.WriteString(sign)
			if a := math.Abs(c); a != 1 {
				b.WriteString(formatNumber(a))
				b.WriteString("*")
			}
			b.WriteString(v)
		}
		if t := o.Trans[i]; t != 0 || b.Len() == 0 {
			if t >= 0 && b.Len() > 0 {
				b.WriteString("+")
			} else if t < 0 {
				b.WriteString("-")
			}
			b.WriteString(formatNumber(math.Abs(t)))
		}
		ret[i] = b.String()
	}
	return ret
}

// String returns the operation as comma-separated expressions, i.e. "-x+1/2,y,-z".
func (o Operation) String() string {
	e := o.Expressions()
	return strings.Join(e[:], ",")
}

// formatNumber writes common crystallographic fractions as such, and any
// other number in decimal notation.
func formatNumber(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	for den := 2; den <= 12; den++ {
		num := f * float64(den)
		if math.Abs(num-math.Round(num)) < 1e-9 {
			return fmt.Sprintf("%d/%d", int(math.Round(num)), den)
		}
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Rules is an ordered set of symmetry operations.
type Rules []Operation

// P1 returns the rule set of the P1 space group, which contains only the identity.
func P1() Rules {
	return Rules{Identity()}
}

// IsP1 returns true if the rule set contains exactly the identity operation.
func (R Rules) IsP1() bool {
	return len(R) == 1 && R[0].IsIdentity()
}

// Copy returns a copy of the rule set.
func (R Rules) Copy() Rules {
	if R == nil {
		return nil
	}
	ret := make(Rules, len(R))
	copy(ret, R)
	return ret
}

// Strings returns the CIF representation of each operation in the set.
func (R Rules) Strings() []string {
	ret := make([]string, 0, len(R))
	for _, v := range R {
		ret = append(ret, v.String())
	}
	return ret
}

// Apply returns the images of xf under every operation in the set, in order.
func (R Rules) Apply(xf [3]float64) [][3]float64 {
	ret := make([][3]float64, 0, len(R))
	for _, v := range R {
		ret = append(ret, v.Apply(xf))
	}
	return ret
}

// ParseRules parses each of the given strings as a symmetry operation.
func ParseRules(ops []string) (Rules, error) {
	ret := make(Rules, 0, len(ops))
	for i, v := range ops {
		o, err := Parse(v)
		if err != nil {
			if e, ok := err.(*Error); ok {
				e.Decorate(fmt.Sprintf("ParseRules: operation %d", i))
			}
			return nil, err
		}
		ret = append(ret, o)
	}
	return ret, nil
}
