/*
 * plot_test.go, part of gocrystal.
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

package crystalplot

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rmera/gocrystal/histo"
)

func testHistos(Te *testing.T) []*histo.Data {
	div := histo.Dividers(0, 5, 10)
	a, err := histo.NewData(div, []float64{1.2, 1.3, 2.2, 4.33, 4.33, 4.33}, "Ca-O")
	if err != nil {
		Te.Fatal(err)
	}
	b, err := histo.NewData(div, []float64{0.9, 3.1, 3.2}, "O-O")
	if err != nil {
		Te.Fatal(err)
	}
	return []*histo.Data{a, b}
}

func TestSaveDistanceHistograms(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "distances.png")
	if err := SaveDistanceHistograms(testHistos(Te), "Pair distances", name); err != nil {
		Te.Error(err)
	}
}

func TestWriteDistanceHistograms(Te *testing.T) {
	var buf bytes.Buffer
	if err := WriteDistanceHistograms(&buf, testHistos(Te), "Pair distances", "svg"); err != nil {
		Te.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("<svg")) {
		Te.Error("output is not an SVG")
	}
	if _, err := Histograms(nil, "", "", ""); err == nil {
		Te.Error("no histograms accepted")
	}
}

func TestHSV2RGB(Te *testing.T) {
	cases := []struct {
		h, s, v float64
		rgb     [3]uint8
	}{
		{0, 1, 1, [3]uint8{255, 0, 0}},
		{120, 1, 1, [3]uint8{0, 255, 0}},
		{240, 1, 0.5, [3]uint8{0, 0, 128}},
		{360, 1, 0.5, [3]uint8{128, 0, 0}},
		{30, 0, 1, [3]uint8{255, 255, 255}},
	}
	for _, c := range cases {
		r, g, b := hsv2RGB(c.h, c.s, c.v)
		if [3]uint8{r, g, b} != c.rgb {
			Te.Errorf("hsv (%g, %g, %g) gave %d %d %d, expected %v", c.h, c.s, c.v, r, g, b, c.rgb)
		}
	}
	//Half brightness must give half intensity, not a quarter.
	if r, _, _ := hsv2RGB(0, 1, 0.5); r < 120 {
		Te.Errorf("brightness applied twice: red is %d", r)
	}
}
