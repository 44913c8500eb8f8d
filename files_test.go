/*
 * files_test.go, part of gocrystal.
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
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// compressed copies the file in to dir, compressed with the writer given.
func compressed(Te *testing.T, in, out string, nw func(io.Writer) (io.WriteCloser, error)) {
	data, err := os.ReadFile(in)
	if err != nil {
		Te.Fatal(err)
	}
	f, err := os.Create(out)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	w, err := nw(f)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err = w.Write(data); err != nil {
		Te.Fatal(err)
	}
	if err = w.Close(); err != nil {
		Te.Fatal(err)
	}
}

func TestReadCompressed(Te *testing.T) {
	ref, err := ReadFile("test/CaO2.cif")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(a), nil }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(a) }
	writers := map[string]func(io.Writer) (io.WriteCloser, error){".gz": gzipwriter, ".zst": zstdwriter}
	for ext, w := range writers {
		name := filepath.Join(dir, "CaO2.cif"+ext)
		compressed(Te, "test/CaO2.cif", name, w)
		F, err := ReadFile(name)
		if err != nil {
			Te.Fatalf("%s: %v", ext, err)
		}
		if F.Name() != "CaO2" || !F.ApproxEqual(ref, 1e-12) {
			Te.Errorf("%s: compressed file read wrongly: %s", ext, F)
		}
	}
	//Not really gzip.
	name := filepath.Join(dir, "bad.cssr.gz")
	if err = os.WriteFile(name, []byte("10 10 10\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err = ReadFile(name); !errors.Is(err, ErrParse) {
		Te.Errorf("bad gzip file gave error %v", err)
	}
	var e *CError
	if !errors.As(err, &e) || e.FileName() != name {
		Te.Errorf("error doesn't carry the file name: %v", err)
	}
}

func TestOptionsTOML(Te *testing.T) {
	o, err := DecodeOptions(strings.NewReader("remove_overlap = true\noverlap_tol = 0.2\nnet_charge_tol = 1\n"))
	if err != nil {
		Te.Fatal(err)
	}
	d := DefaultOptions()
	if !o.RemoveOverlap || o.OverlapTol != 0.2 || o.NetChargeTol != 1 || o.ConvertToP1 != d.ConvertToP1 || o.CheckOverlap != d.CheckOverlap {
		Te.Errorf("bad options read: %+v", o)
	}
	var buf bytes.Buffer
	if err = EncodeOptions(&buf, o); err != nil {
		Te.Fatal(err)
	}
	o2, err := DecodeOptions(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if *o2 != *o {
		Te.Errorf("options changed when encoded and decoded: %+v %+v", o, o2)
	}
	if _, err = DecodeOptions(strings.NewReader("overlap_tol = -0.1\n")); !errors.Is(err, ErrInvalidArgument) {
		Te.Errorf("negative tolerance gave error %v", err)
	}
	if _, err = DecodeOptions(strings.NewReader("verbose = 3\n")); !errors.Is(err, ErrParse) {
		Te.Errorf("non-boolean verbose gave error %v", err)
	}
	name := filepath.Join(Te.TempDir(), "opts.toml")
	if err = os.WriteFile(name, []byte("convert_to_p1 = false\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	o3, err := LoadOptions(name)
	if err != nil {
		Te.Fatal(err)
	}
	if o3.ConvertToP1 || !o3.CheckChargeNeutrality {
		Te.Errorf("bad options loaded: %+v", o3)
	}
}

func TestWriteXYZAndVTK(Te *testing.T) {
	F, err := ReadFile("test/CaO2.cif")
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err = F.WriteXYZ(&buf, true, "CaO2 test"); err != nil {
		Te.Fatal(err)
	}
	s := bufio.NewScanner(&buf)
	lines := make([]string, 0, 14)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if len(lines) != 14 || strings.TrimSpace(lines[0]) != "12" || lines[1] != "CaO2 test" {
		Te.Fatalf("bad XYZ output: %v", lines)
	}
	//Ca at the origin, moved by minus the center, 50/12 A along each axis.
	if f := strings.Fields(lines[2]); f[0] != "Ca" || f[1] != "-4.166667" {
		Te.Errorf("bad centered XYZ line %q", lines[2])
	}
	if err = F.WriteXYZ(&buf, false, "two\nlines"); !errors.Is(err, ErrInvalidArgument) {
		Te.Errorf("multi-line comment gave error %v", err)
	}
	buf.Reset()
	if err = F.WriteBoxVTK(&buf); err != nil {
		Te.Fatal(err)
	}
	vtk := buf.String()
	if !strings.Contains(vtk, "POINTS 8 double") || !strings.Contains(vtk, "LINES 12 36") || !strings.Contains(vtk, "10.000000 10.000000 10.000000") {
		Te.Errorf("bad VTK output:\n%s", vtk)
	}
}

func TestJSON(Te *testing.T) {
	o := DefaultOptions()
	o.ConvertToP1 = false
	F, err := ReadFile("test/SiO.cif", o)
	if err != nil {
		Te.Fatal(err)
	}
	j, err := json.Marshal(F)
	if err != nil {
		Te.Fatal(err)
	}
	R := new(Framework)
	if err = json.Unmarshal(j, R); err != nil {
		Te.Fatal(err)
	}
	if !R.ApproxEqual(F, 1e-12) || R.Name() != F.Name() || R.SpaceGroup() != "P -1" {
		Te.Errorf("framework changed in a JSON round trip:\n%s\n%s", F, R)
	}
	if err = json.Unmarshal([]byte(`{"Cell":[10,10,10,90,90,90],"Symmetry":[]}`), R); err == nil {
		Te.Error("framework with no symmetry operations was accepted")
	}
}

func TestBonds(Te *testing.T) {
	//Si-O across the cell boundary, and an H that can only keep one of its 2 O neighbors.
	xf := [][3]float64{{0.01, 0.5, 0.5}, {0.85, 0.5, 0.5}, {0.5, 0.2, 0.2}, {0.5, 0.2, 0.295}, {0.5, 0.2, 0.1}}
	F := testFramework(Te, "bonds", []string{"Si", "O", "H", "O", "O"}, xf, nil)
	bonds, err := F.InferBonds()
	if err != nil {
		Te.Fatal(err)
	}
	if len(bonds) != 2 {
		Te.Fatalf("expected 2 bonds, got %v", bonds)
	}
	if bonds[0].I != 2 || bonds[0].J != 3 || !approx(bonds[0].Dist, 0.95, 1e-9) {
		Te.Errorf("bad O-H bond %v", bonds[0])
	}
	if bonds[1].I != 0 || bonds[1].J != 1 || !approx(bonds[1].Dist, 1.6, 1e-9) {
		Te.Errorf("bad Si-O bond across the boundary %v", bonds[1])
	}
	frags := F.Fragments(bonds)
	if len(frags) != 3 || len(frags[0]) != 2 || frags[0][1] != 1 || len(frags[1]) != 2 || frags[1][1] != 3 || frags[2][0] != 4 {
		Te.Errorf("bad fragments %v", frags)
	}
	if w, ok := F.BondGraph(bonds).Weight(2, 3); !ok || !approx(w, 0.95, 1e-9) {
		Te.Errorf("bad O-H edge in the bond graph: %f %v", w, ok)
	}
	X := testFramework(Te, "unknown", []string{"Xx"}, [][3]float64{{0, 0, 0}}, nil)
	if _, err = X.InferBonds(); !errors.Is(err, ErrInvalidArgument) {
		Te.Errorf("unknown element gave error %v", err)
	}
}

func TestDistanceHistogram(Te *testing.T) {
	F, err := ReadFile("test/CaO2.cif")
	if err != nil {
		Te.Fatal(err)
	}
	dividers := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 4.5, 5}
	h, err := F.DistanceHistogram(dividers, "Ca", "O")
	if err != nil {
		Te.Fatal(err)
	}
	//each of the 32 Ca-O pairs is 2.5*sqrt(3) A apart.
	if h.Total() != 32 || h.View()[8] != 32 || h.Label() != "Ca-O" {
		Te.Errorf("bad Ca-O histogram %s", h)
	}
	all := F.PairDistances(5)
	//Ca-Ca 7.07, O-O 5.0 are out of range
	if len(all) != 32 {
		Te.Errorf("expected 32 distances under 5 A, got %d", len(all))
	}
	if _, err = F.DistanceHistogram([]float64{1}); !errors.Is(err, ErrInvalidArgument) {
		Te.Errorf("a single divider gave error %v", err)
	}
}
