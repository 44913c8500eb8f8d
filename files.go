/*
 * files.go, part of gocrystal.
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
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// zstd.Decoder doesn't implement io.ReadCloser, as its Close
// method doesn't return an error.
type zstdReadCloser struct {
	*zstd.Decoder
}

// Close closes the decoder. It can't be used after this call.
func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// decompressor returns a reader that decompresses r according to the extension ext
// (.gz or .zst). For any other extension, r is returned unchanged.
func decompressor(r io.Reader, ext string) (io.ReadCloser, error) {
	switch ext {
	case ".gz":
		return gzip.NewReader(r)
	case ".zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	}
	return io.NopCloser(r), nil
}

// ReadFile reads a crystal structure from the file with the given path. The format is
// taken from the extension: .cif or .cssr, optionally followed by .gz or .zst for
// compressed files. The name of the returned framework is the base name of the file,
// without extensions. See ReadCIF and ReadCSSR for the use of the options.
func ReadFile(path string, opts ...*Options) (*Framework, error) {
	base := filepath.Base(path)
	cext := strings.ToLower(filepath.Ext(base))
	if cext == ".gz" || cext == ".zst" {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	} else {
		cext = ""
	}
	ext := strings.ToLower(filepath.Ext(base))
	name := strings.TrimSuffix(base, filepath.Ext(base))
	var read func(io.Reader, string, ...*Options) (*Framework, error)
	switch ext {
	case ".cif":
		read = ReadCIF
	case ".cssr":
		read = ReadCSSR
	default:
		return nil, withFile(newError(ErrUnsupportedFormat, "ReadFile", "unknown extension %q", ext), path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := decompressor(bufio.NewReader(f), cext)
	if err != nil {
		return nil, withFile(newError(ErrParse, "ReadFile", "can't decompress: %s", err.Error()), path)
	}
	defer r.Close()
	F, err := read(r, name, opts...)
	return F, withFile(errDecorate(err, "ReadFile"), path)
}

// WriteXYZ writes the atoms of the framework to w in the XYZ format, with Cartesian
// coordinates. If center is true, the geometric center of the atoms is moved to the origin.
// comment goes in the second line of the file. It must not contain newlines.
func (F *Framework) WriteXYZ(w io.Writer, center bool, comment string) error {
	if strings.Contains(comment, "\n") {
		return newError(ErrInvalidArgument, "WriteXYZ", "multi-line comment")
	}
	xc := F.box.ToCartesian(F.atoms.Xf)
	n := xc.NVecs()
	if center && n > 0 {
		var c [3]float64
		for i := 0; i < n; i++ {
			v := xc.Vec(i)
			for j := range c {
				c[j] -= v[j] / float64(n)
			}
		}
		xc.AddVec(xc, c)
	}
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "%-4d\n%s\n", n, comment)
	for i, s := range F.atoms.Species {
		c := xc.Vec(i)
		fmt.Fprintf(b, "%-2s  %12.6f%12.6f%12.6f\n", s, c[0], c[1], c[2])
	}
	return b.Flush()
}

// WriteXYZFile writes the atoms of the framework in a new XYZ file with the given name.
// See WriteXYZ.
func (F *Framework) WriteXYZFile(name string, center bool, comment string) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer out.Close()
	return withFile(errDecorate(F.WriteXYZ(out, center, comment), "WriteXYZFile"), name)
}

// boxEdges are the pairs of corners of the unit cell joined by an edge. Corner
// i is at fractional coordinates (i&1, i>>1&1, i>>2&1).
var boxEdges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4}, {1, 3}, {1, 5}, {2, 3},
	{2, 6}, {3, 7}, {4, 5}, {4, 6}, {5, 7}, {6, 7},
}

// WriteVTK writes the edges of the unit cell to w as a legacy
// ASCII VTK polydata file, for visualization.
func (B *Box) WriteVTK(w io.Writer) error {
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "# vtk DataFile Version 2.0\nunit cell\nASCII\nDATASET POLYDATA\nPOINTS 8 double\n")
	for i := 0; i < 8; i++ {
		c := B.Cartesian([3]float64{float64(i & 1), float64(i >> 1 & 1), float64(i >> 2 & 1)})
		fmt.Fprintf(b, "%.6f %.6f %.6f\n", c[0], c[1], c[2])
	}
	fmt.Fprintf(b, "LINES %d %d\n", len(boxEdges), 3*len(boxEdges))
	for _, e := range boxEdges {
		fmt.Fprintf(b, "2 %d %d\n", e[0], e[1])
	}
	return b.Flush()
}

// WriteBoxVTK writes the unit cell of the framework to w. See Box.WriteVTK.
func (F *Framework) WriteBoxVTK(w io.Writer) error {
	return F.box.WriteVTK(w)
}
