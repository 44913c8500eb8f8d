/*
 * cif.go, part of gocrystal.
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
	"io"
	"strconv"
	"strings"

	"github.com/rmera/gocrystal/symmetry"
	v3 "github.com/rmera/gocrystal/v3"
)

// cifToken is a single value, tag or keyword in a CIF file.
type cifToken struct {
	text   string
	quoted bool
	line   int
}

// isTag returns true if t is a data name, like _cell_length_a
func (t cifToken) isTag() bool {
	return !t.quoted && strings.HasPrefix(t.text, "_")
}

// isKeyword returns true if t is a reserved CIF word that ends a loop.
func (t cifToken) isKeyword() bool {
	if t.quoted {
		return false
	}
	l := strings.ToLower(t.text)
	return l == "loop_" || strings.HasPrefix(l, "data_") || strings.HasPrefix(l, "save_") || l == "global_" || l == "stop_"
}

// splitCIFLine splits a line into tokens. Quoted values may contain spaces. A quote
// only closes a value when it is followed by a blank or the end of the line, so
// values like 'O2' x' are read correctly. Comments are dropped.
func splitCIFLine(line string, lineno int) []cifToken {
	var toks []cifToken
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '#':
			return toks
		case c == '\'' || c == '"':
			j := i + 1
			for ; j < len(line); j++ {
				if line[j] == c && (j+1 == len(line) || line[j+1] == ' ' || line[j+1] == '\t' || line[j+1] == '\r') {
					break
				}
			}
			if j >= len(line) { //unclosed quote, take the rest of the line.
				toks = append(toks, cifToken{text: line[i+1:], quoted: true, line: lineno})
				return toks
			}
			toks = append(toks, cifToken{text: line[i+1 : j], quoted: true, line: lineno})
			i = j + 1
		default:
			j := i
			for ; j < len(line) && line[j] != ' ' && line[j] != '\t' && line[j] != '\r'; j++ {
			}
			toks = append(toks, cifToken{text: line[i:j], line: lineno})
			i = j
		}
	}
	return toks
}

// tokenizeCIF reads all the tokens in r. Multi-line text fields, delimited by lines that
// start with a semicolon, become a single quoted token.
func tokenizeCIF(r io.Reader) ([]cifToken, error) {
	var toks []cifToken
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var text []string
	intext := false
	textline := 0
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.HasPrefix(line, ";") {
			if intext {
				toks = append(toks, cifToken{text: strings.Join(text, "\n"), quoted: true, line: textline})
				text = text[:0]
				intext = false
				continue
			}
			intext = true
			textline = lineno
			text = append(text, line[1:])
			continue
		}
		if intext {
			text = append(text, line)
			continue
		}
		toks = append(toks, splitCIFLine(line, lineno)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, newError(ErrParse, "tokenizeCIF", "%s", err.Error())
	}
	if intext {
		return nil, newError(ErrParse, "tokenizeCIF", "unterminated text field starting in line %d", textline)
	}
	return toks, nil
}

// cifLoop is a loop_ block. The tags are lowercase.
type cifLoop struct {
	tags []string
	rows [][]string
}

// column returns the index of the first of the given tags present in the loop, or -1.
func (l *cifLoop) column(tags ...string) int {
	for _, t := range tags {
		for i, v := range l.tags {
			if v == t {
				return i
			}
		}
	}
	return -1
}

// cifData is the content of a CIF data block that we care about.
type cifData struct {
	name  string
	items map[string]string
	loops []*cifLoop
}

// item returns the value of the first of the given tags found among the single items.
func (d *cifData) item(tags ...string) (string, bool) {
	for _, t := range tags {
		if v, ok := d.items[t]; ok {
			return v, true
		}
	}
	return "", false
}

// loop returns the first loop that has a column for each of the given tags, or nil.
func (d *cifData) loop(tags ...string) *cifLoop {
Outer:
	for _, l := range d.loops {
		for _, t := range tags {
			if l.column(t) < 0 {
				continue Outer
			}
		}
		return l
	}
	return nil
}

var symopTags = []string{"_symmetry_equiv_pos_as_xyz", "_space_group_symop_operation_xyz"}

// parseCIF builds the data block from the tokens. Only the first data block is read.
func parseCIF(toks []cifToken) (*cifData, error) {
	d := &cifData{items: make(map[string]string)}
	started := false
	for i := 0; i < len(toks); {
		t := toks[i]
		low := strings.ToLower(t.text)
		switch {
		case !t.quoted && strings.HasPrefix(low, "data_"):
			if started {
				logger.Printf("only the first data block (%s) will be read", d.name)
				return d, nil
			}
			started = true
			d.name = t.text[len("data_"):]
			i++
		case !t.quoted && low == "loop_":
			l, next, err := parseCIFLoop(toks, i+1)
			if err != nil {
				return nil, err
			}
			d.loops = append(d.loops, l)
			i = next
		case t.isTag():
			if i+1 >= len(toks) || toks[i+1].isTag() || toks[i+1].isKeyword() {
				return nil, newError(ErrParse, "parseCIF", "line %d: no value for %s", t.line, t.text)
			}
			d.items[low] = toks[i+1].text
			i += 2
		default:
			i++ //stray values, and global_ or save_ frames, are ignored.
		}
	}
	return d, nil
}

// parseCIFLoop reads the loop whose first tag is at toks[i]. It returns the loop and
// the index of the first token after it.
func parseCIFLoop(toks []cifToken, i int) (*cifLoop, int, error) {
	l := new(cifLoop)
	for ; i < len(toks) && toks[i].isTag(); i++ {
		l.tags = append(l.tags, strings.ToLower(toks[i].text))
	}
	if len(l.tags) == 0 {
		return nil, i, newError(ErrParse, "parseCIFLoop", "loop_ without tags")
	}
	start := i
	for ; i < len(toks) && !toks[i].isTag() && !toks[i].isKeyword(); i++ {
	}
	vals := toks[start:i]
	//Unquoted symmetry operations may contain spaces ("x, y, z"). When the operation
	//is the last column, the rest of each line belongs to it.
	if l.column(symopTags...) == len(l.tags)-1 {
		rows, err := symopRows(vals, len(l.tags))
		l.rows = rows
		return l, i, err
	}
	if len(vals)%len(l.tags) != 0 {
		return nil, i, newError(ErrParse, "parseCIFLoop", "loop with %d columns has %d values", len(l.tags), len(vals))
	}
	for j := 0; j < len(vals); j += len(l.tags) {
		row := make([]string, len(l.tags))
		for k := range row {
			row[k] = vals[j+k].text
		}
		l.rows = append(l.rows, row)
	}
	return l, i, nil
}

// symopRows groups the values by line. The first ncols-1 values of each line are
// the leading columns, and the remaining ones are joined into the last one.
func symopRows(vals []cifToken, ncols int) ([][]string, error) {
	var rows [][]string
	for j := 0; j < len(vals); {
		k := j
		for ; k < len(vals) && vals[k].line == vals[j].line; k++ {
		}
		if k-j < ncols {
			return nil, newError(ErrParse, "symopRows", "line %d: symmetry operation row with %d values", vals[j].line, k-j)
		}
		row := make([]string, 0, ncols)
		for _, v := range vals[j : j+ncols-1] {
			row = append(row, v.text)
		}
		last := make([]string, 0, k-j-ncols+1)
		for _, v := range vals[j+ncols-1 : k] {
			last = append(last, v.text)
		}
		row = append(row, strings.Join(last, ""))
		rows = append(rows, row)
		j = k
	}
	return rows, nil
}

// parseCIFNumber parses a CIF numeric value, dropping the standard uncertainty in
// parentheses, if any, so "1.234(5)" gives 1.234.
func parseCIFNumber(s string) (float64, error) {
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	return strconv.ParseFloat(s, 64)
}

// cell reads the cell parameters from the data block.
func (d *cifData) cell() (*Box, error) {
	tags := []string{"_cell_length_a", "_cell_length_b", "_cell_length_c", "_cell_angle_alpha", "_cell_angle_beta", "_cell_angle_gamma"}
	var p [6]float64
	var err error
	for i, t := range tags {
		v, ok := d.items[t]
		if !ok {
			return nil, newError(ErrParse, "cell", "missing %s", t)
		}
		p[i], err = parseCIFNumber(v)
		if err != nil {
			return nil, newError(ErrParse, "cell", "bad value %q for %s", v, t)
		}
	}
	return NewBoxDegrees(p[0], p[1], p[2], p[3], p[4], p[5])
}

// sites reads the atom site loop. It returns the species, the fractional coordinates
// (wrapped into the unit cell) and the charges, which are zero if the loop doesn't have them.
func (d *cifData) sites(box *Box) ([]string, *v3.Matrix, []float64, error) {
	cartesian := false
	l := d.loop("_atom_site_fract_x", "_atom_site_fract_y", "_atom_site_fract_z")
	coordtags := []string{"_atom_site_fract_x", "_atom_site_fract_y", "_atom_site_fract_z"}
	if l == nil {
		coordtags = []string{"_atom_site_cartn_x", "_atom_site_cartn_y", "_atom_site_cartn_z"}
		l = d.loop(coordtags...)
		cartesian = true
	}
	if l == nil {
		return nil, nil, nil, newError(ErrParse, "sites", "no atom site loop with fractional or Cartesian coordinates")
	}
	scol := l.column("_atom_site_type_symbol", "_atom_site_label")
	if scol < 0 {
		return nil, nil, nil, newError(ErrParse, "sites", "the atom site loop has no _atom_site_type_symbol or _atom_site_label")
	}
	qcol := l.column("_atom_site_charge")
	var ccols [3]int
	for i, t := range coordtags {
		ccols[i] = l.column(t)
	}
	species := make([]string, 0, len(l.rows))
	coords := make([]float64, 0, 3*len(l.rows))
	q := make([]float64, 0, len(l.rows))
	for i, row := range l.rows {
		species = append(species, row[scol])
		for _, c := range ccols {
			v, err := parseCIFNumber(row[c])
			if err != nil {
				return nil, nil, nil, newError(ErrParse, "sites", "atom %d: bad coordinate %q", i, row[c])
			}
			coords = append(coords, v)
		}
		var charge float64
		if qcol >= 0 && row[qcol] != "?" && row[qcol] != "." {
			var err error
			charge, err = parseCIFNumber(row[qcol])
			if err != nil {
				return nil, nil, nil, newError(ErrParse, "sites", "atom %d: bad charge %q", i, row[qcol])
			}
		}
		q = append(q, charge)
	}
	xf, err := v3.NewMatrix(coords)
	if err != nil {
		panic(err.Error()) //can't happen, we append 3 coordinates per atom.
	}
	if cartesian {
		xf = box.ToFractional(xf)
	}
	xf.Wrap(xf)
	return species, xf, q, nil
}

// symmetry reads the space group label and the symmetry operations. A structure
// labeled P1 needs no symmetry operations. Any other needs them.
func (d *cifData) symmetry() (Symmetry, error) {
	label, _ := d.item("_symmetry_space_group_name_h-m", "_space_group_name_h-m_alt")
	label, labelP1 := NormalizeSpaceGroup(label)
	l := d.loop(symopTags[0])
	if l == nil {
		l = d.loop(symopTags[1])
	}
	if l == nil {
		if !labelP1 {
			return Symmetry{}, newError(ErrParse, "symmetry", "no symmetry operations for space group %q", label)
		}
		return P1Symmetry(), nil
	}
	if len(l.rows) == 0 {
		return Symmetry{}, newError(ErrParse, "symmetry", "the symmetry operation loop is empty")
	}
	col := l.column(symopTags...)
	ops := make([]string, 0, len(l.rows))
	for _, row := range l.rows {
		ops = append(ops, row[col])
	}
	rules, err := symmetry.ParseRules(ops)
	if err != nil {
		return Symmetry{}, newError(ErrParse, "symmetry", "%s", err.Error())
	}
	if rules.IsP1() {
		return P1Symmetry(), nil
	}
	if labelP1 {
		logger.Printf("space group is labeled P1 but there are %d symmetry operations. The operations will be used", len(rules))
		label = ""
	}
	return Symmetry{Rules: rules, SpaceGroup: label, P1: false}, nil
}

// ReadCIF reads a crystal structure in the CIF format from r. If name is empty, the name
// of the CIF data block is used. Atom and charge positions are wrapped into the unit cell.
// Structures not in P1 are expanded to P1 unless the options (or the default ones) say
// otherwise. The checks requested in the options are run on the final structure.
func ReadCIF(r io.Reader, name string, opts ...*Options) (*Framework, error) {
	toks, err := tokenizeCIF(r)
	if err != nil {
		return nil, errDecorate(err, "ReadCIF")
	}
	d, err := parseCIF(toks)
	if err != nil {
		return nil, errDecorate(err, "ReadCIF")
	}
	if name == "" {
		name = d.name
	}
	box, err := d.cell()
	if err != nil {
		return nil, errDecorate(err, "ReadCIF")
	}
	species, xf, q, err := d.sites(box)
	if err != nil {
		return nil, errDecorate(err, "ReadCIF")
	}
	sym, err := d.symmetry()
	if err != nil {
		return nil, errDecorate(err, "ReadCIF")
	}
	atoms, err := NewAtoms(species, xf)
	if err != nil {
		return nil, errDecorate(err, "ReadCIF")
	}
	charges, err := NewCharges(q, xf)
	if err != nil {
		return nil, errDecorate(err, "ReadCIF")
	}
	F, err := NewFramework(name, box, atoms, charges, sym)
	if err != nil {
		return nil, errDecorate(err, "ReadCIF")
	}
	R, err := F.finish(getOptions(opts))
	return R, errDecorate(err, "ReadCIF")
}

// finish converts a freshly read framework to P1, if requested in o, and runs the
// checks in o.
func (F *Framework) finish(o *Options) (*Framework, error) {
	if F.sym.P1 {
		return F.checked(o)
	}
	if !o.ConvertToP1 {
		logger.Printf("%s is in space group %s and will not be converted to P1. Simulations need P1 structures", F.name, F.sym.SpaceGroup)
		return F.checked(o)
	}
	logger.Printf("%s: converting from space group %s to P1", F.name, F.sym.SpaceGroup)
	return F.expanded().checked(o)
}
