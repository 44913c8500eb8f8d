/*
 * options.go, part of gocrystal.
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
	"io"
	"log"
	"os"

	"github.com/pelletier/go-toml"
)

const (
	//DefaultNetChargeTol is the largest absolute net charge of a "neutral" structure.
	DefaultNetChargeTol = 0.001
	//DefaultOverlapTol is the distance, in Angstrom, under which two sites overlap.
	DefaultOverlapTol = 0.1
)

// Options controls the checks and transformations applied when a Framework is read
// from a file or expanded to P1. The TOML keys are those accepted by LoadOptions.
type Options struct {
	CheckChargeNeutrality bool    `toml:"check_charge_neutrality"`
	NetChargeTol          float64 `toml:"net_charge_tol"`
	CheckOverlap          bool    `toml:"check_atom_and_charge_overlap"`
	RemoveOverlap         bool    `toml:"remove_overlap"`
	ConvertToP1           bool    `toml:"convert_to_p1"`
	OverlapTol            float64 `toml:"overlap_tol"`
	Verbose               bool    `toml:"verbose"`
}

// DefaultOptions returns the options used when none are given: every check is
// performed, overlaps are errors, and structures are expanded to P1.
func DefaultOptions() *Options {
	return &Options{
		CheckChargeNeutrality: true,
		NetChargeTol:          DefaultNetChargeTol,
		CheckOverlap:          true,
		RemoveOverlap:         false,
		ConvertToP1:           true,
		OverlapTol:            DefaultOverlapTol,
		Verbose:               false,
	}
}

// LoadOptions reads options from a TOML file. Keys not present in the file keep
// their default values.
func LoadOptions(path string) (*Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	o, err := DecodeOptions(f)
	return o, withFile(errDecorate(err, "LoadOptions"), path)
}

// DecodeOptions reads TOML-encoded options from r, on top of the defaults.
func DecodeOptions(r io.Reader) (*Options, error) {
	o := DefaultOptions()
	tree, err := toml.LoadReader(r)
	if err != nil {
		return nil, newError(ErrParse, "DecodeOptions", "%s", err.Error())
	}
	bools := map[string]*bool{
		"check_charge_neutrality":       &o.CheckChargeNeutrality,
		"check_atom_and_charge_overlap": &o.CheckOverlap,
		"remove_overlap":                &o.RemoveOverlap,
		"convert_to_p1":                 &o.ConvertToP1,
		"verbose":                       &o.Verbose,
	}
	for k, dst := range bools {
		if !tree.Has(k) {
			continue
		}
		v, ok := tree.Get(k).(bool)
		if !ok {
			return nil, newError(ErrParse, "DecodeOptions", "%s must be a boolean", k)
		}
		*dst = v
	}
	tols := map[string]*float64{
		"net_charge_tol": &o.NetChargeTol,
		"overlap_tol":    &o.OverlapTol,
	}
	for k, dst := range tols {
		if !tree.Has(k) {
			continue
		}
		switch v := tree.Get(k).(type) {
		case float64:
			*dst = v
		case int64:
			*dst = float64(v)
		default:
			return nil, newError(ErrParse, "DecodeOptions", "%s must be a number", k)
		}
		if *dst < 0 {
			return nil, newError(ErrInvalidArgument, "DecodeOptions", "negative %s: %v", k, *dst)
		}
	}
	return o, nil
}

// EncodeOptions writes o to w in the TOML format read by DecodeOptions.
func EncodeOptions(w io.Writer, o *Options) error {
	b, err := toml.Marshal(*o)
	if err != nil {
		return newError(ErrInvalidArgument, "EncodeOptions", "%s", err.Error())
	}
	_, err = w.Write(b)
	return err
}

// getOptions returns the first of the given options, or the defaults.
func getOptions(opts []*Options) *Options {
	if len(opts) > 0 && opts[0] != nil {
		return opts[0]
	}
	return DefaultOptions()
}

//The advisories are just a heads-up, never errors.
var logger = log.New(os.Stderr, "gocrystal: ", log.LstdFlags)

// SetLogger sets the logger used for warnings and verbose output. A nil
// logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}
