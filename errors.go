/*
 * errors.go, part of gocrystal.
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
	"errors"
	"fmt"
)

// The kinds of errors returned by gocrystal. Use errors.Is to check the kind
// of a returned error, i.e. errors.Is(err, crystal.ErrParse).
var (
	ErrUnsupportedFormat     = errors.New("unsupported file format")
	ErrParse                 = errors.New("parse error")
	ErrGeometry              = errors.New("invalid cell geometry")
	ErrChargeNeutrality      = errors.New("structure is not charge-neutral")
	ErrOverlap               = errors.New("overlapping atoms or charges")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrInconsistentStructure = errors.New("inconsistent structure")
)

// CError is the general error type of the crystal package. It fulfills the Error interface.
type CError struct {
	kind     error
	msg      string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func newError(kind error, caller, format string, a ...interface{}) *CError {
	return &CError{kind: kind, msg: fmt.Sprintf(format, a...), deco: []string{caller}, critical: true}
}

func (err *CError) Error() string {
	if err.filename != "" {
		return fmt.Sprintf("gocrystal: %s: %s: %s", err.filename, err.kind, err.msg)
	}
	return fmt.Sprintf("gocrystal: %s: %s", err.kind, err.msg)
}

// Unwrap returns the kind of the error, so errors.Is works on it.
func (err *CError) Unwrap() error { return err.kind }

// Decorate adds new information to the error
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error, if any.
func (err *CError) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise
func (err *CError) Critical() bool { return err.critical }

// errDecorate is a helper function that, if err implements Error,
// decorates it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}

// withFile sets the file name of err if it is a *CError without one.
func withFile(err error, filename string) error {
	var e *CError
	if errors.As(err, &e) && e.filename == "" {
		e.filename = filename
	}
	return err
}
