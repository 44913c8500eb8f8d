/*
 * parse.go, part of gocrystal.
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
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse parses a symmetry operation given as three comma-separated expressions,
// i.e. "x+1/2, y, -z".
func Parse(op string) (Operation, error) {
	op = strings.Trim(strings.TrimSpace(op), `'"`)
	fields := strings.Split(op, ",")
	if len(fields) != 3 {
		return Operation{}, &Error{fmt.Sprintf("operation %q does not have 3 comma-separated expressions", op), []string{"Parse"}}
	}
	var ex [3]string
	copy(ex[:], fields)
	o, err := ParseAxes(ex)
	if err != nil {
		err.(*Error).Decorate("Parse")
	}
	return o, err
}

// ParseAxes builds an operation from one expression per axis.
func ParseAxes(ex [3]string) (Operation, error) {
	var o Operation
	for i, v := range ex {
		coefs, c, err := parseExpression(v)
		if err != nil {
			return Operation{}, &Error{fmt.Sprintf("axis %d: %s", i, err.Error()), []string{"ParseAxes"}}
		}
		o.Rot[i] = coefs
		o.Trans[i] = c
	}
	return o, nil
}

type tokenKind int

const (
	tNumber tokenKind = iota
	tVar
	tOp
)

type token struct {
	kind tokenKind
	num  float64
	axis int  //for tVar
	op   byte //for tOp
}

// lex splits an expression into numbers, variables and operators.
// A number immediately followed by a variable (2x) gets an explicit '*'.
func lex(s string) ([]token, error) {
	var toks []token
	for i := 0; i < len(s); {
		ch := s[i]
		switch {
		case ch == ' ' || ch == '\t':
			i++
		case ch == '+' || ch == '-' || ch == '*' || ch == '/':
			toks = append(toks, token{kind: tOp, op: ch})
			i++
		case ch == '.' || (ch >= '0' && ch <= '9'):
			j := i
			for j < len(s) && (s[j] == '.' || (s[j] >= '0' && s[j] <= '9')) {
				j++
			}
			f, err := strconv.ParseFloat(s[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("bad number %q", s[i:j])
			}
			toks = append(toks, token{kind: tNumber, num: f})
			i = j
		case strings.ContainsRune("xyzXYZ", rune(ch)):
			if n := len(toks); n > 0 && toks[n-1].kind == tNumber {
				toks = append(toks, token{kind: tOp, op: '*'})
			}
			toks = append(toks, token{kind: tVar, axis: int(unicode.ToLower(rune(ch)) - 'x')})
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q", ch)
		}
	}
	return toks, nil
}

// parser is a recursive-descent parser for the grammar
//
//	expr   := ['+'|'-'] term { ('+'|'-') term }
//	term   := factor { ('*'|'/') factor }
//	factor := number | variable
//
// with the restrictions that a term holds at most one variable and that
// division is only by numbers, so the result is always linear.
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peekOp() (byte, bool) {
	if p.pos < len(p.toks) && p.toks[p.pos].kind == tOp {
		return p.toks[p.pos].op, true
	}
	return 0, false
}

// term returns the coefficient of the term and the axis of its variable, or -1 for a constant.
func (p *parser) term() (float64, int, error) {
	coef := 1.0
	axis := -1
	expectFactor := true
	for {
		if expectFactor {
			if p.pos >= len(p.toks) {
				return 0, 0, fmt.Errorf("unexpected end of expression")
			}
			t := p.toks[p.pos]
			//unary signs, as in "x+-1/2"
			if t.kind == tOp && (t.op == '-' || t.op == '+') {
				if t.op == '-' {
					coef = -coef
				}
				p.pos++
				continue
			}
			switch t.kind {
			case tNumber:
				coef *= t.num
			case tVar:
				if axis >= 0 {
					return 0, 0, fmt.Errorf("non-linear term")
				}
				axis = t.axis
			default:
				return 0, 0, fmt.Errorf("unexpected operator %q", t.op)
			}
			p.pos++
			expectFactor = false
			continue
		}
		op, ok := p.peekOp()
		if !ok || (op != '*' && op != '/') {
			return coef, axis, nil
		}
		p.pos++
		if op == '*' {
			expectFactor = true
			continue
		}
		if p.pos >= len(p.toks) || p.toks[p.pos].kind != tNumber {
			return 0, 0, fmt.Errorf("division by a non-number")
		}
		if p.toks[p.pos].num == 0 {
			return 0, 0, fmt.Errorf("division by zero")
		}
		coef /= p.toks[p.pos].num
		p.pos++
	}
}

func (p *parser) expr() ([3]float64, float64, error) {
	var coefs [3]float64
	var c float64
	if len(p.toks) == 0 {
		return coefs, 0, fmt.Errorf("empty expression")
	}
	sign := 1.0
	if op, ok := p.peekOp(); ok && (op == '+' || op == '-') {
		if op == '-' {
			sign = -1
		}
		p.pos++
	}
	for {
		f, axis, err := p.term()
		if err != nil {
			return coefs, 0, err
		}
		if axis < 0 {
			c += sign * f
		} else {
			coefs[axis] += sign * f
		}
		if p.pos >= len(p.toks) {
			return coefs, c, nil
		}
		op, _ := p.peekOp()
		switch op {
		case '+':
			sign = 1
		case '-':
			sign = -1
		default:
			return coefs, 0, fmt.Errorf("unexpected token at position %d", p.pos)
		}
		p.pos++
	}
}

func parseExpression(s string) ([3]float64, float64, error) {
	toks, err := lex(s)
	if err != nil {
		return [3]float64{}, 0, err
	}
	p := &parser{toks: toks}
	return p.expr()
}
