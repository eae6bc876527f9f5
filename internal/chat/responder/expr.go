package responder

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxExponent bounds ^ so "2 to the power of 9999" cannot melt a request.
const maxExponent = 64

// evalExpr evaluates an arithmetic expression with +, -, *, / and %
// (modulo), ^ for powers, and parentheses. Division by zero and
// non-finite results are errors; the caller treats any error as "not a
// math question".
func evalExpr(s string) (float64, error) {
	p := &exprParser{s: strings.TrimSpace(s)}
	if p.s == "" {
		return 0, fmt.Errorf("empty expression")
	}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos != len(p.s) {
		return 0, fmt.Errorf("unexpected %q", p.s[p.pos:])
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("result is not finite")
	}
	return v, nil
}

// exprParser is a one-pass recursive-descent parser. Grammar:
//
//	expr    = term   (('+' | '-') term)*
//	term    = factor (('*' | '/' | '%') factor)*
//	factor  = ('+' | '-')* primary ('^' factor)?
//	primary = number | '(' expr ')'
type exprParser struct {
	s   string
	pos int
}

func (p *exprParser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		switch p.peek() {
		case '+':
			p.pos++
			w, err := p.term()
			if err != nil {
				return 0, err
			}
			v += w
		case '-':
			p.pos++
			w, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= w
		default:
			return v, nil
		}
	}
}

func (p *exprParser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		switch p.peek() {
		case '*':
			p.pos++
			w, err := p.factor()
			if err != nil {
				return 0, err
			}
			v *= w
		case '/':
			p.pos++
			w, err := p.factor()
			if err != nil {
				return 0, err
			}
			if w == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			v /= w
		case '%':
			p.pos++
			w, err := p.factor()
			if err != nil {
				return 0, err
			}
			if w == 0 {
				return 0, fmt.Errorf("modulo by zero")
			}
			v = math.Mod(v, w)
		default:
			return v, nil
		}
	}
}

func (p *exprParser) factor() (float64, error) {
	p.skipSpaces()
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.factor()
		return -v, err
	case '+':
		p.pos++
		return p.factor()
	}
	v, err := p.primary()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.peek() == '^' {
		p.pos++
		e, err := p.factor()
		if err != nil {
			return 0, err
		}
		if math.Abs(e) > maxExponent {
			return 0, fmt.Errorf("exponent too large")
		}
		return math.Pow(v, e), nil
	}
	return v, nil
}

func (p *exprParser) primary() (float64, error) {
	p.skipSpaces()
	if p.peek() == '(' {
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		p.skipSpaces()
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	}
	return p.number()
}

func (p *exprParser) number() (float64, error) {
	start := p.pos
	for p.pos < len(p.s) && (isDigit(p.s[p.pos]) || p.s[p.pos] == '.') {
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("expected a number at offset %d", start)
	}
	v, err := strconv.ParseFloat(p.s[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", p.s[start:p.pos])
	}
	return v, nil
}

func (p *exprParser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.s) && p.s[p.pos] == ' ' {
		p.pos++
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// fnum formats a number the way people write math: no exponent notation,
// no trailing ".0" on whole values.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
