package expr

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrEmptyExpression = errors.New("empty expression")
	ErrSyntax          = errors.New("malformed expression")
	ErrDivideByZero    = errors.New("division by zero")
)

// evalArithmetic evaluates a four-function arithmetic expression over
// + - * / ( ), unary minus and decimal literals. It never executes code:
// the input is parsed by a hand-written recursive-descent parser.
func evalArithmetic(s string) (float64, error) {
	p := &parser{src: []rune(s)}
	if len(p.src) == 0 {
		return 0, ErrEmptyExpression
	}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.src) {
		return 0, ErrSyntax
	}
	return v, nil
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) peek() rune {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// expr := term (('+'|'-') term)*
func (p *parser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.pos++
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

// term := factor (('*'|'/') factor)*
func (p *parser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.pos++
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, ErrDivideByZero
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

// factor := ('-'|'+')* primary
func (p *parser) factor() (float64, error) {
	neg := false
	for p.peek() == '-' || p.peek() == '+' {
		if p.peek() == '-' {
			neg = !neg
		}
		p.pos++
	}
	v, err := p.primary()
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}

// primary := number | '(' expr ')'
func (p *parser) primary() (float64, error) {
	if p.peek() == '(' {
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, ErrSyntax
		}
		p.pos++
		return v, nil
	}
	return p.number()
}

func (p *parser) number() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) && (unicode.IsDigit(p.src[p.pos]) || p.src[p.pos] == '.') {
		p.pos++
	}
	if p.pos == start {
		return 0, ErrSyntax
	}
	lit := string(p.src[start:p.pos])
	if strings.Count(lit, ".") > 1 {
		return 0, ErrSyntax
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, ErrSyntax
	}
	return v, nil
}
